package flow

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type rejectAll struct{}

func (rejectAll) Verify(string, string) bool { return false }

func TestSignupStepOneGuard(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name, phone string
		ok          bool
	}{
		{"", "", false},
		{"Rohan", "", false},
		{"", "+91 98765 43210", false},
		{"   ", "98765", true},
		{" ", " ", true},
		{"Rohan", "98765", true},
		{"x", "1", true},
	}
	for _, c := range cases {
		f := NewSignupForm()
		f.Name, f.Phone = c.name, c.phone
		require.Equal(t, c.ok, f.RequestOTP(), "%q/%q", c.name, c.phone)
		if c.ok {
			require.Equal(t, StepAwaitingOTP, f.Step)
		} else {
			require.Equal(t, StepCollectingIdentity, f.Step)
		}
	}
}

func TestSignupOTPGuard(t *testing.T) {
	t.Parallel()
	f := NewSignupForm()
	f.Name, f.Phone = "Rohan", "98765"
	require.True(t, f.RequestOTP())

	f.SetOTP("000")
	require.False(t, f.CanVerify())
	require.False(t, f.Verify(nil))

	f.SetOTP("0000")
	require.True(t, f.CanVerify())
	require.True(t, f.Verify(nil))
	require.False(t, f.Verify(rejectAll{}))

	f.SetOTP("123456")
	require.Equal(t, "1234", f.OTP)
	require.True(t, f.CanVerify())
}

func TestSignupChangeNumberKeepsIdentity(t *testing.T) {
	t.Parallel()
	f := NewSignupForm()
	f.Name, f.Phone = "Rohan", "98765"
	f.ToggleCity()
	require.True(t, f.RequestOTP())
	f.ChangeNumber()
	require.Equal(t, StepCollectingIdentity, f.Step)
	require.Equal(t, "Rohan", f.Name)
	require.Equal(t, "98765", f.Phone)
	require.Equal(t, "Bangalore", f.City)
	require.False(t, f.CanVerify())
}

func TestSignupCityDefaultsAndToggles(t *testing.T) {
	t.Parallel()
	f := NewSignupForm()
	require.Equal(t, "Mumbai", f.City)
	f.ToggleCity()
	require.Equal(t, "Bangalore", f.City)
	f.ToggleCity()
	require.Equal(t, "Mumbai", f.City)
}

func TestPetProfileRequiresExplicitFlightRisk(t *testing.T) {
	t.Parallel()
	p := NewPetProfile()
	require.False(t, p.Complete())
	p.Name = "Taco"
	require.False(t, p.Complete(), "unanswered flight risk blocks")
	p.FlightRisk = FlightRiskNo
	require.True(t, p.Complete())
	require.False(t, p.RecommendsTracker())
	p.FlightRisk = FlightRiskYes
	require.True(t, p.Complete())
	require.True(t, p.RecommendsTracker())
	p.Name = ""
	require.False(t, p.Complete())
	p.Name = " "
	require.True(t, p.Complete(), "any non-empty name counts")
	require.Equal(t, "your pet", p.DisplayName())
}

func TestPetProfileOptions(t *testing.T) {
	t.Parallel()
	p := NewPetProfile()
	require.Equal(t, SpeciesDog, p.Species)
	require.Equal(t, "Friendly", p.Temperament)
	require.Equal(t, "your pet", p.DisplayName())

	p.ToggleSpecies()
	require.Equal(t, SpeciesCat, p.Species)
	p.CycleTemperament(-1)
	require.Equal(t, "Calm", p.Temperament)
	p.CycleTemperament(2)
	require.Equal(t, "Shy", p.Temperament)
}

func TestChecklistGate(t *testing.T) {
	t.Parallel()
	c := NewChecklist()
	require.False(t, c.Ready())
	c.Toggle(SectionWalking)
	c.Toggle(SectionFeeding)
	require.False(t, c.Ready())
	c.Toggle(SectionBehavioral)
	require.True(t, c.Ready())

	c.Toggle(SectionFeeding)
	require.False(t, c.Ready(), "unchecking any section re-locks")
	require.False(t, c.Checked(SectionFeeding))
	c.Toggle(SectionFeeding)
	require.True(t, c.Ready())

	c.Toggle("grooming")
	require.True(t, c.Ready())
	require.False(t, Checklist{}.Ready())
}

func TestHandbookMatchesChecklistKeys(t *testing.T) {
	t.Parallel()
	c := NewChecklist()
	for _, s := range Handbook() {
		c.Toggle(s.Key)
		require.Len(t, s.Items, 4)
	}
	require.True(t, c.Ready())
}

func TestRevealerSequence(t *testing.T) {
	t.Parallel()
	r := NewRevealer(8)
	require.Equal(t, 2, r.Visible())
	require.False(t, r.Done())
	for want := 3; want <= 8; want++ {
		require.True(t, r.Advance())
		require.Equal(t, want, r.Visible())
	}
	require.True(t, r.Done())
	require.False(t, r.Advance())
	require.Equal(t, 8, r.Visible())
}

func TestRevealerShortLog(t *testing.T) {
	t.Parallel()
	r := NewRevealer(1)
	require.Equal(t, 1, r.Visible())
	require.True(t, r.Done())
	require.True(t, NewRevealer(0).Done())
}

func TestRatingGuard(t *testing.T) {
	t.Parallel()
	var r RatingForm
	require.False(t, r.CanSubmit())
	r.ToggleFavorite()
	require.False(t, r.Submit(), "favorite does not satisfy the guard")

	r.SetStars(0)
	r.SetStars(6)
	require.Equal(t, 0, r.Stars)

	for n := 1; n <= MaxStars; n++ {
		f := RatingForm{}
		f.SetStars(n)
		require.True(t, f.CanSubmit(), n)
	}

	r.SetStars(4)
	require.True(t, r.Submit())
	require.True(t, r.Submitted)
	require.True(t, r.Favorite)
	require.False(t, r.Submit(), "already submitted")
}
