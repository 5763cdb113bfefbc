package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/tacostay/internal/flow"
)

const (
	petFocusName = iota
	petFocusSpecies
	petFocusBreed
	petFocusAge
	petFocusWeight
	petFocusTemperament
	petFocusFlightRisk
	petFields
)

type petState struct {
	profile flow.PetProfile
	focus   int
	name    textinput.Model
	breed   textinput.Model
	age     textinput.Model
	weight  textinput.Model
}

func newPetState() petState {
	p := petState{
		profile: flow.NewPetProfile(),
		name:    newInput("e.g. Taco", 30),
		breed:   newInput("e.g. Golden Labrador", 40),
		age:     newInput("2 yrs", 10),
		weight:  newInput("25 kg", 10),
	}
	p.setFocus(petFocusName)
	return p
}

// input returns the text input behind a focus slot, or nil for choice rows.
func (p *petState) input(i int) *textinput.Model {
	switch i {
	case petFocusName:
		return &p.name
	case petFocusBreed:
		return &p.breed
	case petFocusAge:
		return &p.age
	case petFocusWeight:
		return &p.weight
	}
	return nil
}

func (p *petState) setFocus(i int) {
	p.focus = (i + petFields) % petFields
	for _, in := range []*textinput.Model{&p.name, &p.breed, &p.age, &p.weight} {
		in.Blur()
	}
	if in := p.input(p.focus); in != nil {
		in.Focus()
	}
}

func (p *petState) sync() {
	p.profile.Name = p.name.Value()
	p.profile.Breed = p.breed.Value()
	p.profile.Age = p.age.Value()
	p.profile.Weight = p.weight.Value()
}

func (a *App) handlePetKey(m tea.KeyMsg) tea.Cmd {
	p := &a.pet
	switch {
	case key.Matches(m, a.keys.Back):
		return a.back()
	case key.Matches(m, a.keys.Next, a.keys.Down):
		p.setFocus(p.focus + 1)
		return nil
	case key.Matches(m, a.keys.Prev, a.keys.Up):
		p.setFocus(p.focus - 1)
		return nil
	case key.Matches(m, a.keys.Confirm):
		if !p.profile.Complete() {
			return nil
		}
		return a.goTo(flow.ScreenHome)
	}

	switch p.focus {
	case petFocusSpecies:
		if key.Matches(m, a.keys.Left, a.keys.Right, a.keys.Toggle) {
			p.profile.ToggleSpecies()
		}
		return nil
	case petFocusTemperament:
		switch {
		case key.Matches(m, a.keys.Left):
			p.profile.CycleTemperament(-1)
		case key.Matches(m, a.keys.Right, a.keys.Toggle):
			p.profile.CycleTemperament(1)
		}
		return nil
	case petFocusFlightRisk:
		switch {
		case key.Matches(m, a.keys.Left) || m.String() == "y":
			p.profile.FlightRisk = flow.FlightRiskYes
		case key.Matches(m, a.keys.Right) || m.String() == "n":
			p.profile.FlightRisk = flow.FlightRiskNo
		}
		return nil
	}

	in := p.input(p.focus)
	if in == nil {
		return nil
	}
	var cmd tea.Cmd
	*in, cmd = in.Update(m)
	p.sync()
	return cmd
}

func (a *App) viewPet() string {
	p := a.pet
	w := a.innerWidth()
	avatar := "🐕"
	species := 0
	if p.profile.Species == flow.SpeciesCat {
		avatar = "🐈"
		species = 1
	}
	temperament := 0
	for i, t := range flow.Temperaments {
		if t == p.profile.Temperament {
			temperament = i
		}
	}
	risk := -1
	switch p.profile.FlightRisk {
	case flow.FlightRiskYes:
		risk = 0
	case flow.FlightRiskNo:
		risk = 1
	}

	lines := []string{
		center(w, avatar),
		center(w, titleStyle.Render("Tell us about your fur baby")),
		center(w, softStyle.Render("This creates their Pet Vault profile")),
		"",
		field("Pet's Name", "💛 "+p.name.View(), p.focus == petFocusName),
		field("Species", choice([]string{"🐕 Dog", "🐈 Cat"}, species), p.focus == petFocusSpecies),
		field("Breed", "🦴 "+p.breed.View(), p.focus == petFocusBreed),
		field("Age", p.age.View(), p.focus == petFocusAge),
		field("Weight", p.weight.View(), p.focus == petFocusWeight),
		field("Temperament", choice(flow.Temperaments, temperament), p.focus == petFocusTemperament),
		"",
		warnStyle.Render("⚠️ IMPORTANT SAFETY QUESTION"),
		a.wrap(softStyle, "Is "+p.profile.DisplayName()+" a flight risk? (tends to bolt through open doors, escapes leashes, etc.)"),
		field("Flight risk", choice([]string{"Yes, flight risk 🏃", "No, stays put ✅"}, risk), p.focus == petFocusFlightRisk),
	}
	if p.profile.RecommendsTracker() {
		lines = append(lines, a.wrap(warnStyle, "🏷️ Active Care Package with JioTag tracker will be automatically recommended during booking for extra safety."))
	}
	lines = append(lines, "", button("Save Pet Profile →", p.profile.Complete(), false))
	return strings.Join(lines, "\n")
}
