// Package booking prices a stay. Everything here is a pure function of the
// selection; nothing is persisted or charged.
package booking

import "strings"

// Tier is a booking service level. Distinct from catalog.Tier, which ranks
// sitters.
type Tier string

const (
	TierDayCare Tier = "daycare"
	TierClassic Tier = "classic"
	TierElite   Tier = "elite"
)

const (
	// Nights is fixed; the check-in/check-out dates shown are static.
	Nights      = 3
	PlatformFee = 99

	addOnPerNight = 75
	addOnFlat     = 200
)

// TierOption is one row of the fixed tier table.
type TierOption struct {
	ID       Tier
	Name     string
	Emoji    string
	Rate     int64
	Desc     string
	PerNight bool
}

var tiers = []TierOption{
	{ID: TierDayCare, Name: "Day Care", Emoji: "☀️", Rate: 500, Desc: "4-hour flex slot", PerNight: false},
	{ID: TierClassic, Name: "Classic Stay", Emoji: "🏠", Rate: 1200, Desc: "₹1,200/night • Medical cover included", PerNight: true},
	{ID: TierElite, Name: "Elite Stay", Emoji: "👑", Rate: 1600, Desc: "₹1,600/night • Premium care", PerNight: true},
}

// Tiers returns the tier table in display order.
func Tiers() []TierOption {
	out := make([]TierOption, len(tiers))
	copy(out, tiers)
	return out
}

// Option looks up a tier; ok is false for unknown ids.
func Option(id Tier) (TierOption, bool) {
	for _, t := range tiers {
		if t.ID == id {
			return t, true
		}
	}
	return TierOption{}, false
}

// ParseTier accepts a tier id in any case.
func ParseTier(s string) (Tier, bool) {
	t := Tier(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := Option(t); !ok {
		return "", false
	}
	return t, true
}

// Selection is the booking screen's local state.
type Selection struct {
	Tier  Tier
	AddOn bool
}

// DefaultSelection is what the booking screen starts with.
func DefaultSelection() Selection {
	return Selection{Tier: TierClassic}
}

// Breakdown is a priced selection.
type Breakdown struct {
	Option      TierOption
	Nights      int
	Base        int64
	PlatformFee int64
	AddOn       int64
	Total       int64
}

// AddOnPrice is the Active Care Package price for the fixed stay.
func AddOnPrice() int64 {
	return addOnPerNight*Nights + addOnFlat
}

// Quote prices sel. Unknown tiers price as Classic.
func Quote(sel Selection) Breakdown {
	opt, ok := Option(sel.Tier)
	if !ok {
		opt, _ = Option(TierClassic)
	}
	b := Breakdown{Option: opt, Nights: Nights, PlatformFee: PlatformFee}
	if opt.PerNight {
		b.Base = opt.Rate * Nights
	} else {
		b.Base = opt.Rate
	}
	if sel.AddOn {
		b.AddOn = AddOnPrice()
	}
	b.Total = b.Base + b.PlatformFee + b.AddOn
	return b
}

// ShowsDates reports whether the check-in/check-out cards apply.
func (b Breakdown) ShowsDates() bool { return b.Option.PerNight }

// IncludesInsurance reports whether the medical cover note applies.
func (b Breakdown) IncludesInsurance() bool { return b.Option.ID != TierDayCare }

// Stay dates are display literals.
const (
	CheckIn     = "Mar 15"
	CheckInDay  = "Saturday"
	CheckOut    = "Mar 18"
	CheckOutDay = "Tuesday"
)
