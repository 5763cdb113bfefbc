package flow

import "strings"

// Species options.
const (
	SpeciesDog = "dog"
	SpeciesCat = "cat"
)

// Temperaments is the fixed option set; the first is the default.
var Temperaments = []string{"Friendly", "Shy", "Energetic", "Anxious", "Calm"}

// FlightRisk is a ternary answer; unanswered is distinct from "no".
type FlightRisk int

const (
	FlightRiskUnset FlightRisk = iota
	FlightRiskYes
	FlightRiskNo
)

// PetProfile is the pet form state.
type PetProfile struct {
	Name        string
	Species     string
	Breed       string
	Age         string
	Weight      string
	Temperament string
	FlightRisk  FlightRisk
}

func NewPetProfile() PetProfile {
	return PetProfile{Species: SpeciesDog, Temperament: Temperaments[0]}
}

// Complete reports whether the profile can be saved.
func (p PetProfile) Complete() bool {
	return p.Name != "" && p.FlightRisk != FlightRiskUnset
}

// RecommendsTracker is true when the pet was marked a flight risk. It only
// drives advisory text; booking does not read it.
func (p PetProfile) RecommendsTracker() bool {
	return p.FlightRisk == FlightRiskYes
}

// DisplayName falls back to "your pet" when no name is entered.
func (p PetProfile) DisplayName() string {
	if n := strings.TrimSpace(p.Name); n != "" {
		return n
	}
	return "your pet"
}

func (p *PetProfile) ToggleSpecies() {
	if p.Species == SpeciesDog {
		p.Species = SpeciesCat
		return
	}
	p.Species = SpeciesDog
}

// CycleTemperament moves the selection by delta, wrapping around.
func (p *PetProfile) CycleTemperament(delta int) {
	idx := 0
	for i, t := range Temperaments {
		if t == p.Temperament {
			idx = i
			break
		}
	}
	n := len(Temperaments)
	p.Temperament = Temperaments[((idx+delta)%n+n)%n]
}
