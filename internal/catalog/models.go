package catalog

import "strings"

// Tier is a sitter's service level.
type Tier string

const (
	TierElite   Tier = "Elite"
	TierClassic Tier = "Classic"
)

// Canonical returns the catalog spelling of t when it names a known tier in
// any case, and t unchanged otherwise.
func (t Tier) Canonical() Tier {
	for _, known := range []Tier{TierElite, TierClassic} {
		if strings.EqualFold(strings.TrimSpace(string(t)), string(known)) {
			return known
		}
	}
	return t
}

// Social holds the sitter's linked social profiles.
type Social struct {
	LinkedIn bool `yaml:"linkedin"`
	Facebook bool `yaml:"facebook"`
}

// Sitter is a read-only catalog record. Screens hold *Sitter pointers into the
// loaded catalog slice and never copy or mutate them.
type Sitter struct {
	ID            int      `yaml:"id"`
	Name          string   `yaml:"name"`
	Tier          Tier     `yaml:"tier"`
	Badge         string   `yaml:"badge"`
	Rating        float64  `yaml:"rating"`
	Reviews       int      `yaml:"reviews"`
	Distance      string   `yaml:"distance"`
	Photo         string   `yaml:"photo"`
	EmpathyScore  int      `yaml:"empathy_score"`
	Bio           string   `yaml:"bio"`
	Social        Social   `yaml:"social"`
	Tags          []string `yaml:"tags"`
	NightlyPrice  int64    `yaml:"price"`
	CompletedGigs int      `yaml:"completed_gigs"`
	VideoIntro    bool     `yaml:"video_intro"`
	BGVVerified   bool     `yaml:"bgv_verified"`
}

// FirstName returns the first word of the sitter's name.
func (s Sitter) FirstName() string {
	if f := strings.Fields(s.Name); len(f) > 0 {
		return f[0]
	}
	return s.Name
}

// IsElite reports whether the sitter is an Elite tier sitter.
func (s Sitter) IsElite() bool {
	return strings.EqualFold(string(s.Tier), string(TierElite))
}

// PulseEvent is one entry of the stay timeline.
type PulseEvent struct {
	Time     string `yaml:"time"`
	Type     string `yaml:"type"`
	Text     string `yaml:"text"`
	Emoji    string `yaml:"emoji"`
	HasPhoto bool   `yaml:"has_photo"`
	HasGPS   bool   `yaml:"has_gps"`
	Distance string `yaml:"distance,omitempty"`
	Duration string `yaml:"duration,omitempty"`
}
