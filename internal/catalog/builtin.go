package catalog

import "context"

// BuiltinSitters returns a fresh copy of the mock sitter catalog.
func BuiltinSitters() []Sitter {
	return []Sitter{
		{
			ID:            1,
			Name:          "Priya Menon",
			Tier:          TierElite,
			Badge:         "🏅",
			Rating:        4.9,
			Reviews:       47,
			Distance:      "1.2 km",
			Photo:         "🧑‍⚕️",
			EmpathyScore:  94,
			Bio:           "Veterinarian with 6 years of experience. Specializes in anxious dogs and senior pets.",
			Social:        Social{LinkedIn: true, Facebook: true},
			Tags:          []string{"Vet Certified", "Senior Pet Expert", "First Aid"},
			NightlyPrice:  1600,
			CompletedGigs: 47,
			VideoIntro:    true,
			BGVVerified:   true,
		},
		{
			ID:            2,
			Name:          "Arjun Kapoor",
			Tier:          TierClassic,
			Badge:         "⭐",
			Rating:        4.7,
			Reviews:       23,
			Distance:      "2.8 km",
			Photo:         "🧑",
			EmpathyScore:  88,
			Bio:           "Dog dad of 3 rescue pups. Your furry friend will feel right at home with my pack!",
			Social:        Social{LinkedIn: true, Facebook: false},
			Tags:          []string{"Multi-Pet Home", "Dog Walker", "Rescue Advocate"},
			NightlyPrice:  1200,
			CompletedGigs: 23,
			VideoIntro:    true,
			BGVVerified:   true,
		},
		{
			ID:            3,
			Name:          "Sneha Iyer",
			Tier:          TierElite,
			Badge:         "🏅",
			Rating:        5.0,
			Reviews:       12,
			Distance:      "0.8 km",
			Photo:         "👩",
			EmpathyScore:  97,
			Bio:           "Certified animal behaviorist. I create personalized care plans for every pet I host.",
			Social:        Social{LinkedIn: true, Facebook: true},
			Tags:          []string{"Behaviorist", "Cat Friendly", "Anxiety Specialist"},
			NightlyPrice:  1600,
			CompletedGigs: 12,
			VideoIntro:    true,
			BGVVerified:   true,
		},
	}
}

// BuiltinPulseEvents returns a fresh copy of the fixed stay timeline.
func BuiltinPulseEvents() []PulseEvent {
	return []PulseEvent{
		{Time: "8:15 AM", Type: "checkin", Text: "Good morning! Taco woke up happy and energetic 🌞", Emoji: "🐕", HasPhoto: true},
		{Time: "8:45 AM", Type: "feed", Text: "Breakfast served — 1 cup Royal Canin + warm water, eaten fully ✅", Emoji: "🍽️", HasPhoto: true},
		{Time: "9:30 AM", Type: "walk", Text: "Morning walk completed — 2.1 km around Powai Lake", Emoji: "🚶", HasGPS: true, Distance: "2.1 km", Duration: "35 min"},
		{Time: "11:00 AM", Type: "play", Text: "Playtime with the squeaky ball in the garden. He's loving it!", Emoji: "🎾", HasPhoto: true},
		{Time: "12:30 PM", Type: "rest", Text: "Nap time 💤 Taco is curled up on his favorite blanket", Emoji: "😴", HasPhoto: true},
		{Time: "2:00 PM", Type: "feed", Text: "Afternoon snack — chicken treats as scheduled in the handbook", Emoji: "🍗"},
		{Time: "3:30 PM", Type: "walk", Text: "Evening walk — explored Hiranandani Gardens area", Emoji: "🌳", HasGPS: true, Distance: "1.8 km", Duration: "28 min"},
		{Time: "5:00 PM", Type: "update", Text: "All good here! Taco is happy, healthy, and well-fed. See you tomorrow! 🐾", Emoji: "💜"},
	}
}

// Builtin serves the compiled-in mock catalog.
type Builtin struct{}

func (Builtin) Sitters(context.Context) ([]Sitter, error) { return BuiltinSitters(), nil }

func (Builtin) PulseEvents(context.Context) ([]PulseEvent, error) { return BuiltinPulseEvents(), nil }
