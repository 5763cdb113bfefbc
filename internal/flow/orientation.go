package flow

// Section is one handbook section the sitter acknowledges.
type Section string

const (
	SectionFeeding    Section = "feeding"
	SectionWalking    Section = "walking"
	SectionBehavioral Section = "behavioral"
)

// HandbookSection is a section's display content.
type HandbookSection struct {
	Key   Section
	Emoji string
	Title string
	Items []string
}

// Handbook returns the pet's care instructions in display order.
func Handbook() []HandbookSection {
	return []HandbookSection{
		{Key: SectionFeeding, Emoji: "🍽️", Title: "Feeding Routine", Items: []string{
			"Royal Canin Medium Adult — 1 cup, twice daily",
			"Warm water mixed in",
			"No table food — sensitive stomach",
			"Treats: max 3 chicken strips/day",
		}},
		{Key: SectionWalking, Emoji: "🚶", Title: "Walking Preferences", Items: []string{
			"Morning walk: 7-8 AM, 30 min minimum",
			"Evening walk: 5-6 PM, 20 min",
			"Uses blue retractable leash (in hallway)",
			"Pulls on leash near other dogs — use gentle redirect",
		}},
		{Key: SectionBehavioral, Emoji: "🧠", Title: "Behavioral Notes", Items: []string{
			"Anxious during thunderstorms — use ThunderShirt",
			"Loves belly rubs after meals",
			"Barks at delivery people — redirect with treat",
			"Sleeps on the couch, not the bed",
		}},
	}
}

// Checklist tracks acknowledgement of the three handbook sections.
type Checklist struct {
	checks map[Section]bool
}

func NewChecklist() Checklist {
	return Checklist{checks: map[Section]bool{
		SectionFeeding:    false,
		SectionWalking:    false,
		SectionBehavioral: false,
	}}
}

// Toggle flips one section. Unknown sections are ignored.
func (c *Checklist) Toggle(s Section) {
	if _, ok := c.checks[s]; !ok {
		return
	}
	c.checks[s] = !c.checks[s]
}

func (c Checklist) Checked(s Section) bool { return c.checks[s] }

// Ready reports whether every section is acknowledged.
func (c Checklist) Ready() bool {
	if len(c.checks) == 0 {
		return false
	}
	for _, v := range c.checks {
		if !v {
			return false
		}
	}
	return true
}
