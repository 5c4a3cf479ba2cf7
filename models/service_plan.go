package models

// ServicePlan describes one bookable coaching offering.
type ServicePlan struct {
	Slug        string  `json:"slug"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"` // major units, 0 means free
	Duration    int     `json:"duration"` // minutes
	Sessions    int     `json:"sessions,omitempty"` // >1 for packages
	Description string  `json:"description"`
}

// Services is the coaching catalogue, keyed by slug.
var Services = map[string]ServicePlan{
	"free-call": {
		Slug:        "free-call",
		Name:        "Free Initial Call",
		Price:       0,
		Duration:    30,
		Description: "A complimentary 30-minute discovery session to explore your goals.",
	},
	"clarifying-session": {
		Slug:        "clarifying-session",
		Name:        "1:1 Coaching Session – Clarifying",
		Price:       69,
		Duration:    45,
		Description: "A focused 45-minute session for clarity and direction.",
	},
	"breakthrough-package": {
		Slug:        "breakthrough-package",
		Name:        "Breakthrough Coaching Package – 4 Sessions",
		Price:       290,
		Duration:    60,
		Sessions:    4,
		Description: "A transformative 4-session program (60 mins each).",
	},
	"transformational-package": {
		Slug:        "transformational-package",
		Name:        "Transformational Coaching Package – 12 Sessions",
		Price:       790,
		Duration:    60,
		Sessions:    12,
		Description: "A comprehensive 12-session coaching program for deep transformation.",
	},
}

// ServiceBySlug looks up a catalogue entry.
func ServiceBySlug(slug string) (ServicePlan, bool) {
	plan, ok := Services[slug]
	return plan, ok
}
