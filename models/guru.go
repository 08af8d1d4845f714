package models

// Guru is a coaching persona the user can chat with.
type Guru struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Topics string `json:"topics"`
}

// FallbackGuruID names the generic persona used for unknown ids.
const FallbackGuruID = "fallback"

var gurus = []Guru{
	{ID: "health_ayurveda", Name: "Vaidya Jiva", Role: "Ayurvedic Healer", Topics: "diet, sleep patterns, daily routines, digestive health, and dosha balance"},
	{ID: "health_yoga", Name: "Yogini Shakti", Role: "Movement Guide", Topics: "physical activity, flexibility, breathwork, energy levels, and body awareness"},
	{ID: "spiritual_sadhana", Name: "Swami Prana", Role: "Sadhana Mentor", Topics: "meditation practice, spiritual routines, mantra work, and inner stillness"},
	{ID: "spiritual_wisdom", Name: "Acharya Satya", Role: "Wisdom Keeper", Topics: "philosophical questions, scriptural guidance, life meaning, and dharmic path"},
	{ID: "life_romance", Name: "Devi Kama", Role: "Relationship Guide", Topics: "relationship status, past patterns, what you seek in a partner, and emotional needs"},
	{ID: "life_career", Name: "Raja Dharma", Role: "Career Strategist", Topics: "career satisfaction, professional goals, skills, and work-life balance"},
}

var fallbackGuru = Guru{ID: FallbackGuruID, Name: "Vedic Guide", Role: "Life Coach", Topics: "your general life goals and happiness"}

// Gurus lists the selectable personas in display order.
func Gurus() []Guru {
	out := make([]Guru, len(gurus))
	copy(out, gurus)
	return out
}

// GuruFor returns the persona with id, or the fallback persona.
func GuruFor(id string) Guru {
	for _, g := range gurus {
		if g.ID == id {
			return g
		}
	}
	return fallbackGuru
}

// KnownGuru reports whether id names one of the selectable personas.
func KnownGuru(id string) bool {
	return GuruFor(id).ID != FallbackGuruID
}
