package models

// SeedOffer is a seed a guru proposed inside a chat reply.
type SeedOffer struct {
	Title       string     `json:"title"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
	Difficulty  Difficulty `json:"difficulty"`
}

// WisdomOffer is a note a guru proposed inside a chat reply.
type WisdomOffer struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Content  string `json:"content"`
}

// Suggestions are the offers extracted from one assistant reply together
// with the reply text stripped of the offer tags.
type Suggestions struct {
	CleanText string        `json:"clean_text"`
	Seeds     []SeedOffer   `json:"seeds,omitempty"`
	Wisdom    []WisdomOffer `json:"wisdom,omitempty"`

	// Dropped holds offer payloads that were not valid JSON.
	Dropped []string `json:"-"`
}
