package entity

// Artist is the taste-profile input for recommendations. Supplied by the
// caller (usually straight from the listening profile), never mutated.
type Artist struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Genres []string `json:"genres,omitempty"`
}
