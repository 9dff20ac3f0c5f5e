package entity

// BookRecommendation is one recommended title. IDs are only unique within a
// single assembly run. Reason starts empty and is filled in by the reasoner
// before the book is returned to a client.
type BookRecommendation struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Description string  `json:"description"`
	Genre       string  `json:"genre"`
	Reason      string  `json:"reason"`
	CoverURL    string  `json:"coverUrl,omitempty"`
	AmazonURL   string  `json:"amazonUrl,omitempty"`
	Rating      float64 `json:"rating"`
}
