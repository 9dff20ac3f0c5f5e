package recommend

import (
	"strings"

	"tunereads/internal/entity"
)

// curatedByArtist holds hand-authored lists for a few well-known artists.
// A hit here bypasses the whole dynamic pipeline: no model calls, no search.
var curatedByArtist = map[string][]entity.BookRecommendation{
	"sabrina carpenter": {
		{
			ID:          "1",
			Title:       "The Seven Husbands of Evelyn Hugo",
			Author:      "Taylor Jenkins Reid",
			Description: "A reclusive Hollywood icon tells her life story to a young journalist.",
			Genre:       "Contemporary Fiction",
			Reason:      "Like Sabrina's music, this book explores themes of love, growth, and finding your authentic voice in the spotlight.",
			CoverURL:    "https://images-na.ssl-images-amazon.com/images/P/1501161938.01.L.jpg",
			AmazonURL:   "https://www.amazon.com/Seven-Husbands-Evelyn-Hugo-Novel/dp/1501161938",
			Rating:      4.8,
		},
		{
			ID:          "2",
			Title:       "Beach Read",
			Author:      "Emily Henry",
			Description: "Two rival writers challenge each other to write outside their comfort zones.",
			Genre:       "Romance",
			Reason:      "Perfect match for Sabrina's pop sensibilities - fun, romantic, and emotionally resonant.",
			CoverURL:    "https://images-na.ssl-images-amazon.com/images/P/1984806734.01.L.jpg",
			AmazonURL:   "https://www.amazon.com/Beach-Read-Emily-Henry/dp/1984806734",
			Rating:      4.6,
		},
		{
			ID:          "3",
			Title:       "The Midnight Library",
			Author:      "Matt Haig",
			Description: "A woman discovers a library between life and death with infinite possibilities.",
			Genre:       "Contemporary Fiction",
			Reason:      "Reflects themes of self-discovery and choosing your path, similar to Sabrina's journey in music.",
			CoverURL:    "https://images-na.ssl-images-amazon.com/images/P/0525559477.01.L.jpg",
			AmazonURL:   "https://www.amazon.com/Midnight-Library-Novel-Matt-Haig/dp/0525559477",
			Rating:      4.7,
		},
		{
			ID:          "4",
			Title:       "Red, White & Royal Blue",
			Author:      "Casey McQuiston",
			Description: "A romance between the First Son and the Prince of Wales.",
			Genre:       "Romance",
			Reason:      "Young, fresh, and full of heart - captures the same energy as Sabrina's upbeat pop anthems.",
			CoverURL:    "https://images-na.ssl-images-amazon.com/images/P/1250316774.01.L.jpg",
			AmazonURL:   "https://www.amazon.com/Red-White-Royal-Blue-Novel/dp/1250316774",
			Rating:      4.5,
		},
		{
			ID:          "5",
			Title:       "The Spanish Love Deception",
			Author:      "Elena Armas",
			Description: "A fake dating romance with academic rivals.",
			Genre:       "Romance",
			Reason:      "Like Sabrina's songs about complicated relationships and finding love in unexpected places.",
			CoverURL:    "https://images-na.ssl-images-amazon.com/images/P/1668001225.01.L.jpg",
			AmazonURL:   "https://www.amazon.com/Spanish-Love-Deception-Elena-Armas/dp/1668001225",
			Rating:      4.4,
		},
	},
	"taylor swift": {
		{
			ID:          "6",
			Title:       "Normal People",
			Author:      "Sally Rooney",
			Description: "The complex relationship between two Irish teenagers through their years at school and university.",
			Genre:       "Literary Fiction",
			Reason:      "Like Taylor's songwriting, this explores the intricacies of relationships with raw emotional honesty.",
			CoverURL:    "https://images-na.ssl-images-amazon.com/images/P/1984822179.01.L.jpg",
			AmazonURL:   "https://www.amazon.com/Normal-People-Novel-Sally-Rooney/dp/1984822179",
			Rating:      4.3,
		},
		{
			ID:          "7",
			Title:       "The Invisible Life of Addie LaRue",
			Author:      "V.E. Schwab",
			Description: "A woman cursed to be forgotten by everyone she meets lives for 300 years.",
			Genre:       "Fantasy",
			Reason:      "Matches Taylor's storytelling prowess and themes of memory, legacy, and enduring love.",
			CoverURL:    "https://images-na.ssl-images-amazon.com/images/P/0765387565.01.L.jpg",
			AmazonURL:   "https://www.amazon.com/Invisible-Life-Addie-LaRue/dp/0765387565",
			Rating:      4.6,
		},
		{
			ID:          "8",
			Title:       "Little Women",
			Author:      "Louisa May Alcott",
			Description: "The classic story of the March sisters coming of age during the Civil War.",
			Genre:       "Classic Literature",
			Reason:      "Perfect for Taylor's nostalgic storytelling style and themes of sisterhood and growing up.",
			CoverURL:    "https://images-na.ssl-images-amazon.com/images/P/0147514010.01.L.jpg",
			AmazonURL:   "https://www.amazon.com/Little-Women-Louisa-May-Alcott/dp/0147514010",
			Rating:      4.8,
		},
		{
			ID:          "9",
			Title:       "The Song of Achilles",
			Author:      "Madeline Miller",
			Description: "A retelling of the Trojan War through the relationship of Achilles and Patroclus.",
			Genre:       "Mythology",
			Reason:      "Epic storytelling and emotional depth that matches Taylor's lyrical narrative style.",
			CoverURL:    "https://images-na.ssl-images-amazon.com/images/P/0062060627.01.L.jpg",
			AmazonURL:   "https://www.amazon.com/Song-Achilles-Madeline-Miller/dp/0062060627",
			Rating:      4.7,
		},
		{
			ID:          "10",
			Title:       "Eleanor Oliphant Is Completely Fine",
			Author:      "Gail Honeyman",
			Description: "A socially awkward woman's journey of self-discovery and healing.",
			Genre:       "Contemporary Fiction",
			Reason:      "Explores themes of personal growth and finding yourself, similar to Taylor's introspective albums.",
			CoverURL:    "https://images-na.ssl-images-amazon.com/images/P/0735220697.01.L.jpg",
			AmazonURL:   "https://www.amazon.com/Eleanor-Oliphant-Completely-Fine-Novel/dp/0735220697",
			Rating:      4.5,
		},
	},
}

// CuratedFor returns the hand-authored list for an artist, matched on the
// exact lower-cased name.
func CuratedFor(artistName string) ([]entity.BookRecommendation, bool) {
	recs, ok := curatedByArtist[strings.ToLower(artistName)]
	return recs, ok
}
