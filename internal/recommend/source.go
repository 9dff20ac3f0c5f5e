package recommend

import (
	"context"
	"net/url"
	"strings"

	"tunereads/internal/entity"
	"tunereads/internal/platform/googlebooks"

	"go.uber.org/zap"
)

// VolumeSearcher is the slice of the Google Books client this package needs.
type VolumeSearcher interface {
	Volumes(ctx context.Context, query string, maxResults int) ([]googlebooks.Volume, error)
}

const (
	descriptionLimit = 200
	defaultAuthor    = "Unknown Author"
	defaultSummary   = "A great read."
	defaultGenre     = "Fiction"
	defaultRating    = 4.0
)

// Source wraps the book-metadata search and normalizes raw volumes into
// recommendations. This is a soft-fail boundary: search trouble becomes an
// empty result, never an error for the assembler.
type Source struct {
	client VolumeSearcher
	log    *zap.Logger
}

func NewSource(client VolumeSearcher, log *zap.Logger) *Source {
	return &Source{client: client, log: log}
}

// Search returns up to maxResults normalized candidates. Reason is left
// empty here.
func (s *Source) Search(ctx context.Context, query string, maxResults int) []entity.BookRecommendation {
	volumes, err := s.client.Volumes(ctx, query, maxResults)
	if err != nil {
		s.log.Warn("book search failed", zap.String("query", query), zap.Error(err))
		return nil
	}

	recs := make([]entity.BookRecommendation, 0, len(volumes))
	for _, v := range volumes {
		if v.VolumeInfo.Title == "" {
			continue
		}
		recs = append(recs, normalizeVolume(v))
	}
	return recs
}

func normalizeVolume(v googlebooks.Volume) entity.BookRecommendation {
	info := v.VolumeInfo

	author := defaultAuthor
	if len(info.Authors) > 0 {
		author = info.Authors[0]
	}

	description := info.Description
	if description == "" {
		description = defaultSummary
	} else if runes := []rune(description); len(runes) > descriptionLimit {
		// Cut on runes, not bytes: a multibyte character straddling the
		// limit must stay intact.
		description = string(runes[:descriptionLimit]) + "..."
	}

	genre := defaultGenre
	if len(info.Categories) > 0 {
		genre = info.Categories[0]
	}

	rating := info.AverageRating
	if rating == 0 {
		rating = defaultRating
	}

	return entity.BookRecommendation{
		ID:          v.ID,
		Title:       info.Title,
		Author:      author,
		Description: description,
		Genre:       genre,
		CoverURL:    info.ImageLinks.Thumbnail,
		AmazonURL:   amazonURL(info.Title, info.IndustryIdentifiers),
		Rating:      rating,
	}
}

// amazonURL prefers an ISBN-13, then ISBN-10, then a title search.
func amazonURL(title string, ids []googlebooks.IndustryIdentifier) string {
	var isbn string
	for _, id := range ids {
		switch id.Type {
		case "ISBN_13":
			return "https://www.amazon.com/s?k=" + id.Identifier
		case "ISBN_10":
			if isbn == "" {
				isbn = id.Identifier
			}
		}
	}
	if isbn != "" {
		return "https://www.amazon.com/s?k=" + isbn
	}
	return "https://www.amazon.com/s?k=" + url.QueryEscape(strings.TrimSpace(title))
}
