package recommend

import (
	"context"
	"fmt"
	"strings"

	"tunereads/internal/entity"

	"go.uber.org/zap"
)

// TextGenerator is the slice of the language-model client this package
// needs. Implemented by the openai client.
type TextGenerator interface {
	Complete(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error)
}

const (
	maxModelQueries    = 7
	maxFallbackQueries = 8
	queryMaxTokens     = 200
	queryTemperature   = 0.7
)

// Formulator turns an artist into a list of book-search queries, preferring
// model-generated queries and degrading to canned ones.
type Formulator struct {
	gen TextGenerator
	log *zap.Logger
}

func NewFormulator(gen TextGenerator, log *zap.Logger) *Formulator {
	return &Formulator{gen: gen, log: log}
}

// Queries returns up to 7 search strings, order preserving, duplicates kept.
// The model path can fail or come back empty; then the deterministic
// fallback takes over.
func (f *Formulator) Queries(ctx context.Context, artist entity.Artist) []string {
	raw, err := f.gen.Complete(ctx, queryPrompt(artist), queryMaxTokens, queryTemperature)
	if err != nil {
		f.log.Warn("query generation failed, using fallback queries",
			zap.String("artist", artist.Name), zap.Error(err))
		return FallbackQueries(artist)
	}

	var queries []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		queries = append(queries, line)
		if len(queries) == maxModelQueries {
			break
		}
	}
	if len(queries) == 0 {
		f.log.Warn("query generation returned no usable lines, using fallback queries",
			zap.String("artist", artist.Name))
		return FallbackQueries(artist)
	}
	return queries
}

func queryPrompt(artist entity.Artist) string {
	genres := "genres unknown, infer from general knowledge of the artist"
	if len(artist.Genres) > 0 {
		genres = strings.Join(artist.Genres, ", ")
	}
	return fmt.Sprintf(`You help a book search engine find novels for music fans.

Artist: %s
Music genres: %s

Write 5-7 short book search queries that would find books matching this artist's mood, themes, and audience. One query per line, no numbering, no commentary. Only output the queries.`, artist.Name, genres)
}

// FallbackQueries builds deterministic queries from the artist's first three
// genre tags plus a fixed set of general ones. Each tag is mapped through
// the genre taxonomy; up to two of its literary genres become queries, and
// tags the taxonomy does not know contribute one generic query. Used when
// the model is down, and directly by the assembler's last tier.
func FallbackQueries(artist entity.Artist) []string {
	var queries []string

	tags := artist.Genres
	if len(tags) > 3 {
		tags = tags[:3]
	}
	for _, tag := range tags {
		bookGenres := BookGenresFor(tag)
		if len(bookGenres) == 0 {
			queries = append(queries, "fiction bestseller "+strings.ToLower(tag))
			continue
		}
		queries = append(queries, bookGenres[0]+" bestseller")
		if len(bookGenres) > 1 {
			queries = append(queries, bookGenres[1]+" novel")
		}
	}

	queries = append(queries,
		"bestselling fiction 2024",
		"book club favorites",
		"award winning novels",
		"popular contemporary fiction",
		"highly rated fiction",
	)

	seen := make(map[string]bool)
	var out []string
	for _, q := range queries {
		if seen[q] {
			continue
		}
		seen[q] = true
		out = append(out, q)
		if len(out) == maxFallbackQueries {
			break
		}
	}
	return out
}
