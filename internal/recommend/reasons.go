package recommend

import (
	"context"
	"fmt"
	"strings"

	"tunereads/internal/entity"

	"go.uber.org/zap"
)

const (
	reasonMaxTokens   = 100
	reasonTemperature = 0.7
)

// Reasoner writes the one-to-two-sentence justification attached to each
// accepted book. It never returns an empty string: when the model call
// fails the templated fallback kicks in.
type Reasoner struct {
	gen TextGenerator
	log *zap.Logger
}

func NewReasoner(gen TextGenerator, log *zap.Logger) *Reasoner {
	return &Reasoner{gen: gen, log: log}
}

func (r *Reasoner) Reason(ctx context.Context, artist entity.Artist, book entity.BookRecommendation) string {
	prompt := fmt.Sprintf(`A fan of the musician %s is looking for a book. Explain in 1-2 sentences why "%s" by %s (%s) would appeal to them. Book description: %s

Only output the explanation.`,
		artist.Name, book.Title, book.Author, book.Genre, book.Description)

	text, err := r.gen.Complete(ctx, prompt, reasonMaxTokens, reasonTemperature)
	if err != nil {
		r.log.Debug("reason generation failed, using template",
			zap.String("artist", artist.Name), zap.String("title", book.Title), zap.Error(err))
		return templateReason(artist, book)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return templateReason(artist, book)
	}
	return text
}

// templateReason alternates between two canned sentences so back-to-back
// fallbacks do not all read the same.
func templateReason(artist entity.Artist, book entity.BookRecommendation) string {
	if len(book.Title)%2 == 0 {
		return fmt.Sprintf("The mood and themes of this book pair well with %s's music.", artist.Name)
	}
	return fmt.Sprintf("A strong pick for %s listeners looking for their next read.", artist.Name)
}
