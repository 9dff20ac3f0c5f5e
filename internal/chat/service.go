package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tunereads/internal/profile"

	"go.uber.org/zap"
)

// ErrEmptyMessage is the malformed-input case, surfaced to the client.
var ErrEmptyMessage = errors.New("chat: message is required")

// TextGenerator is the slice of the language-model client this package
// needs.
type TextGenerator interface {
	Complete(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error)
}

const (
	replyMaxTokens   = 200
	replyTemperature = 0.7

	maxRecentTracksInPrompt = 3
)

// Service answers free-form questions about what to read next, with the
// user's listening profile folded into the prompt when available.
type Service struct {
	gen TextGenerator
	log *zap.Logger
}

func NewService(gen TextGenerator, log *zap.Logger) *Service {
	return &Service{gen: gen, log: log}
}

func (s *Service) Reply(ctx context.Context, message string, p *profile.Profile) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", ErrEmptyMessage
	}

	reply, err := s.gen.Complete(ctx, buildPrompt(message, p), replyMaxTokens, replyTemperature)
	if err != nil {
		s.log.Error("chat completion failed", zap.Error(err))
		return "", err
	}
	return strings.TrimSpace(reply), nil
}

func buildPrompt(message string, p *profile.Profile) string {
	var b strings.Builder
	b.WriteString("You are a book recommendation expert helping a music lover find their perfect next read.\n\n")
	b.WriteString("User's Music Profile:\n")
	b.WriteString(profileSection(p))
	b.WriteString("\n\nUser Question: \"")
	b.WriteString(message)
	b.WriteString("\"\n\n")
	b.WriteString("Please provide personalized book recommendations that connect to their musical taste. ")
	b.WriteString("If they haven't connected Spotify yet, encourage them to do so for better recommendations. ")
	b.WriteString("Be conversational, enthusiastic, and specific about why certain books would appeal to their musical preferences.\n\n")
	b.WriteString("Keep responses under 150 words and include at least 5 specific book suggestions when possible. ")
	b.WriteString("Book recommendations should vary widely based on the user's music profile.")
	return b.String()
}

func profileSection(p *profile.Profile) string {
	if p == nil {
		return "Profile not available yet - please connect your Spotify account first."
	}

	artistNames := make([]string, 0, len(p.TopArtists))
	for _, a := range p.TopArtists {
		artistNames = append(artistNames, a.Name)
	}

	var recent []string
	for i, pt := range p.RecentTracks {
		if i == maxRecentTracksInPrompt {
			break
		}
		trackArtist := "Unknown"
		if len(pt.Track.Artists) > 0 {
			trackArtist = pt.Track.Artists[0].Name
		}
		recent = append(recent, fmt.Sprintf("%s by %s", pt.Track.Name, trackArtist))
	}

	return fmt.Sprintf("- Top Artists: %s\n- Recent Listening: %s\n- Music Genres: %s",
		orNotAvailable(strings.Join(artistNames, ", ")),
		orNotAvailable(strings.Join(recent, ", ")),
		orDefault(strings.Join(p.Genres(), ", "), "Various"))
}

func orNotAvailable(s string) string {
	return orDefault(s, "Not available")
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
