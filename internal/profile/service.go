package profile

import (
	"context"
	"time"

	"tunereads/internal/platform/spotify"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	topArtistsFetch   = 20
	recentTracksFetch = 50
	profileSliceSize  = 10

	DefaultTimeRange = "medium_term"
)

// ListeningSource is the slice of the Spotify client this package needs.
type ListeningSource interface {
	TopArtists(ctx context.Context, accessToken, timeRange string, limit int) ([]spotify.Artist, error)
	TopTracks(ctx context.Context, accessToken, timeRange string, limit int) ([]spotify.Track, error)
	RecentlyPlayed(ctx context.Context, accessToken string, limit int) ([]spotify.PlayedTrack, error)
}

type Service struct {
	source ListeningSource
	log    *zap.Logger
}

func NewService(source ListeningSource, log *zap.Logger) *Service {
	return &Service{source: source, log: log}
}

// NormalizeTimeRange maps anything unexpected to the default window.
func NormalizeTimeRange(timeRange string) string {
	switch timeRange {
	case "short_term", "medium_term", "long_term":
		return timeRange
	default:
		return DefaultTimeRange
	}
}

// Profile fetches top artists and recently played concurrently - the two
// reads are independent - then trims both lists for the response.
func (s *Service) Profile(ctx context.Context, accessToken, timeRange string) (Profile, error) {
	timeRange = NormalizeTimeRange(timeRange)

	var (
		topArtists   []spotify.Artist
		recentTracks []spotify.PlayedTrack
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		topArtists, err = s.source.TopArtists(gctx, accessToken, timeRange, topArtistsFetch)
		return err
	})
	g.Go(func() error {
		var err error
		recentTracks, err = s.source.RecentlyPlayed(gctx, accessToken, recentTracksFetch)
		return err
	})
	if err := g.Wait(); err != nil {
		return Profile{}, err
	}

	if len(topArtists) > profileSliceSize {
		topArtists = topArtists[:profileSliceSize]
	}
	if len(recentTracks) > profileSliceSize {
		recentTracks = recentTracks[:profileSliceSize]
	}

	return Profile{
		TopArtists:   topArtists,
		RecentTracks: recentTracks,
		TimeRange:    timeRange,
		GeneratedAt:  time.Now().UTC(),
	}, nil
}

func (s *Service) TopArtists(ctx context.Context, accessToken, timeRange string, limit int) ([]spotify.Artist, error) {
	if limit <= 0 || limit > 50 {
		limit = topArtistsFetch
	}
	return s.source.TopArtists(ctx, accessToken, NormalizeTimeRange(timeRange), limit)
}

func (s *Service) TopTracks(ctx context.Context, accessToken, timeRange string, limit int) ([]spotify.Track, error) {
	if limit <= 0 || limit > 50 {
		limit = topArtistsFetch
	}
	return s.source.TopTracks(ctx, accessToken, NormalizeTimeRange(timeRange), limit)
}

func (s *Service) RecentlyPlayed(ctx context.Context, accessToken string, limit int) ([]spotify.PlayedTrack, error) {
	if limit <= 0 || limit > 50 {
		limit = topArtistsFetch
	}
	return s.source.RecentlyPlayed(ctx, accessToken, limit)
}
