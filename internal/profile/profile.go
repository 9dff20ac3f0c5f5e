package profile

import (
	"time"

	"tunereads/internal/platform/spotify"
)

// Profile is the listening snapshot handed to the frontend and to the chat
// prompt builder.
type Profile struct {
	TopArtists   []spotify.Artist      `json:"topArtists"`
	RecentTracks []spotify.PlayedTrack `json:"recentTracks"`
	TimeRange    string                `json:"timeRange"`
	GeneratedAt  time.Time             `json:"generatedAt"`
}

// Genres flattens the profile's artist genre tags, first occurrence wins.
func (p Profile) Genres() []string {
	seen := make(map[string]bool)
	var out []string
	for _, artist := range p.TopArtists {
		for _, g := range artist.Genres {
			if !seen[g] {
				seen[g] = true
				out = append(out, g)
			}
		}
	}
	return out
}
