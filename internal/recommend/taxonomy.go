package recommend

import (
	"sort"
	"strings"
)

// bookGenresByMusicGenre maps music-genre keywords to candidate literary
// genres. Loaded once, read-only after that.
var bookGenresByMusicGenre = map[string][]string{
	// Pop
	"pop":        {"contemporary fiction", "romance", "young adult", "chick lit"},
	"electropop": {"science fiction", "dystopian", "contemporary fiction"},
	"dance pop":  {"romance", "contemporary fiction", "young adult"},
	"teen pop":   {"young adult", "coming of age", "romance"},

	// Rock
	"rock":             {"literary fiction", "adventure", "thriller"},
	"indie rock":       {"literary fiction", "contemporary fiction", "indie literature"},
	"alternative rock": {"dystopian", "literary fiction", "dark fiction"},
	"classic rock":     {"historical fiction", "adventure", "biography"},

	// Electronic
	"electronic": {"science fiction", "cyberpunk", "futuristic"},
	"ambient":    {"philosophy", "meditation", "literary fiction"},
	"techno":     {"science fiction", "thriller", "cyberpunk"},

	// Hip-hop / R&B
	"hip hop": {"urban fiction", "social commentary", "biography"},
	"r&b":     {"romance", "contemporary fiction", "drama"},
	"rap":     {"urban fiction", "social issues", "biography"},

	// Folk / acoustic
	"folk":              {"historical fiction", "literary fiction", "nature writing"},
	"acoustic":          {"poetry", "literary fiction", "memoir"},
	"singer-songwriter": {"memoir", "poetry", "literary fiction"},

	// Jazz / blues
	"jazz":  {"historical fiction", "biography", "literary fiction"},
	"blues": {"historical fiction", "drama", "southern fiction"},

	"classical": {"philosophy", "historical fiction", "literary classics"},

	"country": {"southern fiction", "family saga", "rural fiction"},

	// Metal
	"metal":       {"fantasy", "dark fantasy", "horror"},
	"heavy metal": {"fantasy", "horror", "mythology"},

	// Alternative / indie
	"indie":       {"indie literature", "contemporary fiction", "literary fiction"},
	"alternative": {"literary fiction", "experimental fiction", "contemporary"},
}

// BookGenresFor returns the union of literary genres for every taxonomy key
// the tag contains, in sorted-key order so callers building queries from it
// see a stable result. Matching is deliberately substring-based: "indie
// rock" picks up both the "rock" and "indie rock" entries. Unknown tags
// return nothing.
func BookGenresFor(musicGenre string) []string {
	tag := strings.ToLower(musicGenre)

	var matched []string
	for key := range bookGenresByMusicGenre {
		if strings.Contains(tag, key) {
			matched = append(matched, key)
		}
	}
	sort.Strings(matched)

	seen := make(map[string]bool)
	var out []string
	for _, key := range matched {
		for _, g := range bookGenresByMusicGenre[key] {
			if !seen[g] {
				seen[g] = true
				out = append(out, g)
			}
		}
	}
	return out
}
