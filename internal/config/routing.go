package config

import "strings"

// RootFolderForGenres resolves the destination root folder for a movie
// from its genre list. When routing is disabled, or no rule matches, the
// provided default wins, falling back to the base Radarr root folder
// when the default is empty.
//
// Rules are evaluated in stored list order and the first rule whose
// genre set intersects the movie's wins. Matching is case-insensitive
// over trimmed genre names. The Priority field on a mapping is never
// consulted; list position is the sole tie-break, by contract.
func (s *Settings) RootFolderForGenres(genres []string, defaultFolder string) string {
	fallback := defaultFolder
	if fallback == "" {
		fallback = s.RadarrRootFolder
	}
	if !s.RadarrRootFolderConfig.Enabled {
		return fallback
	}

	want := make(map[string]struct{}, len(genres))
	for _, g := range genres {
		want[normalizeGenre(g)] = struct{}{}
	}

	for _, mapping := range s.RadarrRootFolderConfig.Mappings {
		for _, g := range mapping.Genres {
			if _, ok := want[normalizeGenre(g)]; ok {
				return mapping.RootFolder
			}
		}
	}
	return fallback
}

func normalizeGenre(g string) string {
	return strings.ToLower(strings.TrimSpace(g))
}
