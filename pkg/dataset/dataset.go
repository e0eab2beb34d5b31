// Package dataset loads and validates the two static reference tables the
// matcher consumes: per-library size statistics and the smaller-alternative
// suggestion mapping. A copy of both ships embedded in the binary so the
// tool works without any dataset flags.
package dataset

import (
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// LatestVersion is the version key every library carries in the stats
// table. Detected versions absent from the table fall back to it.
const LatestVersion = "latest"

// SizeEntry holds the size statistics for one published version of a library.
type SizeEntry struct {
	Gzip int64 `json:"gzip"`
}

// LibraryStats is the stats-table value for one library: its source
// repository and a version-keyed size map that always includes "latest".
type LibraryStats struct {
	Repository string               `json:"repository"`
	Versions   map[string]SizeEntry `json:"versions"`
}

// Stats maps a library identifier to its size statistics.
type Stats map[string]LibraryStats

// Suggestions maps a library identifier to its candidate replacements.
// The stored order carries no meaning; the matcher re-sorts by size.
type Suggestions map[string][]string

//go:embed data/library-stats.json data/library-suggestions.json
var defaults embed.FS

// ParseStats decodes and validates a stats table.
func ParseStats(r io.Reader) (Stats, error) {
	var stats Stats
	if err := json.NewDecoder(r).Decode(&stats); err != nil {
		return nil, fmt.Errorf("failed to decode stats table: %w", err)
	}
	for name, lib := range stats {
		entry, ok := lib.Versions[LatestVersion]
		if !ok {
			return nil, fmt.Errorf("stats table: library %q has no %q entry", name, LatestVersion)
		}
		if entry.Gzip < 0 {
			return nil, fmt.Errorf("stats table: library %q has negative gzip size %d", name, entry.Gzip)
		}
	}
	return stats, nil
}

// ParseSuggestions decodes a suggestion table. Referential integrity against
// a stats table is checked separately via Validate.
func ParseSuggestions(r io.Reader) (Suggestions, error) {
	var suggestions Suggestions
	if err := json.NewDecoder(r).Decode(&suggestions); err != nil {
		return nil, fmt.Errorf("failed to decode suggestion table: %w", err)
	}
	return suggestions, nil
}

// Validate checks that every suggested identifier resolves to a stats entry.
// A gap means the reference datasets are out of sync and must surface as a
// hard error, never be skipped.
func Validate(stats Stats, suggestions Suggestions) error {
	for original, candidates := range suggestions {
		for _, candidate := range candidates {
			if _, ok := stats[candidate]; !ok {
				return fmt.Errorf("suggestion table: %q suggests %q which has no stats entry", original, candidate)
			}
		}
	}
	return nil
}

// LoadStats reads a stats table from a file.
func LoadStats(path string) (Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open stats table: %w", err)
	}
	defer f.Close()
	return ParseStats(f)
}

// LoadSuggestions reads a suggestion table from a file.
func LoadSuggestions(path string) (Suggestions, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open suggestion table: %w", err)
	}
	defer f.Close()
	return ParseSuggestions(f)
}

// Default returns the embedded reference datasets, cross-validated.
func Default() (Stats, Suggestions, error) {
	sf, err := defaults.Open("data/library-stats.json")
	if err != nil {
		return nil, nil, err
	}
	defer sf.Close()
	stats, err := ParseStats(sf)
	if err != nil {
		return nil, nil, err
	}

	gf, err := defaults.Open("data/library-suggestions.json")
	if err != nil {
		return nil, nil, err
	}
	defer gf.Close()
	suggestions, err := ParseSuggestions(gf)
	if err != nil {
		return nil, nil, err
	}

	if err := Validate(stats, suggestions); err != nil {
		return nil, nil, err
	}
	return stats, suggestions, nil
}
