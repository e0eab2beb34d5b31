// Package matcher pairs detected JavaScript libraries with known smaller
// functional equivalents and quantifies the byte savings of switching.
package matcher

import (
	"fmt"
	"sort"

	"github.com/webperf-tools/jsdiet/pkg/dataset"
	"github.com/webperf-tools/jsdiet/pkg/types"
)

// Match computes the replacement pairings for a list of detected libraries.
// It is a pure function of its three inputs and never mutates them.
//
// Entries without a name or absent from the stats table are skipped. Each
// identifier is matched at most once, in first-occurrence order; later
// duplicates are ignored regardless of version. A detected version missing
// from the stats table silently falls back to the library's "latest" entry.
// A candidate replacement qualifies only if its "latest" gzip size is
// strictly smaller than the original's; survivors are sorted ascending by
// size, and a pairing is emitted only when at least one survives.
//
// A suggestion identifier with no "latest" stats entry means the reference
// datasets are out of sync; Match returns an error rather than skipping it.
func Match(detected []types.DetectedEntry, stats dataset.Stats, suggestions dataset.Suggestions) ([]types.Pairing, error) {
	seen := make(map[string]struct{}, len(detected))
	var pairings []types.Pairing

	for _, d := range detected {
		if d.Name == "" {
			continue
		}
		lib, ok := stats[d.Name]
		if !ok {
			continue
		}
		if _, dup := seen[d.Name]; dup {
			continue
		}
		seen[d.Name] = struct{}{}

		entry, ok := lib.Versions[d.Version]
		if d.Version == "" || !ok {
			entry = lib.Versions[dataset.LatestVersion]
		}

		var smaller []types.LibraryCost
		for _, name := range suggestions[d.Name] {
			candidate, ok := stats[name]
			if !ok {
				return nil, fmt.Errorf("suggestion %q for %q has no stats entry: corrupt reference data", name, d.Name)
			}
			latest, ok := candidate.Versions[dataset.LatestVersion]
			if !ok {
				return nil, fmt.Errorf("suggestion %q for %q has no %q stats entry: corrupt reference data", name, d.Name, dataset.LatestVersion)
			}
			if latest.Gzip >= entry.Gzip {
				continue
			}
			smaller = append(smaller, types.LibraryCost{
				Name:       name,
				Repository: candidate.Repository,
				GzipBytes:  latest.Gzip,
			})
		}
		if len(smaller) == 0 {
			continue
		}

		sort.Slice(smaller, func(i, j int) bool {
			return smaller[i].GzipBytes < smaller[j].GzipBytes
		})

		pairings = append(pairings, types.Pairing{
			Original: types.LibraryCost{
				Name:       d.Name,
				Repository: lib.Repository,
				GzipBytes:  entry.Gzip,
			},
			Suggestions: smaller,
		})
	}

	return pairings, nil
}

// BuildReport converts pairings into display rows. The original library is
// its own baseline, so top-level rows waste nothing; each sub-row's waste
// is the size gap to the original, always at least one byte.
func BuildReport(pairings []types.Pairing) []types.ReportRow {
	rows := make([]types.ReportRow, 0, len(pairings))
	for _, p := range pairings {
		row := types.ReportRow{
			Name:         p.Original.Name,
			Repository:   p.Original.Repository,
			TransferSize: p.Original.GzipBytes,
			WastedBytes:  0,
		}
		for _, s := range p.Suggestions {
			row.SubRows = append(row.SubRows, types.ReportRow{
				Name:         s.Name,
				Repository:   s.Repository,
				TransferSize: s.GzipBytes,
				WastedBytes:  p.Original.GzipBytes - s.GzipBytes,
			})
		}
		rows = append(rows, row)
	}
	return rows
}

// TotalSavings sums the best available saving per row, i.e. what switching
// every original to its smallest suggested replacement would shed.
func TotalSavings(rows []types.ReportRow) int64 {
	var total int64
	for _, row := range rows {
		if len(row.SubRows) == 0 {
			continue
		}
		best := row.SubRows[0].WastedBytes
		for _, sub := range row.SubRows[1:] {
			if sub.WastedBytes > best {
				best = sub.WastedBytes
			}
		}
		total += best
	}
	return total
}
