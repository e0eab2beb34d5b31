// Package detect parses the detection reports produced by upstream stack
// analyzers. This tool performs no detection of its own; it only consumes
// what the analyzer already found on the page.
package detect

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/webperf-tools/jsdiet/pkg/types"
)

// Report is the upstream stack-detection output for one page.
type Report struct {
	URL        string                `json:"url,omitempty"`
	Detections []types.DetectedEntry `json:"detections"`
}

// Parse reads a detection report. Analyzers emit either a bare JSON array
// of entries or an object wrapping them in a "detections" field alongside
// the page URL; both forms are accepted.
func Parse(r io.Reader) (*Report, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read detection report: %w", err)
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var entries []types.DetectedEntry
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, fmt.Errorf("failed to decode detection report: %w", err)
		}
		return &Report{Detections: entries}, nil
	}

	var report Report
	if err := json.Unmarshal(trimmed, &report); err != nil {
		return nil, fmt.Errorf("failed to decode detection report: %w", err)
	}
	return &report, nil
}

// Load reads a detection report from a file.
func Load(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open detection report: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// JSLibraries filters a report down to identified JavaScript-library
// detections. Other detector kinds (server stacks, CMS fingerprints) and
// unidentified scripts are dropped before matching begins.
func JSLibraries(entries []types.DetectedEntry) []types.DetectedEntry {
	var libs []types.DetectedEntry
	for _, e := range entries {
		if e.Detector != types.DetectorJSLibrary || e.Name == "" {
			continue
		}
		libs = append(libs, e)
	}
	return libs
}
