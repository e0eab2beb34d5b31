package types

// DetectorJSLibrary marks a detection entry as a client-side JavaScript
// library. Only entries with this detector kind take part in matching.
const DetectorJSLibrary = "js-library"

// DetectedEntry is one record of an upstream stack-detection report.
// Name may be empty when the detector saw a script it could not identify;
// such entries are excluded from matching. Version is best-effort.
type DetectedEntry struct {
	Detector string `json:"detector"`
	Name     string `json:"name,omitempty"`
	Version  string `json:"version,omitempty"`
}

// LibraryCost is a library together with its compressed transfer cost.
type LibraryCost struct {
	Name       string
	Repository string
	GzipBytes  int64
}

// Pairing is an original library matched with at least one strictly smaller
// alternative. Suggestions are sorted ascending by gzip size, best first.
type Pairing struct {
	Original    LibraryCost
	Suggestions []LibraryCost
}

// ReportRow is one display record of the final report. Top-level rows
// describe a detected library (its WastedBytes is always 0 — it is its own
// baseline); SubRows hold the suggested replacements with the bytes saved
// by switching to each.
type ReportRow struct {
	Name         string      `json:"name"`
	Repository   string      `json:"repository"`
	TransferSize int64       `json:"transferSize"`
	WastedBytes  int64       `json:"wastedBytes"`
	SubRows      []ReportRow `json:"subRows,omitempty"`
}
