package detect

import (
	"strings"
	"testing"

	"github.com/webperf-tools/jsdiet/pkg/types"
)

func TestParse_BareArray(t *testing.T) {
	doc := `[
		{"detector": "js-library", "name": "momentjs", "version": "2.29.1"},
		{"detector": "server", "name": "nginx"}
	]`

	report, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if report.URL != "" {
		t.Errorf("bare array has no URL, got %q", report.URL)
	}
	if len(report.Detections) != 2 {
		t.Fatalf("expected 2 detections, got %d", len(report.Detections))
	}
	if report.Detections[0].Name != "momentjs" || report.Detections[0].Version != "2.29.1" {
		t.Errorf("unexpected first detection: %+v", report.Detections[0])
	}
}

func TestParse_WrappedObject(t *testing.T) {
	doc := `{
		"url": "https://example.com",
		"detections": [
			{"detector": "js-library", "name": "jquery"}
		]
	}`

	report, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if report.URL != "https://example.com" {
		t.Errorf("unexpected URL: %q", report.URL)
	}
	if len(report.Detections) != 1 || report.Detections[0].Name != "jquery" {
		t.Errorf("unexpected detections: %+v", report.Detections)
	}
}

func TestParse_Malformed(t *testing.T) {
	if _, err := Parse(strings.NewReader(`{"detections": `)); err == nil {
		t.Error("expected error for truncated object")
	}
	if _, err := Parse(strings.NewReader(`[{"name"`)); err == nil {
		t.Error("expected error for truncated array")
	}
}

func TestJSLibraries(t *testing.T) {
	entries := []types.DetectedEntry{
		{Detector: types.DetectorJSLibrary, Name: "momentjs"},
		{Detector: types.DetectorJSLibrary},                    // detected but unidentified
		{Detector: "cms", Name: "wordpress"},                   // wrong detector kind
		{Detector: "server", Name: "nginx", Version: "1.21.0"}, // wrong detector kind
		{Detector: types.DetectorJSLibrary, Name: "jquery", Version: "3.6.0"},
	}

	libs := JSLibraries(entries)
	if len(libs) != 2 {
		t.Fatalf("expected 2 JS libraries, got %d: %+v", len(libs), libs)
	}
	if libs[0].Name != "momentjs" || libs[1].Name != "jquery" {
		t.Errorf("expected [momentjs jquery] in input order, got %+v", libs)
	}
}
