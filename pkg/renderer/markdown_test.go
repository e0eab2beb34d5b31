package renderer

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/webperf-tools/jsdiet/pkg/types"
)

func testRows() []types.ReportRow {
	return []types.ReportRow{
		{
			Name:         "momentjs",
			Repository:   "https://github.com/moment/moment",
			TransferSize: 72512,
			SubRows: []types.ReportRow{
				{
					Name:         "dayjs",
					Repository:   "https://github.com/iamkun/dayjs",
					TransferSize: 3059,
					WastedBytes:  69453,
				},
			},
		},
	}
}

func TestRender_Markdown(t *testing.T) {
	output, err := Render("https://example.com", testRows(), RenderOptions{})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if !strings.Contains(output, "JavaScript library diet (https://example.com)") {
		t.Error("expected header with page URL")
	}
	if !strings.Contains(output, "| Library | Transfer Size | Potential Savings |") {
		t.Error("expected table header")
	}
	if !strings.Contains(output, "[momentjs](https://github.com/moment/moment) | 70.8 KiB | —") {
		t.Errorf("expected original row with linked name and zero savings, got:\n%s", output)
	}
	if !strings.Contains(output, "[dayjs](https://github.com/iamkun/dayjs) | 3.0 KiB | 67.8 KiB") {
		t.Errorf("expected nested suggestion row, got:\n%s", output)
	}
	if !strings.Contains(output, "**67.8 KiB**") {
		t.Errorf("expected total savings summary, got:\n%s", output)
	}
	if !strings.Contains(output, "🪶") {
		t.Error("expected emoji by default")
	}
}

func TestRender_NoMoji(t *testing.T) {
	output, err := Render("", testRows(), RenderOptions{NoMoji: true})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.Contains(output, "🪶") {
		t.Error("expected no emoji with NoMoji set")
	}
	if strings.Contains(output, "library diet (") {
		t.Error("expected no URL suffix in header when page URL is empty")
	}
}

func TestRender_EmptyReport(t *testing.T) {
	output, err := Render("", nil, RenderOptions{NoMoji: true})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(output, "No detected library has a known smaller alternative") {
		t.Errorf("expected empty-report note, got:\n%s", output)
	}
	if strings.Contains(output, "| Library |") {
		t.Error("expected no table for an empty report")
	}
}

func TestRender_JSON(t *testing.T) {
	output, err := Render("", testRows(), RenderOptions{Format: FormatJSON})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	var rows []types.ReportRow
	if err := json.Unmarshal([]byte(output), &rows); err != nil {
		t.Fatalf("JSON output does not parse: %v", err)
	}
	if len(rows) != 1 || rows[0].Name != "momentjs" {
		t.Errorf("unexpected decoded rows: %+v", rows)
	}
	if rows[0].SubRows[0].WastedBytes != 69453 {
		t.Errorf("expected raw wasted bytes in JSON, got %d", rows[0].SubRows[0].WastedBytes)
	}

	// Empty report must still be a valid JSON array.
	output, err = Render("", nil, RenderOptions{Format: FormatJSON})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.TrimSpace(output) != "[]" {
		t.Errorf("expected empty array, got %q", output)
	}
}

func TestRender_UnknownFormat(t *testing.T) {
	if _, err := Render("", testRows(), RenderOptions{Format: "xml"}); err == nil {
		t.Error("expected error for unknown format")
	}
}
