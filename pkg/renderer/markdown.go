package renderer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/webperf-tools/jsdiet/pkg/matcher"
	"github.com/webperf-tools/jsdiet/pkg/types"
)

// FormatMarkdown and FormatJSON are the supported output formats.
const (
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// RenderOptions control report rendering.
type RenderOptions struct {
	NoMoji bool
	Format string // markdown (default) or json
}

// ReportContext holds all data passed to the markdown template.
type ReportContext struct {
	PageURL      string
	Rows         []types.ReportRow
	TotalSavings int64
	Emoji        string
}

const markdownTemplate = `## {{ .Emoji }}JavaScript library diet{{ if .PageURL }} ({{ .PageURL }}){{ end }}

{{- if .Rows }}

| Library | Transfer Size | Potential Savings |
|---------|---------------|-------------------|
{{- range .Rows }}
| [{{ .Name }}]({{ .Repository }}) | {{ kib .TransferSize }} | — |
{{- range .SubRows }}
| &nbsp;&nbsp;&#8627; [{{ .Name }}]({{ .Repository }}) | {{ kib .TransferSize }} | {{ kib .WastedBytes }} |
{{- end }}
{{- end }}

Switching every library above to its smallest listed alternative would save **{{ kib .TotalSavings }}** of compressed transfer.
{{- else }}

No detected library has a known smaller alternative. Nothing to save here.
{{- end }}
`

// formatKiB renders a byte count as KiB with one decimal, matching how
// transfer sizes are usually quoted in performance reports.
func formatKiB(n int64) string {
	return fmt.Sprintf("%.1f KiB", float64(n)/1024)
}

// Render produces the report in the requested format. PageURL may be empty
// when the detection report did not carry one.
func Render(pageURL string, rows []types.ReportRow, opts RenderOptions) (string, error) {
	switch opts.Format {
	case "", FormatMarkdown:
		return renderMarkdown(pageURL, rows, opts)
	case FormatJSON:
		return renderJSON(rows)
	default:
		return "", fmt.Errorf("unknown output format %q", opts.Format)
	}
}

func renderMarkdown(pageURL string, rows []types.ReportRow, opts RenderOptions) (string, error) {
	tmpl, err := template.New("jsdiet").Funcs(template.FuncMap{
		"kib": formatKiB,
	}).Parse(markdownTemplate)
	if err != nil {
		return "", err
	}

	ctx := ReportContext{
		PageURL:      pageURL,
		Rows:         rows,
		TotalSavings: matcher.TotalSavings(rows),
	}
	if !opts.NoMoji {
		ctx.Emoji = "🪶 "
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, ctx); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// renderJSON emits the raw report rows for machine consumers. Sizes stay
// in bytes here; formatting belongs to whoever reads the document.
func renderJSON(rows []types.ReportRow) (string, error) {
	if rows == nil {
		rows = []types.ReportRow{}
	}
	out, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out) + "\n", nil
}
