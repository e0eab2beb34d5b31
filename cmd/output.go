package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/webperf-tools/jsdiet/pkg/renderer"
)

// outputExtension maps a render format to its file extension.
func outputExtension(format string) string {
	if format == renderer.FormatJSON {
		return ".json"
	}
	return ".md"
}

// resolveOutputPath determines the output file path for a given format.
// A path with an explicit extension is used as-is; otherwise the extension
// is derived from the format (e.g. report.md, report.json).
func resolveOutputPath(currentOutput string, format string) string {
	if filepath.Ext(currentOutput) != "" {
		return currentOutput
	}
	return currentOutput + outputExtension(format)
}

// resolvePageOutput determines the output file path for one page of a batch
// run that did not configure its own. The filename is derived from the page
// name or its index.
func resolvePageOutput(pageName string, pageIndex int, format string) string {
	suffix := pageName
	if suffix == "" {
		suffix = fmt.Sprintf("page%d", pageIndex)
	}
	suffix = strings.ReplaceAll(suffix, " ", "-")
	return "jsdiet-" + suffix + outputExtension(format)
}
