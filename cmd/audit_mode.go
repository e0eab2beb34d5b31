package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/webperf-tools/jsdiet/pkg/detect"
	"github.com/webperf-tools/jsdiet/pkg/matcher"
	"github.com/webperf-tools/jsdiet/pkg/renderer"
)

func runAuditMode() error {
	// 1. Reference datasets (embedded unless overridden)
	stats, suggestions, err := loadDatasets(statsFile, suggestionsFile)
	if err != nil {
		return err
	}

	// 2. Detection report
	report, err := detect.Load(inputFile)
	if err != nil {
		return err
	}
	libs := detect.JSLibraries(report.Detections)
	slog.Debug("parsed detection report", "path", inputFile, "entries", len(report.Detections), "jsLibraries", len(libs))

	// 3. Match
	pairings, err := matcher.Match(libs, stats, suggestions)
	if err != nil {
		return fmt.Errorf("matching failed: %w", err)
	}
	if len(pairings) == 0 {
		slog.Info("no replaceable libraries found", "jsLibraries", len(libs))
	}
	rows := matcher.BuildReport(pairings)

	// 4. Render
	content, err := renderer.Render(report.URL, rows, renderer.RenderOptions{
		NoMoji: noMoji,
		Format: formatName,
	})
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	// 5. Output
	if dryRun || outputFile == "" {
		fmt.Fprintln(stdout, content)
		return nil
	}

	outPath := resolveOutputPath(outputFile, formatName)
	if err := os.WriteFile(outPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	slog.Info("wrote report", "path", outPath)
	return nil
}
