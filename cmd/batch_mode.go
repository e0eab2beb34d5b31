package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/webperf-tools/jsdiet/pkg/config"
	"github.com/webperf-tools/jsdiet/pkg/detect"
	"github.com/webperf-tools/jsdiet/pkg/matcher"
	"github.com/webperf-tools/jsdiet/pkg/renderer"
)

func runBatchMode(path string) error {
	slog.Info("using config file", "path", path)
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	// Change working directory to config file location so relative paths in
	// the config (inputs, outputs, datasets) resolve correctly.
	configDir := filepath.Dir(path)
	if configDir != "." {
		if err := os.Chdir(configDir); err != nil {
			return fmt.Errorf("failed to change directory to %s: %w", configDir, err)
		}
		slog.Debug("changed working directory", "dir", configDir)
	}

	// CLI flags take precedence over config file settings.
	statsPath := statsFile
	if statsPath == "" {
		statsPath = cfg.Stats
	}
	suggestionsPath := suggestionsFile
	if suggestionsPath == "" {
		suggestionsPath = cfg.Suggestions
	}
	stats, suggestions, err := loadDatasets(statsPath, suggestionsPath)
	if err != nil {
		return err
	}

	format := formatName
	if !rootCmd.Flags().Changed("format") && cfg.Format != "" {
		format = cfg.Format
	}
	renderOpts := renderer.RenderOptions{
		NoMoji: noMoji || cfg.NoMoji,
		Format: format,
	}

	// Audit all pages concurrently; rendering is pure and the datasets are
	// never mutated, so the pages only share read-only state.
	results := make([]string, len(cfg.Pages))
	var g errgroup.Group
	for i, page := range cfg.Pages {
		i, page := i, page
		g.Go(func() error {
			report, err := detect.Load(page.Input)
			if err != nil {
				return fmt.Errorf("page %q: %w", page.Name, err)
			}
			libs := detect.JSLibraries(report.Detections)

			pairings, err := matcher.Match(libs, stats, suggestions)
			if err != nil {
				return fmt.Errorf("page %q: matching failed: %w", page.Name, err)
			}

			content, err := renderer.Render(report.URL, matcher.BuildReport(pairings), renderOpts)
			if err != nil {
				return fmt.Errorf("page %q: failed to render report: %w", page.Name, err)
			}
			results[i] = content
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// Write (or print) sequentially so batch output stays in config order.
	for i, page := range cfg.Pages {
		if dryRun {
			fmt.Fprintf(stdout, "--- %s ---\n", page.Input)
			fmt.Fprintln(stdout, results[i])
			continue
		}

		outPath := page.Output
		if outPath == "" {
			outPath = resolvePageOutput(page.Name, i, format)
		}
		if err := os.WriteFile(outPath, []byte(results[i]), 0644); err != nil {
			return fmt.Errorf("failed to write output file %s: %w", outPath, err)
		}
		slog.Info("wrote report", "page", page.Name, "path", outPath)
	}

	return nil
}
