package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"prag/internal/diagfmt"
	"prag/internal/driver"
	"prag/internal/project"
)

var scanCmd = &cobra.Command{
	Use:   "scan [flags] [dir]",
	Short: "Scan a source tree for OpenMP and OpenACC directives",
	Long: `Scan walks a directory tree, extracts every OpenMP and OpenACC
directive from C, C++ and Fortran sources and parses them in parallel.
Per-file results are cached by content hash unless the cache is
disabled. Without a directory argument the project root found through
prag.toml is scanned, falling back to the current directory`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().String("format", "summary", "output format (summary|json)")
	scanCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	scanCmd.Flags().Bool("no-cache", false, "bypass the scan result cache")
	scanCmd.Flags().String("ui", "auto", "interactive progress display (auto|on|off)")
	scanCmd.Flags().String("dialect", "", "scanned dialects, comma separated (omp|acc)")
}

func runScan(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "summary", "json":
		// supported
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	uiModeValue, err := readUIMode(uiValue)
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return err
	}

	// An explicit directory wins; otherwise prag.toml names the root.
	root := "."
	var cfg project.Config
	if len(args) == 1 {
		root = args[0]
		cfg, err = loadProjectConfig(root)
		if err != nil {
			return err
		}
	} else {
		manifest, found, loadErr := project.LoadManifest(".")
		if loadErr != nil {
			return loadErr
		}
		cfg = project.Default()
		if found {
			cfg = manifest.Config
			root = manifest.Root
		}
	}

	opts, err := driverOptions(cmd, cfg)
	if err != nil {
		return err
	}
	opts.Selects = cfg.Scan.Selects
	opts.Jobs = cfg.Scan.Jobs
	if cmd.Flags().Changed("jobs") {
		opts.Jobs = jobs
	}

	if cfg.Scan.Cache && !noCache {
		cache, cacheErr := driver.OpenDiskCache("prag")
		if cacheErr != nil {
			if !quiet {
				fmt.Fprintf(os.Stderr, "warning: scan cache unavailable: %v\n", cacheErr)
			}
		} else {
			opts.Cache = cache
		}
	}

	// The TUI owns stdout, so it only runs for summary output.
	useTUI := shouldUseTUI(uiModeValue) && format == "summary" && !quiet

	var res *driver.ScanResult
	if useTUI {
		files, listErr := driver.ListSourceFiles(root, opts.Selects)
		if listErr != nil {
			return fmt.Errorf("scan failed: %w", listErr)
		}
		if len(files) > 0 {
			res, err = runScanWithUI(cmd.Context(), "prag scan", files, root, opts)
		} else {
			res, err = driver.Scan(cmd.Context(), root, opts)
		}
	} else {
		res, err = driver.Scan(cmd.Context(), root, opts)
	}
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stderr))
	prettyOpts := diagfmt.PrettyOpts{
		Color:     useColor,
		Context:   2,
		ShowNotes: true,
		ShowFixes: true,
	}

	switch format {
	case "json":
		jsonOpts := diagfmt.JSONOpts{
			IncludePositions: true,
			IncludeNotes:     true,
			IncludeFixes:     true,
		}
		if err := diagfmt.ScanJSON(os.Stdout, res, jsonOpts, showTimings); err != nil {
			return fmt.Errorf("failed to encode scan output: %w", err)
		}
	case "summary":
		for i := range res.Files {
			f := &res.Files[i]
			if f.Bag == nil || len(f.Bag.Items()) == 0 {
				continue
			}
			diagfmt.Pretty(os.Stderr, f.Bag, res.FileSet, prettyOpts)
		}
		if !quiet {
			printScanSummary(os.Stdout, res)
		}
		if showTimings {
			printPhaseTimings(os.Stdout, res.Timing)
		}
	}

	if res.Totals.Errors > 0 {
		return silentFailure(cmd)
	}
	return nil
}

// printScanSummary lists files that carry directives or errors, then
// one totals line.
func printScanSummary(w io.Writer, res *driver.ScanResult) {
	for i := range res.Files {
		f := &res.Files[i]
		hasErrors := f.Bag != nil && f.Bag.HasErrors()
		if len(f.Records) == 0 && !hasErrors {
			continue
		}
		note := ""
		if f.FromCache {
			note = "  (cached)"
		}
		if hasErrors {
			note += "  [errors]"
		}
		fmt.Fprintf(w, "  %-44s %3d directives%s\n", f.Path, len(f.Records), note)
	}
	t := res.Totals
	fmt.Fprintf(w, "%d files scanned, %d directives (%d parsed, %d failed), %d errors, %d warnings, %d cache hits\n",
		t.Files, t.Directives, t.Parsed, t.Failed, t.Errors, t.Warnings, t.CacheHits)
}
