package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"prag/internal/diagfmt"
	"prag/internal/driver"
	"prag/internal/ir"
	"prag/internal/render"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <directive-line|file>",
	Short: "Parse a directive line or every directive in a source file",
	Long: `Parse analyzes a single OpenMP or OpenACC directive line, or extracts
and parses every directive in a C, C++ or Fortran source file`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json|plain|canonical)")
	parseCmd.Flags().String("lang", "auto", "input language (auto|c|fortran-free|fortran-fixed)")
	parseCmd.Flags().String("dialect", "", "accepted dialects, comma separated (omp|acc)")
	parseCmd.Flags().String("normalize", "none", "clause normalization (none|merge|parity)")
	parseCmd.Flags().Bool("file", false, "treat the argument as a file path")
}

func runParse(cmd *cobra.Command, args []string) error {
	input := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json", "plain", "canonical":
		// supported
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	forceFile, err := cmd.Flags().GetBool("file")
	if err != nil {
		return fmt.Errorf("failed to get file flag: %w", err)
	}

	cfg, err := loadProjectConfig(".")
	if err != nil {
		return err
	}
	opts, err := driverOptions(cmd, cfg)
	if err != nil {
		return err
	}

	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return err
	}
	prettyOpts := diagfmt.PrettyOpts{
		Color:     colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stderr)),
		Context:   2,
		ShowNotes: true,
		ShowFixes: true,
	}
	outColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))

	// Anything that exists on disk is a file; a directive line never
	// does. --file keeps load errors honest for missing paths.
	isFile := forceFile
	if !isFile {
		if st, statErr := os.Stat(input); statErr == nil && !st.IsDir() {
			isFile = true
		}
	}
	if isFile {
		return runParseFile(cmd, input, format, opts, prettyOpts, outColor)
	}
	return runParseLine(cmd, input, format, opts, prettyOpts, outColor)
}

func runParseLine(cmd *cobra.Command, line, format string, opts driver.Options, prettyOpts diagfmt.PrettyOpts, outColor bool) error {
	res := driver.ParseLine(line, opts)
	if res.Bag.HasErrors() || res.Bag.HasWarnings() {
		diagfmt.Pretty(os.Stderr, res.Bag, res.FileSet, prettyOpts)
	}
	if res.Err != nil {
		return silentFailure(cmd)
	}

	// The line parser accepts both dialects; the filter becomes an
	// assertion once the dialect is known.
	if dialect := res.Directive.Kind().Dialect(); !dialectAllowed(opts, dialect) {
		return fmt.Errorf("directive is %s, excluded by the dialect filter", dialect)
	}
	return printDirective(os.Stdout, res.Directive, format, outColor)
}

func runParseFile(cmd *cobra.Command, path, format string, opts driver.Options, prettyOpts diagfmt.PrettyOpts, outColor bool) error {
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	res, err := driver.ParseFile(path, opts)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	if res.Bag.HasErrors() || res.Bag.HasWarnings() {
		diagfmt.Pretty(os.Stderr, res.Bag, res.FileSet, prettyOpts)
	}

	if format == "json" {
		if err := printFileJSON(os.Stdout, path, res.Items); err != nil {
			return err
		}
	} else {
		printed := 0
		for i := range res.Items {
			it := &res.Items[i]
			if it.Directive == nil {
				continue
			}
			if format == "pretty" && printed > 0 {
				fmt.Fprintln(os.Stdout)
			}
			if err := printDirective(os.Stdout, it.Directive, format, outColor); err != nil {
				return err
			}
			printed++
		}
		if printed == 0 && !quiet {
			fmt.Fprintf(os.Stderr, "no directives found in %s\n", path)
		}
	}

	if res.Bag.HasErrors() {
		return silentFailure(cmd)
	}
	return nil
}

func printDirective(w io.Writer, d *ir.DirectiveIR, format string, color bool) error {
	switch format {
	case "pretty":
		diagfmt.PrettyDirective(w, d, diagfmt.PrettyOpts{Color: color})
		return nil
	case "json":
		return diagfmt.DirectiveAsJSON(w, d)
	case "plain":
		_, err := fmt.Fprintln(w, render.Directive(d, render.Plain))
		return err
	case "canonical":
		_, err := fmt.Fprintln(w, render.Directive(d, render.Full))
		return err
	}
	return fmt.Errorf("unknown format: %s", format)
}

// fileDirectivesPayload is the envelope for parse --format json over a
// whole file; the per-directive schema is diagfmt's.
type fileDirectivesPayload struct {
	File       string                   `json:"file"`
	Count      int                      `json:"count"`
	Failed     int                      `json:"failed"`
	Directives []*diagfmt.DirectiveJSON `json:"directives"`
}

func printFileJSON(w io.Writer, path string, items []driver.Parsed) error {
	payload := fileDirectivesPayload{
		File:       path,
		Directives: make([]*diagfmt.DirectiveJSON, 0, len(items)),
	}
	for i := range items {
		it := &items[i]
		if it.Directive == nil {
			payload.Failed++
			continue
		}
		payload.Directives = append(payload.Directives, diagfmt.BuildDirectiveOutput(it.Directive))
	}
	payload.Count = len(payload.Directives)

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func dialectAllowed(opts driver.Options, d ir.Dialect) bool {
	if len(opts.Dialects) == 0 {
		return true
	}
	for _, enabled := range opts.Dialects {
		if enabled == d {
			return true
		}
	}
	return false
}

// silentFailure exits nonzero without cobra noise; the diagnostics are
// already on stderr.
func silentFailure(cmd *cobra.Command) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return fmt.Errorf("")
}
