package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"prag/internal/diagfmt"
	"prag/internal/driver"
	"prag/internal/ir"
	"prag/internal/render"
)

var convertCmd = &cobra.Command{
	Use:   "convert --to <language> <directive-line>",
	Short: "Rewrite a directive for another host language",
	Long: `Convert parses a directive line and re-emits it in the sentinel and
loop spelling of the target language: pragma lines become !$omp or
!$acc comments and for-directives become do-directives, and back.
Expressions inside clauses are carried over verbatim.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().String("to", "", "target language (c|fortran-free|fortran-fixed)")
	convertCmd.Flags().String("lang", "auto", "input language (auto|c|fortran-free|fortran-fixed)")
	convertCmd.Flags().String("normalize", "none", "clause normalization (none|merge|parity)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	toValue, err := cmd.Flags().GetString("to")
	if err != nil {
		return fmt.Errorf("failed to get to flag: %w", err)
	}
	if strings.TrimSpace(toValue) == "" {
		return fmt.Errorf("convert requires --to <language>")
	}
	target, ok := ir.ParseLanguage(toValue)
	if !ok {
		return fmt.Errorf("unknown target language %q (expected c|fortran-free|fortran-fixed)", toValue)
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

	res := driver.ParseLine(args[0], opts)
	if res.Bag.HasErrors() || res.Bag.HasWarnings() {
		diagfmt.Pretty(os.Stderr, res.Bag, res.FileSet, prettyOpts)
	}
	if res.Err != nil {
		return silentFailure(cmd)
	}

	translated := render.Translate(res.Directive, target)
	fmt.Fprintln(os.Stdout, render.Directive(translated, render.Full))
	return nil
}
