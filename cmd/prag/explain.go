package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"prag/internal/ir"
	"prag/internal/parser"
)

var explainCmd = &cobra.Command{
	Use:   "explain <keyword>",
	Short: "Describe a directive or clause keyword",
	Long: `Explain resolves a keyword against the OpenMP and OpenACC registries
and reports what the parser knows about it: the directive tag and its
classification traits, or the clause's argument rule. Multi-word
directive names work unquoted: prag explain target teams distribute.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExplain,
}

func runExplain(cmd *cobra.Command, args []string) error {
	keyword := strings.Join(args, " ")
	clauseKey := strings.ToLower(strings.TrimSpace(keyword))

	matches := 0
	for _, dialect := range []ir.Dialect{ir.DialectOpenMP, ir.DialectOpenACC} {
		if kind, ok := parser.LookupDirective(dialect, keyword); ok {
			if matches > 0 {
				fmt.Fprintln(os.Stdout)
			}
			printDirectiveInfo(os.Stdout, kind)
			matches++
		}
		if kind, rule, ok := parser.LookupClause(dialect, clauseKey); ok {
			if matches > 0 {
				fmt.Fprintln(os.Stdout)
			}
			printClauseInfo(os.Stdout, dialect, kind, rule)
			matches++
		}
	}
	if matches == 0 {
		return fmt.Errorf("unknown keyword %q in both dialects", keyword)
	}
	return nil
}

func printDirectiveInfo(w io.Writer, kind ir.DirectiveKind) {
	fmt.Fprintf(w, "%s directive %q  (tag 0x%04x)\n", kind.Dialect(), kind.String(), uint16(kind))

	if traits := directiveTraits(kind); len(traits) > 0 {
		fmt.Fprintf(w, "  traits: %s\n", strings.Join(traits, ", "))
	}
	if kind.HasStructuredBlock() {
		fmt.Fprintln(w, "  applies to a structured block")
	}
	if end, ok := ir.EndOf(kind); ok {
		fmt.Fprintf(w, "  paired end marker: %s\n", end)
	}
	if base, ok := ir.BaseOf(kind); ok {
		fmt.Fprintf(w, "  closes: %s\n", base)
	}
	if twin := ir.LoopTwin(kind); twin != kind {
		fmt.Fprintf(w, "  loop twin: %s\n", twin)
	}
}

func directiveTraits(kind ir.DirectiveKind) []string {
	var traits []string
	if kind.IsParallel() {
		traits = append(traits, "parallel")
	}
	if kind.IsWorksharing() {
		traits = append(traits, "worksharing")
	}
	if kind.IsSimd() {
		traits = append(traits, "simd")
	}
	if kind.IsTask() {
		traits = append(traits, "tasking")
	}
	if kind.IsTarget() {
		traits = append(traits, "device offload")
	}
	if kind.IsTeams() {
		traits = append(traits, "teams")
	}
	if kind.IsLoop() {
		traits = append(traits, "loop associated")
	}
	if kind.IsSynchronization() {
		traits = append(traits, "synchronization")
	}
	if kind.IsDeclarative() {
		traits = append(traits, "declarative")
	}
	if kind.IsEnd() {
		traits = append(traits, "end marker")
	}
	return traits
}

func printClauseInfo(w io.Writer, dialect ir.Dialect, kind ir.ClauseKind, rule parser.ArgRule) {
	fmt.Fprintf(w, "%s clause %q\n", dialect, kind.String())
	switch rule {
	case parser.ArgNone:
		fmt.Fprintln(w, "  takes no argument")
	case parser.ArgOptional:
		fmt.Fprintln(w, "  parenthesized argument optional")
	case parser.ArgRequired:
		fmt.Fprintln(w, "  parenthesized argument required")
	}
}
