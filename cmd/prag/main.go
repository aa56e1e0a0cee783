package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"prag/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "prag",
	Short: "OpenMP and OpenACC directive toolkit",
	Long: `Prag parses OpenMP and OpenACC compiler directives from C, C++ and
Fortran sources into a typed IR, with inspection, translation and
project-wide scanning built on top`,
}

// main wires the subcommands and persistent flags onto the root
// command and executes it. Command errors exit with status code 1.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
