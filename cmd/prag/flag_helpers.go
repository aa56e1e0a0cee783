package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"prag/internal/driver"
	"prag/internal/ir"
	"prag/internal/project"
)

// loadProjectConfig discovers prag.toml upward from dir. Without a
// manifest the defaults apply; a manifest that fails to decode is a
// hard error rather than a silent fallback.
func loadProjectConfig(dir string) (project.Config, error) {
	manifest, ok, err := project.LoadManifest(dir)
	if err != nil {
		return project.Config{}, err
	}
	if !ok {
		return project.Default(), nil
	}
	return manifest.Config, nil
}

// resolveLanguage maps a --lang value onto the IR language. Empty and
// "auto" leave sentinel detection in charge.
func resolveLanguage(value string) (lang ir.Language, force bool, err error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" || v == "auto" {
		return ir.LangC, false, nil
	}
	lang, ok := ir.ParseLanguage(v)
	if !ok {
		return ir.LangC, false, fmt.Errorf("unknown language %q (expected auto|c|fortran-free|fortran-fixed)", value)
	}
	return lang, true, nil
}

// resolveDialects maps a comma-separated --dialect value onto IR
// dialects. Empty means both.
func resolveDialects(value string) ([]ir.Dialect, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	var out []ir.Dialect
	for _, part := range strings.Split(value, ",") {
		d, ok := ir.ParseDialect(part)
		if !ok {
			return nil, fmt.Errorf("unknown dialect %q (expected omp|acc)", strings.TrimSpace(part))
		}
		out = append(out, d)
	}
	return out, nil
}

// driverOptions merges the manifest's [parse] section with the
// command's flags; changed flags win over the manifest. Only flags the
// command actually registers are consulted.
func driverOptions(cmd *cobra.Command, cfg project.Config) (driver.Options, error) {
	opts := driver.Options{
		Dialects:      cfg.Parse.ResolvedDialects(),
		Normalization: cfg.Parse.ResolvedNormalization(),
		MaxNesting:    cfg.Parse.MaxNesting,
		Encoding:      cfg.Scan.ResolvedEncoding(),
	}
	if lang, auto := cfg.Parse.ResolvedLanguage(); !auto {
		opts.Language = lang
		opts.ForceLanguage = true
	}

	flags := cmd.Flags()
	if flags.Changed("lang") {
		value, err := flags.GetString("lang")
		if err != nil {
			return driver.Options{}, fmt.Errorf("failed to get lang flag: %w", err)
		}
		lang, force, err := resolveLanguage(value)
		if err != nil {
			return driver.Options{}, err
		}
		opts.Language, opts.ForceLanguage = lang, force
	}
	if flags.Changed("dialect") {
		value, err := flags.GetString("dialect")
		if err != nil {
			return driver.Options{}, fmt.Errorf("failed to get dialect flag: %w", err)
		}
		dialects, err := resolveDialects(value)
		if err != nil {
			return driver.Options{}, err
		}
		opts.Dialects = dialects
	}
	if flags.Changed("normalize") {
		value, err := flags.GetString("normalize")
		if err != nil {
			return driver.Options{}, fmt.Errorf("failed to get normalize flag: %w", err)
		}
		mode, ok := ir.ParseNormalizationMode(value)
		if !ok {
			return driver.Options{}, fmt.Errorf("unknown normalization mode %q (expected none|merge|parity)", value)
		}
		opts.Normalization = mode
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return driver.Options{}, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	opts.MaxDiagnostics = maxDiagnostics
	return opts, nil
}
