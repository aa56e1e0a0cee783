// Package project handles prag.toml discovery and decoding. A manifest
// marks the project root for the scanner and carries defaults for the
// parse pipeline; command-line flags override anything set here.
package project

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"

	"prag/internal/ir"
	"prag/internal/source"
)

// Config is the decoded content of a prag.toml manifest.
type Config struct {
	Project ProjectConfig `toml:"project"`
	Scan    ScanConfig    `toml:"scan"`
	Parse   ParseConfig   `toml:"parse"`
}

// ProjectConfig is the [project] section.
type ProjectConfig struct {
	Name string `toml:"name"`
}

// ScanConfig is the [scan] section. Include and Exclude are slash-style
// glob patterns matched against paths relative to the project root;
// an empty Include list selects every file with a recognized extension.
type ScanConfig struct {
	Include  []string `toml:"include"`
	Exclude  []string `toml:"exclude"`
	Jobs     int      `toml:"jobs"`
	Cache    bool     `toml:"cache"`
	Encoding string   `toml:"encoding"`
}

// ParseConfig is the [parse] section.
type ParseConfig struct {
	Language      string   `toml:"language"`
	Dialects      []string `toml:"dialects"`
	Normalization string   `toml:"normalization"`
	MaxNesting    int      `toml:"max_nesting"`
}

// Manifest ties a decoded Config to the prag.toml that produced it.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Default returns the configuration used when no prag.toml exists or a
// section is omitted. MaxNesting zero defers to the parser's own limit.
func Default() Config {
	return Config{
		Scan: ScanConfig{
			Cache:    true,
			Encoding: "utf-8",
		},
		Parse: ParseConfig{
			Language:      "auto",
			Dialects:      []string{"openmp", "openacc"},
			Normalization: "none",
		},
	}
}

// Load decodes and validates a prag.toml. Absent keys keep their
// Default values.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("project") {
		return Config{}, fmt.Errorf("%s: missing [project]", path)
	}
	if !meta.IsDefined("project", "name") || strings.TrimSpace(cfg.Project.Name) == "" {
		return Config{}, fmt.Errorf("%s: missing [project].name", path)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadManifest discovers prag.toml upward from startDir and loads it.
// ok reports whether a manifest was found at all.
func LoadManifest(startDir string) (manifest *Manifest, ok bool, err error) {
	path, ok, err := FindPragToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{Path: path, Root: filepath.Dir(path), Config: cfg}, true, nil
}

func (c Config) validate() error {
	if _, ok := source.ParseEncoding(c.Scan.Encoding); !ok {
		return fmt.Errorf("[scan].encoding: unknown encoding %q", c.Scan.Encoding)
	}
	if c.Scan.Jobs < 0 {
		return fmt.Errorf("[scan].jobs: must be >= 0, got %d", c.Scan.Jobs)
	}
	for _, pat := range c.Scan.Include {
		if err := checkPattern(pat); err != nil {
			return fmt.Errorf("[scan].include: %w", err)
		}
	}
	for _, pat := range c.Scan.Exclude {
		if err := checkPattern(pat); err != nil {
			return fmt.Errorf("[scan].exclude: %w", err)
		}
	}
	if lang := c.Parse.Language; lang != "" && lang != "auto" {
		if _, ok := ir.ParseLanguage(lang); !ok {
			return fmt.Errorf("[parse].language: unknown language %q", lang)
		}
	}
	if len(c.Parse.Dialects) == 0 {
		return fmt.Errorf("[parse].dialects: at least one dialect is required")
	}
	for _, d := range c.Parse.Dialects {
		if _, ok := ir.ParseDialect(d); !ok {
			return fmt.Errorf("[parse].dialects: unknown dialect %q", d)
		}
	}
	if norm := c.Parse.Normalization; norm != "" {
		if _, ok := ir.ParseNormalizationMode(norm); !ok {
			return fmt.Errorf("[parse].normalization: unknown mode %q", norm)
		}
	}
	if c.Parse.MaxNesting < 0 {
		return fmt.Errorf("[parse].max_nesting: must be >= 0, got %d", c.Parse.MaxNesting)
	}
	return nil
}

// ResolvedEncoding maps the [scan].encoding spelling onto the loader's
// Encoding. Validation guarantees the spelling is known.
func (s ScanConfig) ResolvedEncoding() source.Encoding {
	enc, _ := source.ParseEncoding(s.Encoding)
	return enc
}

// JobCount resolves [scan].jobs, with zero meaning one worker per CPU.
func (s ScanConfig) JobCount() int {
	if s.Jobs > 0 {
		return s.Jobs
	}
	return runtime.NumCPU()
}

// Selects reports whether a root-relative path passes the include and
// exclude filters. Exclusion wins over inclusion.
func (s ScanConfig) Selects(rel string) bool {
	rel = filepath.ToSlash(rel)
	for _, pat := range s.Exclude {
		if matchGlob(pat, rel) {
			return false
		}
	}
	if len(s.Include) == 0 {
		return true
	}
	for _, pat := range s.Include {
		if matchGlob(pat, rel) {
			return true
		}
	}
	return false
}

// ResolvedLanguage maps [parse].language onto the IR language. auto
// reports whether the sentinel should decide instead.
func (p ParseConfig) ResolvedLanguage() (lang ir.Language, auto bool) {
	if p.Language == "" || p.Language == "auto" {
		return ir.LangC, true
	}
	lang, _ = ir.ParseLanguage(p.Language)
	return lang, false
}

// ResolvedDialects maps [parse].dialects onto IR dialects, in order,
// without duplicates.
func (p ParseConfig) ResolvedDialects() []ir.Dialect {
	seen := map[ir.Dialect]bool{}
	out := make([]ir.Dialect, 0, len(p.Dialects))
	for _, s := range p.Dialects {
		d, ok := ir.ParseDialect(s)
		if !ok || seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	return out
}

// ResolvedNormalization maps [parse].normalization onto the IR mode.
func (p ParseConfig) ResolvedNormalization() ir.ClauseNormalizationMode {
	mode, _ := ir.ParseNormalizationMode(p.Normalization)
	return mode
}
