package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Initialize a prag project",
	Long: `Initialize a prag project by creating a manifest (prag.toml) that marks
the scan root and records parse defaults. If [path|name] is omitted,
initializes the current directory. If a non-existing name is provided,
a directory will be created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

// runInit resolves the target path, creates the directory if it does
// not exist, derives a project name from the directory basename
// (falling back to "prag-project" for unusable names), and refuses to
// initialize if prag.toml already exists.
func runInit(cmd *cobra.Command, args []string) error {
	var target string
	if len(args) == 0 || args[0] == "." {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		target = wd
	} else {
		arg := args[0]
		if !filepath.IsAbs(arg) {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			target = filepath.Join(wd, arg)
		} else {
			target = arg
		}
	}

	if st, err := os.Stat(target); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err = os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %q: %w", target, err)
			}
		} else {
			return err
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	name := strings.TrimSpace(filepath.Base(target))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "prag-project"
	}

	manifestPath := filepath.Join(target, "prag.toml")
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("project already initialized: %s exists", manifestPath)
	}

	if err := os.WriteFile(manifestPath, []byte(buildDefaultManifest(name)), os.FileMode(0o600)); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	rel := target
	if wd, err := os.Getwd(); err == nil {
		if r, err2 := filepath.Rel(wd, target); err2 == nil {
			rel = r
		}
	}
	fmt.Fprintf(os.Stdout, "Initialized prag project in %s\n", rel)
	fmt.Fprintf(os.Stdout, "  - prag.toml\n")
	return nil
}

// buildDefaultManifest returns a starter prag.toml mirroring the
// defaults the commands assume when no manifest exists, so editing any
// value changes exactly one thing.
func buildDefaultManifest(name string) string {
	return fmt.Sprintf(`# prag project manifest
[project]
name = "%s"

[scan]
# include = ["src/**", "kernels/**"]
exclude = ["build/**", ".git/**"]
jobs = 0
cache = true
encoding = "utf-8"

[parse]
language = "auto"
dialects = ["openmp", "openacc"]
normalization = "none"
max_nesting = 0
`, name)
}
