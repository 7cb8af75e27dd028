// Package generate turns dialect descriptors into files on disk: it
// validates each dialect, renders its element and attribute modules and
// writes them under the output root.
package generate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tagforge/tagforge/internal/codegen"
	"github.com/tagforge/tagforge/internal/dialect"
)

// Options configures a generation run. The zero value reproduces the
// reference behavior: sequential generation into ./gen against the
// default rendering-library import path.
type Options struct {
	// OutputDir is the root the dialect directory trees are written
	// under.
	OutputDir string

	// ImportPath is the rendering library generated files import.
	ImportPath string

	// Jobs bounds how many dialects are generated concurrently.
	// Distinct dialects write disjoint paths, so any bound is safe.
	Jobs int
}

// Writer generates the output modules for dialects.
type Writer struct {
	opts   Options
	logger zerolog.Logger
}

// NewWriter creates a Writer, filling in option defaults.
func NewWriter(opts Options) *Writer {
	if opts.OutputDir == "" {
		opts.OutputDir = "gen"
	}
	if opts.ImportPath == "" {
		opts.ImportPath = codegen.DefaultImportPath
	}
	if opts.Jobs <= 0 {
		opts.Jobs = 1
	}

	logger := zerolog.New(os.Stderr).With().
		Timestamp().
		Str("component", "generate").
		Logger()

	return &Writer{opts: opts, logger: logger}
}

// WriteDialect validates d and writes its element and attribute modules,
// creating directories as needed and overwriting existing files
// unconditionally. Regeneration is always a full clobber, never a merge.
// Validation failures abort before anything is written; any filesystem
// error is fatal to the run.
func (w *Writer) WriteDialect(d dialect.Dialect) error {
	if err := dialect.Validate(d); err != nil {
		return fmt.Errorf("validate %s: %w", d.Name(), err)
	}

	units := []codegen.Unit{
		codegen.ElementUnit(d, w.opts.ImportPath),
		codegen.AttributeUnit(d, w.opts.ImportPath),
	}
	for _, u := range units {
		target := filepath.Join(w.opts.OutputDir, u.Path)
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("create directory for %s: %w", target, err)
		}
		if err := os.WriteFile(target, u.Body, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", target, err)
		}
		w.logger.Debug().
			Str("path", target).
			Int("exports", len(u.Exports)).
			Msg("wrote module")
	}

	w.logger.Info().Str("dialect", d.Name()).Msg("generated dialect")
	return nil
}

// GenerateAll generates every dialect in the catalog. The whole catalog
// is validated first so a configuration error in any dialect aborts the
// run before a single file is written. Dialects then fan out over an
// errgroup bounded by Jobs; the first error cancels the remainder.
func (w *Writer) GenerateAll(ctx context.Context, catalog []dialect.Dialect) error {
	if err := dialect.ValidateAll(catalog); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(w.opts.Jobs)
	for _, d := range catalog {
		d := d
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return w.WriteDialect(d)
		})
	}
	return g.Wait()
}
