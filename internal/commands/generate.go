package commands

import (
	"context"
	"fmt"

	"github.com/tagforge/tagforge/internal/dialect"
	"github.com/tagforge/tagforge/internal/generate"
)

// Generate writes the element and attribute modules for every cataloged
// dialect under the configured output directory.
func (c *Controller) Generate(ctx context.Context) error {
	catalog := dialect.All()

	w := generate.NewWriter(generate.Options{
		OutputDir:  c.Flags.OutputDir,
		ImportPath: c.Flags.ImportPath,
		Jobs:       c.Flags.Jobs,
	})
	if err := w.GenerateAll(ctx, catalog); err != nil {
		return err
	}

	fmt.Printf("Generated %d dialects to %s\n", len(catalog), c.Flags.OutputDir)
	return nil
}
