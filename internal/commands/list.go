package commands

import (
	"context"
	"fmt"

	"github.com/tagforge/tagforge/internal/dialect"
)

// List prints the cataloged dialects with their vocabulary sizes.
func (c *Controller) List(ctx context.Context) error {
	for _, d := range dialect.All() {
		closing := "plain"
		if d.SelfClosing {
			closing = "self-closing"
		}
		fmt.Printf("%-20s %3d containers %3d voids %4d attributes  %s\n",
			d.Name(), len(d.Containers), len(d.Voids), len(d.Attributes), closing)
	}
	return nil
}
