package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/tagforge/tagforge/internal/dialect"
)

// Check runs the pre-flight validation over the whole catalog without
// writing anything. Names used as both element and attribute are legal
// (the two land in separate generated packages) but are reported so
// catalog authors can see the overlap.
func (c *Controller) Check(ctx context.Context) error {
	catalog := dialect.All()

	if err := dialect.ValidateAll(catalog); err != nil {
		return err
	}

	for _, d := range catalog {
		for _, name := range dialect.SharedNames(d) {
			log.Warn().
				Str("dialect", d.Name()).
				Str("name", name).
				Msg("name is both an element and an attribute")
		}
	}

	fmt.Printf("%d dialects checked, no collisions\n", len(catalog))
	return nil
}
