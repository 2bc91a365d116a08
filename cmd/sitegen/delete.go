package main

import (
	"fmt"

	"github.com/jilee1212/sitegen"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return sitegen.Errorf(sitegen.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Generations.DeleteGeneration(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitegen.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted generation %s\n", c.ID)
	return nil
}
