package main

import (
	"fmt"

	"github.com/jilee1212/sitegen"
)

// Run executes the templates command.
func (c *TemplatesCmd) Run(deps *Dependencies) error {
	templates, err := deps.Templates.FindTemplates(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitegen.ErrorMessage(err))
		return err
	}

	for _, t := range templates {
		fmt.Fprintf(deps.Stdout, "%s  (%d bytes)\n", t.Name, len(t.HTML))
	}

	return nil
}
