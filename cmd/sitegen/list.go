package main

import (
	"fmt"
	"strings"

	"github.com/jilee1212/sitegen"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := sitegen.GenerationFilter{}
	if c.Company != "" {
		filter.CompanyName = &c.Company
	}

	generations, err := deps.Generations.FindGenerations(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitegen.ErrorMessage(err))
		return err
	}

	if len(generations) == 0 {
		fmt.Fprintln(deps.Stdout, "No generations found. Use 'sitegen generate' to create one.")
		return nil
	}

	for _, g := range generations {
		company := g.CompanyName
		if company == "" {
			company = "(unknown)"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  [%s]  %s\n",
			g.ID, g.CreatedAt.Format("2006-01-02 15:04"), company,
			strings.Join(g.Sections, ","), g.TemplateName)
	}

	return nil
}
