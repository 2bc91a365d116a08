package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jilee1212/sitegen"
	"github.com/jilee1212/sitegen/fs"
	"github.com/jilee1212/sitegen/pipeline"
)

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	template, err := deps.Templates.FindTemplateByName(deps.Ctx, c.Template)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitegen.ErrorMessage(err))
		return err
	}

	uploads := make([]pipeline.Upload, 0, len(c.Files))
	for _, path := range c.Files {
		content, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: cannot read %s: %s\n", path, err)
			return err
		}
		uploads = append(uploads, pipeline.Upload{Name: filepath.Base(path), Content: content})
	}

	progress := func(event pipeline.ProgressEvent) {
		switch event.Type {
		case pipeline.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "[%d/%d] %s\n", event.Completed, event.Total, event.Name)
		case pipeline.ProgressSkipped:
			fmt.Fprintf(deps.Stdout, "skipped duplicate %s\n", event.Name)
		case pipeline.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "[%d/%d] %s: %s\n", event.Completed, event.Total, event.Name, sitegen.ErrorMessage(event.Error))
		}
	}

	result, err := deps.Generator.Generate(deps.Ctx, template, uploads, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitegen.ErrorMessage(err))
		return err
	}

	writer := fs.NewWriter(c.OutBase, c.Out)
	site := &fs.Site{
		HTML:    result.HTML,
		Summary: &result.Summary,
		BaseURL: c.BaseURL,
	}
	if err := writer.WriteSite(deps.Ctx, site); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	company := result.Summary.CompanyName
	if company == "" {
		company = "(unknown company)"
	}
	fmt.Fprintf(deps.Stdout, "Generated site for %s in %s\n", company, writer.Dir())
	fmt.Fprintf(deps.Stdout, "Sections: %v\n", result.Summary.SectionsApplied)
	fmt.Fprintf(deps.Stdout, "Content: %d services, %d team members, %d images\n",
		result.Summary.TotalContent.Services,
		result.Summary.TotalContent.TeamMembers,
		result.Summary.TotalContent.Images,
	)
	if result.GenerationID != "" {
		fmt.Fprintf(deps.Stdout, "Recorded as generation %s\n", result.GenerationID)
	}
	return nil
}
