package sitegen

import "context"

// Template is a named HTML skeleton containing {{TOKEN}} placeholders and
// data-repeat regions. Templates are treated as opaque text by the domain
// layer; only the injector interprets their structure.
type Template struct {
	Name string `json:"name"`
	HTML string `json:"html"`
}

// Validate returns an error if the template contains invalid fields.
func (t *Template) Validate() error {
	if t.Name == "" {
		return Errorf(EINVALID, "template name required")
	}
	if t.HTML == "" {
		return Errorf(EINVALID, "template %q has no content", t.Name)
	}
	return nil
}

// TemplateService loads template skeletons from a catalog.
type TemplateService interface {
	// FindTemplateByName retrieves a template by name.
	// Returns ENOTFOUND if no such template exists.
	FindTemplateByName(ctx context.Context, name string) (*Template, error)

	// FindTemplates lists all available templates.
	FindTemplates(ctx context.Context) ([]*Template, error)
}
