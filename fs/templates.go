package fs

import (
	"context"
	_ "embed"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jilee1212/sitegen"
)

// DefaultTemplateName is always available, even without a template
// directory.
const DefaultTemplateName = "default"

//go:embed default.html
var defaultTemplateHTML string

// Ensure TemplateService implements sitegen.TemplateService at compile time.
var _ sitegen.TemplateService = (*TemplateService)(nil)

// TemplateService loads template skeletons from a directory of .html
// files. The embedded corporate skeleton is served as "default" when the
// directory has no file of that name, so zero-config runs work.
type TemplateService struct {
	dir string
}

// NewTemplateService creates a TemplateService. An empty dir serves only
// the embedded default template.
func NewTemplateService(dir string) *TemplateService {
	return &TemplateService{dir: dir}
}

// FindTemplateByName retrieves a template by name.
func (s *TemplateService) FindTemplateByName(ctx context.Context, name string) (*sitegen.Template, error) {
	if name == "" {
		name = DefaultTemplateName
	}

	if s.dir != "" {
		content, err := os.ReadFile(filepath.Join(s.dir, name+".html"))
		if err == nil {
			return &sitegen.Template{Name: name, HTML: string(content)}, nil
		}
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	if name == DefaultTemplateName {
		return &sitegen.Template{Name: DefaultTemplateName, HTML: defaultTemplateHTML}, nil
	}
	return nil, sitegen.Errorf(sitegen.ENOTFOUND, "template %q not found", name)
}

// FindTemplates lists all available templates, sorted by name.
func (s *TemplateService) FindTemplates(ctx context.Context) ([]*sitegen.Template, error) {
	templates := map[string]*sitegen.Template{
		DefaultTemplateName: {Name: DefaultTemplateName, HTML: defaultTemplateHTML},
	}

	if s.dir != "" {
		entries, err := os.ReadDir(s.dir)
		if err != nil && !os.IsNotExist(err) {
			return nil, err
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
				continue
			}
			name := strings.TrimSuffix(entry.Name(), ".html")
			content, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
			if err != nil {
				return nil, err
			}
			templates[name] = &sitegen.Template{Name: name, HTML: string(content)}
		}
	}

	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]*sitegen.Template, 0, len(names))
	for _, name := range names {
		out = append(out, templates[name])
	}
	return out, nil
}
