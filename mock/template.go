package mock

import (
	"context"

	"github.com/jilee1212/sitegen"
)

var _ sitegen.TemplateService = (*TemplateService)(nil)

// TemplateService is a mock implementation of sitegen.TemplateService.
type TemplateService struct {
	FindTemplateByNameFn func(ctx context.Context, name string) (*sitegen.Template, error)
	FindTemplatesFn      func(ctx context.Context) ([]*sitegen.Template, error)
}

func (s *TemplateService) FindTemplateByName(ctx context.Context, name string) (*sitegen.Template, error) {
	return s.FindTemplateByNameFn(ctx, name)
}

func (s *TemplateService) FindTemplates(ctx context.Context) ([]*sitegen.Template, error) {
	return s.FindTemplatesFn(ctx)
}
