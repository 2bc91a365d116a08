package mock

import (
	"context"

	"github.com/jilee1212/sitegen"
)

var _ sitegen.GenerationService = (*GenerationService)(nil)

// GenerationService is a mock implementation of sitegen.GenerationService.
type GenerationService struct {
	CreateGenerationFn   func(ctx context.Context, g *sitegen.Generation) error
	FindGenerationByIDFn func(ctx context.Context, id string) (*sitegen.Generation, error)
	FindGenerationsFn    func(ctx context.Context, filter sitegen.GenerationFilter) ([]*sitegen.Generation, error)
	DeleteGenerationFn   func(ctx context.Context, id string) error
}

func (s *GenerationService) CreateGeneration(ctx context.Context, g *sitegen.Generation) error {
	return s.CreateGenerationFn(ctx, g)
}

func (s *GenerationService) FindGenerationByID(ctx context.Context, id string) (*sitegen.Generation, error) {
	return s.FindGenerationByIDFn(ctx, id)
}

func (s *GenerationService) FindGenerations(ctx context.Context, filter sitegen.GenerationFilter) ([]*sitegen.Generation, error) {
	return s.FindGenerationsFn(ctx, filter)
}

func (s *GenerationService) DeleteGeneration(ctx context.Context, id string) error {
	return s.DeleteGenerationFn(ctx, id)
}
