package sitegen

import (
	"context"
	"time"
)

// Generation records one completed pipeline run.
type Generation struct {
	ID           string    `json:"id"`
	CompanyName  string    `json:"companyName"`
	TemplateName string    `json:"templateName"`
	Sections     []string  `json:"sections"`
	Services     int       `json:"services"`
	TeamMembers  int       `json:"teamMembers"`
	Images       int       `json:"images"`
	Confidence   float64   `json:"confidence"`
	OutputPath   string    `json:"outputPath"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Validate returns an error if the generation contains invalid fields.
func (g *Generation) Validate() error {
	if g.TemplateName == "" {
		return Errorf(EINVALID, "generation template name required")
	}
	return nil
}

// GenerationService manages the generation history.
type GenerationService interface {
	// CreateGeneration records a completed generation.
	CreateGeneration(ctx context.Context, g *Generation) error

	// FindGenerationByID retrieves a generation by ID.
	// Returns ENOTFOUND if it does not exist.
	FindGenerationByID(ctx context.Context, id string) (*Generation, error)

	// FindGenerations retrieves generations matching the filter, newest
	// first.
	FindGenerations(ctx context.Context, filter GenerationFilter) ([]*Generation, error)

	// DeleteGeneration permanently removes a generation record.
	// Returns ENOTFOUND if it does not exist.
	DeleteGeneration(ctx context.Context, id string) error
}

// GenerationFilter represents a filter for FindGenerations.
type GenerationFilter struct {
	ID          *string `json:"id"`
	CompanyName *string `json:"companyName"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
