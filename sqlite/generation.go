package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jilee1212/sitegen"
)

// Compile-time interface verification.
var _ sitegen.GenerationService = (*GenerationService)(nil)

// GenerationService implements sitegen.GenerationService using SQLite.
type GenerationService struct {
	db *DB
}

// NewGenerationService creates a new GenerationService.
func NewGenerationService(db *DB) *GenerationService {
	return &GenerationService{db: db}
}

// CreateGeneration records a completed generation.
func (s *GenerationService) CreateGeneration(ctx context.Context, g *sitegen.Generation) error {
	if err := g.Validate(); err != nil {
		return err
	}

	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	g.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO generations (id, company_name, template_name, sections, services, team_members, images, confidence, output_path, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, g.ID, g.CompanyName, g.TemplateName, strings.Join(g.Sections, ","),
		g.Services, g.TeamMembers, g.Images, g.Confidence, g.OutputPath,
		g.CreatedAt.Format(time.RFC3339))

	return err
}

// FindGenerationByID retrieves a generation by ID.
func (s *GenerationService) FindGenerationByID(ctx context.Context, id string) (*sitegen.Generation, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, company_name, template_name, sections, services, team_members, images, confidence, output_path, created_at
		FROM generations
		WHERE id = ?
	`, id)

	g, err := scanGeneration(row.Scan)
	if err == sql.ErrNoRows {
		return nil, sitegen.Errorf(sitegen.ENOTFOUND, "generation not found")
	}
	return g, err
}

// FindGenerations retrieves generations matching the filter, newest first.
func (s *GenerationService) FindGenerations(ctx context.Context, filter sitegen.GenerationFilter) ([]*sitegen.Generation, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, company_name, template_name, sections, services, team_members, images, confidence, output_path, created_at FROM generations WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.CompanyName != nil {
		query.WriteString(" AND company_name = ?")
		args = append(args, *filter.CompanyName)
	}

	query.WriteString(" ORDER BY created_at DESC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var generations []*sitegen.Generation
	for rows.Next() {
		g, err := scanGeneration(rows.Scan)
		if err != nil {
			return nil, err
		}
		generations = append(generations, g)
	}

	return generations, rows.Err()
}

// DeleteGeneration permanently removes a generation record.
func (s *GenerationService) DeleteGeneration(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM generations WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return sitegen.Errorf(sitegen.ENOTFOUND, "generation not found")
	}

	return nil
}

// scanGeneration maps one row onto a Generation.
func scanGeneration(scan func(dest ...any) error) (*sitegen.Generation, error) {
	var g sitegen.Generation
	var sections, createdAt string

	if err := scan(&g.ID, &g.CompanyName, &g.TemplateName, &sections,
		&g.Services, &g.TeamMembers, &g.Images, &g.Confidence, &g.OutputPath,
		&createdAt); err != nil {
		return nil, err
	}

	if sections != "" {
		g.Sections = strings.Split(sections, ",")
	}

	var parseErr error
	g.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAt)
	if parseErr != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", parseErr)
	}

	return &g, nil
}
