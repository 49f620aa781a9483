// Package storage aggregates one repository per entity kind behind the
// single value handlers are given. When a database handle exists each
// repository is the durable backend wrapped with an in-memory fallback;
// without one (no DATABASE_URL) the in-memory backend serves alone.
package storage

import (
	"context"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/brickprod/callsheet-api/internal/models"
	"github.com/brickprod/callsheet-api/internal/repository"
)

type Storage struct {
	Projects    repository.Repository[models.Project, models.InsertProject, models.ProjectPatch]
	CallSheets  repository.Repository[models.CallSheet, models.InsertCallSheet, models.CallSheetPatch]
	Templates   repository.Repository[models.Template, models.InsertTemplate, models.TemplatePatch]
	TeamMembers repository.Repository[models.TeamMember, models.InsertTeamMember, models.TeamMemberPatch]

	db  *gorm.DB
	log zerolog.Logger
}

// New builds the facade. db may be nil, which means fallback-only operation.
// Construct once at process start and pass into route registration.
func New(db *gorm.DB, log zerolog.Logger) *Storage {
	return &Storage{
		Projects:    build[models.Project, models.InsertProject, models.ProjectPatch](db, log, models.NewProjectFromInsert),
		CallSheets:  build[models.CallSheet, models.InsertCallSheet, models.CallSheetPatch](db, log, models.NewCallSheetFromInsert),
		Templates:   build[models.Template, models.InsertTemplate, models.TemplatePatch](db, log, models.NewTemplateFromInsert),
		TeamMembers: build[models.TeamMember, models.InsertTeamMember, models.TeamMemberPatch](db, log, models.NewTeamMemberFromInsert),
		db:          db,
		log:         log,
	}
}

func build[T repository.Entity, I any, P repository.Patch[T]](db *gorm.DB, log zerolog.Logger, prepare func(I) T) repository.Repository[T, I, P] {
	memory := repository.NewMemory[T, I, P](prepare)
	if db == nil {
		return memory
	}
	return repository.WithFallback[T, I, P](repository.NewDatabase[T, I, P](db, prepare), memory, log)
}

// TemplatesByCategory filters by exact string equality on category: a
// store-side query when the database answers, a filter over List otherwise.
// Both paths produce the same logical result.
func (s *Storage) TemplatesByCategory(ctx context.Context, category string) ([]models.Template, error) {
	if s.db != nil {
		templates := []models.Template{}
		err := s.db.WithContext(ctx).Where("category = ?", category).Find(&templates).Error
		if err == nil {
			return templates, nil
		}
		s.log.Warn().Err(err).Msg("database error, filtering templates from fallback")
	}

	all, err := s.Templates.List(ctx)
	if err != nil {
		return nil, err
	}
	out := []models.Template{}
	for _, t := range all {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out, nil
}

// DefaultTemplates returns templates flagged as defaults.
func (s *Storage) DefaultTemplates(ctx context.Context) ([]models.Template, error) {
	if s.db != nil {
		templates := []models.Template{}
		err := s.db.WithContext(ctx).Where("is_default = ?", true).Find(&templates).Error
		if err == nil {
			return templates, nil
		}
		s.log.Warn().Err(err).Msg("database error, filtering templates from fallback")
	}

	all, err := s.Templates.List(ctx)
	if err != nil {
		return nil, err
	}
	out := []models.Template{}
	for _, t := range all {
		if t.IsDefault {
			out = append(out, t)
		}
	}
	return out, nil
}
