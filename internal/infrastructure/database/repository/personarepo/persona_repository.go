package personarepo

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"titan-server/internal/domain/persona"
	"titan-server/internal/domain/query"
	"titan-server/internal/infrastructure/database/dbschema"
	"titan-server/internal/utils/platformerrors"
)

type PersonaGormRepository struct {
	db *gorm.DB
}

var _ persona.Repository = (*PersonaGormRepository)(nil)

func NewPersonaGormRepository(db *gorm.DB) persona.Repository {
	return &PersonaGormRepository{db: db}
}

// Create implements persona.Repository.
func (repo *PersonaGormRepository) Create(ctx context.Context, p *persona.Persona) error {
	dbPersona := dbschema.PersonaDtoE(p)
	if err := repo.db.WithContext(ctx).Create(dbPersona).Error; err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to create persona")
	}
	p.ID = dbPersona.ID
	p.CreatedAt = dbPersona.CreatedAt
	p.UpdatedAt = dbPersona.UpdatedAt
	return nil
}

// GetByPublicID implements persona.Repository.
func (repo *PersonaGormRepository) GetByPublicID(ctx context.Context, publicID string) (*persona.Persona, error) {
	var dbPersona dbschema.Persona
	err := repo.db.WithContext(ctx).
		Where("public_id = ?", publicID).
		First(&dbPersona).Error

	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to find persona by public ID")
	}
	return dbPersona.EtoD(), nil
}

// GetByID implements persona.Repository.
func (repo *PersonaGormRepository) GetByID(ctx context.Context, id uint) (*persona.Persona, error) {
	var dbPersona dbschema.Persona
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&dbPersona).Error

	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to find persona by ID")
	}
	return dbPersona.EtoD(), nil
}

// List implements persona.Repository.
func (repo *PersonaGormRepository) List(ctx context.Context, filter persona.Filter, pagination *query.Pagination) ([]*persona.Persona, int64, error) {
	baseQuery := repo.db.WithContext(ctx).Model(&dbschema.Persona{})
	if filter.ProjectID != nil {
		baseQuery = baseQuery.Where("project_id = ?", *filter.ProjectID)
	}
	if filter.Active != nil {
		baseQuery = baseQuery.Where("active = ?", *filter.Active)
	}

	var total int64
	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to count personas")
	}

	listQuery := baseQuery
	if pagination != nil {
		if pagination.After != nil {
			if pagination.Descending() {
				listQuery = listQuery.Where("id < ?", *pagination.After)
			} else {
				listQuery = listQuery.Where("id > ?", *pagination.After)
			}
		}

		if pagination.Descending() {
			listQuery = listQuery.Order("updated_at DESC")
		} else {
			listQuery = listQuery.Order("updated_at ASC")
		}

		if pagination.Limit != nil && *pagination.Limit > 0 {
			listQuery = listQuery.Limit(*pagination.Limit)
		}
		if pagination.Offset != nil && *pagination.Offset > 0 {
			listQuery = listQuery.Offset(*pagination.Offset)
		}
	} else {
		listQuery = listQuery.Order("updated_at DESC")
	}

	var rows []dbschema.Persona
	if err := listQuery.Find(&rows).Error; err != nil {
		return nil, 0, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to list personas")
	}

	result := make([]*persona.Persona, len(rows))
	for i, row := range rows {
		result[i] = row.EtoD()
	}
	return result, total, nil
}

// ListAutonomous implements persona.Repository. A persona without an owning
// project qualifies on its own flag; one with a project also needs the
// project's autonomy gate open.
func (repo *PersonaGormRepository) ListAutonomous(ctx context.Context) ([]*persona.Persona, error) {
	var rows []dbschema.Persona
	err := repo.db.WithContext(ctx).
		Joins("LEFT JOIN titan.projects ON titan.projects.id = titan.personas.project_id").
		Where("titan.personas.active = ? AND titan.personas.autonomy_enabled = ?", true, true).
		Where("titan.personas.project_id IS NULL OR (titan.projects.autonomy_enabled = ? AND titan.projects.deleted_at IS NULL)", true).
		Find(&rows).Error

	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to list autonomous personas")
	}

	result := make([]*persona.Persona, len(rows))
	for i, row := range rows {
		result[i] = row.EtoD()
	}
	return result, nil
}

// Update implements persona.Repository.
func (repo *PersonaGormRepository) Update(ctx context.Context, p *persona.Persona) error {
	dbPersona := dbschema.PersonaDtoE(p)
	dbPersona.UpdatedAt = time.Now()

	err := repo.db.WithContext(ctx).Model(&dbschema.Persona{}).
		Where("public_id = ?", p.PublicID).
		Updates(map[string]interface{}{
			"project_id":              dbPersona.ProjectID,
			"name":                    dbPersona.Name,
			"archetype":               dbPersona.Archetype,
			"bio":                     dbPersona.Bio,
			"avatar_url":              dbPersona.AvatarURL,
			"active":                  dbPersona.Active,
			"behavior_tone":           dbPersona.BehaviorTone,
			"behavior_style":          dbPersona.BehaviorStyle,
			"behavior_vocabulary":     dbPersona.BehaviorVocabulary,
			"behavior_guidelines":     dbPersona.BehaviorGuidelines,
			"behavior_responsiveness": dbPersona.BehaviorResponsiveness,
			"autonomy_enabled":        dbPersona.AutonomyEnabled,
			"autonomy_level":          dbPersona.AutonomyLevel,
			"autonomy_permissions":    dbPersona.AutonomyPermissions,
			"autonomy_history":        dbPersona.AutonomyHistory,
			"updated_at":              dbPersona.UpdatedAt,
		}).Error

	if err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to update persona")
	}

	p.UpdatedAt = dbPersona.UpdatedAt
	return nil
}

// UpdateStats implements persona.Repository. Only the stats columns move;
// updated_at is left alone so stat churn does not reorder persona lists.
func (repo *PersonaGormRepository) UpdateStats(ctx context.Context, id uint, stats persona.Stats) error {
	err := repo.db.WithContext(ctx).Model(&dbschema.Persona{}).
		Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"stats_message_count":        stats.MessageCount,
			"stats_response_rate":        stats.ResponseRate,
			"stats_avg_response_seconds": stats.AvgResponseSeconds,
			"stats_total_income":         stats.TotalIncome,
			"stats_content_created":      stats.ContentCreated,
			"stats_content_published":    stats.ContentPublished,
			"stats_conversion_rate":      stats.ConversionRate,
			"stats_last_activity_at":     stats.LastActivityAt,
		}).Error

	if err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to update persona stats")
	}
	return nil
}

// Delete implements persona.Repository.
func (repo *PersonaGormRepository) Delete(ctx context.Context, publicID string) error {
	result := repo.db.WithContext(ctx).
		Where("public_id = ?", publicID).
		Delete(&dbschema.Persona{})

	if result.Error != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerRepository, result.Error, "failed to delete persona")
	}

	if result.RowsAffected == 0 {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound, fmt.Sprintf("persona %s not found", publicID), nil, "")
	}

	return nil
}
