package roadmaprepo

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"titan-server/internal/domain/roadmap"
	"titan-server/internal/infrastructure/database/dbschema"
	"titan-server/internal/utils/platformerrors"
)

type MilestoneGormRepository struct {
	db *gorm.DB
}

var _ roadmap.MilestoneRepository = (*MilestoneGormRepository)(nil)

func NewMilestoneGormRepository(db *gorm.DB) roadmap.MilestoneRepository {
	return &MilestoneGormRepository{db: db}
}

// Create implements roadmap.MilestoneRepository.
func (repo *MilestoneGormRepository) Create(ctx context.Context, m *roadmap.Milestone) error {
	dbMilestone := dbschema.MilestoneDtoE(m)
	if err := repo.db.WithContext(ctx).Create(dbMilestone).Error; err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to create milestone")
	}
	m.ID = dbMilestone.ID
	m.CreatedAt = dbMilestone.CreatedAt
	m.UpdatedAt = dbMilestone.UpdatedAt
	return nil
}

// GetByPublicID implements roadmap.MilestoneRepository.
func (repo *MilestoneGormRepository) GetByPublicID(ctx context.Context, publicID string) (*roadmap.Milestone, error) {
	var dbMilestone dbschema.Milestone
	err := repo.db.WithContext(ctx).
		Where("public_id = ?", publicID).
		First(&dbMilestone).Error

	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to find milestone by public ID")
	}
	return dbMilestone.EtoD(), nil
}

// ListByProjectID implements roadmap.MilestoneRepository. Milestones with a
// due date come first in due order; undated ones follow by creation time.
func (repo *MilestoneGormRepository) ListByProjectID(ctx context.Context, projectID uint) ([]*roadmap.Milestone, error) {
	var rows []dbschema.Milestone
	err := repo.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("due_date ASC NULLS LAST, created_at ASC").
		Find(&rows).Error

	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to list milestones")
	}

	result := make([]*roadmap.Milestone, len(rows))
	for i, row := range rows {
		result[i] = row.EtoD()
	}
	return result, nil
}

// Update implements roadmap.MilestoneRepository.
func (repo *MilestoneGormRepository) Update(ctx context.Context, m *roadmap.Milestone) error {
	dbMilestone := dbschema.MilestoneDtoE(m)
	dbMilestone.UpdatedAt = time.Now()

	err := repo.db.WithContext(ctx).Model(&dbschema.Milestone{}).
		Where("public_id = ?", m.PublicID).
		Updates(map[string]interface{}{
			"title":        dbMilestone.Title,
			"description":  dbMilestone.Description,
			"due_date":     dbMilestone.DueDate,
			"completed":    dbMilestone.Completed,
			"completed_at": dbMilestone.CompletedAt,
			"updated_at":   dbMilestone.UpdatedAt,
		}).Error

	if err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to update milestone")
	}

	m.UpdatedAt = dbMilestone.UpdatedAt
	return nil
}

// Delete implements roadmap.MilestoneRepository.
func (repo *MilestoneGormRepository) Delete(ctx context.Context, publicID string) error {
	result := repo.db.WithContext(ctx).
		Where("public_id = ?", publicID).
		Delete(&dbschema.Milestone{})

	if result.Error != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerRepository, result.Error, "failed to delete milestone")
	}

	if result.RowsAffected == 0 {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound, fmt.Sprintf("milestone %s not found", publicID), nil, "")
	}

	return nil
}
