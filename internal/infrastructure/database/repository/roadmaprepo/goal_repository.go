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

type GoalGormRepository struct {
	db *gorm.DB
}

var _ roadmap.GoalRepository = (*GoalGormRepository)(nil)

func NewGoalGormRepository(db *gorm.DB) roadmap.GoalRepository {
	return &GoalGormRepository{db: db}
}

// Create implements roadmap.GoalRepository.
func (repo *GoalGormRepository) Create(ctx context.Context, g *roadmap.Goal) error {
	dbGoal := dbschema.GoalDtoE(g)
	if err := repo.db.WithContext(ctx).Create(dbGoal).Error; err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to create goal")
	}
	g.ID = dbGoal.ID
	g.CreatedAt = dbGoal.CreatedAt
	g.UpdatedAt = dbGoal.UpdatedAt
	return nil
}

// GetByPublicID implements roadmap.GoalRepository.
func (repo *GoalGormRepository) GetByPublicID(ctx context.Context, publicID string) (*roadmap.Goal, error) {
	var dbGoal dbschema.Goal
	err := repo.db.WithContext(ctx).
		Where("public_id = ?", publicID).
		First(&dbGoal).Error

	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to find goal by public ID")
	}
	return dbGoal.EtoD(), nil
}

// ListByProjectID implements roadmap.GoalRepository.
func (repo *GoalGormRepository) ListByProjectID(ctx context.Context, projectID uint) ([]*roadmap.Goal, error) {
	var rows []dbschema.Goal
	err := repo.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&rows).Error

	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to list goals")
	}

	result := make([]*roadmap.Goal, len(rows))
	for i, row := range rows {
		result[i] = row.EtoD()
	}
	return result, nil
}

// Update implements roadmap.GoalRepository.
func (repo *GoalGormRepository) Update(ctx context.Context, g *roadmap.Goal) error {
	dbGoal := dbschema.GoalDtoE(g)
	dbGoal.UpdatedAt = time.Now()

	err := repo.db.WithContext(ctx).Model(&dbschema.Goal{}).
		Where("public_id = ?", g.PublicID).
		Updates(map[string]interface{}{
			"title":         dbGoal.Title,
			"description":   dbGoal.Description,
			"target_value":  dbGoal.TargetValue,
			"current_value": dbGoal.CurrentValue,
			"unit":          dbGoal.Unit,
			"updated_at":    dbGoal.UpdatedAt,
		}).Error

	if err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to update goal")
	}

	g.UpdatedAt = dbGoal.UpdatedAt
	return nil
}

// Delete implements roadmap.GoalRepository.
func (repo *GoalGormRepository) Delete(ctx context.Context, publicID string) error {
	result := repo.db.WithContext(ctx).
		Where("public_id = ?", publicID).
		Delete(&dbschema.Goal{})

	if result.Error != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerRepository, result.Error, "failed to delete goal")
	}

	if result.RowsAffected == 0 {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound, fmt.Sprintf("goal %s not found", publicID), nil, "")
	}

	return nil
}
