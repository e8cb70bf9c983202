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

type FeatureGormRepository struct {
	db *gorm.DB
}

var _ roadmap.FeatureRepository = (*FeatureGormRepository)(nil)

func NewFeatureGormRepository(db *gorm.DB) roadmap.FeatureRepository {
	return &FeatureGormRepository{db: db}
}

// Create implements roadmap.FeatureRepository.
func (repo *FeatureGormRepository) Create(ctx context.Context, f *roadmap.Feature) error {
	dbFeature := dbschema.FeatureDtoE(f)
	if err := repo.db.WithContext(ctx).Create(dbFeature).Error; err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to create feature")
	}
	f.ID = dbFeature.ID
	f.CreatedAt = dbFeature.CreatedAt
	f.UpdatedAt = dbFeature.UpdatedAt
	return nil
}

// GetByPublicID implements roadmap.FeatureRepository.
func (repo *FeatureGormRepository) GetByPublicID(ctx context.Context, publicID string) (*roadmap.Feature, error) {
	var dbFeature dbschema.Feature
	err := repo.db.WithContext(ctx).
		Where("public_id = ?", publicID).
		First(&dbFeature).Error

	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to find feature by public ID")
	}
	return dbFeature.EtoD(), nil
}

// ListByProjectID implements roadmap.FeatureRepository. Features come back
// highest priority first, newest first within a priority.
func (repo *FeatureGormRepository) ListByProjectID(ctx context.Context, projectID uint) ([]*roadmap.Feature, error) {
	var rows []dbschema.Feature
	err := repo.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("priority DESC, created_at DESC").
		Find(&rows).Error

	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to list features")
	}

	result := make([]*roadmap.Feature, len(rows))
	for i, row := range rows {
		result[i] = row.EtoD()
	}
	return result, nil
}

// Update implements roadmap.FeatureRepository.
func (repo *FeatureGormRepository) Update(ctx context.Context, f *roadmap.Feature) error {
	dbFeature := dbschema.FeatureDtoE(f)
	dbFeature.UpdatedAt = time.Now()

	err := repo.db.WithContext(ctx).Model(&dbschema.Feature{}).
		Where("public_id = ?", f.PublicID).
		Updates(map[string]interface{}{
			"title":       dbFeature.Title,
			"description": dbFeature.Description,
			"status":      dbFeature.Status,
			"priority":    dbFeature.Priority,
			"updated_at":  dbFeature.UpdatedAt,
		}).Error

	if err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to update feature")
	}

	f.UpdatedAt = dbFeature.UpdatedAt
	return nil
}

// Delete implements roadmap.FeatureRepository.
func (repo *FeatureGormRepository) Delete(ctx context.Context, publicID string) error {
	result := repo.db.WithContext(ctx).
		Where("public_id = ?", publicID).
		Delete(&dbschema.Feature{})

	if result.Error != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerRepository, result.Error, "failed to delete feature")
	}

	if result.RowsAffected == 0 {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound, fmt.Sprintf("feature %s not found", publicID), nil, "")
	}

	return nil
}
