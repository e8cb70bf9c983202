package projectrepo

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"titan-server/internal/domain/project"
	"titan-server/internal/domain/query"
	"titan-server/internal/infrastructure/database/dbschema"
	"titan-server/internal/utils/platformerrors"
)

type ProjectGormRepository struct {
	db *gorm.DB
}

var _ project.Repository = (*ProjectGormRepository)(nil)

func NewProjectGormRepository(db *gorm.DB) project.Repository {
	return &ProjectGormRepository{db: db}
}

// Create implements project.Repository.
func (repo *ProjectGormRepository) Create(ctx context.Context, proj *project.Project) error {
	dbProject := dbschema.ProjectDtoE(proj)
	if err := repo.db.WithContext(ctx).Create(dbProject).Error; err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to create project")
	}
	proj.ID = dbProject.ID
	proj.CreatedAt = dbProject.CreatedAt
	proj.UpdatedAt = dbProject.UpdatedAt
	return nil
}

// GetByPublicID implements project.Repository.
func (repo *ProjectGormRepository) GetByPublicID(ctx context.Context, publicID string) (*project.Project, error) {
	var dbProject dbschema.Project
	err := repo.db.WithContext(ctx).
		Where("public_id = ?", publicID).
		First(&dbProject).Error

	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to find project by public ID")
	}
	return dbProject.EtoD(), nil
}

// GetByID implements project.Repository.
func (repo *ProjectGormRepository) GetByID(ctx context.Context, id uint) (*project.Project, error) {
	var dbProject dbschema.Project
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&dbProject).Error

	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to find project by ID")
	}
	return dbProject.EtoD(), nil
}

// List implements project.Repository.
func (repo *ProjectGormRepository) List(ctx context.Context, filter project.Filter, pagination *query.Pagination) ([]*project.Project, int64, error) {
	baseQuery := repo.db.WithContext(ctx).Model(&dbschema.Project{})
	if filter.Status != nil {
		baseQuery = baseQuery.Where("status = ?", string(*filter.Status))
	}

	var total int64
	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to count projects")
	}

	listQuery := applyPagination(baseQuery, pagination)

	var rows []dbschema.Project
	if err := listQuery.Find(&rows).Error; err != nil {
		return nil, 0, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to list projects")
	}

	result := make([]*project.Project, len(rows))
	for i, row := range rows {
		result[i] = row.EtoD()
	}
	return result, total, nil
}

// Update implements project.Repository.
func (repo *ProjectGormRepository) Update(ctx context.Context, proj *project.Project) error {
	dbProject := dbschema.ProjectDtoE(proj)
	dbProject.UpdatedAt = time.Now()

	err := repo.db.WithContext(ctx).Model(&dbschema.Project{}).
		Where("public_id = ?", proj.PublicID).
		Updates(map[string]interface{}{
			"name":             dbProject.Name,
			"description":      dbProject.Description,
			"status":           dbProject.Status,
			"autonomy_enabled": dbProject.AutonomyEnabled,
			"updated_at":       dbProject.UpdatedAt,
		}).Error

	if err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to update project")
	}

	proj.UpdatedAt = dbProject.UpdatedAt
	return nil
}

// Delete implements project.Repository.
func (repo *ProjectGormRepository) Delete(ctx context.Context, publicID string) error {
	result := repo.db.WithContext(ctx).
		Where("public_id = ?", publicID).
		Delete(&dbschema.Project{})

	if result.Error != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerRepository, result.Error, "failed to delete project")
	}

	if result.RowsAffected == 0 {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound, fmt.Sprintf("project %s not found", publicID), nil, "")
	}

	return nil
}

// applyPagination applies keyset and ordering options shared by the list
// queries in this package. Ordering is by updated_at with id as keyset anchor.
func applyPagination(db *gorm.DB, pagination *query.Pagination) *gorm.DB {
	if pagination == nil {
		return db.Order("updated_at DESC")
	}

	if pagination.After != nil {
		if pagination.Descending() {
			db = db.Where("id < ?", *pagination.After)
		} else {
			db = db.Where("id > ?", *pagination.After)
		}
	}

	if pagination.Descending() {
		db = db.Order("updated_at DESC")
	} else {
		db = db.Order("updated_at ASC")
	}

	if pagination.Limit != nil && *pagination.Limit > 0 {
		db = db.Limit(*pagination.Limit)
	}
	if pagination.Offset != nil && *pagination.Offset > 0 {
		db = db.Offset(*pagination.Offset)
	}

	return db
}
