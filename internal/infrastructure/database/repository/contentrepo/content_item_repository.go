package contentrepo

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"titan-server/internal/domain/content"
	"titan-server/internal/domain/query"
	"titan-server/internal/infrastructure/database/dbschema"
	"titan-server/internal/utils/platformerrors"
)

type ContentItemGormRepository struct {
	db *gorm.DB
}

var _ content.Repository = (*ContentItemGormRepository)(nil)

func NewContentItemGormRepository(db *gorm.DB) content.Repository {
	return &ContentItemGormRepository{db: db}
}

// Create implements content.Repository.
func (repo *ContentItemGormRepository) Create(ctx context.Context, item *content.Item) error {
	dbItem := dbschema.ContentItemDtoE(item)
	if err := repo.db.WithContext(ctx).Create(dbItem).Error; err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to create content item")
	}
	item.ID = dbItem.ID
	item.CreatedAt = dbItem.CreatedAt
	item.UpdatedAt = dbItem.UpdatedAt
	return nil
}

// GetByPublicID implements content.Repository.
func (repo *ContentItemGormRepository) GetByPublicID(ctx context.Context, publicID string) (*content.Item, error) {
	var dbItem dbschema.ContentItem
	err := repo.db.WithContext(ctx).
		Where("public_id = ?", publicID).
		First(&dbItem).Error

	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to find content item by public ID")
	}
	return dbItem.EtoD(), nil
}

// List implements content.Repository.
func (repo *ContentItemGormRepository) List(ctx context.Context, filter content.Filter, pagination *query.Pagination) ([]*content.Item, int64, error) {
	baseQuery := repo.db.WithContext(ctx).Model(&dbschema.ContentItem{})
	if filter.PersonaID != nil {
		baseQuery = baseQuery.Where("persona_id = ?", *filter.PersonaID)
	}
	if filter.Status != nil {
		baseQuery = baseQuery.Where("status = ?", string(*filter.Status))
	}

	var total int64
	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to count content items")
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
			listQuery = listQuery.Order("created_at DESC, id DESC")
		} else {
			listQuery = listQuery.Order("created_at ASC, id ASC")
		}

		if pagination.Limit != nil && *pagination.Limit > 0 {
			listQuery = listQuery.Limit(*pagination.Limit)
		}
		if pagination.Offset != nil && *pagination.Offset > 0 {
			listQuery = listQuery.Offset(*pagination.Offset)
		}
	} else {
		listQuery = listQuery.Order("created_at DESC, id DESC")
	}

	var rows []dbschema.ContentItem
	if err := listQuery.Find(&rows).Error; err != nil {
		return nil, 0, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to list content items")
	}

	result := make([]*content.Item, len(rows))
	for i, row := range rows {
		result[i] = row.EtoD()
	}
	return result, total, nil
}

// Update implements content.Repository.
func (repo *ContentItemGormRepository) Update(ctx context.Context, item *content.Item) error {
	dbItem := dbschema.ContentItemDtoE(item)
	dbItem.UpdatedAt = time.Now()

	err := repo.db.WithContext(ctx).Model(&dbschema.ContentItem{}).
		Where("public_id = ?", item.PublicID).
		Updates(map[string]interface{}{
			"title":              dbItem.Title,
			"body":               dbItem.Body,
			"content_type":       dbItem.ContentType,
			"status":             dbItem.Status,
			"scheduled_for":      dbItem.ScheduledFor,
			"published_at":       dbItem.PublishedAt,
			"engagement_views":   dbItem.EngagementViews,
			"engagement_likes":   dbItem.EngagementLikes,
			"engagement_revenue": dbItem.EngagementRevenue,
			"updated_at":         dbItem.UpdatedAt,
		}).Error

	if err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to update content item")
	}

	item.UpdatedAt = dbItem.UpdatedAt
	return nil
}

// Delete implements content.Repository.
func (repo *ContentItemGormRepository) Delete(ctx context.Context, publicID string) error {
	result := repo.db.WithContext(ctx).
		Where("public_id = ?", publicID).
		Delete(&dbschema.ContentItem{})

	if result.Error != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerRepository, result.Error, "failed to delete content item")
	}

	if result.RowsAffected == 0 {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound, fmt.Sprintf("content item %s not found", publicID), nil, "")
	}

	return nil
}

// CountPublished implements content.Repository.
func (repo *ContentItemGormRepository) CountPublished(ctx context.Context, personaID uint) (int64, int64, error) {
	base := repo.db.WithContext(ctx).
		Model(&dbschema.ContentItem{}).
		Where("persona_id = ? AND status = ?", personaID, string(content.StatusPublished))

	var published int64
	if err := base.Session(&gorm.Session{}).Count(&published).Error; err != nil {
		return 0, 0, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to count published content")
	}

	var withRevenue int64
	if err := base.Session(&gorm.Session{}).Where("engagement_revenue > 0").Count(&withRevenue).Error; err != nil {
		return 0, 0, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to count revenue content")
	}

	return published, withRevenue, nil
}
