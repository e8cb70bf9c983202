package webaccountrepo

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"titan-server/internal/domain/query"
	"titan-server/internal/domain/webaccount"
	"titan-server/internal/infrastructure/database/dbschema"
	"titan-server/internal/utils/platformerrors"
)

type WebAccountGormRepository struct {
	db *gorm.DB
}

var _ webaccount.Repository = (*WebAccountGormRepository)(nil)

func NewWebAccountGormRepository(db *gorm.DB) webaccount.Repository {
	return &WebAccountGormRepository{db: db}
}

// Create implements webaccount.Repository.
func (repo *WebAccountGormRepository) Create(ctx context.Context, account *webaccount.Account) error {
	dbAccount := dbschema.WebAccountDtoE(account)
	if err := repo.db.WithContext(ctx).Create(dbAccount).Error; err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to create web account")
	}
	account.ID = dbAccount.ID
	account.CreatedAt = dbAccount.CreatedAt
	account.UpdatedAt = dbAccount.UpdatedAt
	return nil
}

// GetByPublicID implements webaccount.Repository.
func (repo *WebAccountGormRepository) GetByPublicID(ctx context.Context, publicID string) (*webaccount.Account, error) {
	var dbAccount dbschema.WebAccount
	err := repo.db.WithContext(ctx).
		Where("public_id = ?", publicID).
		First(&dbAccount).Error

	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to find web account by public ID")
	}
	return dbAccount.EtoD(), nil
}

// GetByPlatformAndUsername implements webaccount.Repository.
func (repo *WebAccountGormRepository) GetByPlatformAndUsername(ctx context.Context, platform, username string) (*webaccount.Account, error) {
	var dbAccount dbschema.WebAccount
	err := repo.db.WithContext(ctx).
		Where("platform = ? AND username = ?", platform, username).
		First(&dbAccount).Error

	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to find web account by platform and username")
	}
	return dbAccount.EtoD(), nil
}

// List implements webaccount.Repository.
func (repo *WebAccountGormRepository) List(ctx context.Context, filter webaccount.Filter, pagination *query.Pagination) ([]*webaccount.Account, int64, error) {
	baseQuery := repo.db.WithContext(ctx).Model(&dbschema.WebAccount{})
	if filter.PersonaID != nil {
		baseQuery = baseQuery.Where("persona_id = ?", *filter.PersonaID)
	}
	if filter.Platform != nil {
		baseQuery = baseQuery.Where("platform = ?", *filter.Platform)
	}

	var total int64
	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to count web accounts")
	}

	listQuery := baseQuery
	if pagination != nil {
		if pagination.Descending() {
			listQuery = listQuery.Order("created_at DESC")
		} else {
			listQuery = listQuery.Order("created_at ASC")
		}
		if pagination.Limit != nil && *pagination.Limit > 0 {
			listQuery = listQuery.Limit(*pagination.Limit)
		}
		if pagination.Offset != nil && *pagination.Offset > 0 {
			listQuery = listQuery.Offset(*pagination.Offset)
		}
	} else {
		listQuery = listQuery.Order("created_at DESC")
	}

	var rows []dbschema.WebAccount
	if err := listQuery.Find(&rows).Error; err != nil {
		return nil, 0, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to list web accounts")
	}

	result := make([]*webaccount.Account, len(rows))
	for i, row := range rows {
		result[i] = row.EtoD()
	}
	return result, total, nil
}

// Delete implements webaccount.Repository.
func (repo *WebAccountGormRepository) Delete(ctx context.Context, publicID string) error {
	result := repo.db.WithContext(ctx).
		Where("public_id = ?", publicID).
		Delete(&dbschema.WebAccount{})

	if result.Error != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerRepository, result.Error, "failed to delete web account")
	}

	if result.RowsAffected == 0 {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound, fmt.Sprintf("web account %s not found", publicID), nil, "")
	}

	return nil
}
