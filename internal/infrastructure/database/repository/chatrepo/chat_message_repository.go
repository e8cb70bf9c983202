package chatrepo

import (
	"context"

	"gorm.io/gorm"

	"titan-server/internal/domain/chat"
	"titan-server/internal/domain/query"
	"titan-server/internal/infrastructure/database/dbschema"
	"titan-server/internal/utils/platformerrors"
)

type ChatMessageGormRepository struct {
	db *gorm.DB
}

var _ chat.Repository = (*ChatMessageGormRepository)(nil)

func NewChatMessageGormRepository(db *gorm.DB) chat.Repository {
	return &ChatMessageGormRepository{db: db}
}

// Create implements chat.Repository.
func (repo *ChatMessageGormRepository) Create(ctx context.Context, msg *chat.Message) error {
	dbMessage := dbschema.ChatMessageDtoE(msg)
	if err := repo.db.WithContext(ctx).Create(dbMessage).Error; err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to create chat message")
	}
	msg.ID = dbMessage.ID
	msg.CreatedAt = dbMessage.CreatedAt
	return nil
}

// ListRecent implements chat.Repository. It fetches the newest limit rows and
// reverses them so callers get chronological order.
func (repo *ChatMessageGormRepository) ListRecent(ctx context.Context, personaID uint, limit int) ([]*chat.Message, error) {
	var rows []dbschema.ChatMessage
	err := repo.db.WithContext(ctx).
		Where("persona_id = ?", personaID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&rows).Error

	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to list recent chat messages")
	}

	result := make([]*chat.Message, len(rows))
	for i, row := range rows {
		result[len(rows)-1-i] = row.EtoD()
	}
	return result, nil
}

// ListByPersonaID implements chat.Repository.
func (repo *ChatMessageGormRepository) ListByPersonaID(ctx context.Context, personaID uint, pagination *query.Pagination) ([]*chat.Message, int64, error) {
	baseQuery := repo.db.WithContext(ctx).
		Model(&dbschema.ChatMessage{}).
		Where("persona_id = ?", personaID)

	var total int64
	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to count chat messages")
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

	var rows []dbschema.ChatMessage
	if err := listQuery.Find(&rows).Error; err != nil {
		return nil, 0, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to list chat messages")
	}

	result := make([]*chat.Message, len(rows))
	for i, row := range rows {
		result[i] = row.EtoD()
	}
	return result, total, nil
}

// CountByPersonaID implements chat.Repository.
func (repo *ChatMessageGormRepository) CountByPersonaID(ctx context.Context, personaID uint) (int64, error) {
	var total int64
	err := repo.db.WithContext(ctx).
		Model(&dbschema.ChatMessage{}).
		Where("persona_id = ?", personaID).
		Count(&total).Error

	if err != nil {
		return 0, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to count chat messages")
	}
	return total, nil
}
