package dbschema

import (
	"time"

	"github.com/shopspring/decimal"

	"titan-server/internal/domain/content"
	"titan-server/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(ContentItem{})
}

// ContentItem represents the database schema for persona content
type ContentItem struct {
	BaseModel
	PublicID              string `gorm:"uniqueIndex;size:64;not null"`
	PersonaID             uint   `gorm:"index;not null"`
	Title                 string `gorm:"size:255;not null"`
	Body                  string `gorm:"type:text"`
	ContentType           string `gorm:"size:16;not null;default:'post'"`
	Status                string `gorm:"size:16;not null;default:'draft';index"`
	ScheduledFor          *time.Time
	PublishedAt           *time.Time
	EngagementViews       int             `gorm:"not null;default:0"`
	EngagementLikes       int             `gorm:"not null;default:0"`
	EngagementComments    int             `gorm:"not null;default:0"`
	EngagementConversions int             `gorm:"not null;default:0"`
	EngagementRevenue     decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
}

// TableName specifies the table name for ContentItem
func (ContentItem) TableName() string {
	return "titan.content_items"
}

// EtoD converts database schema to domain content item (Entity to Domain)
func (c *ContentItem) EtoD() *content.Item {
	return &content.Item{
		ID:           c.ID,
		PublicID:     c.PublicID,
		PersonaID:    c.PersonaID,
		Title:        c.Title,
		Body:         c.Body,
		ContentType:  content.ContentType(c.ContentType),
		Status:       content.Status(c.Status),
		ScheduledFor: c.ScheduledFor,
		PublishedAt:  c.PublishedAt,
		Engagement: content.Engagement{
			Views:       c.EngagementViews,
			Likes:       c.EngagementLikes,
			Comments:    c.EngagementComments,
			Conversions: c.EngagementConversions,
			Revenue:     c.EngagementRevenue,
		},
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ContentItemDtoE converts domain content item to database schema (Domain to Entity)
func ContentItemDtoE(item *content.Item) *ContentItem {
	schema := &ContentItem{
		PublicID:          item.PublicID,
		PersonaID:         item.PersonaID,
		Title:             item.Title,
		Body:              item.Body,
		ContentType:       string(item.ContentType),
		Status:            string(item.Status),
		ScheduledFor:      item.ScheduledFor,
		PublishedAt:       item.PublishedAt,
		EngagementViews:       item.Engagement.Views,
		EngagementLikes:       item.Engagement.Likes,
		EngagementComments:    item.Engagement.Comments,
		EngagementConversions: item.Engagement.Conversions,
		EngagementRevenue:     item.Engagement.Revenue,
	}
	schema.ID = item.ID
	return schema
}
