package contentres

import (
	"time"

	"github.com/shopspring/decimal"

	"titan-server/internal/domain/content"
)

// EngagementResponse mirrors the item engagement counters
type EngagementResponse struct {
	Views       int             `json:"views"`
	Likes       int             `json:"likes"`
	Comments    int             `json:"comments"`
	Conversions int             `json:"conversions"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// ContentResponse represents a single content item response
type ContentResponse struct {
	ID           string             `json:"id"`
	Object       string             `json:"object"`
	Title        string             `json:"title"`
	Body         string             `json:"body,omitempty"`
	ContentType  string             `json:"content_type"`
	Status       string             `json:"status"`
	ScheduledFor *time.Time         `json:"scheduled_for,omitempty"`
	PublishedAt  *int64             `json:"published_at,omitempty"`
	Engagement   EngagementResponse `json:"engagement"`
	CreatedAt    int64              `json:"created_at"`
	UpdatedAt    int64              `json:"updated_at"`
}

// ContentListResponse represents a paginated list of content items
type ContentListResponse struct {
	Object  string            `json:"object"`
	Data    []ContentResponse `json:"data"`
	HasMore bool              `json:"has_more"`
	Total   int64             `json:"total"`
}

// ContentDeletedResponse represents the delete confirmation response
type ContentDeletedResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Deleted bool   `json:"deleted"`
}

// NewContentResponse creates a response from a domain item
func NewContentResponse(item *content.Item) *ContentResponse {
	resp := &ContentResponse{
		ID:           item.PublicID,
		Object:       "content",
		Title:        item.Title,
		Body:         item.Body,
		ContentType:  string(item.ContentType),
		Status:       string(item.Status),
		ScheduledFor: item.ScheduledFor,
		Engagement: EngagementResponse{
			Views:       item.Engagement.Views,
			Likes:       item.Engagement.Likes,
			Comments:    item.Engagement.Comments,
			Conversions: item.Engagement.Conversions,
			Revenue:     item.Engagement.Revenue,
		},
		CreatedAt: item.CreatedAt.Unix(),
		UpdatedAt: item.UpdatedAt.Unix(),
	}

	if item.PublishedAt != nil {
		publishedUnix := item.PublishedAt.Unix()
		resp.PublishedAt = &publishedUnix
	}

	return resp
}

// NewContentListResponse creates a list response from domain items
func NewContentListResponse(items []*content.Item, hasMore bool, total int64) *ContentListResponse {
	data := make([]ContentResponse, len(items))
	for i, item := range items {
		data[i] = *NewContentResponse(item)
	}

	return &ContentListResponse{
		Object:  "list",
		Data:    data,
		HasMore: hasMore,
		Total:   total,
	}
}

// NewContentDeletedResponse creates a delete response
func NewContentDeletedResponse(publicID string) *ContentDeletedResponse {
	return &ContentDeletedResponse{
		ID:      publicID,
		Object:  "content",
		Deleted: true,
	}
}
