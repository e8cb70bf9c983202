package content

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"titan-server/internal/domain/query"
)

// ===============================================
// Content Types
// ===============================================

type ContentType string

const (
	TypePost      ContentType = "post"
	TypeStory     ContentType = "story"
	TypeReel      ContentType = "reel"
	TypeMessage   ContentType = "message"
	TypePromotion ContentType = "promotion"
)

func (t ContentType) Valid() bool {
	switch t {
	case TypePost, TypeStory, TypeReel, TypeMessage, TypePromotion:
		return true
	}
	return false
}

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPending   Status = "pending"
	StatusPublished Status = "published"
	StatusRejected  Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusPending, StatusPublished, StatusRejected:
		return true
	}
	return false
}

// CanTransitionTo encodes the status machine:
//
//	draft   -> pending
//	pending -> published | rejected | draft (withdraw)
//	published and rejected are terminal
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusDraft:
		return next == StatusPending
	case StatusPending:
		return next == StatusPublished || next == StatusRejected || next == StatusDraft
	default:
		return false
	}
}

// Engagement carries per-item metrics; all non-negative.
type Engagement struct {
	Views       int             `json:"views"`
	Likes       int             `json:"likes"`
	Comments    int             `json:"comments"`
	Conversions int             `json:"conversions"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// Item is a piece of content owned by a persona.
type Item struct {
	ID           uint        `json:"-"`
	PublicID     string      `json:"id"`
	PersonaID    uint        `json:"-"`
	Title        string      `json:"title"`
	Body         string      `json:"body,omitempty"`
	ContentType  ContentType `json:"content_type"`
	Status       Status      `json:"status"`
	ScheduledFor *time.Time  `json:"scheduled_for,omitempty"`
	PublishedAt  *time.Time  `json:"published_at,omitempty"`
	Engagement   Engagement  `json:"engagement"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// ===============================================
// Content Repository
// ===============================================

type Filter struct {
	PersonaID *uint
	Status    *Status
}

type Repository interface {
	Create(ctx context.Context, item *Item) error
	GetByPublicID(ctx context.Context, publicID string) (*Item, error)
	List(ctx context.Context, filter Filter, pagination *query.Pagination) ([]*Item, int64, error)
	Update(ctx context.Context, item *Item) error
	Delete(ctx context.Context, publicID string) error
	// CountPublished returns total published items and how many of them
	// carry revenue, for the persona's conversion rate.
	CountPublished(ctx context.Context, personaID uint) (published int64, withRevenue int64, err error)
}
