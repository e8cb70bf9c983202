package contentreq

import "time"

// CreateContentRequest represents the request to create a content item. An
// empty title is derived from the body.
type CreateContentRequest struct {
	Title        string     `json:"title,omitempty"`
	Body         string     `json:"body,omitempty"`
	ContentType  string     `json:"content_type,omitempty"`
	Status       string     `json:"status,omitempty"`
	ScheduledFor *time.Time `json:"scheduled_for,omitempty"`
}

// UpdateContentRequest represents the request to update a content item.
// Status moves through the transition endpoint instead.
type UpdateContentRequest struct {
	Title        *string    `json:"title,omitempty"`
	Body         *string    `json:"body,omitempty"`
	ContentType  *string    `json:"content_type,omitempty"`
	ScheduledFor *time.Time `json:"scheduled_for,omitempty"`
}

// TransitionRequest represents the request to move an item between statuses
type TransitionRequest struct {
	Status string `json:"status" binding:"required"`
}

// EngagementRequest represents an engagement delta for an item
type EngagementRequest struct {
	Views       int    `json:"views,omitempty"`
	Likes       int    `json:"likes,omitempty"`
	Comments    int    `json:"comments,omitempty"`
	Conversions int    `json:"conversions,omitempty"`
	Revenue     string `json:"revenue,omitempty"`
}
