package project

import (
	"context"
	"time"

	"titan-server/internal/domain/query"
)

// ===============================================
// Project Types
// ===============================================

// Status is the coarse lifecycle state of a project. Transitions are
// free-form among the four states.
type Status string

const (
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
	StatusArchived  Status = "archived"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusPaused, StatusCompleted, StatusArchived:
		return true
	}
	return false
}

const (
	PriorityMin     = 1
	PriorityMax     = 10
	PriorityDefault = 5
)

// Project groups personas and roadmap items under one initiative.
type Project struct {
	ID          uint   `json:"-"`
	PublicID    string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Status      Status `json:"status"`
	// Progress is a coarse manually-set completion percentage, 0..100.
	Progress float64 `json:"progress"`
	// Priority ranks projects 1..10, higher is more important.
	Priority int `json:"priority"`
	// AutonomyEnabled gates the autonomy scheduler for personas owned by
	// this project.
	AutonomyEnabled bool      `json:"autonomy_enabled"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ===============================================
// Project Repository
// ===============================================

type Filter struct {
	Status *Status
}

type Repository interface {
	Create(ctx context.Context, proj *Project) error
	GetByPublicID(ctx context.Context, publicID string) (*Project, error)
	GetByID(ctx context.Context, id uint) (*Project, error)
	List(ctx context.Context, filter Filter, pagination *query.Pagination) ([]*Project, int64, error)
	Update(ctx context.Context, proj *Project) error
	Delete(ctx context.Context, publicID string) error
}

// ===============================================
// Project Factory
// ===============================================

// New creates a project in the active state with the default priority.
func New(publicID, name, description string) *Project {
	now := time.Now()
	return &Project{
		PublicID:    publicID,
		Name:        name,
		Description: description,
		Status:      StatusActive,
		Priority:    PriorityDefault,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
