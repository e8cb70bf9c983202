// Package roadmap holds the child collections of a project: features,
// milestones and goals. All three share the list/create/update/delete shape
// and differ only in fields.
package roadmap

import (
	"context"
	"time"
)

// ===============================================
// Feature
// ===============================================

type FeatureStatus string

const (
	FeaturePlanned    FeatureStatus = "planned"
	FeatureInProgress FeatureStatus = "in_progress"
	FeatureDone       FeatureStatus = "done"
)

func (s FeatureStatus) Valid() bool {
	switch s {
	case FeaturePlanned, FeatureInProgress, FeatureDone:
		return true
	}
	return false
}

const (
	PriorityMin     = 0
	PriorityMax     = 3
	PriorityDefault = 1
)

type Feature struct {
	ID          uint          `json:"-"`
	PublicID    string        `json:"id"`
	ProjectID   uint          `json:"-"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Status      FeatureStatus `json:"status"`
	Priority    int           `json:"priority"` // 0..3
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// ===============================================
// Milestone
// ===============================================

type Milestone struct {
	ID          uint       `json:"-"`
	PublicID    string     `json:"id"`
	ProjectID   uint       `json:"-"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Completed   bool       `json:"completed"`
	// CompletedAt is set when Completed flips true and cleared when it
	// flips back.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// SetCompleted flips the completion flag, maintaining CompletedAt.
func (m *Milestone) SetCompleted(completed bool) {
	if completed == m.Completed {
		return
	}
	m.Completed = completed
	if completed {
		now := time.Now()
		m.CompletedAt = &now
	} else {
		m.CompletedAt = nil
	}
}

// ===============================================
// Goal
// ===============================================

type Goal struct {
	ID           uint      `json:"-"`
	PublicID     string    `json:"id"`
	ProjectID    uint      `json:"-"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	TargetValue  float64   `json:"target_value"`
	CurrentValue float64   `json:"current_value"`
	Unit         string    `json:"unit,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Progress derives the goal's completion percentage, clamped to [0,100].
// Never stored; computed on read paths.
func (g *Goal) Progress() float64 {
	if g.TargetValue <= 0 {
		return 0
	}
	progress := g.CurrentValue / g.TargetValue * 100
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}

// ===============================================
// Repositories
// ===============================================

type FeatureRepository interface {
	Create(ctx context.Context, f *Feature) error
	GetByPublicID(ctx context.Context, publicID string) (*Feature, error)
	ListByProjectID(ctx context.Context, projectID uint) ([]*Feature, error)
	Update(ctx context.Context, f *Feature) error
	Delete(ctx context.Context, publicID string) error
}

type MilestoneRepository interface {
	Create(ctx context.Context, m *Milestone) error
	GetByPublicID(ctx context.Context, publicID string) (*Milestone, error)
	ListByProjectID(ctx context.Context, projectID uint) ([]*Milestone, error)
	Update(ctx context.Context, m *Milestone) error
	Delete(ctx context.Context, publicID string) error
}

type GoalRepository interface {
	Create(ctx context.Context, g *Goal) error
	GetByPublicID(ctx context.Context, publicID string) (*Goal, error)
	ListByProjectID(ctx context.Context, projectID uint) ([]*Goal, error)
	Update(ctx context.Context, g *Goal) error
	Delete(ctx context.Context, publicID string) error
}
