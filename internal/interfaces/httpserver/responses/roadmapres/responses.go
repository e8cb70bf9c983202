package roadmapres

import (
	"time"

	"titan-server/internal/domain/roadmap"
)

// FeatureResponse represents a single feature response
type FeatureResponse struct {
	ID          string `json:"id"`
	Object      string `json:"object"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
	Priority    int    `json:"priority"`
	CreatedAt   int64  `json:"created_at"`
	UpdatedAt   int64  `json:"updated_at"`
}

// MilestoneResponse represents a single milestone response
type MilestoneResponse struct {
	ID          string     `json:"id"`
	Object      string     `json:"object"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Completed   bool       `json:"completed"`
	CompletedAt *int64     `json:"completed_at,omitempty"`
	CreatedAt   int64      `json:"created_at"`
	UpdatedAt   int64      `json:"updated_at"`
}

// GoalResponse represents a single goal response with derived progress
type GoalResponse struct {
	ID           string  `json:"id"`
	Object       string  `json:"object"`
	Title        string  `json:"title"`
	Description  string  `json:"description,omitempty"`
	TargetValue  float64 `json:"target_value"`
	CurrentValue float64 `json:"current_value"`
	Unit         string  `json:"unit,omitempty"`
	Progress     float64 `json:"progress"`
	CreatedAt    int64   `json:"created_at"`
	UpdatedAt    int64   `json:"updated_at"`
}

// ListResponse is the shared list envelope for roadmap collections
type ListResponse[T any] struct {
	Object string `json:"object"`
	Data   []T    `json:"data"`
	Total  int64  `json:"total"`
}

// DeletedResponse represents the delete confirmation response
type DeletedResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Deleted bool   `json:"deleted"`
}

func NewFeatureResponse(f *roadmap.Feature) *FeatureResponse {
	return &FeatureResponse{
		ID:          f.PublicID,
		Object:      "feature",
		Title:       f.Title,
		Description: f.Description,
		Status:      string(f.Status),
		Priority:    f.Priority,
		CreatedAt:   f.CreatedAt.Unix(),
		UpdatedAt:   f.UpdatedAt.Unix(),
	}
}

func NewFeatureListResponse(features []*roadmap.Feature) *ListResponse[FeatureResponse] {
	data := make([]FeatureResponse, len(features))
	for i, f := range features {
		data[i] = *NewFeatureResponse(f)
	}
	return &ListResponse[FeatureResponse]{Object: "list", Data: data, Total: int64(len(data))}
}

func NewMilestoneResponse(m *roadmap.Milestone) *MilestoneResponse {
	resp := &MilestoneResponse{
		ID:          m.PublicID,
		Object:      "milestone",
		Title:       m.Title,
		Description: m.Description,
		DueDate:     m.DueDate,
		Completed:   m.Completed,
		CreatedAt:   m.CreatedAt.Unix(),
		UpdatedAt:   m.UpdatedAt.Unix(),
	}
	if m.CompletedAt != nil {
		completedUnix := m.CompletedAt.Unix()
		resp.CompletedAt = &completedUnix
	}
	return resp
}

func NewMilestoneListResponse(milestones []*roadmap.Milestone) *ListResponse[MilestoneResponse] {
	data := make([]MilestoneResponse, len(milestones))
	for i, m := range milestones {
		data[i] = *NewMilestoneResponse(m)
	}
	return &ListResponse[MilestoneResponse]{Object: "list", Data: data, Total: int64(len(data))}
}

func NewGoalResponse(g *roadmap.Goal) *GoalResponse {
	return &GoalResponse{
		ID:           g.PublicID,
		Object:       "goal",
		Title:        g.Title,
		Description:  g.Description,
		TargetValue:  g.TargetValue,
		CurrentValue: g.CurrentValue,
		Unit:         g.Unit,
		Progress:     g.Progress(),
		CreatedAt:    g.CreatedAt.Unix(),
		UpdatedAt:    g.UpdatedAt.Unix(),
	}
}

func NewGoalListResponse(goals []*roadmap.Goal) *ListResponse[GoalResponse] {
	data := make([]GoalResponse, len(goals))
	for i, g := range goals {
		data[i] = *NewGoalResponse(g)
	}
	return &ListResponse[GoalResponse]{Object: "list", Data: data, Total: int64(len(data))}
}

func NewDeletedResponse(publicID, object string) *DeletedResponse {
	return &DeletedResponse{
		ID:      publicID,
		Object:  object,
		Deleted: true,
	}
}
