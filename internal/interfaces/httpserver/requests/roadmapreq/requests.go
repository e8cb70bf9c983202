package roadmapreq

import "time"

// CreateFeatureRequest represents the request to create a roadmap feature
type CreateFeatureRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
	Priority    *int   `json:"priority,omitempty"`
}

// UpdateFeatureRequest represents the request to update a roadmap feature
type UpdateFeatureRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	Priority    *int    `json:"priority,omitempty"`
}

// CreateMilestoneRequest represents the request to create a milestone
type CreateMilestoneRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Completed   bool       `json:"completed,omitempty"`
}

// UpdateMilestoneRequest represents the request to update a milestone
type UpdateMilestoneRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Completed   *bool      `json:"completed,omitempty"`
}

// CreateGoalRequest represents the request to create a goal
type CreateGoalRequest struct {
	Title        string  `json:"title" binding:"required"`
	Description  string  `json:"description,omitempty"`
	TargetValue  float64 `json:"target_value,omitempty"`
	CurrentValue float64 `json:"current_value,omitempty"`
	Unit         string  `json:"unit,omitempty"`
}

// UpdateGoalRequest represents the request to update a goal
type UpdateGoalRequest struct {
	Title        *string  `json:"title,omitempty"`
	Description  *string  `json:"description,omitempty"`
	TargetValue  *float64 `json:"target_value,omitempty"`
	CurrentValue *float64 `json:"current_value,omitempty"`
	Unit         *string  `json:"unit,omitempty"`
}
