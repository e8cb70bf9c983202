package projectreq

// CreateProjectRequest represents the request to create a project
type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description,omitempty"`
	Priority    *int   `json:"priority,omitempty"`
}

// UpdateProjectRequest represents the request to update a project
type UpdateProjectRequest struct {
	Name            *string  `json:"name,omitempty"`
	Description     *string  `json:"description,omitempty"`
	Status          *string  `json:"status,omitempty"`
	Progress        *float64 `json:"progress,omitempty"`
	Priority        *int     `json:"priority,omitempty"`
	AutonomyEnabled *bool    `json:"autonomy_enabled,omitempty"`
}
