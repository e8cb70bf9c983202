package projectres

import (
	"titan-server/internal/domain/project"
)

// ProjectResponse represents a single project response
type ProjectResponse struct {
	ID              string  `json:"id"`
	Object          string  `json:"object"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	Status          string  `json:"status"`
	Progress        float64 `json:"progress"`
	Priority        int     `json:"priority"`
	AutonomyEnabled bool    `json:"autonomy_enabled"`
	CreatedAt       int64   `json:"created_at"`
	UpdatedAt       int64   `json:"updated_at"`
}

// ProjectListResponse represents a paginated list of projects
type ProjectListResponse struct {
	Object  string            `json:"object"`
	Data    []ProjectResponse `json:"data"`
	HasMore bool              `json:"has_more"`
	Total   int64             `json:"total"`
}

// ProjectDeletedResponse represents the delete confirmation response
type ProjectDeletedResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Deleted bool   `json:"deleted"`
}

// NewProjectResponse creates a response from a domain project
func NewProjectResponse(proj *project.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:              proj.PublicID,
		Object:          "project",
		Name:            proj.Name,
		Description:     proj.Description,
		Status:          string(proj.Status),
		Progress:        proj.Progress,
		Priority:        proj.Priority,
		AutonomyEnabled: proj.AutonomyEnabled,
		CreatedAt:       proj.CreatedAt.Unix(),
		UpdatedAt:       proj.UpdatedAt.Unix(),
	}
}

// NewProjectListResponse creates a list response from domain projects
func NewProjectListResponse(projects []*project.Project, hasMore bool, total int64) *ProjectListResponse {
	data := make([]ProjectResponse, len(projects))
	for i, proj := range projects {
		data[i] = *NewProjectResponse(proj)
	}

	return &ProjectListResponse{
		Object:  "list",
		Data:    data,
		HasMore: hasMore,
		Total:   total,
	}
}

// NewProjectDeletedResponse creates a delete response
func NewProjectDeletedResponse(publicID string) *ProjectDeletedResponse {
	return &ProjectDeletedResponse{
		ID:      publicID,
		Object:  "project",
		Deleted: true,
	}
}
