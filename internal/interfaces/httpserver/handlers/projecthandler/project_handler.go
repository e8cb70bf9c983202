package projecthandler

import (
	"context"
	"strings"

	"titan-server/internal/domain/project"
	"titan-server/internal/domain/query"
	"titan-server/internal/interfaces/httpserver/requests/projectreq"
	"titan-server/internal/interfaces/httpserver/responses/projectres"
	"titan-server/internal/utils/idgen"
	"titan-server/internal/utils/platformerrors"
)

type ProjectHandler struct {
	projectService *project.Service
}

func NewProjectHandler(projectService *project.Service) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// CreateProject creates a new project
func (h *ProjectHandler) CreateProject(
	ctx context.Context,
	req projectreq.CreateProjectRequest,
) (*projectres.ProjectResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Description = strings.TrimSpace(req.Description)

	publicID, err := idgen.GenerateSecureID("proj", 16)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to generate project ID")
	}

	proj := project.New(publicID, req.Name, req.Description)
	if req.Priority != nil {
		proj.Priority = *req.Priority
	}

	proj, err = h.projectService.Create(ctx, proj)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to create project")
	}

	return projectres.NewProjectResponse(proj), nil
}

// GetProject retrieves a single project
func (h *ProjectHandler) GetProject(
	ctx context.Context,
	projectID string,
) (*projectres.ProjectResponse, error) {
	proj, err := h.projectService.GetByPublicID(ctx, projectID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to get project")
	}

	return projectres.NewProjectResponse(proj), nil
}

// ListProjects lists projects with an optional status filter
func (h *ProjectHandler) ListProjects(
	ctx context.Context,
	status string,
	pagination *query.Pagination,
) (*projectres.ProjectListResponse, error) {
	filter := project.Filter{}
	if status != "" {
		st := project.Status(status)
		if !st.Valid() {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerHandler, platformerrors.ErrorTypeValidation,
				"invalid status filter", nil, "")
		}
		filter.Status = &st
	}

	// Fetch limit+1 to determine hasMore
	var requestedLimit *int
	if pagination != nil && pagination.Limit != nil {
		requestedLimit = pagination.Limit
		extraLimit := *pagination.Limit + 1
		pagination.Limit = &extraLimit
	}

	projects, total, err := h.projectService.List(ctx, filter, pagination)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to list projects")
	}

	hasMore := false
	if requestedLimit != nil && len(projects) > *requestedLimit {
		hasMore = true
		projects = projects[:*requestedLimit]
	}

	return projectres.NewProjectListResponse(projects, hasMore, total), nil
}

// UpdateProject updates a project
func (h *ProjectHandler) UpdateProject(
	ctx context.Context,
	projectID string,
	req projectreq.UpdateProjectRequest,
) (*projectres.ProjectResponse, error) {
	input := project.UpdateInput{
		Name:            req.Name,
		Description:     req.Description,
		Progress:        req.Progress,
		Priority:        req.Priority,
		AutonomyEnabled: req.AutonomyEnabled,
	}
	if req.Status != nil {
		st := project.Status(*req.Status)
		input.Status = &st
	}

	proj, err := h.projectService.Update(ctx, projectID, input)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to update project")
	}

	return projectres.NewProjectResponse(proj), nil
}

// DeleteProject deletes a project
func (h *ProjectHandler) DeleteProject(
	ctx context.Context,
	projectID string,
) (*projectres.ProjectDeletedResponse, error) {
	if err := h.projectService.Delete(ctx, projectID); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to delete project")
	}

	return projectres.NewProjectDeletedResponse(projectID), nil
}
