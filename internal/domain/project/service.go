package project

import (
	"context"
	"strings"
	"time"

	"titan-server/internal/domain/events"
	"titan-server/internal/domain/query"
	"titan-server/internal/utils/platformerrors"
)

const maxNameLength = 200

// Service handles business logic for projects.
type Service struct {
	repo        Repository
	broadcaster events.Broadcaster
}

// NewService creates a new project service.
func NewService(repo Repository, broadcaster events.Broadcaster) *Service {
	return &Service{
		repo:        repo,
		broadcaster: broadcaster,
	}
}

// Create validates and persists a project, then broadcasts project.created.
func (s *Service) Create(ctx context.Context, proj *Project) (*Project, error) {
	if err := validateName(ctx, proj.Name); err != nil {
		return nil, err
	}
	if err := validatePriority(ctx, proj.Priority); err != nil {
		return nil, err
	}
	if err := validateProgress(ctx, proj.Progress); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, proj); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to create project")
	}

	s.broadcaster.Broadcast(events.ProjectCreated, proj)
	return proj, nil
}

// GetByPublicID retrieves a project by public ID.
func (s *Service) GetByPublicID(ctx context.Context, publicID string) (*Project, error) {
	proj, err := s.repo.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "project not found")
	}
	return proj, nil
}

// List retrieves projects with pagination, newest first by default.
func (s *Service) List(ctx context.Context, filter Filter, pagination *query.Pagination) ([]*Project, int64, error) {
	projects, total, err := s.repo.List(ctx, filter, pagination)
	if err != nil {
		return nil, 0, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to list projects")
	}
	return projects, total, nil
}

// UpdateInput carries partial project updates. Nil fields are left untouched.
type UpdateInput struct {
	Name            *string
	Description     *string
	Status          *Status
	Progress        *float64
	Priority        *int
	AutonomyEnabled *bool
}

// Update applies a partial update and broadcasts project.updated.
func (s *Service) Update(ctx context.Context, publicID string, input UpdateInput) (*Project, error) {
	proj, err := s.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if err := validateName(ctx, name); err != nil {
			return nil, err
		}
		proj.Name = name
	}
	if input.Description != nil {
		proj.Description = *input.Description
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
				"invalid project status", nil, "")
		}
		proj.Status = *input.Status
	}
	if input.Progress != nil {
		if err := validateProgress(ctx, *input.Progress); err != nil {
			return nil, err
		}
		proj.Progress = *input.Progress
	}
	if input.Priority != nil {
		if err := validatePriority(ctx, *input.Priority); err != nil {
			return nil, err
		}
		proj.Priority = *input.Priority
	}
	if input.AutonomyEnabled != nil {
		proj.AutonomyEnabled = *input.AutonomyEnabled
	}

	proj.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, proj); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to update project")
	}

	s.broadcaster.Broadcast(events.ProjectUpdated, proj)
	return proj, nil
}

// Delete soft deletes a project. Children keep their rows; cascading is not
// automatic.
func (s *Service) Delete(ctx context.Context, publicID string) error {
	if err := s.repo.Delete(ctx, publicID); err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to delete project")
	}

	s.broadcaster.Broadcast(events.ProjectDeleted, map[string]string{"id": publicID})
	return nil
}

func validateName(ctx context.Context, name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"project name is required", nil, "")
	}
	if len(trimmed) > maxNameLength {
		return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"project name exceeds maximum length", nil, "")
	}
	return nil
}

func validatePriority(ctx context.Context, priority int) error {
	if priority < PriorityMin || priority > PriorityMax {
		return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"project priority out of range", nil, "")
	}
	return nil
}

func validateProgress(ctx context.Context, progress float64) error {
	if progress < 0 || progress > 100 {
		return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"project progress out of range", nil, "")
	}
	return nil
}
