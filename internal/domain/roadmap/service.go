package roadmap

import (
	"context"
	"strings"
	"time"

	"titan-server/internal/domain/project"
	"titan-server/internal/utils/platformerrors"
)

// Service handles business logic for roadmap items. Every list/create call
// resolves the owning project first so a dangling project ID surfaces as a
// not_found instead of an empty result.
type Service struct {
	projects   project.Repository
	features   FeatureRepository
	milestones MilestoneRepository
	goals      GoalRepository
}

// NewService creates a new roadmap service.
func NewService(
	projects project.Repository,
	features FeatureRepository,
	milestones MilestoneRepository,
	goals GoalRepository,
) *Service {
	return &Service{
		projects:   projects,
		features:   features,
		milestones: milestones,
		goals:      goals,
	}
}

func (s *Service) resolveProject(ctx context.Context, projectPublicID string) (*project.Project, error) {
	proj, err := s.projects.GetByPublicID(ctx, projectPublicID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "project not found")
	}
	return proj, nil
}

func validateTitle(ctx context.Context, title string) (string, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "", platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"title is required", nil, "")
	}
	return trimmed, nil
}

// ===============================================
// Features
// ===============================================

func (s *Service) CreateFeature(ctx context.Context, projectPublicID string, f *Feature) (*Feature, error) {
	proj, err := s.resolveProject(ctx, projectPublicID)
	if err != nil {
		return nil, err
	}

	title, err := validateTitle(ctx, f.Title)
	if err != nil {
		return nil, err
	}
	f.Title = title
	f.ProjectID = proj.ID

	if f.Status == "" {
		f.Status = FeaturePlanned
	}
	if !f.Status.Valid() {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"invalid feature status", nil, "")
	}
	if f.Priority < PriorityMin || f.Priority > PriorityMax {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"feature priority out of range", nil, "")
	}

	if err := s.features.Create(ctx, f); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to create feature")
	}
	return f, nil
}

func (s *Service) ListFeatures(ctx context.Context, projectPublicID string) ([]*Feature, error) {
	proj, err := s.resolveProject(ctx, projectPublicID)
	if err != nil {
		return nil, err
	}

	features, err := s.features.ListByProjectID(ctx, proj.ID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to list features")
	}
	return features, nil
}

// FeatureUpdateInput carries partial feature updates.
type FeatureUpdateInput struct {
	Title       *string
	Description *string
	Status      *FeatureStatus
	Priority    *int
}

func (s *Service) UpdateFeature(ctx context.Context, publicID string, input FeatureUpdateInput) (*Feature, error) {
	f, err := s.features.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "feature not found")
	}

	if input.Title != nil {
		title, err := validateTitle(ctx, *input.Title)
		if err != nil {
			return nil, err
		}
		f.Title = title
	}
	if input.Description != nil {
		f.Description = *input.Description
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
				"invalid feature status", nil, "")
		}
		f.Status = *input.Status
	}
	if input.Priority != nil {
		if *input.Priority < PriorityMin || *input.Priority > PriorityMax {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
				"feature priority out of range", nil, "")
		}
		f.Priority = *input.Priority
	}

	f.UpdatedAt = time.Now()
	if err := s.features.Update(ctx, f); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to update feature")
	}
	return f, nil
}

func (s *Service) DeleteFeature(ctx context.Context, publicID string) error {
	if err := s.features.Delete(ctx, publicID); err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to delete feature")
	}
	return nil
}

// ===============================================
// Milestones
// ===============================================

func (s *Service) CreateMilestone(ctx context.Context, projectPublicID string, m *Milestone) (*Milestone, error) {
	proj, err := s.resolveProject(ctx, projectPublicID)
	if err != nil {
		return nil, err
	}

	title, err := validateTitle(ctx, m.Title)
	if err != nil {
		return nil, err
	}
	m.Title = title
	m.ProjectID = proj.ID

	if m.Completed && m.CompletedAt == nil {
		now := time.Now()
		m.CompletedAt = &now
	}

	if err := s.milestones.Create(ctx, m); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to create milestone")
	}
	return m, nil
}

func (s *Service) ListMilestones(ctx context.Context, projectPublicID string) ([]*Milestone, error) {
	proj, err := s.resolveProject(ctx, projectPublicID)
	if err != nil {
		return nil, err
	}

	milestones, err := s.milestones.ListByProjectID(ctx, proj.ID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to list milestones")
	}
	return milestones, nil
}

// MilestoneUpdateInput carries partial milestone updates.
type MilestoneUpdateInput struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	Completed   *bool
}

func (s *Service) UpdateMilestone(ctx context.Context, publicID string, input MilestoneUpdateInput) (*Milestone, error) {
	m, err := s.milestones.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "milestone not found")
	}

	if input.Title != nil {
		title, err := validateTitle(ctx, *input.Title)
		if err != nil {
			return nil, err
		}
		m.Title = title
	}
	if input.Description != nil {
		m.Description = *input.Description
	}
	if input.DueDate != nil {
		m.DueDate = input.DueDate
	}
	if input.Completed != nil {
		m.SetCompleted(*input.Completed)
	}

	m.UpdatedAt = time.Now()
	if err := s.milestones.Update(ctx, m); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to update milestone")
	}
	return m, nil
}

func (s *Service) DeleteMilestone(ctx context.Context, publicID string) error {
	if err := s.milestones.Delete(ctx, publicID); err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to delete milestone")
	}
	return nil
}

// ===============================================
// Goals
// ===============================================

func (s *Service) CreateGoal(ctx context.Context, projectPublicID string, g *Goal) (*Goal, error) {
	proj, err := s.resolveProject(ctx, projectPublicID)
	if err != nil {
		return nil, err
	}

	title, err := validateTitle(ctx, g.Title)
	if err != nil {
		return nil, err
	}
	g.Title = title
	g.ProjectID = proj.ID

	if err := s.goals.Create(ctx, g); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to create goal")
	}
	return g, nil
}

func (s *Service) ListGoals(ctx context.Context, projectPublicID string) ([]*Goal, error) {
	proj, err := s.resolveProject(ctx, projectPublicID)
	if err != nil {
		return nil, err
	}

	goals, err := s.goals.ListByProjectID(ctx, proj.ID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to list goals")
	}
	return goals, nil
}

// GoalUpdateInput carries partial goal updates.
type GoalUpdateInput struct {
	Title        *string
	Description  *string
	TargetValue  *float64
	CurrentValue *float64
	Unit         *string
}

func (s *Service) UpdateGoal(ctx context.Context, publicID string, input GoalUpdateInput) (*Goal, error) {
	g, err := s.goals.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "goal not found")
	}

	if input.Title != nil {
		title, err := validateTitle(ctx, *input.Title)
		if err != nil {
			return nil, err
		}
		g.Title = title
	}
	if input.Description != nil {
		g.Description = *input.Description
	}
	if input.TargetValue != nil {
		g.TargetValue = *input.TargetValue
	}
	if input.CurrentValue != nil {
		g.CurrentValue = *input.CurrentValue
	}
	if input.Unit != nil {
		g.Unit = *input.Unit
	}

	g.UpdatedAt = time.Now()
	if err := s.goals.Update(ctx, g); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to update goal")
	}
	return g, nil
}

func (s *Service) DeleteGoal(ctx context.Context, publicID string) error {
	if err := s.goals.Delete(ctx, publicID); err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to delete goal")
	}
	return nil
}
