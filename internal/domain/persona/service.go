package persona

import (
	"context"
	"strings"
	"time"

	"titan-server/internal/domain/events"
	"titan-server/internal/domain/query"
	"titan-server/internal/utils/platformerrors"
)

// Service handles business logic for personas.
type Service struct {
	repo        Repository
	templates   []Template
	broadcaster events.Broadcaster
}

// NewService creates a new persona service.
func NewService(repo Repository, templates []Template, broadcaster events.Broadcaster) *Service {
	return &Service{
		repo:        repo,
		templates:   templates,
		broadcaster: broadcaster,
	}
}

// CreateInput carries the caller-supplied fields for a new persona. Empty
// behavior fields fall back to the template (when referenced) and then to the
// documented defaults.
type CreateInput struct {
	Name           string
	Archetype      string
	Bio            string
	AvatarURL      string
	ProjectID      *uint
	TemplateSlug   string
	Tone           string
	Style          string
	Vocabulary     string
	Guidelines     string
	Responsiveness int
	AutonomyLevel  int
}

// Create builds, normalizes and persists a persona, then broadcasts
// persona.created.
func (s *Service) Create(ctx context.Context, publicID string, input CreateInput) (*Persona, error) {
	name := strings.TrimSpace(input.Name)

	now := time.Now()
	p := &Persona{
		PublicID:  publicID,
		ProjectID: input.ProjectID,
		Name:      name,
		Archetype: strings.TrimSpace(input.Archetype),
		Bio:       input.Bio,
		AvatarURL: input.AvatarURL,
		Active:    true,
		Behavior: Behavior{
			Tone:           strings.TrimSpace(input.Tone),
			Style:          strings.TrimSpace(input.Style),
			Vocabulary:     strings.TrimSpace(input.Vocabulary),
			Guidelines:     strings.TrimSpace(input.Guidelines),
			Responsiveness: input.Responsiveness,
		},
		Autonomy: Autonomy{
			Level: input.AutonomyLevel,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if input.TemplateSlug != "" {
		tpl, err := s.Template(ctx, input.TemplateSlug)
		if err != nil {
			return nil, err
		}
		tpl.Apply(p)
	}

	if p.Name == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation, "persona name is required", nil, "")
	}

	p.Normalize()

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to create persona")
	}

	s.broadcaster.Broadcast(events.PersonaCreated, p)
	return p, nil
}

// GetByPublicID retrieves a persona by public ID.
func (s *Service) GetByPublicID(ctx context.Context, publicID string) (*Persona, error) {
	p, err := s.repo.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "persona not found")
	}
	return p, nil
}

// List retrieves personas matching the filter with pagination.
func (s *Service) List(ctx context.Context, filter Filter, pagination *query.Pagination) ([]*Persona, int64, error) {
	personas, total, err := s.repo.List(ctx, filter, pagination)
	if err != nil {
		return nil, 0, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to list personas")
	}
	return personas, total, nil
}

// UpdateInput carries partial persona updates. Nil fields are left untouched.
type UpdateInput struct {
	Name            *string
	Archetype       *string
	Bio             *string
	AvatarURL       *string
	ProjectID       *uint
	Tone            *string
	Style           *string
	Vocabulary      *string
	Guidelines      *string
	Responsiveness  *int
	AutonomyEnabled *bool
	AutonomyLevel   *int
	Permissions     *[]string
}

// Update applies a partial update, re-normalizes and persists, then
// broadcasts persona.updated.
func (s *Service) Update(ctx context.Context, publicID string, input UpdateInput) (*Persona, error) {
	p, err := s.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation, "persona name cannot be empty", nil, "")
		}
		p.Name = name
	}
	if input.Archetype != nil {
		p.Archetype = strings.TrimSpace(*input.Archetype)
	}
	if input.Bio != nil {
		p.Bio = *input.Bio
	}
	if input.AvatarURL != nil {
		p.AvatarURL = *input.AvatarURL
	}
	if input.ProjectID != nil {
		p.ProjectID = input.ProjectID
	}
	if input.Tone != nil {
		p.Behavior.Tone = strings.TrimSpace(*input.Tone)
	}
	if input.Style != nil {
		p.Behavior.Style = strings.TrimSpace(*input.Style)
	}
	if input.Vocabulary != nil {
		p.Behavior.Vocabulary = strings.TrimSpace(*input.Vocabulary)
	}
	if input.Guidelines != nil {
		p.Behavior.Guidelines = strings.TrimSpace(*input.Guidelines)
	}
	if input.Responsiveness != nil {
		p.Behavior.Responsiveness = *input.Responsiveness
	}
	if input.AutonomyEnabled != nil {
		p.Autonomy.Enabled = *input.AutonomyEnabled
	}
	if input.AutonomyLevel != nil {
		p.Autonomy.Level = *input.AutonomyLevel
	}
	if input.Permissions != nil {
		p.Autonomy.Permissions = *input.Permissions
	}

	p.Normalize()
	p.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to update persona")
	}

	s.broadcaster.Broadcast(events.PersonaUpdated, p)
	return p, nil
}

// ToggleActive flips the active flag and returns the updated persona.
func (s *Service) ToggleActive(ctx context.Context, publicID string) (*Persona, error) {
	p, err := s.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}

	p.Active = !p.Active
	p.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to toggle persona")
	}

	s.broadcaster.Broadcast(events.PersonaUpdated, p)
	return p, nil
}

// Delete soft deletes a persona and broadcasts persona.deleted.
func (s *Service) Delete(ctx context.Context, publicID string) error {
	p, err := s.GetByPublicID(ctx, publicID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, publicID); err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to delete persona")
	}

	s.broadcaster.Broadcast(events.PersonaDeleted, map[string]string{"id": p.PublicID})
	return nil
}

// Performance returns the persona's stats together with the derived score.
func (s *Service) Performance(ctx context.Context, publicID string) (*Persona, int, error) {
	p, err := s.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, 0, err
	}
	return p, PerformanceScore(p.Stats), nil
}

// Templates returns the curated persona catalog.
func (s *Service) Templates(_ context.Context) []Template {
	out := make([]Template, len(s.templates))
	copy(out, s.templates)
	return out
}

// Template looks a catalog entry up by slug.
func (s *Service) Template(ctx context.Context, slug string) (Template, error) {
	for _, tpl := range s.templates {
		if tpl.Slug == slug {
			return tpl, nil
		}
	}
	return Template{}, platformerrors.NewErrorWithContext(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeNotFound,
		"persona template not found", nil, "", map[string]any{"slug": slug})
}
