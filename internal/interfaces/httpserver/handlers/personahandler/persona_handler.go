package personahandler

import (
	"context"

	"github.com/go-playground/validator/v10"

	"titan-server/internal/domain/persona"
	"titan-server/internal/domain/project"
	"titan-server/internal/domain/query"
	"titan-server/internal/interfaces/httpserver/requests/personareq"
	"titan-server/internal/interfaces/httpserver/responses/personares"
	"titan-server/internal/utils/idgen"
	"titan-server/internal/utils/platformerrors"
)

type PersonaHandler struct {
	personaService *persona.Service
	projectService *project.Service
	validate       *validator.Validate
}

func NewPersonaHandler(personaService *persona.Service, projectService *project.Service) *PersonaHandler {
	return &PersonaHandler{
		personaService: personaService,
		projectService: projectService,
		validate:       validator.New(validator.WithRequiredStructEnabled()),
	}
}

// CreatePersona creates a new persona, optionally seeded from a template
func (h *PersonaHandler) CreatePersona(
	ctx context.Context,
	req personareq.CreatePersonaRequest,
) (*personares.PersonaResponse, error) {
	if err := h.validate.Struct(req); err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerHandler, platformerrors.ErrorTypeValidation,
			"invalid persona request", err, "")
	}

	publicID, err := idgen.GenerateSecureID("pers", 16)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to generate persona ID")
	}

	projectID, err := h.resolveProjectID(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}

	input := persona.CreateInput{
		Name:           req.Name,
		Archetype:      req.Archetype,
		Bio:            req.Bio,
		AvatarURL:      req.AvatarURL,
		ProjectID:      projectID,
		TemplateSlug:   req.TemplateSlug,
		Tone:           req.Tone,
		Style:          req.Style,
		Vocabulary:     req.Vocabulary,
		Guidelines:     req.Guidelines,
		Responsiveness: req.Responsiveness,
		AutonomyLevel:  req.AutonomyLevel,
	}

	p, err := h.personaService.Create(ctx, publicID, input)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to create persona")
	}

	return personares.NewPersonaResponse(p), nil
}

// GetPersona retrieves a single persona
func (h *PersonaHandler) GetPersona(
	ctx context.Context,
	personaID string,
) (*personares.PersonaResponse, error) {
	p, err := h.personaService.GetByPublicID(ctx, personaID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to get persona")
	}

	return personares.NewPersonaResponse(p), nil
}

// ListPersonas lists personas with optional project and active filters
func (h *PersonaHandler) ListPersonas(
	ctx context.Context,
	projectPublicID string,
	active *bool,
	pagination *query.Pagination,
) (*personares.PersonaListResponse, error) {
	filter := persona.Filter{Active: active}
	if projectPublicID != "" {
		projectID, err := h.resolveProjectID(ctx, projectPublicID)
		if err != nil {
			return nil, err
		}
		filter.ProjectID = projectID
	}

	// Fetch limit+1 to determine hasMore
	var requestedLimit *int
	if pagination != nil && pagination.Limit != nil {
		requestedLimit = pagination.Limit
		extraLimit := *pagination.Limit + 1
		pagination.Limit = &extraLimit
	}

	personas, total, err := h.personaService.List(ctx, filter, pagination)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to list personas")
	}

	hasMore := false
	if requestedLimit != nil && len(personas) > *requestedLimit {
		hasMore = true
		personas = personas[:*requestedLimit]
	}

	return personares.NewPersonaListResponse(personas, hasMore, total), nil
}

// UpdatePersona updates a persona
func (h *PersonaHandler) UpdatePersona(
	ctx context.Context,
	personaID string,
	req personareq.UpdatePersonaRequest,
) (*personares.PersonaResponse, error) {
	input := persona.UpdateInput{
		Name:            req.Name,
		Archetype:       req.Archetype,
		Bio:             req.Bio,
		AvatarURL:       req.AvatarURL,
		Tone:            req.Tone,
		Style:           req.Style,
		Vocabulary:      req.Vocabulary,
		Guidelines:      req.Guidelines,
		Responsiveness:  req.Responsiveness,
		AutonomyEnabled: req.AutonomyEnabled,
		AutonomyLevel:   req.AutonomyLevel,
		Permissions:     req.Permissions,
	}
	if req.ProjectID != nil {
		projectID, err := h.resolveProjectID(ctx, *req.ProjectID)
		if err != nil {
			return nil, err
		}
		input.ProjectID = projectID
	}

	p, err := h.personaService.Update(ctx, personaID, input)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to update persona")
	}

	return personares.NewPersonaResponse(p), nil
}

// ToggleActive flips a persona's active flag
func (h *PersonaHandler) ToggleActive(
	ctx context.Context,
	personaID string,
) (*personares.PersonaResponse, error) {
	p, err := h.personaService.ToggleActive(ctx, personaID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to toggle persona")
	}

	return personares.NewPersonaResponse(p), nil
}

// GetPerformance computes the persona's weighted performance score
func (h *PersonaHandler) GetPerformance(
	ctx context.Context,
	personaID string,
) (*personares.PerformanceResponse, error) {
	p, score, err := h.personaService.Performance(ctx, personaID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to compute performance")
	}

	return personares.NewPerformanceResponse(p, score), nil
}

// ListTemplates returns the persona template catalog
func (h *PersonaHandler) ListTemplates(ctx context.Context) *personares.TemplateListResponse {
	return personares.NewTemplateListResponse(h.personaService.Templates(ctx))
}

// DeletePersona deletes a persona
func (h *PersonaHandler) DeletePersona(
	ctx context.Context,
	personaID string,
) (*personares.PersonaDeletedResponse, error) {
	if err := h.personaService.Delete(ctx, personaID); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to delete persona")
	}

	return personares.NewPersonaDeletedResponse(personaID), nil
}

// resolveProjectID maps a project public ID onto its internal ID. An empty
// string means no project.
func (h *PersonaHandler) resolveProjectID(ctx context.Context, projectPublicID string) (*uint, error) {
	if projectPublicID == "" {
		return nil, nil
	}
	proj, err := h.projectService.GetByPublicID(ctx, projectPublicID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "project not found")
	}
	return &proj.ID, nil
}
