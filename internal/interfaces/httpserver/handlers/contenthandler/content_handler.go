package contenthandler

import (
	"context"

	"github.com/shopspring/decimal"

	"titan-server/internal/domain/content"
	"titan-server/internal/domain/persona"
	"titan-server/internal/domain/query"
	"titan-server/internal/interfaces/httpserver/requests/contentreq"
	"titan-server/internal/interfaces/httpserver/responses/contentres"
	"titan-server/internal/utils/idgen"
	"titan-server/internal/utils/platformerrors"
)

type ContentHandler struct {
	contentService *content.Service
	personaService *persona.Service
}

func NewContentHandler(contentService *content.Service, personaService *persona.Service) *ContentHandler {
	return &ContentHandler{
		contentService: contentService,
		personaService: personaService,
	}
}

// CreateContent creates a content item owned by a persona
func (h *ContentHandler) CreateContent(
	ctx context.Context,
	personaID string,
	req contentreq.CreateContentRequest,
) (*contentres.ContentResponse, error) {
	publicID, err := idgen.GenerateSecureID("cont", 16)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to generate content ID")
	}

	item := &content.Item{
		PublicID:     publicID,
		Title:        req.Title,
		Body:         req.Body,
		ContentType:  content.ContentType(req.ContentType),
		Status:       content.Status(req.Status),
		ScheduledFor: req.ScheduledFor,
	}

	item, err = h.contentService.Create(ctx, personaID, item)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to create content item")
	}

	return contentres.NewContentResponse(item), nil
}

// GetContent retrieves a single content item
func (h *ContentHandler) GetContent(
	ctx context.Context,
	contentID string,
) (*contentres.ContentResponse, error) {
	item, err := h.contentService.GetByPublicID(ctx, contentID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to get content item")
	}

	return contentres.NewContentResponse(item), nil
}

// ListContent lists items with optional persona and status filters
func (h *ContentHandler) ListContent(
	ctx context.Context,
	personaPublicID, status string,
	pagination *query.Pagination,
) (*contentres.ContentListResponse, error) {
	filter := content.Filter{}
	if status != "" {
		st := content.Status(status)
		if !st.Valid() {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerHandler, platformerrors.ErrorTypeValidation,
				"invalid status filter", nil, "")
		}
		filter.Status = &st
	}
	if personaPublicID != "" {
		p, err := h.personaService.GetByPublicID(ctx, personaPublicID)
		if err != nil {
			return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "persona not found")
		}
		filter.PersonaID = &p.ID
	}

	return h.listWithFilter(ctx, filter, pagination)
}

// ListPersonaContent lists a persona's items
func (h *ContentHandler) ListPersonaContent(
	ctx context.Context,
	personaID, status string,
	pagination *query.Pagination,
) (*contentres.ContentListResponse, error) {
	return h.ListContent(ctx, personaID, status, pagination)
}

// UpdateContent updates an item's editable fields
func (h *ContentHandler) UpdateContent(
	ctx context.Context,
	contentID string,
	req contentreq.UpdateContentRequest,
) (*contentres.ContentResponse, error) {
	input := content.UpdateInput{
		Title:        req.Title,
		Body:         req.Body,
		ScheduledFor: req.ScheduledFor,
	}
	if req.ContentType != nil {
		ct := content.ContentType(*req.ContentType)
		input.ContentType = &ct
	}

	item, err := h.contentService.Update(ctx, contentID, input)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to update content item")
	}

	return contentres.NewContentResponse(item), nil
}

// TransitionContent moves an item through the status machine
func (h *ContentHandler) TransitionContent(
	ctx context.Context,
	contentID string,
	req contentreq.TransitionRequest,
) (*contentres.ContentResponse, error) {
	item, err := h.contentService.Transition(ctx, contentID, content.Status(req.Status))
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to transition content item")
	}

	return contentres.NewContentResponse(item), nil
}

// RecordEngagement applies an engagement delta to an item
func (h *ContentHandler) RecordEngagement(
	ctx context.Context,
	contentID string,
	req contentreq.EngagementRequest,
) (*contentres.ContentResponse, error) {
	revenue := decimal.Zero
	if req.Revenue != "" {
		parsed, err := decimal.NewFromString(req.Revenue)
		if err != nil {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerHandler, platformerrors.ErrorTypeValidation,
				"invalid revenue amount", err, "")
		}
		revenue = parsed
	}

	item, err := h.contentService.RecordEngagement(ctx, contentID, content.EngagementDelta{
		Views:       req.Views,
		Likes:       req.Likes,
		Comments:    req.Comments,
		Conversions: req.Conversions,
		Revenue:     revenue,
	})
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to record engagement")
	}

	return contentres.NewContentResponse(item), nil
}

// DeleteContent deletes an item
func (h *ContentHandler) DeleteContent(
	ctx context.Context,
	contentID string,
) (*contentres.ContentDeletedResponse, error) {
	if err := h.contentService.Delete(ctx, contentID); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to delete content item")
	}

	return contentres.NewContentDeletedResponse(contentID), nil
}

func (h *ContentHandler) listWithFilter(
	ctx context.Context,
	filter content.Filter,
	pagination *query.Pagination,
) (*contentres.ContentListResponse, error) {
	// Fetch limit+1 to determine hasMore
	var requestedLimit *int
	if pagination != nil && pagination.Limit != nil {
		requestedLimit = pagination.Limit
		extraLimit := *pagination.Limit + 1
		pagination.Limit = &extraLimit
	}

	items, total, err := h.contentService.List(ctx, filter, pagination)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to list content items")
	}

	hasMore := false
	if requestedLimit != nil && len(items) > *requestedLimit {
		hasMore = true
		items = items[:*requestedLimit]
	}

	return contentres.NewContentListResponse(items, hasMore, total), nil
}
