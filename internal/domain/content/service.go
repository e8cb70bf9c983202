package content

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"titan-server/internal/domain/events"
	"titan-server/internal/domain/persona"
	"titan-server/internal/domain/query"
	"titan-server/internal/utils/platformerrors"
)

// titleFromBodyLength bounds auto-generated titles.
const titleFromBodyLength = 60

// Service handles business logic for content items, including the persona
// stats bumps tied to creation, publishing and engagement.
type Service struct {
	repo        Repository
	personas    persona.Repository
	broadcaster events.Broadcaster
}

// NewService creates a new content service.
func NewService(repo Repository, personas persona.Repository, broadcaster events.Broadcaster) *Service {
	return &Service{
		repo:        repo,
		personas:    personas,
		broadcaster: broadcaster,
	}
}

// Create persists a new item under a persona. Status is forced to draft
// unless explicitly pending; creation increments the persona's
// ContentCreated counter.
func (s *Service) Create(ctx context.Context, personaPublicID string, item *Item) (*Item, error) {
	p, err := s.personas.GetByPublicID(ctx, personaPublicID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "persona not found")
	}

	item.PersonaID = p.ID
	item.Title = strings.TrimSpace(item.Title)
	if item.Title == "" {
		item.Title = titleFromBody(item.Body)
	}
	if item.Title == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"content title or body is required", nil, "")
	}

	if item.ContentType == "" {
		item.ContentType = TypePost
	}
	if !item.ContentType.Valid() {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"invalid content type", nil, "")
	}

	if item.Status != StatusPending {
		item.Status = StatusDraft
	}
	item.Engagement.Revenue = decimal.Zero

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to create content item")
	}

	stats := p.Stats
	stats.ContentCreated++
	if err := s.personas.UpdateStats(ctx, p.ID, stats); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to update persona stats")
	}

	s.broadcaster.Broadcast(events.ContentUpdated, item)
	return item, nil
}

// GetByPublicID retrieves an item by public ID.
func (s *Service) GetByPublicID(ctx context.Context, publicID string) (*Item, error) {
	item, err := s.repo.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "content item not found")
	}
	return item, nil
}

// List retrieves items matching the filter with pagination.
func (s *Service) List(ctx context.Context, filter Filter, pagination *query.Pagination) ([]*Item, int64, error) {
	items, total, err := s.repo.List(ctx, filter, pagination)
	if err != nil {
		return nil, 0, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to list content items")
	}
	return items, total, nil
}

// ListByPersona retrieves a persona's items.
func (s *Service) ListByPersona(ctx context.Context, personaPublicID string, status *Status, pagination *query.Pagination) ([]*Item, int64, error) {
	p, err := s.personas.GetByPublicID(ctx, personaPublicID)
	if err != nil {
		return nil, 0, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "persona not found")
	}
	return s.List(ctx, Filter{PersonaID: &p.ID, Status: status}, pagination)
}

// UpdateInput carries partial item updates. Status changes go through
// Transition, not here.
type UpdateInput struct {
	Title        *string
	Body         *string
	ContentType  *ContentType
	ScheduledFor *time.Time
}

// Update applies a partial update and broadcasts content.updated.
func (s *Service) Update(ctx context.Context, publicID string, input UpdateInput) (*Item, error) {
	item, err := s.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
				"content title cannot be empty", nil, "")
		}
		item.Title = title
	}
	if input.Body != nil {
		item.Body = *input.Body
	}
	if input.ContentType != nil {
		if !input.ContentType.Valid() {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
				"invalid content type", nil, "")
		}
		item.ContentType = *input.ContentType
	}
	if input.ScheduledFor != nil {
		item.ScheduledFor = input.ScheduledFor
	}

	item.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to update content item")
	}

	s.broadcaster.Broadcast(events.ContentUpdated, item)
	return item, nil
}

// Transition moves an item through the status machine. Publishing stamps
// PublishedAt, bumps the persona's ContentPublished counter and recomputes
// its conversion rate.
func (s *Service) Transition(ctx context.Context, publicID string, next Status) (*Item, error) {
	if !next.Valid() {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"invalid content status", nil, "")
	}

	item, err := s.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}

	if !item.Status.CanTransitionTo(next) {
		return nil, platformerrors.NewErrorWithContext(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeInvalidState,
			"illegal content status transition", nil, "", map[string]any{
				"from": string(item.Status),
				"to":   string(next),
			})
	}

	item.Status = next
	item.UpdatedAt = time.Now()
	if next == StatusPublished {
		now := time.Now()
		item.PublishedAt = &now
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to update content item")
	}

	if next == StatusPublished {
		if err := s.refreshPersonaContentStats(ctx, item.PersonaID, decimal.Zero); err != nil {
			return nil, err
		}
		s.broadcaster.Broadcast(events.ContentPublished, item)
	} else {
		s.broadcaster.Broadcast(events.ContentUpdated, item)
	}

	return item, nil
}

// EngagementDelta records additional engagement counters on an item. The
// revenue delta is added to the persona's cumulative income.
type EngagementDelta struct {
	Views       int
	Likes       int
	Comments    int
	Conversions int
	Revenue     decimal.Decimal
}

// RecordEngagement applies an engagement delta and folds revenue into the
// owning persona's stats.
func (s *Service) RecordEngagement(ctx context.Context, publicID string, delta EngagementDelta) (*Item, error) {
	if delta.Views < 0 || delta.Likes < 0 || delta.Comments < 0 || delta.Conversions < 0 || delta.Revenue.IsNegative() {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"engagement deltas must be non-negative", nil, "")
	}

	item, err := s.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}

	item.Engagement.Views += delta.Views
	item.Engagement.Likes += delta.Likes
	item.Engagement.Comments += delta.Comments
	item.Engagement.Conversions += delta.Conversions
	item.Engagement.Revenue = item.Engagement.Revenue.Add(delta.Revenue)
	item.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to update content item")
	}

	if err := s.refreshPersonaContentStats(ctx, item.PersonaID, delta.Revenue); err != nil {
		return nil, err
	}

	s.broadcaster.Broadcast(events.ContentUpdated, item)
	return item, nil
}

// Delete removes an item.
func (s *Service) Delete(ctx context.Context, publicID string) error {
	if err := s.repo.Delete(ctx, publicID); err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to delete content item")
	}
	s.broadcaster.Broadcast(events.ContentUpdated, map[string]string{"id": publicID, "deleted": "true"})
	return nil
}

// refreshPersonaContentStats recomputes the publish counter and conversion
// rate from the content table and adds incomeDelta to cumulative income.
func (s *Service) refreshPersonaContentStats(ctx context.Context, personaID uint, incomeDelta decimal.Decimal) error {
	p, err := s.personas.GetByID(ctx, personaID)
	if err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "persona not found")
	}

	published, withRevenue, err := s.repo.CountPublished(ctx, personaID)
	if err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to count published content")
	}

	stats := p.Stats
	stats.ContentPublished = int(published)
	if published > 0 {
		stats.ConversionRate = float64(withRevenue) / float64(published) * 100
	} else {
		stats.ConversionRate = 0
	}
	stats.TotalIncome = stats.TotalIncome.Add(incomeDelta)
	now := time.Now()
	stats.LastActivityAt = &now

	if err := s.personas.UpdateStats(ctx, personaID, stats); err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to update persona stats")
	}
	return nil
}

func titleFromBody(body string) string {
	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return ""
	}
	if idx := strings.IndexByte(trimmed, '\n'); idx > 0 {
		trimmed = trimmed[:idx]
	}
	if len(trimmed) > titleFromBodyLength {
		trimmed = strings.TrimSpace(trimmed[:titleFromBodyLength]) + "…"
	}
	return trimmed
}
