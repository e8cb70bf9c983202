package personares

import (
	"time"

	"github.com/shopspring/decimal"

	"titan-server/internal/domain/persona"
)

// BehaviorResponse mirrors the persona behavior value object
type BehaviorResponse struct {
	Tone           string `json:"tone"`
	Style          string `json:"style"`
	Vocabulary     string `json:"vocabulary"`
	Guidelines     string `json:"guidelines"`
	Responsiveness int    `json:"responsiveness"`
}

// AutonomyRunResponse is one entry of the autonomy activity log
type AutonomyRunResponse struct {
	Action string    `json:"action"`
	Detail string    `json:"detail,omitempty"`
	RanAt  time.Time `json:"ran_at"`
}

// AutonomyResponse mirrors the persona autonomy value object
type AutonomyResponse struct {
	Enabled     bool                  `json:"enabled"`
	Level       int                   `json:"level"`
	Permissions []string              `json:"permissions"`
	History     []AutonomyRunResponse `json:"history"`
}

// StatsResponse mirrors the persona stats value object
type StatsResponse struct {
	MessageCount       int             `json:"message_count"`
	ResponseRate       float64         `json:"response_rate"`
	AvgResponseSeconds float64         `json:"avg_response_seconds"`
	TotalIncome        decimal.Decimal `json:"total_income"`
	ContentCreated     int             `json:"content_created"`
	ContentPublished   int             `json:"content_published"`
	ConversionRate     float64         `json:"conversion_rate"`
	LastActivityAt     *time.Time      `json:"last_activity_at,omitempty"`
}

// PersonaResponse represents a single persona response
type PersonaResponse struct {
	ID        string           `json:"id"`
	Object    string           `json:"object"`
	Name      string           `json:"name"`
	Archetype string           `json:"archetype,omitempty"`
	Bio       string           `json:"bio,omitempty"`
	AvatarURL string           `json:"avatar_url,omitempty"`
	Active    bool             `json:"active"`
	Behavior  BehaviorResponse `json:"behavior"`
	Autonomy  AutonomyResponse `json:"autonomy"`
	Stats     StatsResponse    `json:"stats"`
	CreatedAt int64            `json:"created_at"`
	UpdatedAt int64            `json:"updated_at"`
}

// PersonaListResponse represents a paginated list of personas
type PersonaListResponse struct {
	Object  string            `json:"object"`
	Data    []PersonaResponse `json:"data"`
	HasMore bool              `json:"has_more"`
	Total   int64             `json:"total"`
}

// PersonaDeletedResponse represents the delete confirmation response
type PersonaDeletedResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Deleted bool   `json:"deleted"`
}

// PerformanceResponse carries the weighted performance score alongside the
// stats it was computed from
type PerformanceResponse struct {
	ID     string        `json:"id"`
	Object string        `json:"object"`
	Score  int           `json:"score"`
	Stats  StatsResponse `json:"stats"`
}

// TemplateResponse represents one persona template preset
type TemplateResponse struct {
	Slug      string           `json:"slug"`
	Object    string           `json:"object"`
	Name      string           `json:"name"`
	Archetype string           `json:"archetype,omitempty"`
	Bio       string           `json:"bio,omitempty"`
	Behavior  BehaviorResponse `json:"behavior"`
}

// TemplateListResponse represents the template catalog
type TemplateListResponse struct {
	Object string             `json:"object"`
	Data   []TemplateResponse `json:"data"`
	Total  int64              `json:"total"`
}

// NewPersonaResponse creates a response from a domain persona
func NewPersonaResponse(p *persona.Persona) *PersonaResponse {
	history := make([]AutonomyRunResponse, len(p.Autonomy.History))
	for i, run := range p.Autonomy.History {
		history[i] = AutonomyRunResponse{
			Action: run.Action,
			Detail: run.Detail,
			RanAt:  run.RanAt,
		}
	}

	permissions := p.Autonomy.Permissions
	if permissions == nil {
		permissions = []string{}
	}

	return &PersonaResponse{
		ID:        p.PublicID,
		Object:    "persona",
		Name:      p.Name,
		Archetype: p.Archetype,
		Bio:       p.Bio,
		AvatarURL: p.AvatarURL,
		Active:    p.Active,
		Behavior: BehaviorResponse{
			Tone:           p.Behavior.Tone,
			Style:          p.Behavior.Style,
			Vocabulary:     p.Behavior.Vocabulary,
			Guidelines:     p.Behavior.Guidelines,
			Responsiveness: p.Behavior.Responsiveness,
		},
		Autonomy: AutonomyResponse{
			Enabled:     p.Autonomy.Enabled,
			Level:       p.Autonomy.Level,
			Permissions: permissions,
			History:     history,
		},
		Stats:     newStatsResponse(p.Stats),
		CreatedAt: p.CreatedAt.Unix(),
		UpdatedAt: p.UpdatedAt.Unix(),
	}
}

// NewPersonaListResponse creates a list response from domain personas
func NewPersonaListResponse(personas []*persona.Persona, hasMore bool, total int64) *PersonaListResponse {
	data := make([]PersonaResponse, len(personas))
	for i, p := range personas {
		data[i] = *NewPersonaResponse(p)
	}

	return &PersonaListResponse{
		Object:  "list",
		Data:    data,
		HasMore: hasMore,
		Total:   total,
	}
}

// NewPersonaDeletedResponse creates a delete response
func NewPersonaDeletedResponse(publicID string) *PersonaDeletedResponse {
	return &PersonaDeletedResponse{
		ID:      publicID,
		Object:  "persona",
		Deleted: true,
	}
}

// NewPerformanceResponse creates a performance score response
func NewPerformanceResponse(p *persona.Persona, score int) *PerformanceResponse {
	return &PerformanceResponse{
		ID:     p.PublicID,
		Object: "persona.performance",
		Score:  score,
		Stats:  newStatsResponse(p.Stats),
	}
}

// NewTemplateResponse creates a response for one template preset
func NewTemplateResponse(t persona.Template) TemplateResponse {
	return TemplateResponse{
		Slug:      t.Slug,
		Object:    "persona.template",
		Name:      t.Name,
		Archetype: t.Archetype,
		Bio:       t.Bio,
		Behavior: BehaviorResponse{
			Tone:           t.Behavior.Tone,
			Style:          t.Behavior.Style,
			Vocabulary:     t.Behavior.Vocabulary,
			Guidelines:     t.Behavior.Guidelines,
			Responsiveness: t.Behavior.Responsiveness,
		},
	}
}

// NewTemplateListResponse creates the template catalog response
func NewTemplateListResponse(templates []persona.Template) *TemplateListResponse {
	data := make([]TemplateResponse, len(templates))
	for i, t := range templates {
		data[i] = NewTemplateResponse(t)
	}
	return &TemplateListResponse{
		Object: "list",
		Data:   data,
		Total:  int64(len(data)),
	}
}

func newStatsResponse(stats persona.Stats) StatsResponse {
	return StatsResponse{
		MessageCount:       stats.MessageCount,
		ResponseRate:       stats.ResponseRate,
		AvgResponseSeconds: stats.AvgResponseSeconds,
		TotalIncome:        stats.TotalIncome,
		ContentCreated:     stats.ContentCreated,
		ContentPublished:   stats.ContentPublished,
		ConversionRate:     stats.ConversionRate,
		LastActivityAt:     stats.LastActivityAt,
	}
}
