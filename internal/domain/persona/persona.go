package persona

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"titan-server/internal/domain/query"
)

// ===============================================
// Persona Types
// ===============================================

// Behavior defaults substituted for empty fields on every write path and in
// the chat system prompt.
const (
	DefaultTone       = "Assertive"
	DefaultStyle      = "Direct"
	DefaultVocabulary = "Professional"
	DefaultGuidelines = "Be engaging and authentic"

	DefaultResponsiveness = 5
	DefaultAutonomyLevel  = 5

	// Responsiveness and autonomy level are clamped into this range, never
	// rejected.
	LevelMin = 1
	LevelMax = 10
)

// Behavior configures how a persona writes.
type Behavior struct {
	Tone           string `json:"tone"`
	Style          string `json:"style"`
	Vocabulary     string `json:"vocabulary"`
	Guidelines     string `json:"guidelines"`
	Responsiveness int    `json:"responsiveness"` // 1..10
}

// AutonomyRun is one entry of the append-only autonomous activity log.
type AutonomyRun struct {
	Action string    `json:"action"`
	Detail string    `json:"detail,omitempty"`
	RanAt  time.Time `json:"ran_at"`
}

// Autonomy configures and records a persona's unattended activity.
type Autonomy struct {
	Enabled     bool          `json:"enabled"`
	Level       int           `json:"level"` // 1..10
	Permissions []string      `json:"permissions"`
	History     []AutonomyRun `json:"history"`
}

// Stats carries the counters the performance score is computed from. They are
// mutated only by the chat pipeline and the content publishing flow.
type Stats struct {
	MessageCount       int             `json:"message_count"`
	ResponseRate       float64         `json:"response_rate"` // 0..100
	AvgResponseSeconds float64         `json:"avg_response_seconds"`
	TotalIncome        decimal.Decimal `json:"total_income"`
	ContentCreated     int             `json:"content_created"`
	ContentPublished   int             `json:"content_published"`
	ConversionRate     float64         `json:"conversion_rate"` // 0..100
	LastActivityAt     *time.Time      `json:"last_activity_at,omitempty"`
}

// Persona represents a configured AI chat identity.
type Persona struct {
	ID        uint      `json:"-"`
	PublicID  string    `json:"id"`
	ProjectID *uint     `json:"-"` // optional owning project (internal ID)
	Name      string    `json:"name"`
	Archetype string    `json:"archetype,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	Active    bool      `json:"active"`
	Behavior  Behavior  `json:"behavior"`
	Autonomy  Autonomy  `json:"autonomy"`
	Stats     Stats     `json:"stats"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ===============================================
// Persona Repository
// ===============================================

type Filter struct {
	ProjectID *uint
	Active    *bool
}

type Repository interface {
	Create(ctx context.Context, p *Persona) error
	GetByPublicID(ctx context.Context, publicID string) (*Persona, error)
	GetByID(ctx context.Context, id uint) (*Persona, error)
	List(ctx context.Context, filter Filter, pagination *query.Pagination) ([]*Persona, int64, error)
	// ListAutonomous returns active personas with autonomy enabled whose
	// owning project (if any) has autonomy enabled as well.
	ListAutonomous(ctx context.Context) ([]*Persona, error)
	Update(ctx context.Context, p *Persona) error
	// UpdateStats persists only the stats value object. Last writer wins;
	// concurrent chat exchanges for the same persona are tolerated.
	UpdateStats(ctx context.Context, id uint, stats Stats) error
	Delete(ctx context.Context, publicID string) error
}

// ===============================================
// Persona Factory
// ===============================================

// New creates a persona with defaults applied and levels clamped.
func New(publicID, name string) *Persona {
	now := time.Now()
	p := &Persona{
		PublicID: publicID,
		Name:     name,
		Active:   true,
		Behavior: Behavior{
			Responsiveness: DefaultResponsiveness,
		},
		Autonomy: Autonomy{
			Level: DefaultAutonomyLevel,
		},
		Stats: Stats{
			TotalIncome: decimal.Zero,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	p.Normalize()
	return p
}

// Normalize applies behavior defaults to empty fields and clamps the
// responsiveness and autonomy level into [LevelMin, LevelMax]. Called on
// every write path.
func (p *Persona) Normalize() {
	if p.Behavior.Tone == "" {
		p.Behavior.Tone = DefaultTone
	}
	if p.Behavior.Style == "" {
		p.Behavior.Style = DefaultStyle
	}
	if p.Behavior.Vocabulary == "" {
		p.Behavior.Vocabulary = DefaultVocabulary
	}
	if p.Behavior.Guidelines == "" {
		p.Behavior.Guidelines = DefaultGuidelines
	}
	p.Behavior.Responsiveness = clampLevel(p.Behavior.Responsiveness, DefaultResponsiveness)
	p.Autonomy.Level = clampLevel(p.Autonomy.Level, DefaultAutonomyLevel)
}

// clampLevel clamps v into [LevelMin, LevelMax]; the zero value means unset
// and takes the default instead of clamping to LevelMin.
func clampLevel(v, def int) int {
	if v == 0 {
		return def
	}
	if v < LevelMin {
		return LevelMin
	}
	if v > LevelMax {
		return LevelMax
	}
	return v
}

// RecordAutonomyRun appends an entry to the autonomy history and bumps the
// activity timestamp.
func (p *Persona) RecordAutonomyRun(run AutonomyRun) {
	p.Autonomy.History = append(p.Autonomy.History, run)
	p.Stats.LastActivityAt = &run.RanAt
}
