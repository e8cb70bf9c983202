package dbschema

import (
	"encoding/json"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"titan-server/internal/domain/persona"
	"titan-server/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(Persona{})
}

// Persona represents the database schema for personas. The behavior, autonomy
// and stats value objects are flattened into prefixed columns; the autonomy
// history is an append-only JSON log.
type Persona struct {
	BaseModel
	PublicID  string `gorm:"uniqueIndex;size:64;not null"`
	ProjectID *uint  `gorm:"index:idx_personas_project"`
	Name      string `gorm:"size:255;not null"`
	Archetype string `gorm:"size:255"`
	Bio       string `gorm:"type:text"`
	AvatarURL string `gorm:"size:512"`
	Active    bool   `gorm:"not null;default:true;index"`

	BehaviorTone           string `gorm:"size:64;not null"`
	BehaviorStyle          string `gorm:"size:64;not null"`
	BehaviorVocabulary     string `gorm:"size:64;not null"`
	BehaviorGuidelines     string `gorm:"type:text"`
	BehaviorResponsiveness int    `gorm:"not null;default:5"`

	AutonomyEnabled     bool           `gorm:"not null;default:false"`
	AutonomyLevel       int            `gorm:"not null;default:5"`
	AutonomyPermissions pq.StringArray `gorm:"type:text[]"`
	AutonomyHistory     datatypes.JSON `gorm:"type:jsonb"`

	StatsMessageCount       int             `gorm:"not null;default:0"`
	StatsResponseRate       float64         `gorm:"not null;default:0"`
	StatsAvgResponseSeconds float64         `gorm:"not null;default:0"`
	StatsTotalIncome        decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	StatsContentCreated     int             `gorm:"not null;default:0"`
	StatsContentPublished   int             `gorm:"not null;default:0"`
	StatsConversionRate     float64         `gorm:"not null;default:0"`
	StatsLastActivityAt     *time.Time
}

// TableName specifies the table name for Persona
func (Persona) TableName() string {
	return "titan.personas"
}

// EtoD converts database schema to domain persona (Entity to Domain)
func (p *Persona) EtoD() *persona.Persona {
	var history []persona.AutonomyRun
	if len(p.AutonomyHistory) > 0 {
		// A corrupt history blob degrades to an empty log rather than
		// failing the read.
		_ = json.Unmarshal(p.AutonomyHistory, &history)
	}

	return &persona.Persona{
		ID:        p.ID,
		PublicID:  p.PublicID,
		ProjectID: p.ProjectID,
		Name:      p.Name,
		Archetype: p.Archetype,
		Bio:       p.Bio,
		AvatarURL: p.AvatarURL,
		Active:    p.Active,
		Behavior: persona.Behavior{
			Tone:           p.BehaviorTone,
			Style:          p.BehaviorStyle,
			Vocabulary:     p.BehaviorVocabulary,
			Guidelines:     p.BehaviorGuidelines,
			Responsiveness: p.BehaviorResponsiveness,
		},
		Autonomy: persona.Autonomy{
			Enabled:     p.AutonomyEnabled,
			Level:       p.AutonomyLevel,
			Permissions: p.AutonomyPermissions,
			History:     history,
		},
		Stats: persona.Stats{
			MessageCount:       p.StatsMessageCount,
			ResponseRate:       p.StatsResponseRate,
			AvgResponseSeconds: p.StatsAvgResponseSeconds,
			TotalIncome:        p.StatsTotalIncome,
			ContentCreated:     p.StatsContentCreated,
			ContentPublished:   p.StatsContentPublished,
			ConversionRate:     p.StatsConversionRate,
			LastActivityAt:     p.StatsLastActivityAt,
		},
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// PersonaDtoE converts domain persona to database schema (Domain to Entity)
func PersonaDtoE(p *persona.Persona) *Persona {
	history, _ := json.Marshal(p.Autonomy.History)

	return &Persona{
		BaseModel: BaseModel{
			ID:        p.ID,
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
		},
		PublicID:  p.PublicID,
		ProjectID: p.ProjectID,
		Name:      p.Name,
		Archetype: p.Archetype,
		Bio:       p.Bio,
		AvatarURL: p.AvatarURL,
		Active:    p.Active,

		BehaviorTone:           p.Behavior.Tone,
		BehaviorStyle:          p.Behavior.Style,
		BehaviorVocabulary:     p.Behavior.Vocabulary,
		BehaviorGuidelines:     p.Behavior.Guidelines,
		BehaviorResponsiveness: p.Behavior.Responsiveness,

		AutonomyEnabled:     p.Autonomy.Enabled,
		AutonomyLevel:       p.Autonomy.Level,
		AutonomyPermissions: p.Autonomy.Permissions,
		AutonomyHistory:     history,

		StatsMessageCount:       p.Stats.MessageCount,
		StatsResponseRate:       p.Stats.ResponseRate,
		StatsAvgResponseSeconds: p.Stats.AvgResponseSeconds,
		StatsTotalIncome:        p.Stats.TotalIncome,
		StatsContentCreated:     p.Stats.ContentCreated,
		StatsContentPublished:   p.Stats.ContentPublished,
		StatsConversionRate:     p.Stats.ConversionRate,
		StatsLastActivityAt:     p.Stats.LastActivityAt,
	}
}
