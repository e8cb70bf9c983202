package dbschema

import (
	"time"

	"titan-server/internal/domain/roadmap"
	"titan-server/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(Feature{}, Milestone{}, Goal{})
}

// Feature represents the database schema for roadmap features
type Feature struct {
	BaseModel
	PublicID    string `gorm:"uniqueIndex;size:64;not null"`
	ProjectID   uint   `gorm:"index:idx_features_project;not null"`
	Title       string `gorm:"size:255;not null"`
	Description string `gorm:"type:text"`
	Status      string `gorm:"size:32;not null;default:'planned'"`
	Priority    int    `gorm:"not null;default:1"`
}

func (Feature) TableName() string {
	return "titan.features"
}

func (f *Feature) EtoD() *roadmap.Feature {
	return &roadmap.Feature{
		ID:          f.ID,
		PublicID:    f.PublicID,
		ProjectID:   f.ProjectID,
		Title:       f.Title,
		Description: f.Description,
		Status:      roadmap.FeatureStatus(f.Status),
		Priority:    f.Priority,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

func FeatureDtoE(f *roadmap.Feature) *Feature {
	return &Feature{
		BaseModel: BaseModel{
			ID:        f.ID,
			CreatedAt: f.CreatedAt,
			UpdatedAt: f.UpdatedAt,
		},
		PublicID:    f.PublicID,
		ProjectID:   f.ProjectID,
		Title:       f.Title,
		Description: f.Description,
		Status:      string(f.Status),
		Priority:    f.Priority,
	}
}

// Milestone represents the database schema for roadmap milestones
type Milestone struct {
	BaseModel
	PublicID    string `gorm:"uniqueIndex;size:64;not null"`
	ProjectID   uint   `gorm:"index:idx_milestones_project;not null"`
	Title       string `gorm:"size:255;not null"`
	Description string `gorm:"type:text"`
	DueDate     *time.Time
	Completed   bool `gorm:"not null;default:false"`
	CompletedAt *time.Time
}

func (Milestone) TableName() string {
	return "titan.milestones"
}

func (m *Milestone) EtoD() *roadmap.Milestone {
	return &roadmap.Milestone{
		ID:          m.ID,
		PublicID:    m.PublicID,
		ProjectID:   m.ProjectID,
		Title:       m.Title,
		Description: m.Description,
		DueDate:     m.DueDate,
		Completed:   m.Completed,
		CompletedAt: m.CompletedAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func MilestoneDtoE(m *roadmap.Milestone) *Milestone {
	return &Milestone{
		BaseModel: BaseModel{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		PublicID:    m.PublicID,
		ProjectID:   m.ProjectID,
		Title:       m.Title,
		Description: m.Description,
		DueDate:     m.DueDate,
		Completed:   m.Completed,
		CompletedAt: m.CompletedAt,
	}
}

// Goal represents the database schema for roadmap goals
type Goal struct {
	BaseModel
	PublicID     string  `gorm:"uniqueIndex;size:64;not null"`
	ProjectID    uint    `gorm:"index:idx_goals_project;not null"`
	Title        string  `gorm:"size:255;not null"`
	Description  string  `gorm:"type:text"`
	TargetValue  float64 `gorm:"not null;default:0"`
	CurrentValue float64 `gorm:"not null;default:0"`
	Unit         string  `gorm:"size:64"`
}

func (Goal) TableName() string {
	return "titan.goals"
}

func (g *Goal) EtoD() *roadmap.Goal {
	return &roadmap.Goal{
		ID:           g.ID,
		PublicID:     g.PublicID,
		ProjectID:    g.ProjectID,
		Title:        g.Title,
		Description:  g.Description,
		TargetValue:  g.TargetValue,
		CurrentValue: g.CurrentValue,
		Unit:         g.Unit,
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.UpdatedAt,
	}
}

func GoalDtoE(g *roadmap.Goal) *Goal {
	return &Goal{
		BaseModel: BaseModel{
			ID:        g.ID,
			CreatedAt: g.CreatedAt,
			UpdatedAt: g.UpdatedAt,
		},
		PublicID:     g.PublicID,
		ProjectID:    g.ProjectID,
		Title:        g.Title,
		Description:  g.Description,
		TargetValue:  g.TargetValue,
		CurrentValue: g.CurrentValue,
		Unit:         g.Unit,
	}
}
