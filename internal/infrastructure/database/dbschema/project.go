package dbschema

import (
	"titan-server/internal/domain/project"
	"titan-server/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(Project{})
}

// Project represents the database schema for projects
type Project struct {
	BaseModel
	PublicID        string  `gorm:"uniqueIndex;size:64;not null"`
	Name            string  `gorm:"size:255;not null"`
	Description     string  `gorm:"type:text"`
	Status          string  `gorm:"size:32;not null;default:'active';index"`
	Progress        float64 `gorm:"not null;default:0"`
	Priority        int     `gorm:"not null;default:5"`
	AutonomyEnabled bool    `gorm:"not null;default:false"`
}

// TableName specifies the table name for Project
func (Project) TableName() string {
	return "titan.projects"
}

// EtoD converts database schema to domain project (Entity to Domain)
func (p *Project) EtoD() *project.Project {
	return &project.Project{
		ID:              p.ID,
		PublicID:        p.PublicID,
		Name:            p.Name,
		Description:     p.Description,
		Status:          project.Status(p.Status),
		Progress:        p.Progress,
		Priority:        p.Priority,
		AutonomyEnabled: p.AutonomyEnabled,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// ProjectDtoE converts domain project to database schema (Domain to Entity)
func ProjectDtoE(p *project.Project) *Project {
	return &Project{
		BaseModel: BaseModel{
			ID:        p.ID,
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
		},
		PublicID:        p.PublicID,
		Name:            p.Name,
		Description:     p.Description,
		Status:          string(p.Status),
		Progress:        p.Progress,
		Priority:        p.Priority,
		AutonomyEnabled: p.AutonomyEnabled,
	}
}
