// Package dbschema defines the GORM models backing the domain entities and
// the conversions between the two. Every model registers itself for
// auto-migrate and gormgen via init.
package dbschema

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel carries the columns shared by every table.
type BaseModel struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
