package model

import "time"

// SchemaVersion tracks applied schema migrations
type SchemaVersion struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Version   string    `gorm:"not null;size:50"`
	AppliedAt time.Time `gorm:"not null"`
	Details   string    `gorm:"type:text"`
}

// TableName specifies the table name for SchemaVersion
func (SchemaVersion) TableName() string {
	return "schema_versions"
}
