package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Activity is one append-only audit line. Rows are never updated or deleted.
type Activity struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Activity  string    `json:"activity" gorm:"size:1024;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

// TableName keeps the table name the source data uses.
func (Activity) TableName() string { return "activities" }

// BeforeCreate sets UUID before creating the record.
func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
