package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Slider is a promotional banner image shown on the home page.
type Slider struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	URL       string    `json:"url" gorm:"size:512;not null"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// BeforeCreate sets UUID before creating the record.
func (s *Slider) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
