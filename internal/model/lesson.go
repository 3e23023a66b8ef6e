package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CategoryAll is the sentinel category meaning "no filter applied".
const CategoryAll = "all"

// Lesson represents a listable course entry. Lessons are created by the seed
// tooling and are read-only from the API's perspective.
type Lesson struct {
	ID           uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	DisplayOrder int             `json:"order" gorm:"column:display_order;not null;index"`
	Title        string          `json:"title" gorm:"size:255;not null"`
	URL          string          `json:"url" gorm:"size:512;not null"`
	Price        decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Category     string          `json:"category" gorm:"size:64;not null;default:'all';index"`
	CreatedAt    time.Time       `json:"-"`
	UpdatedAt    time.Time       `json:"-"`
}

// BeforeCreate sets UUID before creating the record.
func (l *Lesson) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
