package repository

import (
	"context"

	"gorm.io/gorm"

	"lessonhub/internal/model"
)

// SliderRepository defines slider persistence operations.
type SliderRepository interface {
	Create(ctx context.Context, slider *model.Slider) error
	List(ctx context.Context) ([]model.Slider, error)
	Count(ctx context.Context) (int64, error)
}

type sliderRepository struct {
	db *gorm.DB
}

// NewSliderRepository builds a GORM-backed repository.
func NewSliderRepository(db *gorm.DB) SliderRepository {
	return &sliderRepository{db: db}
}

func (r *sliderRepository) Create(ctx context.Context, slider *model.Slider) error {
	return r.db.WithContext(ctx).Create(slider).Error
}

// List returns all sliders in insertion order.
func (r *sliderRepository) List(ctx context.Context) ([]model.Slider, error) {
	var sliders []model.Slider
	if err := r.db.WithContext(ctx).Order("created_at asc, id asc").Find(&sliders).Error; err != nil {
		return nil, err
	}
	return sliders, nil
}

func (r *sliderRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Slider{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
