package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lessonhub/internal/model"
)

// LessonRepository defines lesson persistence operations.
type LessonRepository interface {
	Create(ctx context.Context, lesson *model.Lesson) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Lesson, error)
	CountByCategory(ctx context.Context, category string) (int64, error)
	ListPage(ctx context.Context, category string, offset, limit int) ([]model.Lesson, error)
	Count(ctx context.Context) (int64, error)
}

type lessonRepository struct {
	db *gorm.DB
}

// NewLessonRepository builds a GORM-backed repository.
func NewLessonRepository(db *gorm.DB) LessonRepository {
	return &lessonRepository{db: db}
}

func (r *lessonRepository) Create(ctx context.Context, lesson *model.Lesson) error {
	return r.db.WithContext(ctx).Create(lesson).Error
}

func (r *lessonRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Lesson, error) {
	var lesson model.Lesson
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&lesson).Error; err != nil {
		return nil, err
	}
	return &lesson, nil
}

// CountByCategory counts lessons matching the filter, independent of pagination.
func (r *lessonRepository) CountByCategory(ctx context.Context, category string) (int64, error) {
	var total int64
	if err := r.categoryQuery(ctx, category).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// ListPage returns one pagination window, ordered by display_order with id as
// a deterministic tie-break so pages stay stable when orders collide.
func (r *lessonRepository) ListPage(ctx context.Context, category string, offset, limit int) ([]model.Lesson, error) {
	var lessons []model.Lesson
	err := r.categoryQuery(ctx, category).
		Order("display_order asc, id asc").
		Offset(offset).
		Limit(limit).
		Find(&lessons).Error
	if err != nil {
		return nil, err
	}
	return lessons, nil
}

func (r *lessonRepository) Count(ctx context.Context) (int64, error) {
	return r.CountByCategory(ctx, model.CategoryAll)
}

func (r *lessonRepository) categoryQuery(ctx context.Context, category string) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.Lesson{})
	if category != "" && category != model.CategoryAll {
		q = q.Where("category = ?", category)
	}
	return q
}
