package service

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lessonhub/internal/cache"
	"lessonhub/internal/errors"
	"lessonhub/internal/model"
	"lessonhub/internal/repository"
)

const (
	// DefaultLimit is the page size used when the caller supplies none.
	DefaultLimit = 5

	lessonPageCacheTTL = 30 * time.Second
)

// LessonPage is one pagination window of the lesson listing.
type LessonPage struct {
	List    []model.Lesson `json:"list"`
	HasMore bool           `json:"hasMore"`
}

// LessonService handles lesson read operations.
type LessonService interface {
	List(ctx context.Context, category string, offset, limit int) (*LessonPage, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Lesson, error)
}

type lessonService struct {
	repo  repository.LessonRepository
	cache *cache.Client
}

// NewLessonService creates a new lesson service.
func NewLessonService(repo repository.LessonRepository, cache *cache.Client) LessonService {
	return &lessonService{
		repo:  repo,
		cache: cache,
	}
}

func pageCacheKey(category string, offset, limit int) string {
	return fmt.Sprintf("lessons:%s:%d:%d", category, offset, limit)
}

// List returns up to limit lessons starting at offset, filtered by category
// unless the category is empty or "all". Invalid offset/limit fall back to
// their defaults. hasMore reports whether items remain past this page.
func (s *lessonService) List(ctx context.Context, category string, offset, limit int) (*LessonPage, error) {
	if category == "" {
		category = model.CategoryAll
	}
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	key := pageCacheKey(category, offset, limit)
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached LessonPage
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	total, err := s.repo.CountByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("count lessons: %w", err)
	}

	lessons, err := s.repo.ListPage(ctx, category, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list lessons: %w", err)
	}

	page := &LessonPage{
		List:    lessons,
		HasMore: total > int64(offset+limit),
	}

	if data, err := json.Marshal(page); err == nil {
		_ = s.cache.Set(ctx, key, data, lessonPageCacheTTL)
	}

	return page, nil
}

// Get returns a single lesson by ID.
func (s *lessonService) Get(ctx context.Context, id uuid.UUID) (*model.Lesson, error) {
	lesson, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrLessonNotFound
		}
		return nil, fmt.Errorf("find lesson: %w", err)
	}
	return lesson, nil
}
