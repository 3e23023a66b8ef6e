package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"lessonhub/internal/errors"
	"lessonhub/internal/model"
)

// MockLessonRepository is a mock implementation of LessonRepository.
type MockLessonRepository struct {
	mock.Mock
}

func (m *MockLessonRepository) Create(ctx context.Context, lesson *model.Lesson) error {
	args := m.Called(ctx, lesson)
	return args.Error(0)
}

func (m *MockLessonRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Lesson, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Lesson), args.Error(1)
}

func (m *MockLessonRepository) CountByCategory(ctx context.Context, category string) (int64, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLessonRepository) ListPage(ctx context.Context, category string, offset, limit int) ([]model.Lesson, error) {
	args := m.Called(ctx, category, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Lesson), args.Error(1)
}

func (m *MockLessonRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func fixtureLessons(n int) []model.Lesson {
	lessons := make([]model.Lesson, 0, n)
	for i := 0; i < n; i++ {
		lessons = append(lessons, model.Lesson{
			ID:           uuid.New(),
			DisplayOrder: i + 1,
			Title:        fmt.Sprintf("Lesson %d", i+1),
			URL:          "https://cdn.example.com/lessons/cover.jpg",
			Price:        decimal.NewFromInt(100),
			Category:     "product",
		})
	}
	return lessons
}

func window(lessons []model.Lesson, offset, limit int) []model.Lesson {
	if offset >= len(lessons) {
		return []model.Lesson{}
	}
	end := offset + limit
	if end > len(lessons) {
		end = len(lessons)
	}
	return lessons[offset:end]
}

func TestLessonService_ListPagination(t *testing.T) {
	lessons := fixtureLessons(7)

	tests := []struct {
		name        string
		offset      int
		limit       int
		wantLen     int
		wantFirst   int // expected DisplayOrder of the first item
		wantHasMore bool
	}{
		{name: "first page", offset: 0, limit: 5, wantLen: 5, wantFirst: 1, wantHasMore: true},
		{name: "last partial page", offset: 5, limit: 5, wantLen: 2, wantFirst: 6, wantHasMore: false},
		{name: "exact boundary", offset: 2, limit: 5, wantLen: 5, wantFirst: 3, wantHasMore: false},
		{name: "offset past the end", offset: 10, limit: 5, wantLen: 0, wantHasMore: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockLessonRepository)
			mockRepo.On("CountByCategory", mock.Anything, model.CategoryAll).Return(int64(len(lessons)), nil)
			mockRepo.On("ListPage", mock.Anything, model.CategoryAll, tt.offset, tt.limit).
				Return(window(lessons, tt.offset, tt.limit), nil)

			service := NewLessonService(mockRepo, nil)
			page, err := service.List(context.Background(), model.CategoryAll, tt.offset, tt.limit)

			assert.NoError(t, err)
			assert.Len(t, page.List, tt.wantLen)
			assert.Equal(t, tt.wantHasMore, page.HasMore)
			if tt.wantLen > 0 {
				assert.Equal(t, tt.wantFirst, page.List[0].DisplayOrder)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

// Sweeping every page must yield the full dataset exactly once.
func TestLessonService_ListSweepCoversDataset(t *testing.T) {
	lessons := fixtureLessons(7)
	limit := 3

	mockRepo := new(MockLessonRepository)
	mockRepo.On("CountByCategory", mock.Anything, model.CategoryAll).Return(int64(len(lessons)), nil)
	for offset := 0; offset < len(lessons); offset += limit {
		mockRepo.On("ListPage", mock.Anything, model.CategoryAll, offset, limit).
			Return(window(lessons, offset, limit), nil)
	}

	service := NewLessonService(mockRepo, nil)

	seen := map[uuid.UUID]bool{}
	var collected []model.Lesson
	offset := 0
	for {
		page, err := service.List(context.Background(), model.CategoryAll, offset, limit)
		assert.NoError(t, err)
		for _, lesson := range page.List {
			assert.False(t, seen[lesson.ID], "lesson %s returned twice", lesson.ID)
			seen[lesson.ID] = true
		}
		collected = append(collected, page.List...)
		if !page.HasMore {
			break
		}
		offset += limit
	}

	assert.Len(t, collected, len(lessons))
	for i, lesson := range collected {
		assert.Equal(t, i+1, lesson.DisplayOrder)
	}
}

func TestLessonService_ListCategoryFilter(t *testing.T) {
	matching := fixtureLessons(3)

	mockRepo := new(MockLessonRepository)
	mockRepo.On("CountByCategory", mock.Anything, "product").Return(int64(3), nil)
	mockRepo.On("ListPage", mock.Anything, "product", 0, DefaultLimit).Return(matching, nil)

	service := NewLessonService(mockRepo, nil)
	page, err := service.List(context.Background(), "product", 0, DefaultLimit)

	assert.NoError(t, err)
	assert.Len(t, page.List, 3)
	assert.False(t, page.HasMore)
	mockRepo.AssertExpectations(t)
}

// Invalid offset/limit and an empty category fall back to defaults before the
// repository is consulted.
func TestLessonService_ListNormalizesInput(t *testing.T) {
	mockRepo := new(MockLessonRepository)
	mockRepo.On("CountByCategory", mock.Anything, model.CategoryAll).Return(int64(0), nil)
	mockRepo.On("ListPage", mock.Anything, model.CategoryAll, 0, DefaultLimit).Return([]model.Lesson{}, nil)

	service := NewLessonService(mockRepo, nil)
	page, err := service.List(context.Background(), "", -3, 0)

	assert.NoError(t, err)
	assert.Empty(t, page.List)
	assert.False(t, page.HasMore)
	mockRepo.AssertExpectations(t)
}

func TestLessonService_Get(t *testing.T) {
	t.Run("existing lesson", func(t *testing.T) {
		lesson := &fixtureLessons(1)[0]

		mockRepo := new(MockLessonRepository)
		mockRepo.On("FindByID", mock.Anything, lesson.ID).Return(lesson, nil)

		service := NewLessonService(mockRepo, nil)
		got, err := service.Get(context.Background(), lesson.ID)
		assert.NoError(t, err)
		assert.Equal(t, lesson.ID, got.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("nonexistent lesson", func(t *testing.T) {
		id := uuid.New()

		mockRepo := new(MockLessonRepository)
		mockRepo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

		service := NewLessonService(mockRepo, nil)
		got, err := service.Get(context.Background(), id)
		assert.ErrorIs(t, err, errors.ErrLessonNotFound)
		assert.Nil(t, got)
		mockRepo.AssertExpectations(t)
	})
}
