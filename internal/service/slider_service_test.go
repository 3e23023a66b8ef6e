package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"lessonhub/internal/model"
)

// MockSliderRepository is a mock implementation of SliderRepository.
type MockSliderRepository struct {
	mock.Mock
}

func (m *MockSliderRepository) Create(ctx context.Context, slider *model.Slider) error {
	args := m.Called(ctx, slider)
	return args.Error(0)
}

func (m *MockSliderRepository) List(ctx context.Context) ([]model.Slider, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Slider), args.Error(1)
}

func (m *MockSliderRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestSliderService_List(t *testing.T) {
	sliders := []model.Slider{
		{ID: uuid.New(), URL: "https://cdn.example.com/sliders/a.jpg"},
		{ID: uuid.New(), URL: "https://cdn.example.com/sliders/b.jpg"},
		{ID: uuid.New(), URL: "https://cdn.example.com/sliders/c.jpg"},
	}

	mockRepo := new(MockSliderRepository)
	mockRepo.On("List", mock.Anything).Return(sliders, nil)

	service := NewSliderService(mockRepo, nil)
	got, err := service.List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, got, 3)
	// insertion order is preserved
	for i := range sliders {
		assert.Equal(t, sliders[i].ID, got[i].ID)
		assert.Equal(t, sliders[i].URL, got[i].URL)
	}
	mockRepo.AssertExpectations(t)
}
