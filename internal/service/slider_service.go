package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"lessonhub/internal/cache"
	"lessonhub/internal/model"
	"lessonhub/internal/repository"
)

const (
	sliderCacheKey = "sliders"
	sliderCacheTTL = 5 * time.Minute
)

// SliderService handles slider read operations.
type SliderService interface {
	List(ctx context.Context) ([]model.Slider, error)
}

type sliderService struct {
	repo  repository.SliderRepository
	cache *cache.Client
}

// NewSliderService creates a new slider service.
func NewSliderService(repo repository.SliderRepository, cache *cache.Client) SliderService {
	return &sliderService{
		repo:  repo,
		cache: cache,
	}
}

// List returns all sliders in insertion order, cached since the set rarely changes.
func (s *sliderService) List(ctx context.Context) ([]model.Slider, error) {
	if data, _ := s.cache.Get(ctx, sliderCacheKey); data != nil {
		var cached []model.Slider
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	sliders, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sliders: %w", err)
	}

	if data, err := json.Marshal(sliders); err == nil {
		_ = s.cache.Set(ctx, sliderCacheKey, data, sliderCacheTTL)
	}

	return sliders, nil
}
