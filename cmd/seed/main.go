package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"lessonhub/internal/config"
	"lessonhub/internal/db"
	"lessonhub/internal/model"
	"lessonhub/internal/repository"
)

func main() {
	log.Println("Starting seed script...")

	_ = godotenv.Load()
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.Lesson{}, &model.Slider{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	lessonRepo := repository.NewLessonRepository(gormDB)
	sliderRepo := repository.NewSliderRepository(gormDB)

	seededSliders, err := seedSliders(ctx, sliderRepo)
	if err != nil {
		log.Fatalf("Failed to seed sliders: %v", err)
	}

	seededLessons, err := seedLessons(ctx, lessonRepo)
	if err != nil {
		log.Fatalf("Failed to seed lessons: %v", err)
	}

	log.Println("Seed completed successfully!")
	log.Printf("  - Sliders created: %d", seededSliders)
	log.Printf("  - Lessons created: %d", seededLessons)
}

// seedSliders inserts the initial slider set once; a non-empty table is left untouched.
func seedSliders(ctx context.Context, repo repository.SliderRepository) (int, error) {
	total, err := repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if total > 0 {
		log.Printf("Sliders already present (%d), skipping", total)
		return 0, nil
	}

	urls := []string{
		"https://cdn.example.com/sliders/summer-sale.jpg",
		"https://cdn.example.com/sliders/new-arrivals.jpg",
		"https://cdn.example.com/sliders/editor-picks.jpg",
		"https://cdn.example.com/sliders/weekly-deal.jpg",
		"https://cdn.example.com/sliders/featured-course.jpg",
	}

	seeded := 0
	for _, url := range urls {
		if err := repo.Create(ctx, &model.Slider{URL: url}); err != nil {
			return seeded, err
		}
		seeded++
	}
	return seeded, nil
}

// seedLessons inserts the initial lesson set once; a non-empty table is left untouched.
func seedLessons(ctx context.Context, repo repository.LessonRepository) (int, error) {
	total, err := repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if total > 0 {
		log.Printf("Lessons already present (%d), skipping", total)
		return 0, nil
	}

	titles := []string{
		"Getting Started",
		"Core Concepts",
		"Data Modeling",
		"Request Handling",
		"Authentication",
		"Pagination",
		"Deployment",
	}

	seeded := 0
	for i, title := range titles {
		lesson := &model.Lesson{
			DisplayOrder: i + 1,
			Title:        title,
			URL:          "https://cdn.example.com/lessons/cover.jpg",
			Price:        decimal.NewFromInt(100),
			Category:     "product",
		}
		if err := repo.Create(ctx, lesson); err != nil {
			return seeded, err
		}
		seeded++
	}
	return seeded, nil
}
