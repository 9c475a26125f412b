package services

import (
	"context"
	"fmt"
	"time"

	"github.com/padeltour/academia-api/internal/models"
	"go.uber.org/zap"
)

// Seeder loads the site's launch content into an empty database.
type Seeder struct {
	tours        *models.ToursRepo
	coaches      *models.CoachesRepo
	testimonials *models.TestimonialsRepo
	gallery      *models.GalleryRepo
	settings     *models.SettingsRepo
	logger       *zap.Logger
}

func NewSeeder(
	tours *models.ToursRepo,
	coaches *models.CoachesRepo,
	testimonials *models.TestimonialsRepo,
	gallery *models.GalleryRepo,
	settings *models.SettingsRepo,
	logger *zap.Logger,
) *Seeder {
	return &Seeder{
		tours:        tours,
		coaches:      coaches,
		testimonials: testimonials,
		gallery:      gallery,
		settings:     settings,
		logger:       logger,
	}
}

// Seed is a no-op once any tour exists. It reports whether anything was written.
func (s *Seeder) Seed(ctx context.Context) (bool, error) {
	start := time.Now()

	existing, err := s.tours.Count(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to check existing tours: %w", err)
	}
	if existing > 0 {
		s.logger.Info("database already has data, skipping seeding", zap.Int64("tours", existing))
		return false, nil
	}

	s.logger.Info("seeding database")
	for _, t := range seedTours() {
		if _, err := s.tours.Create(ctx, t); err != nil {
			return false, fmt.Errorf("failed to seed tour %s: %w", t.ID, err)
		}
	}
	for _, c := range seedCoaches() {
		if _, err := s.coaches.Create(ctx, c); err != nil {
			return false, fmt.Errorf("failed to seed coach %s: %w", c.ID, err)
		}
	}
	for _, t := range seedTestimonials() {
		if _, err := s.testimonials.Create(ctx, t); err != nil {
			return false, fmt.Errorf("failed to seed testimonial %s: %w", t.ID, err)
		}
	}
	for _, g := range seedGallery() {
		if _, err := s.gallery.Create(ctx, g); err != nil {
			return false, fmt.Errorf("failed to seed gallery item %s: %w", g.ID, err)
		}
	}
	if _, err := s.settings.GetOrCreate(ctx, DefaultSettings()); err != nil {
		return false, fmt.Errorf("failed to seed settings: %w", err)
	}

	s.logger.Info("database seeding completed", zap.Duration("took", time.Since(start)))
	return true, nil
}
