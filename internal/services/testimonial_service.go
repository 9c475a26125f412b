package services

import (
	"context"
	"fmt"

	"github.com/padeltour/academia-api/internal/helpers"
	"github.com/padeltour/academia-api/internal/models"
	"go.uber.org/zap"
)

type TestimonialsService struct {
	testimonials *models.TestimonialsRepo
	media        MediaStore
	logger       *zap.Logger
}

func NewTestimonialsService(testimonials *models.TestimonialsRepo, media MediaStore, logger *zap.Logger) *TestimonialsService {
	return &TestimonialsService{
		testimonials: testimonials,
		media:        media,
		logger:       logger,
	}
}

// CreateTestimonial always stores the testimonial unapproved; it only becomes
// public through an update.
func (ts *TestimonialsService) CreateTestimonial(ctx context.Context, t *models.Testimonial) (*models.Testimonial, error) {
	if err := validate(t); err != nil {
		return nil, err
	}
	t.Approved = false
	t.Image = mirrorImage(ctx, ts.media, ts.logger, t.Image, helpers.TestimonialsFolder)

	created, err := ts.testimonials.Create(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("failed to create testimonial: %w", err)
	}
	return created, nil
}

func (ts *TestimonialsService) ListTestimonials(ctx context.Context, approvedOnly bool, skip, limit int64) ([]*models.Testimonial, int64, error) {
	return ts.testimonials.ListApproved(ctx, approvedOnly, skip, limit)
}

func (ts *TestimonialsService) GetTestimonial(ctx context.Context, id string) (*models.Testimonial, error) {
	t, err := ts.testimonials.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrNotFound
	}
	return t, nil
}

func (ts *TestimonialsService) UpdateTestimonial(ctx context.Context, id string, patch *models.TestimonialUpdate) (*models.Testimonial, error) {
	if err := validate(patch); err != nil {
		return nil, err
	}
	if patch.Image != nil {
		mirrored := mirrorImage(ctx, ts.media, ts.logger, *patch.Image, helpers.TestimonialsFolder)
		patch.Image = &mirrored
	}

	updated, err := ts.testimonials.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update testimonial: %w", err)
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

func (ts *TestimonialsService) DeleteTestimonial(ctx context.Context, id string) error {
	removed, err := ts.testimonials.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete testimonial: %w", err)
	}
	if !removed {
		return ErrNotFound
	}
	return nil
}
