package services

import (
	"context"
	"fmt"

	"github.com/padeltour/academia-api/internal/models"
)

type DashboardService struct {
	tours        *models.ToursRepo
	coaches      *models.CoachesRepo
	testimonials *models.TestimonialsRepo
	gallery      *models.GalleryRepo
	bookings     *models.BookingsRepo
}

func NewDashboardService(
	tours *models.ToursRepo,
	coaches *models.CoachesRepo,
	testimonials *models.TestimonialsRepo,
	gallery *models.GalleryRepo,
	bookings *models.BookingsRepo,
) *DashboardService {
	return &DashboardService{
		tours:        tours,
		coaches:      coaches,
		testimonials: testimonials,
		gallery:      gallery,
		bookings:     bookings,
	}
}

func (ds *DashboardService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	var (
		stats models.DashboardStats
		err   error
	)
	if stats.TotalTours, err = ds.tours.Count(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to count tours: %w", err)
	}
	if stats.TotalCoaches, err = ds.coaches.Count(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to count coaches: %w", err)
	}
	if stats.TotalTestimonials, err = ds.testimonials.Count(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to count testimonials: %w", err)
	}
	if stats.TotalGalleryItems, err = ds.gallery.Count(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to count gallery items: %w", err)
	}
	if stats.BookingStats, err = ds.bookings.Stats(ctx); err != nil {
		return nil, fmt.Errorf("failed to aggregate bookings: %w", err)
	}
	return &stats, nil
}
