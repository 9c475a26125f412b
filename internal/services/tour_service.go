package services

import (
	"context"
	"fmt"

	"github.com/padeltour/academia-api/internal/helpers"
	"github.com/padeltour/academia-api/internal/models"
	"go.uber.org/zap"
)

const defaultCurrency = "Euro"

type ToursService struct {
	tours  *models.ToursRepo
	media  MediaStore
	logger *zap.Logger
}

func NewToursService(tours *models.ToursRepo, media MediaStore, logger *zap.Logger) *ToursService {
	return &ToursService{
		tours:  tours,
		media:  media,
		logger: logger,
	}
}

func (ts *ToursService) CreateTour(ctx context.Context, tour *models.Tour) (*models.Tour, error) {
	if err := validate(tour); err != nil {
		return nil, err
	}
	if tour.Currency == "" {
		tour.Currency = defaultCurrency
	}
	tour.Image = mirrorImage(ctx, ts.media, ts.logger, tour.Image, helpers.ToursFolder)

	created, err := ts.tours.Create(ctx, tour)
	if err != nil {
		return nil, fmt.Errorf("failed to create tour: %w", err)
	}
	return created, nil
}

// ListTours pages through tours, optionally restricted to one level.
func (ts *ToursService) ListTours(ctx context.Context, level models.TourLevel, skip, limit int64) ([]*models.Tour, int64, error) {
	if level != "" && !level.IsValid() {
		return nil, 0, invalid("unknown tour level %q", level)
	}
	return ts.tours.ListByLevel(ctx, level, skip, limit)
}

func (ts *ToursService) GetTour(ctx context.Context, id string) (*models.Tour, error) {
	tour, err := ts.tours.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tour == nil {
		return nil, ErrNotFound
	}
	return tour, nil
}

func (ts *ToursService) UpdateTour(ctx context.Context, id string, patch *models.TourUpdate) (*models.Tour, error) {
	if err := validate(patch); err != nil {
		return nil, err
	}
	if patch.Image != nil {
		mirrored := mirrorImage(ctx, ts.media, ts.logger, *patch.Image, helpers.ToursFolder)
		patch.Image = &mirrored
	}

	updated, err := ts.tours.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update tour: %w", err)
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

// DeleteTour leaves bookings that reference the tour in place.
func (ts *ToursService) DeleteTour(ctx context.Context, id string) error {
	removed, err := ts.tours.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete tour: %w", err)
	}
	if !removed {
		return ErrNotFound
	}
	return nil
}
