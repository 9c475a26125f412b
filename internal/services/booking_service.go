package services

import (
	"context"
	"fmt"

	"github.com/padeltour/academia-api/internal/models"
	"go.uber.org/zap"
)

type BookingService struct {
	bookings *models.BookingsRepo
	prices   *PriceCalculator
	logger   *zap.Logger
}

func NewBookingService(bookings *models.BookingsRepo, prices *PriceCalculator, logger *zap.Logger) *BookingService {
	return &BookingService{
		bookings: bookings,
		prices:   prices,
		logger:   logger,
	}
}

// CreateBooking prices the request against its tour and stores it as pending.
// Nothing is written when the tour is missing or its price cannot be parsed.
func (bs *BookingService) CreateBooking(ctx context.Context, req *models.BookingRequest) (*models.Booking, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	total, err := bs.prices.Total(ctx, req.TourID, req.Participants)
	if err != nil {
		return nil, err
	}

	booking := &models.Booking{
		TourID:          req.TourID,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		Country:         req.Country,
		Participants:    req.Participants,
		SpecialRequests: req.SpecialRequests,
		TotalPrice:      total,
		Status:          models.BookingPending,
	}
	created, err := bs.bookings.Create(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	bs.logger.Info("booking created",
		zap.String("booking_id", created.ID),
		zap.String("tour_id", created.TourID),
		zap.Int("participants", created.Participants),
		zap.Float64("total_price", created.TotalPrice),
	)
	return created, nil
}

func (bs *BookingService) ListBookings(ctx context.Context, status models.BookingStatus, tourID string, skip, limit int64) ([]*models.Booking, int64, error) {
	if status != "" && !status.IsValid() {
		return nil, 0, invalid("unknown booking status %q", status)
	}
	return bs.bookings.ListFiltered(ctx, status, tourID, skip, limit)
}

func (bs *BookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := bs.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrNotFound
	}
	return booking, nil
}

// UpdateBooking applies a partial update. Supplying tour_id or participants
// reprices the booking; the field left out is taken from the stored booking.
func (bs *BookingService) UpdateBooking(ctx context.Context, id string, patch *models.BookingUpdate) (*models.Booking, error) {
	if err := validate(patch); err != nil {
		return nil, err
	}
	patch.TotalPrice = nil

	if patch.TourID != nil || patch.Participants != nil {
		existing, err := bs.GetBooking(ctx, id)
		if err != nil {
			return nil, err
		}
		tourID, participants := existing.TourID, existing.Participants
		if patch.TourID != nil {
			tourID = *patch.TourID
		}
		if patch.Participants != nil {
			participants = *patch.Participants
		}

		total, err := bs.prices.Total(ctx, tourID, participants)
		if err != nil {
			return nil, err
		}
		patch.TotalPrice = &total
	}

	updated, err := bs.bookings.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

// UpdateStatus moves a booking to any of the known statuses, from any status.
func (bs *BookingService) UpdateStatus(ctx context.Context, id string, status *models.BookingStatusUpdate) (*models.Booking, error) {
	if err := validate(status); err != nil {
		return nil, err
	}
	updated, err := bs.bookings.Update(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}
	if updated == nil {
		return nil, ErrNotFound
	}

	bs.logger.Info("booking status changed",
		zap.String("booking_id", id),
		zap.String("status", string(updated.Status)),
	)
	return updated, nil
}

func (bs *BookingService) DeleteBooking(ctx context.Context, id string) error {
	removed, err := bs.bookings.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	if !removed {
		return ErrNotFound
	}
	return nil
}

func (bs *BookingService) Stats(ctx context.Context) (*models.BookingStats, error) {
	return bs.bookings.Stats(ctx)
}
