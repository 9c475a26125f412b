package models

import (
	"context"
	"time"
)

// status to track booking state; any status may follow any other
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled:
		return true
	}
	return false
}

type Booking struct {
	ID              string        `bson:"id" json:"id"`
	TourID          string        `bson:"tour_id" json:"tour_id"`
	FirstName       string        `bson:"first_name" json:"first_name"`
	LastName        string        `bson:"last_name" json:"last_name"`
	Email           string        `bson:"email" json:"email"`
	Phone           string        `bson:"phone" json:"phone"`
	Country         string        `bson:"country" json:"country"`
	Participants    int           `bson:"participants" json:"participants"`
	SpecialRequests string        `bson:"special_requests" json:"special_requests"`
	TotalPrice      float64       `bson:"total_price" json:"total_price"`
	Status          BookingStatus `bson:"status" json:"status"`
	CreatedAt       time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time     `bson:"updated_at" json:"updated_at"`
}

// BookingRequest is what a visitor submits; price and status are server-owned.
type BookingRequest struct {
	TourID          string `json:"tour_id" validate:"required"`
	FirstName       string `json:"first_name" validate:"required"`
	LastName        string `json:"last_name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required"`
	Country         string `json:"country" validate:"required"`
	Participants    int    `json:"participants" validate:"required,min=1,max=10"`
	SpecialRequests string `json:"special_requests"`
}

type BookingUpdate struct {
	TourID          *string `bson:"tour_id,omitempty" json:"tour_id" validate:"omitempty,min=1"`
	FirstName       *string `bson:"first_name,omitempty" json:"first_name"`
	LastName        *string `bson:"last_name,omitempty" json:"last_name"`
	Email           *string `bson:"email,omitempty" json:"email" validate:"omitempty,email"`
	Phone           *string `bson:"phone,omitempty" json:"phone"`
	Country         *string `bson:"country,omitempty" json:"country"`
	Participants    *int    `bson:"participants,omitempty" json:"participants" validate:"omitempty,min=1,max=10"`
	SpecialRequests *string `bson:"special_requests,omitempty" json:"special_requests"`

	// set by the price engine whenever tour_id or participants is supplied
	TotalPrice *float64 `bson:"total_price,omitempty" json:"-"`
}

type BookingStatusUpdate struct {
	Status BookingStatus `bson:"status" json:"status" validate:"required,oneof=pending confirmed cancelled"`
}

type BookingStats struct {
	Total     int64 `json:"total_bookings"`
	Pending   int64 `json:"pending_bookings"`
	Confirmed int64 `json:"confirmed_bookings"`
	Cancelled int64 `json:"cancelled_bookings"`
}

type BookingsRepo struct {
	DocumentStore[Booking]
}

func NewBookingsRepo(store DocumentStore[Booking]) *BookingsRepo {
	return &BookingsRepo{DocumentStore: store}
}

// ListFiltered pages through bookings. Empty status or tourID means no restriction
// on that field; when both are set a booking must match both.
func (r *BookingsRepo) ListFiltered(ctx context.Context, status BookingStatus, tourID string, skip, limit int64) ([]*Booking, int64, error) {
	filter := Filter{}
	if status != "" {
		filter["status"] = status
	}
	if tourID != "" {
		filter["tour_id"] = tourID
	}
	return ListPage(ctx, r.DocumentStore, skip, limit, filter)
}

// Stats groups every booking by status. Unknown statuses add to Total only.
func (r *BookingsRepo) Stats(ctx context.Context) (*BookingStats, error) {
	counts, err := r.CountBy(ctx, "status")
	if err != nil {
		return nil, err
	}

	stats := &BookingStats{}
	for status, n := range counts {
		stats.Total += n
		switch BookingStatus(status) {
		case BookingPending:
			stats.Pending = n
		case BookingConfirmed:
			stats.Confirmed = n
		case BookingCancelled:
			stats.Cancelled = n
		}
	}
	return stats, nil
}
