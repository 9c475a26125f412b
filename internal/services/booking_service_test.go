package services

import (
	"context"
	"testing"

	"github.com/padeltour/academia-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingComputesTotal(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos()
	repos.addTour(ctx, "1", "от 1900")
	repos.addTour(ctx, "3", "от 890")
	svc := repos.bookingService()

	for participants := 1; participants <= 10; participants++ {
		b, err := svc.CreateBooking(ctx, validBookingRequest("1", participants))
		require.NoError(t, err)
		assert.Equal(t, 1900*float64(participants), b.TotalPrice)
		assert.Equal(t, models.BookingPending, b.Status)
		assert.NotEmpty(t, b.ID)
	}

	b, err := svc.CreateBooking(ctx, validBookingRequest("3", 2))
	require.NoError(t, err)
	assert.Equal(t, 1780.0, b.TotalPrice)
}

func TestCreateBookingMissingTourPersistsNothing(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos()
	svc := repos.bookingService()

	_, err := svc.CreateBooking(ctx, validBookingRequest("missing", 2))
	assert.ErrorIs(t, err, ErrReferenceNotFound)

	n, err := repos.bookings.Count(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCreateBookingMalformedPricePersistsNothing(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos()
	repos.addTour(ctx, "1", "по запросу")
	svc := repos.bookingService()

	_, err := svc.CreateBooking(ctx, validBookingRequest("1", 2))
	assert.ErrorIs(t, err, ErrMalformedPrice)

	n, err := repos.bookings.Count(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCreateBookingValidation(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos()
	repos.addTour(ctx, "1", "от 1900")
	svc := repos.bookingService()

	for _, participants := range []int{0, -1, 11} {
		_, err := svc.CreateBooking(ctx, validBookingRequest("1", participants))
		assert.ErrorIs(t, err, ErrValidation, "participants=%d", participants)
	}

	req := validBookingRequest("1", 2)
	req.Email = "not-an-email"
	_, err := svc.CreateBooking(ctx, req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateBookingParticipantsUsesExistingTour(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos()
	repos.addTour(ctx, "1", "от 1900")
	repos.addTour(ctx, "3", "от 890")
	svc := repos.bookingService()

	b, err := svc.CreateBooking(ctx, validBookingRequest("3", 2))
	require.NoError(t, err)

	updated, err := svc.UpdateBooking(ctx, b.ID, &models.BookingUpdate{Participants: ptr(4)})
	require.NoError(t, err)
	assert.Equal(t, "3", updated.TourID)
	assert.Equal(t, 4, updated.Participants)
	assert.Equal(t, 3560.0, updated.TotalPrice)
}

func TestUpdateBookingTourUsesExistingParticipants(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos()
	repos.addTour(ctx, "1", "от 1900")
	repos.addTour(ctx, "3", "от 890")
	svc := repos.bookingService()

	b, err := svc.CreateBooking(ctx, validBookingRequest("3", 3))
	require.NoError(t, err)

	updated, err := svc.UpdateBooking(ctx, b.ID, &models.BookingUpdate{TourID: ptr("1")})
	require.NoError(t, err)
	assert.Equal(t, "1", updated.TourID)
	assert.Equal(t, 3, updated.Participants)
	assert.Equal(t, 5700.0, updated.TotalPrice)
}

func TestUpdateBookingOtherFieldsKeepTotal(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos()
	repos.addTour(ctx, "1", "от 1900")
	svc := repos.bookingService()

	b, err := svc.CreateBooking(ctx, validBookingRequest("1", 2))
	require.NoError(t, err)

	// a client-supplied total is ignored
	updated, err := svc.UpdateBooking(ctx, b.ID, &models.BookingUpdate{
		SpecialRequests: ptr("Вегетарианское меню"),
		TotalPrice:      ptr(1.0),
	})
	require.NoError(t, err)
	assert.Equal(t, "Вегетарианское меню", updated.SpecialRequests)
	assert.Equal(t, 3800.0, updated.TotalPrice)
	assert.Equal(t, b.Email, updated.Email)
}

func TestUpdateBookingToMissingTourLeavesBookingUntouched(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos()
	repos.addTour(ctx, "1", "от 1900")
	svc := repos.bookingService()

	b, err := svc.CreateBooking(ctx, validBookingRequest("1", 2))
	require.NoError(t, err)

	_, err = svc.UpdateBooking(ctx, b.ID, &models.BookingUpdate{TourID: ptr("gone"), FirstName: ptr("Ivan")})
	assert.ErrorIs(t, err, ErrReferenceNotFound)

	stored, err := svc.GetBooking(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, b, stored)
}

func TestUpdateBookingMissing(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos()
	repos.addTour(ctx, "1", "от 1900")
	svc := repos.bookingService()

	_, err := svc.UpdateBooking(ctx, "missing", &models.BookingUpdate{Participants: ptr(2)})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.UpdateBooking(ctx, "missing", &models.BookingUpdate{Phone: ptr("+34")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateStatusAnyToAny(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos()
	repos.addTour(ctx, "1", "от 1900")
	svc := repos.bookingService()

	b, err := svc.CreateBooking(ctx, validBookingRequest("1", 1))
	require.NoError(t, err)

	sequence := []models.BookingStatus{
		models.BookingCancelled,
		models.BookingPending,
		models.BookingConfirmed,
		models.BookingConfirmed,
		models.BookingCancelled,
	}
	last := b.UpdatedAt
	for _, status := range sequence {
		updated, err := svc.UpdateStatus(ctx, b.ID, &models.BookingStatusUpdate{Status: status})
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
		assert.True(t, updated.UpdatedAt.After(last), "updated_at must advance on %s", status)
		assert.Equal(t, b.TotalPrice, updated.TotalPrice)
		last = updated.UpdatedAt
	}
}

func TestUpdateStatusRejectsUnknown(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos()
	repos.addTour(ctx, "1", "от 1900")
	svc := repos.bookingService()
	b, err := svc.CreateBooking(ctx, validBookingRequest("1", 1))
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, b.ID, &models.BookingStatusUpdate{Status: "archived"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.UpdateStatus(ctx, "missing", &models.BookingStatusUpdate{Status: models.BookingConfirmed})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListBookingsFilters(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos()
	repos.addTour(ctx, "1", "от 1900")
	repos.addTour(ctx, "2", "от 1900")
	svc := repos.bookingService()

	for _, tourID := range []string{"1", "1", "2"} {
		_, err := svc.CreateBooking(ctx, validBookingRequest(tourID, 1))
		require.NoError(t, err)
	}
	first, _, err := svc.ListBookings(ctx, "", "1", 0, 1)
	require.NoError(t, err)
	require.Len(t, first, 1)
	_, err = svc.UpdateStatus(ctx, first[0].ID, &models.BookingStatusUpdate{Status: models.BookingConfirmed})
	require.NoError(t, err)

	byTour, total, err := svc.ListBookings(ctx, "", "1", 0, 100)
	require.NoError(t, err)
	assert.Len(t, byTour, 2)
	assert.EqualValues(t, 2, total)

	both, total, err := svc.ListBookings(ctx, models.BookingPending, "1", 0, 100)
	require.NoError(t, err)
	assert.Len(t, both, 1)
	assert.EqualValues(t, 1, total)

	_, _, err = svc.ListBookings(ctx, "archived", "", 0, 100)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDeleteBooking(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos()
	repos.addTour(ctx, "1", "от 1900")
	svc := repos.bookingService()
	b, err := svc.CreateBooking(ctx, validBookingRequest("1", 1))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteBooking(ctx, b.ID))
	assert.ErrorIs(t, svc.DeleteBooking(ctx, b.ID), ErrNotFound)

	_, err = svc.GetBooking(ctx, b.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
