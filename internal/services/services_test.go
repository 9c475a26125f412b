package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/padeltour/academia-api/internal/models"
	"go.uber.org/zap"
)

// steppingClock advances one second per call so updated_at ordering is observable.
func steppingClock() func() time.Time {
	var mu sync.Mutex
	t := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t = t.Add(time.Second)
		return t
	}
}

type testRepos struct {
	tours        *models.ToursRepo
	coaches      *models.CoachesRepo
	testimonials *models.TestimonialsRepo
	gallery      *models.GalleryRepo
	bookings     *models.BookingsRepo
	contacts     *models.ContactsRepo
	settings     *models.SettingsRepo
}

func newTestRepos() *testRepos {
	return &testRepos{
		tours:        models.NewToursRepo(models.NewMemoryStore[models.Tour]().WithClock(steppingClock())),
		coaches:      models.NewCoachesRepo(models.NewMemoryStore[models.Coach]()),
		testimonials: models.NewTestimonialsRepo(models.NewMemoryStore[models.Testimonial]()),
		gallery:      models.NewGalleryRepo(models.NewMemoryStore[models.GalleryItem]()),
		bookings:     models.NewBookingsRepo(models.NewMemoryStore[models.Booking]().WithClock(steppingClock())),
		contacts:     models.NewContactsRepo(models.NewMemoryStore[models.ContactMessage]()),
		settings:     models.NewSettingsRepo(models.NewMemoryStore[models.CompanySettings]().WithClock(steppingClock())),
	}
}

func (r *testRepos) bookingService() *BookingService {
	return NewBookingService(r.bookings, NewPriceCalculator(r.tours), zap.NewNop())
}

func (r *testRepos) addTour(ctx context.Context, id, price string) *models.Tour {
	tour, err := r.tours.Create(ctx, &models.Tour{
		ID:        id,
		Title:     "Tour " + id,
		Subtitle:  "Тенерифе, Испания",
		Dates:     "04.06.25 - 11.06.25",
		Level:     models.LevelBeginnerIntermediate,
		Price:     price,
		Currency:  defaultCurrency,
		Features:  []string{"Ежедневные тренировки"},
		GroupSize: "8-12 человек",
	})
	if err != nil {
		panic(err)
	}
	return tour
}

// fakeMedia records mirror calls and rewrites urls onto a fake CDN host.
type fakeMedia struct {
	mu    sync.Mutex
	calls []string
	fail  bool
}

func (f *fakeMedia) Mirror(_ context.Context, imageURL, folder string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, folder+":"+imageURL)
	if f.fail {
		return "", errors.New("upload refused")
	}
	return "https://cdn.test/" + folder + "/image.jpg", nil
}

func validBookingRequest(tourID string, participants int) *models.BookingRequest {
	return &models.BookingRequest{
		TourID:       tourID,
		FirstName:    "Анна",
		LastName:     "Петрова",
		Email:        "anna@example.com",
		Phone:        "+34 600 000 000",
		Country:      "Испания",
		Participants: participants,
	}
}

func ptr[T any](v T) *T { return &v }
