package container

import (
	"context"
	"fmt"

	"github.com/padeltour/academia-api/internal/middleware"
	"github.com/padeltour/academia-api/internal/models"
	"github.com/padeltour/academia-api/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Logger        *zap.Logger
	MongoDBClient *mongo.Client
	RateLimiter   *middleware.RateLimiter

	ToursService        *services.ToursService
	CoachesService      *services.CoachesService
	TestimonialsService *services.TestimonialsService
	GalleryService      *services.GalleryService
	BookingService      *services.BookingService
	ContactService      *services.ContactService
	SettingsService     *services.SettingsService
	DashboardService    *services.DashboardService
	Seeder              *services.Seeder
}

// Stores is one document store per collection.
type Stores struct {
	Tours        models.DocumentStore[models.Tour]
	Coaches      models.DocumentStore[models.Coach]
	Testimonials models.DocumentStore[models.Testimonial]
	Gallery      models.DocumentStore[models.GalleryItem]
	Bookings     models.DocumentStore[models.Booking]
	Contacts     models.DocumentStore[models.ContactMessage]
	Settings     models.DocumentStore[models.CompanySettings]
}

func MemoryStores() Stores {
	return Stores{
		Tours:        models.NewMemoryStore[models.Tour](),
		Coaches:      models.NewMemoryStore[models.Coach](),
		Testimonials: models.NewMemoryStore[models.Testimonial](),
		Gallery:      models.NewMemoryStore[models.GalleryItem](),
		Bookings:     models.NewMemoryStore[models.Booking](),
		Contacts:     models.NewMemoryStore[models.ContactMessage](),
		Settings:     models.NewMemoryStore[models.CompanySettings](),
	}
}

// MongoStores opens every collection and makes sure its indexes exist.
func MongoStores(ctx context.Context, client *mongo.Client, dbName string) (Stores, error) {
	mdb := models.MongodbNewRepo(client, dbName)
	var (
		s   Stores
		err error
	)
	if s.Tours, err = mongoCollection[models.Tour](ctx, mdb, models.ToursColName, "level"); err != nil {
		return Stores{}, err
	}
	if s.Coaches, err = mongoCollection[models.Coach](ctx, mdb, models.CoachesColName); err != nil {
		return Stores{}, err
	}
	if s.Testimonials, err = mongoCollection[models.Testimonial](ctx, mdb, models.TestimonialsColName, "approved"); err != nil {
		return Stores{}, err
	}
	if s.Gallery, err = mongoCollection[models.GalleryItem](ctx, mdb, models.GalleryColName, "category"); err != nil {
		return Stores{}, err
	}
	if s.Bookings, err = mongoCollection[models.Booking](ctx, mdb, models.BookingsColName, "status", "tour_id"); err != nil {
		return Stores{}, err
	}
	if s.Contacts, err = mongoCollection[models.ContactMessage](ctx, mdb, models.ContactsColName, "read"); err != nil {
		return Stores{}, err
	}
	if s.Settings, err = mongoCollection[models.CompanySettings](ctx, mdb, models.SettingsColName); err != nil {
		return Stores{}, err
	}
	return s, nil
}

func mongoCollection[T any](ctx context.Context, mdb *models.MongodbRepo, name string, fields ...string) (models.DocumentStore[T], error) {
	col, err := models.NewMongoCollection[T](mdb, name)
	if err != nil {
		return nil, err
	}
	if err := col.EnsureIndexes(ctx, fields...); err != nil {
		return nil, fmt.Errorf("failed to prepare %s: %w", name, err)
	}
	return col, nil
}

// NewContainer creates a new dependency injection container. media may be nil,
// in which case images are stored as submitted.
func NewContainer(
	logger *zap.Logger,
	stores Stores,
	media services.MediaStore,
	mongoDBClient *mongo.Client,
	rateLimitPerMin int,
) *Container {
	tours := models.NewToursRepo(stores.Tours)
	coaches := models.NewCoachesRepo(stores.Coaches)
	testimonials := models.NewTestimonialsRepo(stores.Testimonials)
	gallery := models.NewGalleryRepo(stores.Gallery)
	bookings := models.NewBookingsRepo(stores.Bookings)
	contacts := models.NewContactsRepo(stores.Contacts)
	settings := models.NewSettingsRepo(stores.Settings)

	return &Container{
		Logger:        logger,
		MongoDBClient: mongoDBClient,
		RateLimiter:   middleware.NewRateLimiter(rateLimitPerMin),

		ToursService:        services.NewToursService(tours, media, logger),
		CoachesService:      services.NewCoachesService(coaches, media, logger),
		TestimonialsService: services.NewTestimonialsService(testimonials, media, logger),
		GalleryService:      services.NewGalleryService(gallery, media, logger),
		BookingService:      services.NewBookingService(bookings, services.NewPriceCalculator(tours), logger),
		ContactService:      services.NewContactService(contacts, logger),
		SettingsService:     services.NewSettingsService(settings, logger),
		DashboardService:    services.NewDashboardService(tours, coaches, testimonials, gallery, bookings),
		Seeder:              services.NewSeeder(tours, coaches, testimonials, gallery, settings, logger),
	}
}
