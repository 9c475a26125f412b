package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/padeltour/academia-api/internal/container"
	"github.com/padeltour/academia-api/internal/handlers"
	"github.com/padeltour/academia-api/internal/middleware"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container, corsOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(middleware.CORS(corsOrigins))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	// public writes from the marketing site are throttled per client
	limited := container.RateLimiter.Middleware(container.Logger)

	api := r.Group("/api")
	{
		api.GET("/", handlers.Root())
		api.GET("/health", handlers.Health())
		api.GET("/dashboard", handlers.DashboardStats(container.DashboardService))
	}

	tourRoutes := api.Group("/tours")
	{
		tourRoutes.GET("", handlers.ListTours(container.ToursService))
		tourRoutes.POST("", handlers.CreateTour(container.ToursService))
		tourRoutes.GET("/:id", handlers.GetTour(container.ToursService))
		tourRoutes.PUT("/:id", handlers.UpdateTour(container.ToursService))
		tourRoutes.DELETE("/:id", handlers.DeleteTour(container.ToursService))
	}

	coachRoutes := api.Group("/coaches")
	{
		coachRoutes.GET("", handlers.ListCoaches(container.CoachesService))
		coachRoutes.POST("", handlers.CreateCoach(container.CoachesService))
		coachRoutes.GET("/:id", handlers.GetCoach(container.CoachesService))
		coachRoutes.PUT("/:id", handlers.UpdateCoach(container.CoachesService))
		coachRoutes.DELETE("/:id", handlers.DeleteCoach(container.CoachesService))
	}

	testimonialRoutes := api.Group("/testimonials")
	{
		testimonialRoutes.GET("", handlers.ListTestimonials(container.TestimonialsService))
		testimonialRoutes.POST("", limited, handlers.CreateTestimonial(container.TestimonialsService))
		testimonialRoutes.GET("/:id", handlers.GetTestimonial(container.TestimonialsService))
		testimonialRoutes.PUT("/:id", handlers.UpdateTestimonial(container.TestimonialsService))
		testimonialRoutes.DELETE("/:id", handlers.DeleteTestimonial(container.TestimonialsService))
	}

	galleryRoutes := api.Group("/gallery")
	{
		galleryRoutes.GET("", handlers.ListGallery(container.GalleryService))
		galleryRoutes.POST("", handlers.CreateGalleryItem(container.GalleryService))
		galleryRoutes.GET("/:id", handlers.GetGalleryItem(container.GalleryService))
		galleryRoutes.PUT("/:id", handlers.UpdateGalleryItem(container.GalleryService))
		galleryRoutes.DELETE("/:id", handlers.DeleteGalleryItem(container.GalleryService))
	}

	bookingRoutes := api.Group("/bookings")
	{
		bookingRoutes.GET("", handlers.ListBookings(container.BookingService))
		bookingRoutes.POST("", limited, handlers.CreateBooking(container.BookingService))
		bookingRoutes.GET("/stats", handlers.BookingStats(container.BookingService))
		bookingRoutes.GET("/:id", handlers.GetBooking(container.BookingService))
		bookingRoutes.PUT("/:id", handlers.UpdateBooking(container.BookingService))
		bookingRoutes.PUT("/:id/status", handlers.UpdateBookingStatus(container.BookingService))
		bookingRoutes.DELETE("/:id", handlers.DeleteBooking(container.BookingService))
	}

	contactRoutes := api.Group("/contact")
	{
		contactRoutes.GET("", handlers.ListContactMessages(container.ContactService))
		contactRoutes.POST("", limited, handlers.SendContactMessage(container.ContactService))
		contactRoutes.GET("/:id", handlers.GetContactMessage(container.ContactService))
		contactRoutes.PUT("/:id/read", handlers.MarkContactMessageRead(container.ContactService))
		contactRoutes.DELETE("/:id", handlers.DeleteContactMessage(container.ContactService))
	}

	settingsRoutes := api.Group("/settings")
	{
		settingsRoutes.GET("", handlers.GetSettings(container.SettingsService))
		settingsRoutes.PUT("", handlers.UpdateSettings(container.SettingsService))
	}

	return r
}
