package models

type DashboardStats struct {
	TotalTours        int64         `json:"total_tours"`
	TotalCoaches      int64         `json:"total_coaches"`
	TotalTestimonials int64         `json:"total_testimonials"`
	TotalGalleryItems int64         `json:"total_gallery_items"`
	BookingStats      *BookingStats `json:"booking_stats"`
}
