package models

import (
	"context"
	"time"
)

type Testimonial struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name" validate:"required"`
	Role      string    `bson:"role" json:"role" validate:"required"`
	Content   string    `bson:"content" json:"content" validate:"required"`
	Rating    int       `bson:"rating" json:"rating" validate:"required,min=1,max=5"`
	Image     string    `bson:"image" json:"image" validate:"required"`
	Approved  bool      `bson:"approved" json:"approved"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// TestimonialUpdate is the only way approved can become true.
type TestimonialUpdate struct {
	Name     *string `bson:"name,omitempty" json:"name"`
	Role     *string `bson:"role,omitempty" json:"role"`
	Content  *string `bson:"content,omitempty" json:"content"`
	Rating   *int    `bson:"rating,omitempty" json:"rating" validate:"omitempty,min=1,max=5"`
	Image    *string `bson:"image,omitempty" json:"image"`
	Approved *bool   `bson:"approved,omitempty" json:"approved"`
}

type TestimonialsRepo struct {
	DocumentStore[Testimonial]
}

func NewTestimonialsRepo(store DocumentStore[Testimonial]) *TestimonialsRepo {
	return &TestimonialsRepo{DocumentStore: store}
}

// ListApproved pages through approved testimonials only, or all of them when
// approvedOnly is false.
func (r *TestimonialsRepo) ListApproved(ctx context.Context, approvedOnly bool, skip, limit int64) ([]*Testimonial, int64, error) {
	filter := Filter{}
	if approvedOnly {
		filter["approved"] = true
	}
	return ListPage(ctx, r.DocumentStore, skip, limit, filter)
}
