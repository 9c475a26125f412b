package models

import (
	"context"
	"time"
)

type GalleryCategory string

const (
	CategoryAccommodation GalleryCategory = "accommodation"
	CategoryTraining      GalleryCategory = "training"
	CategoryLandscape     GalleryCategory = "landscape"
)

func (c GalleryCategory) IsValid() bool {
	switch c {
	case CategoryAccommodation, CategoryTraining, CategoryLandscape:
		return true
	}
	return false
}

type GalleryItem struct {
	ID        string          `bson:"id" json:"id"`
	Image     string          `bson:"image" json:"image" validate:"required"`
	Title     string          `bson:"title" json:"title" validate:"required"`
	Category  GalleryCategory `bson:"category" json:"category" validate:"required,oneof=accommodation training landscape"`
	CreatedAt time.Time       `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time       `bson:"updated_at" json:"updated_at"`
}

type GalleryItemUpdate struct {
	Image    *string          `bson:"image,omitempty" json:"image"`
	Title    *string          `bson:"title,omitempty" json:"title"`
	Category *GalleryCategory `bson:"category,omitempty" json:"category" validate:"omitempty,oneof=accommodation training landscape"`
}

type GalleryRepo struct {
	DocumentStore[GalleryItem]
}

func NewGalleryRepo(store DocumentStore[GalleryItem]) *GalleryRepo {
	return &GalleryRepo{DocumentStore: store}
}

func (r *GalleryRepo) ListByCategory(ctx context.Context, category GalleryCategory, skip, limit int64) ([]*GalleryItem, int64, error) {
	filter := Filter{}
	if category != "" {
		filter["category"] = category
	}
	return ListPage(ctx, r.DocumentStore, skip, limit, filter)
}
