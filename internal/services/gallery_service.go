package services

import (
	"context"
	"fmt"

	"github.com/padeltour/academia-api/internal/helpers"
	"github.com/padeltour/academia-api/internal/models"
	"go.uber.org/zap"
)

type GalleryService struct {
	gallery *models.GalleryRepo
	media   MediaStore
	logger  *zap.Logger
}

func NewGalleryService(gallery *models.GalleryRepo, media MediaStore, logger *zap.Logger) *GalleryService {
	return &GalleryService{
		gallery: gallery,
		media:   media,
		logger:  logger,
	}
}

func (gs *GalleryService) CreateItem(ctx context.Context, item *models.GalleryItem) (*models.GalleryItem, error) {
	if err := validate(item); err != nil {
		return nil, err
	}
	item.Image = mirrorImage(ctx, gs.media, gs.logger, item.Image, helpers.GalleryFolder)

	created, err := gs.gallery.Create(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("failed to create gallery item: %w", err)
	}
	return created, nil
}

func (gs *GalleryService) ListItems(ctx context.Context, category models.GalleryCategory, skip, limit int64) ([]*models.GalleryItem, int64, error) {
	if category != "" && !category.IsValid() {
		return nil, 0, invalid("unknown gallery category %q", category)
	}
	return gs.gallery.ListByCategory(ctx, category, skip, limit)
}

func (gs *GalleryService) GetItem(ctx context.Context, id string) (*models.GalleryItem, error) {
	item, err := gs.gallery.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}
	return item, nil
}

func (gs *GalleryService) UpdateItem(ctx context.Context, id string, patch *models.GalleryItemUpdate) (*models.GalleryItem, error) {
	if err := validate(patch); err != nil {
		return nil, err
	}
	if patch.Image != nil {
		mirrored := mirrorImage(ctx, gs.media, gs.logger, *patch.Image, helpers.GalleryFolder)
		patch.Image = &mirrored
	}

	updated, err := gs.gallery.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update gallery item: %w", err)
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

func (gs *GalleryService) DeleteItem(ctx context.Context, id string) error {
	removed, err := gs.gallery.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete gallery item: %w", err)
	}
	if !removed {
		return ErrNotFound
	}
	return nil
}
