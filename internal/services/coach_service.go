package services

import (
	"context"
	"fmt"

	"github.com/padeltour/academia-api/internal/helpers"
	"github.com/padeltour/academia-api/internal/models"
	"go.uber.org/zap"
)

type CoachesService struct {
	coaches *models.CoachesRepo
	media   MediaStore
	logger  *zap.Logger
}

func NewCoachesService(coaches *models.CoachesRepo, media MediaStore, logger *zap.Logger) *CoachesService {
	return &CoachesService{
		coaches: coaches,
		media:   media,
		logger:  logger,
	}
}

func (cs *CoachesService) CreateCoach(ctx context.Context, coach *models.Coach) (*models.Coach, error) {
	if err := validate(coach); err != nil {
		return nil, err
	}
	if coach.Specializations == nil {
		coach.Specializations = []string{}
	}
	coach.Image = mirrorImage(ctx, cs.media, cs.logger, coach.Image, helpers.CoachesFolder)

	created, err := cs.coaches.Create(ctx, coach)
	if err != nil {
		return nil, fmt.Errorf("failed to create coach: %w", err)
	}
	return created, nil
}

func (cs *CoachesService) ListCoaches(ctx context.Context, skip, limit int64) ([]*models.Coach, int64, error) {
	return models.ListPage(ctx, cs.coaches.DocumentStore, skip, limit, nil)
}

func (cs *CoachesService) GetCoach(ctx context.Context, id string) (*models.Coach, error) {
	coach, err := cs.coaches.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if coach == nil {
		return nil, ErrNotFound
	}
	return coach, nil
}

func (cs *CoachesService) UpdateCoach(ctx context.Context, id string, patch *models.CoachUpdate) (*models.Coach, error) {
	if err := validate(patch); err != nil {
		return nil, err
	}
	if patch.Image != nil {
		mirrored := mirrorImage(ctx, cs.media, cs.logger, *patch.Image, helpers.CoachesFolder)
		patch.Image = &mirrored
	}

	updated, err := cs.coaches.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update coach: %w", err)
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

func (cs *CoachesService) DeleteCoach(ctx context.Context, id string) error {
	removed, err := cs.coaches.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete coach: %w", err)
	}
	if !removed {
		return ErrNotFound
	}
	return nil
}
