package services

import (
	"context"
	"fmt"

	"github.com/padeltour/academia-api/internal/models"
	"go.uber.org/zap"
)

// DefaultSettings is what the singleton holds until someone edits it.
func DefaultSettings() *models.CompanySettings {
	return &models.CompanySettings{
		Name:        "Padel Tour Academia",
		Tagline:     "Твоя премиум неделя Pádel на лучших курортах Испании",
		Description: "Добро пожаловать в Pádel Tour Academia — уникальное сочетание тренировок с профессионалами, уютного отдыха и незабываемых эмоций!",
		Email:       "padeltouracademia@gmail.com",
		Phone:       "+34 123 456 789",
		Location:    "Santa Cruz de Tenerife, España",
		SocialLinks: models.SocialLinks{
			Telegram:  "https://t.me/padeltouracademia",
			Whatsapp:  "https://wa.me/34123456789",
			Instagram: "https://instagram.com/padeltouracademia",
		},
	}
}

type SettingsService struct {
	settings *models.SettingsRepo
	logger   *zap.Logger
}

func NewSettingsService(settings *models.SettingsRepo, logger *zap.Logger) *SettingsService {
	return &SettingsService{
		settings: settings,
		logger:   logger,
	}
}

// GetSettings returns the singleton, persisting the defaults on first access.
func (ss *SettingsService) GetSettings(ctx context.Context) (*models.CompanySettings, error) {
	settings, err := ss.settings.GetOrCreate(ctx, DefaultSettings())
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}

func (ss *SettingsService) UpdateSettings(ctx context.Context, patch *models.CompanySettingsUpdate) (*models.CompanySettings, error) {
	if err := validate(patch); err != nil {
		return nil, err
	}
	settings, err := ss.settings.Save(ctx, patch, DefaultSettings())
	if err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}
	ss.logger.Info("company settings updated")
	return settings, nil
}
