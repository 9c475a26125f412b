package services

import (
	"context"
	"testing"

	"github.com/padeltour/academia-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetSettingsPersistsDefaultsOnce(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos()
	svc := NewSettingsService(repos.settings, zap.NewNop())

	stored, err := repos.settings.Get(ctx)
	require.NoError(t, err)
	require.Nil(t, stored)

	first, err := svc.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.SettingsID, first.ID)
	assert.Equal(t, "Padel Tour Academia", first.Name)
	assert.Equal(t, "https://t.me/padeltouracademia", first.SocialLinks.Telegram)

	stored, err = repos.settings.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, stored)

	second, err := svc.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestUpdateSettingsPatchesSingleton(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos()
	svc := NewSettingsService(repos.settings, zap.NewNop())

	updated, err := svc.UpdateSettings(ctx, &models.CompanySettingsUpdate{Phone: ptr("+34 999 999 999")})
	require.NoError(t, err)
	assert.Equal(t, "+34 999 999 999", updated.Phone)
	assert.Equal(t, "Padel Tour Academia", updated.Name)

	again, err := svc.UpdateSettings(ctx, &models.CompanySettingsUpdate{
		SocialLinks: &models.SocialLinks{Telegram: "t", Whatsapp: "w", Instagram: "i"},
	})
	require.NoError(t, err)
	assert.Equal(t, "+34 999 999 999", again.Phone)
	assert.Equal(t, models.SocialLinks{Telegram: "t", Whatsapp: "w", Instagram: "i"}, again.SocialLinks)
	assert.Equal(t, updated.CreatedAt, again.CreatedAt)

	_, err = svc.UpdateSettings(ctx, &models.CompanySettingsUpdate{Email: ptr("nope")})
	assert.ErrorIs(t, err, ErrValidation)
}
