package models

import (
	"context"
	"time"
)

// SettingsID is the fixed key of the company settings singleton.
const SettingsID = "default"

type SocialLinks struct {
	Telegram  string `bson:"telegram" json:"telegram" validate:"required"`
	Whatsapp  string `bson:"whatsapp" json:"whatsapp" validate:"required"`
	Instagram string `bson:"instagram" json:"instagram" validate:"required"`
}

type CompanySettings struct {
	ID          string      `bson:"id" json:"id"`
	Name        string      `bson:"name" json:"name"`
	Tagline     string      `bson:"tagline" json:"tagline"`
	Description string      `bson:"description" json:"description"`
	Email       string      `bson:"email" json:"email"`
	Phone       string      `bson:"phone" json:"phone"`
	Location    string      `bson:"location" json:"location"`
	SocialLinks SocialLinks `bson:"social_links" json:"social_links"`
	CreatedAt   time.Time   `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time   `bson:"updated_at" json:"updated_at"`
}

// CompanySettingsUpdate replaces social_links as a whole when supplied.
type CompanySettingsUpdate struct {
	Name        *string      `bson:"name,omitempty" json:"name"`
	Tagline     *string      `bson:"tagline,omitempty" json:"tagline"`
	Description *string      `bson:"description,omitempty" json:"description"`
	Email       *string      `bson:"email,omitempty" json:"email" validate:"omitempty,email"`
	Phone       *string      `bson:"phone,omitempty" json:"phone"`
	Location    *string      `bson:"location,omitempty" json:"location"`
	SocialLinks *SocialLinks `bson:"social_links,omitempty" json:"social_links" validate:"omitempty"`
}

type SettingsRepo struct {
	store DocumentStore[CompanySettings]
}

func NewSettingsRepo(store DocumentStore[CompanySettings]) *SettingsRepo {
	return &SettingsRepo{store: store}
}

func (r *SettingsRepo) Get(ctx context.Context) (*CompanySettings, error) {
	return r.store.GetByID(ctx, SettingsID)
}

// GetOrCreate returns the singleton, persisting defaults when none exists yet.
func (r *SettingsRepo) GetOrCreate(ctx context.Context, defaults *CompanySettings) (*CompanySettings, error) {
	return r.store.Upsert(ctx, SettingsID, nil, defaults)
}

// Save applies patch to the singleton, creating it from defaults plus patch if absent.
func (r *SettingsRepo) Save(ctx context.Context, patch *CompanySettingsUpdate, defaults *CompanySettings) (*CompanySettings, error) {
	if patch == nil {
		return r.GetOrCreate(ctx, defaults)
	}
	return r.store.Upsert(ctx, SettingsID, patch, defaults)
}
