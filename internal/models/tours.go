package models

import (
	"context"
	"time"
)

type TourLevel string

const (
	LevelBeginner             TourLevel = "начинающие"
	LevelIntermediate         TourLevel = "любители"
	LevelAdvanced             TourLevel = "продвинутые"
	LevelBeginnerIntermediate TourLevel = "начинающие-любители"
	LevelIntermediateAdvanced TourLevel = "любители-продвинутые"
)

func (l TourLevel) IsValid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced, LevelBeginnerIntermediate, LevelIntermediateAdvanced:
		return true
	}
	return false
}

// Tour is a bookable training week. Price is display text such as "от 1900";
// the booking engine parses it for price math.
type Tour struct {
	ID            string    `bson:"id" json:"id"`
	Title         string    `bson:"title" json:"title" validate:"required"`
	Subtitle      string    `bson:"subtitle" json:"subtitle" validate:"required"`
	Dates         string    `bson:"dates" json:"dates" validate:"required"`
	Level         TourLevel `bson:"level" json:"level" validate:"required,oneof=начинающие любители продвинутые начинающие-любители любители-продвинутые"`
	Accommodation string    `bson:"accommodation" json:"accommodation" validate:"required"`
	Price         string    `bson:"price" json:"price" validate:"required"`
	Currency      string    `bson:"currency" json:"currency"`
	Description   string    `bson:"description" json:"description" validate:"required"`
	Image         string    `bson:"image" json:"image" validate:"required"`
	Features      []string  `bson:"features" json:"features" validate:"required"`
	GroupSize     string    `bson:"group_size" json:"group_size" validate:"required"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}

// TourUpdate is a partial update; nil fields are left untouched.
type TourUpdate struct {
	Title         *string    `bson:"title,omitempty" json:"title"`
	Subtitle      *string    `bson:"subtitle,omitempty" json:"subtitle"`
	Dates         *string    `bson:"dates,omitempty" json:"dates"`
	Level         *TourLevel `bson:"level,omitempty" json:"level" validate:"omitempty,oneof=начинающие любители продвинутые начинающие-любители любители-продвинутые"`
	Accommodation *string    `bson:"accommodation,omitempty" json:"accommodation"`
	Price         *string    `bson:"price,omitempty" json:"price"`
	Currency      *string    `bson:"currency,omitempty" json:"currency"`
	Description   *string    `bson:"description,omitempty" json:"description"`
	Image         *string    `bson:"image,omitempty" json:"image"`
	Features      *[]string  `bson:"features,omitempty" json:"features"`
	GroupSize     *string    `bson:"group_size,omitempty" json:"group_size"`
}

type ToursRepo struct {
	DocumentStore[Tour]
}

func NewToursRepo(store DocumentStore[Tour]) *ToursRepo {
	return &ToursRepo{DocumentStore: store}
}

// ListByLevel pages through tours, restricted to one level unless level is empty.
func (r *ToursRepo) ListByLevel(ctx context.Context, level TourLevel, skip, limit int64) ([]*Tour, int64, error) {
	filter := Filter{}
	if level != "" {
		filter["level"] = level
	}
	return ListPage(ctx, r.DocumentStore, skip, limit, filter)
}
