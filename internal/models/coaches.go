package models

import "time"

type Coach struct {
	ID              string    `bson:"id" json:"id"`
	Name            string    `bson:"name" json:"name" validate:"required"`
	Title           string    `bson:"title" json:"title" validate:"required"`
	Experience      string    `bson:"experience" json:"experience" validate:"required"`
	Description     string    `bson:"description" json:"description" validate:"required"`
	Image           string    `bson:"image" json:"image" validate:"required"`
	Specializations []string  `bson:"specializations" json:"specializations"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}

type CoachUpdate struct {
	Name            *string   `bson:"name,omitempty" json:"name"`
	Title           *string   `bson:"title,omitempty" json:"title"`
	Experience      *string   `bson:"experience,omitempty" json:"experience"`
	Description     *string   `bson:"description,omitempty" json:"description"`
	Image           *string   `bson:"image,omitempty" json:"image"`
	Specializations *[]string `bson:"specializations,omitempty" json:"specializations"`
}

// CoachesRepo has no filtered queries; coaches are only listed and paged.
type CoachesRepo struct {
	DocumentStore[Coach]
}

func NewCoachesRepo(store DocumentStore[Coach]) *CoachesRepo {
	return &CoachesRepo{DocumentStore: store}
}
