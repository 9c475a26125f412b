package models

import (
	"context"
	"time"
)

type ContactMessage struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name" validate:"required"`
	Email     string    `bson:"email" json:"email" validate:"required,email"`
	Phone     *string   `bson:"phone" json:"phone"`
	Subject   string    `bson:"subject" json:"subject" validate:"required"`
	Message   string    `bson:"message" json:"message" validate:"required"`
	Read      bool      `bson:"read" json:"read"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

type contactReadPatch struct {
	Read bool `bson:"read"`
}

type ContactsRepo struct {
	DocumentStore[ContactMessage]
}

func NewContactsRepo(store DocumentStore[ContactMessage]) *ContactsRepo {
	return &ContactsRepo{DocumentStore: store}
}

func (r *ContactsRepo) ListUnread(ctx context.Context, unreadOnly bool, skip, limit int64) ([]*ContactMessage, int64, error) {
	filter := Filter{}
	if unreadOnly {
		filter["read"] = false
	}
	return ListPage(ctx, r.DocumentStore, skip, limit, filter)
}

// MarkRead reports false when no message has the given id.
func (r *ContactsRepo) MarkRead(ctx context.Context, id string) (bool, error) {
	msg, err := r.Update(ctx, id, contactReadPatch{Read: true})
	if err != nil {
		return false, err
	}
	return msg != nil, nil
}
