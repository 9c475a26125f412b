package services

import (
	"context"
	"fmt"

	"github.com/padeltour/academia-api/internal/models"
	"go.uber.org/zap"
)

type ContactService struct {
	contacts *models.ContactsRepo
	logger   *zap.Logger
}

func NewContactService(contacts *models.ContactsRepo, logger *zap.Logger) *ContactService {
	return &ContactService{
		contacts: contacts,
		logger:   logger,
	}
}

func (cs *ContactService) SendMessage(ctx context.Context, msg *models.ContactMessage) (*models.ContactMessage, error) {
	if err := validate(msg); err != nil {
		return nil, err
	}
	msg.Read = false

	created, err := cs.contacts.Create(ctx, msg)
	if err != nil {
		return nil, fmt.Errorf("failed to store contact message: %w", err)
	}
	cs.logger.Info("contact message received",
		zap.String("message_id", created.ID),
		zap.String("subject", created.Subject),
	)
	return created, nil
}

func (cs *ContactService) ListMessages(ctx context.Context, unreadOnly bool, skip, limit int64) ([]*models.ContactMessage, int64, error) {
	return cs.contacts.ListUnread(ctx, unreadOnly, skip, limit)
}

func (cs *ContactService) GetMessage(ctx context.Context, id string) (*models.ContactMessage, error) {
	msg, err := cs.contacts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if msg == nil {
		return nil, ErrNotFound
	}
	return msg, nil
}

func (cs *ContactService) MarkRead(ctx context.Context, id string) error {
	ok, err := cs.contacts.MarkRead(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to mark message read: %w", err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (cs *ContactService) DeleteMessage(ctx context.Context, id string) error {
	removed, err := cs.contacts.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete contact message: %w", err)
	}
	if !removed {
		return ErrNotFound
	}
	return nil
}
