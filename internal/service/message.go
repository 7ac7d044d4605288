package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dtroode/emr-server/internal/logger"
	"github.com/dtroode/emr-server/internal/model"
)

// defaultSender signs messages sent without a session.
const defaultSender = "Doctor"

type Message struct {
	store    model.MessageStore
	patients model.PatientStore
	sessions model.SessionReader
	now      func() time.Time
	logger   *logger.Logger
}

func NewMessage(store model.MessageStore, patients model.PatientStore, sessions model.SessionReader, logger *logger.Logger) *Message {
	return &Message{
		store:    store,
		patients: patients,
		sessions: sessions,
		now:      func() time.Time { return time.Now().UTC() },
		logger:   logger,
	}
}

func (s *Message) List(_ context.Context) []model.Message {
	return s.store.List()
}

// Send addresses a message to an existing patient. Recipient name and email
// are copied onto the message and the sender is the signed-in user.
func (s *Message) Send(ctx context.Context, params model.SendMessageParams) (model.Message, error) {
	if params.Priority == "" {
		params.Priority = model.PriorityNormal
	}
	if !params.Priority.Valid() {
		return model.Message{}, invalid("priority", fmt.Sprintf("%q is not a known priority", params.Priority))
	}
	if err := required("recipientId", params.RecipientID); err != nil {
		return model.Message{}, err
	}
	if err := required("subject", params.Subject); err != nil {
		return model.Message{}, err
	}
	if err := required("content", params.Content); err != nil {
		return model.Message{}, err
	}

	recipient, err := s.patients.Get(params.RecipientID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Message{}, invalid("recipientId", fmt.Sprintf("%q does not match a patient", params.RecipientID))
		}
		return model.Message{}, fmt.Errorf("failed to get patient %s: %w", params.RecipientID, err)
	}

	sender := defaultSender
	if session, ok := s.sessions.CurrentUser(); ok {
		sender = session.Email
	}

	m, err := s.store.Add(ctx, model.Message{
		RecipientID:    recipient.ID,
		RecipientName:  recipient.Name,
		RecipientEmail: recipient.Email,
		Sender:         sender,
		Subject:        params.Subject,
		Content:        params.Content,
		Priority:       params.Priority,
		Status:         model.MessageSent,
		Timestamp:      s.now(),
	})
	if err != nil {
		s.logger.Error("Message service: failed to send message",
			"recipient_id", recipient.ID,
			"error", err.Error())
		return model.Message{}, fmt.Errorf("failed to send message: %w", err)
	}

	s.logger.Info("Message service: message sent",
		"message_id", m.ID,
		"recipient_id", recipient.ID,
		"priority", m.Priority)
	return m, nil
}

func (s *Message) MarkRead(ctx context.Context, id string) (model.Message, error) {
	read := model.MessageRead
	return s.Update(ctx, id, model.MessagePatch{Status: &read})
}

func (s *Message) Update(ctx context.Context, id string, patch model.MessagePatch) (model.Message, error) {
	if patch.Priority != nil && !patch.Priority.Valid() {
		return model.Message{}, invalid("priority", fmt.Sprintf("%q is not a known priority", *patch.Priority))
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return model.Message{}, invalid("status", fmt.Sprintf("%q is not a known message status", *patch.Status))
	}

	m, err := s.store.Update(ctx, id, patch)
	if err != nil {
		return model.Message{}, fmt.Errorf("failed to update message %s: %w", id, err)
	}

	s.logger.Info("Message service: message updated", "message_id", id)
	return m, nil
}

func (s *Message) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete message %s: %w", id, err)
	}

	s.logger.Info("Message service: message deleted", "message_id", id)
	return nil
}
