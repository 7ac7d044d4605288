package store

import (
	"context"
	"time"

	"github.com/dtroode/emr-server/internal/model"
)

var _ model.MessageStore = (*MessageStore)(nil)

type MessageStore struct {
	c *collection[model.Message]
}

func NewMessageStore(ctx context.Context, medium model.Medium, opts ...Option) (*MessageStore, error) {
	c, err := loadCollection[model.Message](ctx, medium, model.KeyMessages, buildOptions(opts))
	if err != nil {
		return nil, err
	}
	return &MessageStore{c: c}, nil
}

func (s *MessageStore) List() []model.Message {
	return s.c.list()
}

func (s *MessageStore) Get(id string) (model.Message, error) {
	return s.c.get(id)
}

// Add stores a new message. Status defaults to unread.
func (s *MessageStore) Add(ctx context.Context, message model.Message) (model.Message, error) {
	return s.c.add(ctx, message, func(m *model.Message, id string, now time.Time) {
		m.ID = id
		m.CreatedAt = now
		if m.Status == "" {
			m.Status = model.MessageUnread
		}
	})
}

func (s *MessageStore) Update(ctx context.Context, id string, patch model.MessagePatch) (model.Message, error) {
	return s.c.update(ctx, id, func(m *model.Message) error {
		patch.Apply(m)
		return nil
	})
}

func (s *MessageStore) Delete(ctx context.Context, id string) error {
	return s.c.remove(ctx, id)
}
