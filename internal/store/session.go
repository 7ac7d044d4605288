package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dtroode/emr-server/internal/model"
)

var _ model.SessionStore = (*SessionStore)(nil)

// SessionStore persists the signed-in user under the currentUser key.
type SessionStore struct {
	medium model.Medium
}

func NewSessionStore(medium model.Medium) *SessionStore {
	return &SessionStore{medium: medium}
}

// Load returns nil when nobody is signed in.
func (s *SessionStore) Load(ctx context.Context) (*model.Session, error) {
	raw, err := s.medium.Get(ctx, model.KeyCurrentUser)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load %s: %w", model.KeyCurrentUser, err)
	}

	var session *model.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", model.KeyCurrentUser, err)
	}
	return session, nil
}

func (s *SessionStore) Save(ctx context.Context, session model.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", model.KeyCurrentUser, err)
	}

	if err := s.medium.Set(ctx, model.KeyCurrentUser, string(data)); err != nil {
		return fmt.Errorf("failed to save %s: %w", model.KeyCurrentUser, err)
	}
	return nil
}

func (s *SessionStore) Clear(ctx context.Context) error {
	if err := s.medium.Remove(ctx, model.KeyCurrentUser); err != nil {
		return fmt.Errorf("failed to clear %s: %w", model.KeyCurrentUser, err)
	}
	return nil
}
