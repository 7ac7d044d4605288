package store

import (
	"context"
	"time"

	"github.com/dtroode/emr-server/internal/model"
)

var _ model.UserStore = (*UserStore)(nil)

// UserStore keeps registered users. Users are never updated, and only
// removed when their registration is rolled back.
type UserStore struct {
	c *collection[model.User]
}

func NewUserStore(ctx context.Context, medium model.Medium, opts ...Option) (*UserStore, error) {
	c, err := loadCollection[model.User](ctx, medium, model.KeyUsers, buildOptions(opts))
	if err != nil {
		return nil, err
	}
	return &UserStore{c: c}, nil
}

// FindByEmail matches the email exactly.
func (s *UserStore) FindByEmail(email string) (model.User, error) {
	return s.c.find(func(u model.User) bool { return u.Email == email })
}

// Create stores a user with a fresh id. It returns ErrAlreadyExists when the
// email is taken.
func (s *UserStore) Create(ctx context.Context, user model.User) (model.User, error) {
	return s.c.insert(ctx, user,
		func(u model.User) bool { return u.Email == user.Email },
		func(u *model.User, id string, now time.Time) {
			u.ID = id
			u.CreatedAt = now
			if u.Role == "" {
				u.Role = model.RoleUser
			}
		})
}

// Discard removes the user created by a failed registration.
func (s *UserStore) Discard(ctx context.Context, id string) error {
	return s.c.remove(ctx, id)
}
