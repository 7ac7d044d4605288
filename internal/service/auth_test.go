package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/emr-server/internal/auth"
	servermocks "github.com/dtroode/emr-server/internal/mocks"
	"github.com/dtroode/emr-server/internal/model"
	"github.com/dtroode/emr-server/internal/storage/memory"
	"github.com/dtroode/emr-server/internal/store"
	"github.com/dtroode/emr-server/internal/testutil"
)

type authFixture struct {
	auth     *Auth
	medium   *memory.Medium
	users    *store.UserStore
	sessions *store.SessionStore
}

func newAuthFixture(t *testing.T) authFixture {
	t.Helper()
	ctx := context.Background()
	medium := memory.New()

	users, err := store.NewUserStore(ctx, medium)
	require.NoError(t, err)
	sessions := store.NewSessionStore(medium)

	a, err := NewAuth(ctx, users, sessions, auth.NewArgon2Hasher(1, 8*1024, 1), testutil.MakeNoopLogger())
	require.NoError(t, err)

	return authFixture{auth: a, medium: medium, users: users, sessions: sessions}
}

func TestAuth_Register(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t)

	session, err := f.auth.Register(ctx, "doc@example.com", "pw")
	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, "doc@example.com", session.Email)
	assert.Equal(t, model.RoleUser, session.Role)
	assert.False(t, session.CreatedAt.IsZero())

	current, ok := f.auth.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, session, current)

	stored, err := f.sessions.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, session, *stored)

	user, err := f.users.FindByEmail("doc@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "pw", user.PasswordHash)
}

func TestAuth_Register_Validation(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "empty email", email: "", password: "pw"},
		{name: "blank email", email: "   ", password: "pw"},
		{name: "empty password", email: "doc@example.com", password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture(t)

			_, err := f.auth.Register(context.Background(), tt.email, tt.password)
			assert.ErrorIs(t, err, model.ErrInvalidArgument)

			_, ok := f.auth.CurrentUser()
			assert.False(t, ok)
		})
	}
}

func TestAuth_Register_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t)

	first, err := f.auth.Register(ctx, "doc@example.com", "pw")
	require.NoError(t, err)
	require.NoError(t, f.auth.Logout(ctx))

	_, err = f.auth.Register(ctx, "doc@example.com", "other")
	assert.ErrorIs(t, err, model.ErrAlreadyExists)
	_, ok := f.auth.CurrentUser()
	assert.False(t, ok)

	// the duplicate check runs before the session check
	_, err = f.auth.Login(ctx, "doc@example.com", "pw")
	require.NoError(t, err)
	_, err = f.auth.Register(ctx, "doc@example.com", "other")
	assert.ErrorIs(t, err, model.ErrAlreadyExists)

	current, ok := f.auth.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, first.ID, current.ID)
}

func TestAuth_Register_WhileSignedIn(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t)

	first, err := f.auth.Register(ctx, "a@example.com", "pw")
	require.NoError(t, err)

	_, err = f.auth.Register(ctx, "b@example.com", "pw")
	assert.ErrorIs(t, err, model.ErrSessionActive)

	current, _ := f.auth.CurrentUser()
	assert.Equal(t, first, current)
	_, err = f.users.FindByEmail("b@example.com")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestAuth_Login(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t)

	registered, err := f.auth.Register(ctx, "doc@example.com", "pw")
	require.NoError(t, err)
	require.NoError(t, f.auth.Logout(ctx))

	t.Run("unknown email", func(t *testing.T) {
		_, err := f.auth.Login(ctx, "nobody@example.com", "pw")
		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
		_, ok := f.auth.CurrentUser()
		assert.False(t, ok)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := f.auth.Login(ctx, "doc@example.com", "nope")
		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
		_, ok := f.auth.CurrentUser()
		assert.False(t, ok)
	})

	t.Run("success", func(t *testing.T) {
		session, err := f.auth.Login(ctx, "doc@example.com", "pw")
		require.NoError(t, err)
		assert.Equal(t, registered, session)
	})

	t.Run("same user again", func(t *testing.T) {
		session, err := f.auth.Login(ctx, "doc@example.com", "pw")
		require.NoError(t, err)
		assert.Equal(t, registered, session)
	})

	t.Run("wrong password while signed in keeps session", func(t *testing.T) {
		_, err := f.auth.Login(ctx, "doc@example.com", "nope")
		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
		current, ok := f.auth.CurrentUser()
		require.True(t, ok)
		assert.Equal(t, registered, current)
	})
}

func TestAuth_Login_SwitchUserRejected(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t)

	_, err := f.auth.Register(ctx, "a@example.com", "pw")
	require.NoError(t, err)
	require.NoError(t, f.auth.Logout(ctx))
	b, err := f.auth.Register(ctx, "b@example.com", "pw")
	require.NoError(t, err)

	_, err = f.auth.Login(ctx, "a@example.com", "pw")
	assert.ErrorIs(t, err, model.ErrSessionActive)

	current, _ := f.auth.CurrentUser()
	assert.Equal(t, b, current)
}

func TestAuth_Logout(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t)

	// nobody signed in
	require.NoError(t, f.auth.Logout(ctx))

	_, err := f.auth.Register(ctx, "doc@example.com", "pw")
	require.NoError(t, err)
	require.NoError(t, f.auth.Logout(ctx))

	_, ok := f.auth.CurrentUser()
	assert.False(t, ok)
	_, err = f.medium.Get(ctx, model.KeyCurrentUser)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestAuth_SessionRestoredOnStart(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t)

	session, err := f.auth.Register(ctx, "doc@example.com", "pw")
	require.NoError(t, err)

	users, err := store.NewUserStore(ctx, f.medium)
	require.NoError(t, err)
	restarted, err := NewAuth(ctx, users, store.NewSessionStore(f.medium), auth.NewArgon2Hasher(1, 8*1024, 1), testutil.MakeNoopLogger())
	require.NoError(t, err)

	current, ok := restarted.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, session, current)
}

func TestNewAuth_LoadError(t *testing.T) {
	sessions := servermocks.NewSessionStore(t)
	sessions.On("Load", mock.Anything).Return(nil, errors.New("offline")).Once()

	_, err := NewAuth(context.Background(), servermocks.NewUserStore(t), sessions, servermocks.NewPasswordHasher(t), testutil.MakeNoopLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load session")
}

func TestAuth_Register_StoreErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("hash error", func(t *testing.T) {
		users := servermocks.NewUserStore(t)
		sessions := servermocks.NewSessionStore(t)
		hasher := servermocks.NewPasswordHasher(t)

		sessions.On("Load", mock.Anything).Return(nil, nil).Once()
		users.On("FindByEmail", "doc@example.com").Return(model.User{}, model.ErrNotFound).Once()
		hasher.On("Hash", "pw").Return("", assert.AnError).Once()

		a, err := NewAuth(ctx, users, sessions, hasher, testutil.MakeNoopLogger())
		require.NoError(t, err)

		_, err = a.Register(ctx, "doc@example.com", "pw")
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("session save error", func(t *testing.T) {
		users := servermocks.NewUserStore(t)
		sessions := servermocks.NewSessionStore(t)
		hasher := servermocks.NewPasswordHasher(t)

		sessions.On("Load", mock.Anything).Return(nil, nil).Once()
		users.On("FindByEmail", "doc@example.com").Return(model.User{}, model.ErrNotFound).Once()
		hasher.On("Hash", "pw").Return("hashed", nil).Once()
		users.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
			return u.Email == "doc@example.com" && u.PasswordHash == "hashed" && u.Role == model.RoleUser
		})).Return(model.User{ID: "u1", Email: "doc@example.com"}, nil).Once()
		sessions.On("Save", mock.Anything, mock.Anything).Return(assert.AnError).Once()
		users.On("Discard", mock.Anything, "u1").Return(nil).Once()

		a, err := NewAuth(ctx, users, sessions, hasher, testutil.MakeNoopLogger())
		require.NoError(t, err)

		_, err = a.Register(ctx, "doc@example.com", "pw")
		assert.ErrorIs(t, err, assert.AnError)
		_, ok := a.CurrentUser()
		assert.False(t, ok)
	})

	t.Run("session save and rollback errors", func(t *testing.T) {
		users := servermocks.NewUserStore(t)
		sessions := servermocks.NewSessionStore(t)
		hasher := servermocks.NewPasswordHasher(t)
		rollbackErr := errors.New("disk full")

		sessions.On("Load", mock.Anything).Return(nil, nil).Once()
		users.On("FindByEmail", "doc@example.com").Return(model.User{}, model.ErrNotFound).Once()
		hasher.On("Hash", "pw").Return("hashed", nil).Once()
		users.On("Create", mock.Anything, mock.Anything).Return(model.User{ID: "u1", Email: "doc@example.com"}, nil).Once()
		sessions.On("Save", mock.Anything, mock.Anything).Return(assert.AnError).Once()
		users.On("Discard", mock.Anything, "u1").Return(rollbackErr).Once()

		a, err := NewAuth(ctx, users, sessions, hasher, testutil.MakeNoopLogger())
		require.NoError(t, err)

		_, err = a.Register(ctx, "doc@example.com", "pw")
		assert.ErrorIs(t, err, assert.AnError)
		assert.ErrorIs(t, err, rollbackErr)
	})
}

// sessionFailMedium rejects writes of the current user key.
type sessionFailMedium struct {
	*memory.Medium
}

func (m sessionFailMedium) Set(ctx context.Context, key, value string) error {
	if key == model.KeyCurrentUser {
		return assert.AnError
	}
	return m.Medium.Set(ctx, key, value)
}

func TestAuth_Register_SessionFailureLeavesNoUser(t *testing.T) {
	ctx := context.Background()
	medium := sessionFailMedium{Medium: memory.New()}

	users, err := store.NewUserStore(ctx, medium)
	require.NoError(t, err)
	a, err := NewAuth(ctx, users, store.NewSessionStore(medium), auth.NewArgon2Hasher(1, 64, 1), testutil.MakeNoopLogger())
	require.NoError(t, err)

	_, err = a.Register(ctx, "doc@example.com", "pw")
	require.ErrorIs(t, err, assert.AnError)

	_, err = users.FindByEmail("doc@example.com")
	assert.ErrorIs(t, err, model.ErrNotFound)

	raw, err := medium.Get(ctx, model.KeyUsers)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", raw)

	reloaded, err := store.NewUserStore(ctx, medium)
	require.NoError(t, err)
	_, err = reloaded.FindByEmail("doc@example.com")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestAuth_Logout_Error(t *testing.T) {
	ctx := context.Background()
	sessions := servermocks.NewSessionStore(t)
	current := &model.Session{ID: "u1"}

	sessions.On("Load", mock.Anything).Return(current, nil).Once()
	sessions.On("Clear", mock.Anything).Return(assert.AnError).Once()

	a, err := NewAuth(ctx, servermocks.NewUserStore(t), sessions, servermocks.NewPasswordHasher(t), testutil.MakeNoopLogger())
	require.NoError(t, err)

	assert.ErrorIs(t, a.Logout(ctx), assert.AnError)
	_, ok := a.CurrentUser()
	assert.True(t, ok)
}
