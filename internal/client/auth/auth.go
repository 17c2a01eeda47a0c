// Package auth is the login gate: it checks credentials against the stored
// user list and persists the resulting session.
package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/dmitrijs2005/wastetrack/internal/client/models"
	"github.com/dmitrijs2005/wastetrack/internal/common"
	"github.com/dmitrijs2005/wastetrack/internal/logging"
	"github.com/google/uuid"
)

// UserLister yields the stored users.
type UserLister interface {
	GetAll(ctx context.Context) ([]models.User, error)
}

// SessionStore persists the single login state.
type SessionStore interface {
	Get(ctx context.Context) (*models.AuthState, error)
	Save(ctx context.Context, st models.AuthState) error
	Clear(ctx context.Context) error
}

// Session identifies the logged-in user for the lifetime of a login.
type Session struct {
	ID        string
	User      models.User
	StartedAt time.Time
}

// Service defines the authentication operations used by the CLI.
//
// Contract:
//   - Authenticate: exact match on username and password. Unknown user and
//     wrong password both yield common.ErrInvalidCredentials.
//   - Login: Authenticate, then persist the session.
//   - Logout: remove the persisted session.
//   - Resume: restore a persisted session, or common.ErrNotAuthenticated.
type Service interface {
	Authenticate(ctx context.Context, username, password string) (models.User, error)
	Login(ctx context.Context, username, password string) (Session, error)
	Logout(ctx context.Context) error
	Resume(ctx context.Context) (Session, error)
}

type service struct {
	users    UserLister
	sessions SessionStore
	logger   logging.Logger
	now      func() time.Time
}

// NewService builds the auth Service. now defaults to time.Now.
func NewService(users UserLister, sessions SessionStore, logger logging.Logger, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	return &service{users: users, sessions: sessions, logger: logger, now: now}
}

func (s *service) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	users, err := s.users.GetAll(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("load users: %w", err)
	}

	for _, u := range users {
		if u.Username != username {
			continue
		}
		if subtle.ConstantTimeCompare([]byte(u.Password), []byte(password)) == 1 {
			return u, nil
		}
	}
	return models.User{}, common.ErrInvalidCredentials
}

func (s *service) Login(ctx context.Context, username, password string) (Session, error) {
	u, err := s.Authenticate(ctx, username, password)
	if err != nil {
		s.logger.Info(ctx, "login rejected", "username", username)
		return Session{}, err
	}

	sess := Session{ID: uuid.NewString(), User: u, StartedAt: s.now()}
	st := models.AuthState{
		IsAuthenticated: true,
		User:            &sess.User,
		SessionID:       sess.ID,
		StartedAt:       sess.StartedAt,
	}
	if err := s.sessions.Save(ctx, st); err != nil {
		return Session{}, fmt.Errorf("save session: %w", err)
	}

	s.logger.Info(ctx, "logged in", "username", u.Username, "role", string(u.Role), "session", sess.ID)
	return sess, nil
}

func (s *service) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	s.logger.Info(ctx, "logged out")
	return nil
}

func (s *service) Resume(ctx context.Context) (Session, error) {
	st, err := s.sessions.Get(ctx)
	if err != nil {
		return Session{}, err
	}
	if st == nil || !st.IsAuthenticated || st.User == nil {
		return Session{}, common.ErrNotAuthenticated
	}

	id := st.SessionID
	if id == "" {
		// state written without a session id; give it one for logging
		id = uuid.NewString()
	}
	return Session{ID: id, User: *st.User, StartedAt: st.StartedAt}, nil
}
