package session

import (
	"context"
	"sync"

	"github.com/lmoreno/toyhaven/internal/api"
	"github.com/lmoreno/toyhaven/internal/errors"
	"github.com/lmoreno/toyhaven/internal/logging"
)

// Session is the storefront session holder. It owns the persisted
// token/identity pair under KeyToken/KeyUser and is the only code that
// mutates them. Safe for concurrent use.
type Session struct {
	store  *Store
	client *api.Client
	logger *logging.Logger

	mu       sync.RWMutex
	identity *api.Identity
}

// NewSession creates a storefront session holder. The client must be the
// user-scoped API client backed by the same store.
func NewSession(store *Store, client *api.Client, logger *logging.Logger) *Session {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Session{
		store:  store,
		client: client,
		logger: logger.WithScope("user"),
	}
}

// Current returns the logged-in identity, or nil when no session exists.
func (s *Session) Current() *api.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity
}

// LoggedIn reports whether a session is present.
func (s *Session) LoggedIn() bool {
	return s.Current() != nil
}

// Restore validates persisted credentials against the server. On success the
// identity snapshot is refreshed and re-persisted. Any failure, including a
// network failure, clears persisted state and leaves the session empty
// without surfacing an error: the server is the authority and the worst
// outcome of a false negative is a fresh login.
func (s *Session) Restore(ctx context.Context) {
	token := s.store.Get(KeyToken)
	var stored api.Identity
	if token == "" || s.store.GetJSON(KeyUser, &stored) != nil {
		return
	}

	identity, err := s.client.Me(ctx)
	if err != nil || identity == nil {
		s.logger.Info("session restore failed, clearing credentials", "error", err)
		s.clear()
		return
	}

	s.mu.Lock()
	s.identity = identity
	s.mu.Unlock()

	if err := s.store.SetJSON(KeyUser, identity); err != nil {
		s.logger.Warn("failed to refresh identity snapshot", "error", err)
	}
}

// Login authenticates and persists the resulting session.
func (s *Session) Login(ctx context.Context, email, password string) error {
	if email == "" {
		return errors.NewValidationError("email", "email is required")
	}
	if password == "" {
		return errors.NewValidationError("password", "password is required")
	}

	res, err := s.client.Login(ctx, api.Credentials{Email: email, Password: password})
	if err != nil {
		return err
	}

	return s.adopt(res)
}

// Register creates an account and persists the resulting session.
func (s *Session) Register(ctx context.Context, name, email, password, confirm string) error {
	if name == "" {
		return errors.NewValidationError("name", "name is required")
	}
	if email == "" {
		return errors.NewValidationError("email", "email is required")
	}
	if len(password) < 6 {
		return errors.NewValidationError("password", "password must be at least 6 characters")
	}
	if password != confirm {
		return errors.NewValidationError("confirmPassword", "passwords do not match")
	}

	res, err := s.client.Register(ctx, api.Registration{Name: name, Email: email, Password: password})
	if err != nil {
		return err
	}

	return s.adopt(res)
}

// Logout clears the session and persisted credentials unconditionally.
func (s *Session) Logout() {
	s.logger.Info("logging out")
	s.clear()
}

// UpdateProfile submits edited fields and patches the local identity on
// success.
func (s *Session) UpdateProfile(ctx context.Context, update api.ProfileUpdate) error {
	if update.Name == "" {
		return errors.NewValidationError("name", "name is required")
	}
	if update.Email == "" {
		return errors.NewValidationError("email", "email is required")
	}

	identity, err := s.client.UpdateProfile(ctx, update)
	if err != nil {
		return err
	}

	if identity != nil {
		s.mu.Lock()
		s.identity = identity
		s.mu.Unlock()

		if err := s.store.SetJSON(KeyUser, identity); err != nil {
			s.logger.Warn("failed to persist identity snapshot", "error", err)
		}
	}
	return nil
}

// ChangePassword rotates the password after local confirmation checks.
func (s *Session) ChangePassword(ctx context.Context, current, next, confirm string) error {
	if current == "" {
		return errors.NewValidationError("currentPassword", "current password is required")
	}
	if len(next) < 6 {
		return errors.NewValidationError("newPassword", "password must be at least 6 characters")
	}
	if next != confirm {
		return errors.NewValidationError("confirmPassword", "passwords do not match")
	}

	return s.client.ChangePassword(ctx, api.PasswordChange{CurrentPassword: current, NewPassword: next})
}

func (s *Session) adopt(res *api.AuthResult) error {
	if res == nil || res.Token == "" || res.Identity == nil {
		return errors.NewSessionError("user", "auth response missing token or identity", nil)
	}

	s.mu.Lock()
	s.identity = res.Identity
	s.mu.Unlock()

	if err := s.store.Set(KeyToken, res.Token); err != nil {
		return errors.NewSessionError("user", "failed to persist token", err)
	}
	if err := s.store.SetJSON(KeyUser, res.Identity); err != nil {
		return errors.NewSessionError("user", "failed to persist identity", err)
	}

	s.logger.Info("session established", "user", res.Identity.Email)
	return nil
}

func (s *Session) clear() {
	s.mu.Lock()
	s.identity = nil
	s.mu.Unlock()

	_ = s.store.Delete(KeyToken)
	_ = s.store.Delete(KeyUser)
}
