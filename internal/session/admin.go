package session

import (
	"context"
	"sync"

	"github.com/lmoreno/toyhaven/internal/api"
	"github.com/lmoreno/toyhaven/internal/errors"
	"github.com/lmoreno/toyhaven/internal/logging"
)

// AdminSession is the admin console's session holder. It owns the persisted
// pair under KeyAdminToken/KeyAdmin and never touches the storefront keys,
// so logging out of the admin console leaves a concurrent storefront
// session intact.
type AdminSession struct {
	store  *Store
	client *api.AdminClient
	logger *logging.Logger

	mu       sync.RWMutex
	identity *api.Identity
}

// NewAdminSession creates an admin session holder.
func NewAdminSession(store *Store, client *api.AdminClient, logger *logging.Logger) *AdminSession {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &AdminSession{
		store:  store,
		client: client,
		logger: logger.WithScope("admin"),
	}
}

// Current returns the logged-in admin identity, or nil.
func (s *AdminSession) Current() *api.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity
}

// LoggedIn reports whether an admin session is present.
func (s *AdminSession) LoggedIn() bool {
	return s.Current() != nil
}

// Restore loads the persisted admin snapshot. Unlike the storefront session
// this does no server round-trip: the first authenticated admin request will
// reject a stale token anyway, and the console redirects to login on any
// auth failure.
func (s *AdminSession) Restore() {
	token := s.store.Get(KeyAdminToken)
	if token == "" {
		return
	}

	var stored api.Identity
	if err := s.store.GetJSON(KeyAdmin, &stored); err != nil {
		return
	}

	s.mu.Lock()
	s.identity = &stored
	s.mu.Unlock()
}

// Validate confirms the persisted token against the server, refreshing the
// snapshot. Used by the whoami command; the TUI relies on Restore plus lazy
// rejection.
func (s *AdminSession) Validate(ctx context.Context) error {
	identity, err := s.client.Profile(ctx)
	if err != nil {
		if errors.IsAuthFailure(err) {
			s.clear()
		}
		return err
	}

	s.mu.Lock()
	s.identity = identity
	s.mu.Unlock()
	return nil
}

// Login authenticates the admin console and persists the session.
func (s *AdminSession) Login(ctx context.Context, email, password string) error {
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
	if res == nil || res.Token == "" || res.Identity == nil {
		return errors.NewSessionError("admin", "auth response missing token or identity", nil)
	}

	s.mu.Lock()
	s.identity = res.Identity
	s.mu.Unlock()

	if err := s.store.Set(KeyAdminToken, res.Token); err != nil {
		return errors.NewSessionError("admin", "failed to persist token", err)
	}
	if err := s.store.SetJSON(KeyAdmin, res.Identity); err != nil {
		return errors.NewSessionError("admin", "failed to persist identity", err)
	}

	s.logger.Info("admin session established", "admin", res.Identity.Email)
	return nil
}

// Logout clears only the admin credentials.
func (s *AdminSession) Logout() {
	s.logger.Info("admin logging out")
	s.clear()
}

func (s *AdminSession) clear() {
	s.mu.Lock()
	s.identity = nil
	s.mu.Unlock()

	_ = s.store.Delete(KeyAdminToken)
	_ = s.store.Delete(KeyAdmin)
}
