package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/sales-admin/internal/adapter"
	"github.com/MKhiriev/sales-admin/internal/logger"
	"github.com/MKhiriev/sales-admin/internal/store"
	"github.com/MKhiriev/sales-admin/internal/utils"
	"github.com/MKhiriev/sales-admin/models"
)

type sessionService struct {
	tokens  store.TokenStorage
	adapter adapter.ServerAdapter
	logger  *logger.Logger
	now     func() time.Time

	bootOnce sync.Once
	bootErr  error

	mu          sync.RWMutex
	session     models.Session
	logouts     uint64
	subscribers map[int]chan models.Session
	nextSubID   int
	onLoggedIn  func(models.User)
	onLoggedOut func()
}

// NewSessionService returns an uninitialized session backed by tokens for
// persistence and serverAdapter for verification.
func NewSessionService(tokens store.TokenStorage, serverAdapter adapter.ServerAdapter, logger *logger.Logger) SessionService {
	return &sessionService{
		tokens:      tokens,
		adapter:     serverAdapter,
		logger:      logger.WithComponent("session"),
		now:         time.Now,
		session:     models.Session{State: models.SessionUninitialized},
		subscribers: make(map[int]chan models.Session),
	}
}

func (s *sessionService) Bootstrap(ctx context.Context) error {
	s.bootOnce.Do(func() {
		s.bootErr = s.bootstrap(ctx)
	})
	return s.bootErr
}

// bootstrap checks expiry, then the profile, then marks the session
// initialized. Every path ends initialized. A Logout that lands while the
// stored token is being verified makes bootstrap end anonymous.
func (s *sessionService) bootstrap(ctx context.Context) error {
	s.mu.Lock()
	s.publish(models.Session{State: models.SessionVerifying})
	logouts := s.logouts
	s.mu.Unlock()

	token, err := s.tokens.Get(ctx)
	switch {
	case errors.Is(err, store.ErrTokenNotFound):
		s.logger.Debug().Msg("no stored session token")
		s.finishAnonymous()
		return ctx.Err()
	case err != nil && ctx.Err() != nil:
		s.finishAnonymous()
		return ctx.Err()
	case err != nil:
		s.logger.Warn().Err(err).Str("func", "sessionService.bootstrap").Msg("stored session token is unreadable")
		s.dropToken(ctx)
		return ctx.Err()
	}

	if !utils.IsTokenUsable(token, s.now()) {
		s.logger.Debug().Msg("stored session token is expired")
		s.dropToken(ctx)
		return ctx.Err()
	}

	s.adapter.SetToken(token)
	user, err := s.adapter.Me(ctx)
	if err != nil && ctx.Err() != nil {
		// Interrupted, not rejected: keep the stored token for the next start.
		s.adapter.ClearToken()
		s.finishAnonymous()
		return ctx.Err()
	}
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "sessionService.bootstrap").Msg("stored session token was not accepted")
		s.dropToken(ctx)
		return ctx.Err()
	}

	s.mu.Lock()
	if s.logouts != logouts {
		s.publish(models.Session{IsInitialized: true, State: models.SessionAnonymous})
		s.mu.Unlock()
		s.adapter.ClearToken()
		s.logger.Debug().Msg("logged out while the stored session was verified")
		return nil
	}
	s.publish(models.Session{
		Token:         token,
		User:          &user,
		IsLoggedIn:    true,
		IsInitialized: true,
		State:         models.SessionLoggedIn,
	})
	s.mu.Unlock()

	s.logger.Debug().Str("user", user.Email).Msg("session restored")
	return nil
}

// dropToken forgets the token everywhere and ends anonymous.
func (s *sessionService) dropToken(ctx context.Context) {
	s.adapter.ClearToken()
	if err := s.tokens.Remove(context.WithoutCancel(ctx)); err != nil {
		s.logger.Warn().Err(err).Str("func", "sessionService.dropToken").Msg("failed to remove stored session token")
	}
	s.finishAnonymous()
}

func (s *sessionService) finishAnonymous() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.publish(models.Session{IsInitialized: true, State: models.SessionAnonymous})
}

func (s *sessionService) Login(ctx context.Context, email, password string) (models.User, error) {
	if !s.IsInitialized() {
		return models.User{}, ErrSessionNotReady
	}

	resp, err := s.adapter.Login(ctx, email, password)
	if err != nil {
		s.logger.Warn().Err(err).Str("email", email).Msg("login failed")
		return models.User{}, mapLoginError(err)
	}
	if resp.Token == "" {
		return models.User{}, fmt.Errorf("%w: empty token in response", ErrLoginFailed)
	}

	if err = s.tokens.Set(ctx, resp.Token); err != nil {
		s.logger.Err(err).Str("func", "sessionService.Login").Msg("failed to persist session token")
		return models.User{}, fmt.Errorf("%w: %w", ErrLoginFailed, err)
	}
	s.adapter.SetToken(resp.Token)

	user := resp.User
	s.mu.Lock()
	s.publish(models.Session{
		Token:         resp.Token,
		User:          &user,
		IsLoggedIn:    true,
		IsInitialized: true,
		State:         models.SessionLoggedIn,
	})
	hook := s.onLoggedIn
	s.mu.Unlock()

	s.logger.Info().Str("user", user.Email).Msg("logged in")
	if hook != nil {
		hook(user)
	}
	return user, nil
}

func (s *sessionService) Logout(ctx context.Context) {
	if err := s.tokens.Remove(ctx); err != nil {
		s.logger.Warn().Err(err).Str("func", "sessionService.Logout").Msg("failed to remove stored session token")
	}
	s.adapter.ClearToken()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.logouts++
	switch s.session.State {
	case models.SessionAnonymous:
		return
	case models.SessionUninitialized, models.SessionVerifying:
		// bootstrap publishes the initialized anonymous state.
		s.logger.Info().Msg("logged out before the session was initialized")
		return
	}
	s.publish(s.session.Anonymous())
	s.logger.Info().Msg("logged out")
}

func (s *sessionService) HandleUnauthorized() {
	s.endSession("backend rejected the session token")
}

func (s *sessionService) CheckExpiry(now time.Time) bool {
	s.mu.RLock()
	token, loggedIn := s.session.Token, s.session.IsLoggedIn
	s.mu.RUnlock()

	if !loggedIn || utils.IsTokenUsable(token, now) {
		return false
	}
	return s.endSession("session token expired")
}

// endSession performs the LoggedIn -> Anonymous edge once.
func (s *sessionService) endSession(reason string) bool {
	s.mu.Lock()
	if s.session.State != models.SessionLoggedIn {
		s.mu.Unlock()
		return false
	}
	s.publish(s.session.Anonymous())
	hook := s.onLoggedOut
	s.mu.Unlock()

	s.logger.Warn().Msg(reason)
	s.adapter.ClearToken()
	if err := s.tokens.Remove(context.Background()); err != nil {
		s.logger.Warn().Err(err).Str("func", "sessionService.endSession").Msg("failed to remove stored session token")
	}

	if hook != nil {
		hook()
	}
	return true
}

func (s *sessionService) Snapshot() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

func (s *sessionService) IsLoggedIn() bool {
	return s.Snapshot().IsLoggedIn
}

func (s *sessionService) IsInitialized() bool {
	return s.Snapshot().IsInitialized
}

func (s *sessionService) CurrentToken() string {
	return s.Snapshot().Token
}

func (s *sessionService) CurrentUser() *models.User {
	u := s.Snapshot().User
	if u == nil {
		return nil
	}
	cp := *u
	return &cp
}

func (s *sessionService) Subscribe() (<-chan models.Session, func()) {
	ch := make(chan models.Session, 1)

	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = ch
	ch <- s.session
	s.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subscribers, id)
			s.mu.Unlock()
			close(ch)
		})
	}
}

func (s *sessionService) OnLoggedIn(fn func(models.User)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onLoggedIn = fn
}

func (s *sessionService) OnLoggedOut(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onLoggedOut = fn
}

// publish must be called with mu held. Each subscriber keeps only the
// newest snapshot.
func (s *sessionService) publish(next models.Session) {
	s.session = next
	for _, ch := range s.subscribers {
		select {
		case <-ch:
		default:
		}
		ch <- next
	}
}
