package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Freeeeeet/outpass_staff_bot/internal/api"
	"github.com/Freeeeeet/outpass_staff_bot/internal/model"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// SessionStore persists sessions with a sealed token
type SessionStore interface {
	Save(ctx context.Context, sess *model.Session, sealedToken []byte) error
	Get(ctx context.Context, telegramID int64) (*model.Session, []byte, error)
	Delete(ctx context.Context, telegramID int64) error
	DeleteExpired(ctx context.Context, now time.Time) ([]int64, error)
}

// Authenticator is the part of the backend used to open a session
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*api.LoginResult, error)
	GetProfile(ctx context.Context, sess *model.Session) (*model.StaffProfile, error)
}

type SessionService struct {
	store  SessionStore
	auth   Authenticator
	sealer *TokenSealer
	ttl    time.Duration
	now    func() time.Time
	logger *zap.Logger

	mu         sync.RWMutex
	onTeardown []func(telegramID int64)
}

func NewSessionService(store SessionStore, auth Authenticator, sealer *TokenSealer, ttl time.Duration, logger *zap.Logger) *SessionService {
	return &SessionService{
		store:  store,
		auth:   auth,
		sealer: sealer,
		ttl:    ttl,
		now:    time.Now,
		logger: logger,
	}
}

// OnTeardown registers cleanup of per-session in-memory state
func (s *SessionService) OnTeardown(fn func(telegramID int64)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onTeardown = append(s.onTeardown, fn)
}

// Login authenticates against the backend and stores the session of the chat
func (s *SessionService) Login(ctx context.Context, telegramID int64, email, password string) (*model.Session, error) {
	email = strings.TrimSpace(email)
	if err := validateValue("email", email, "required,email"); err != nil {
		return nil, err
	}
	if password == "" {
		return nil, &InvalidInputError{Field: "password", Reason: "value is required"}
	}

	res, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	now := s.now()
	sess := &model.Session{
		TelegramID: telegramID,
		Token:      res.Token,
		StaffName:  strings.TrimSpace(res.Staff.Name),
		StaffEmail: email,
		ExpiresAt:  tokenExpiry(res.Token, now.Add(s.ttl)),
	}

	if sess.StaffName == "" {
		sess.StaffName = s.lookupStaffName(ctx, sess)
	}

	sealed, err := s.sealer.Seal(sess.Token)
	if err != nil {
		return nil, fmt.Errorf("seal token: %w", err)
	}
	if err := s.store.Save(ctx, sess, sealed); err != nil {
		return nil, err
	}

	s.logger.Info("Staff logged in",
		zap.Int64("telegram_id", telegramID),
		zap.String("staff_email", email),
		zap.Time("expires_at", sess.ExpiresAt))

	return sess, nil
}

// lookupStaffName fetches the approver label; failures fall back to the email
func (s *SessionService) lookupStaffName(ctx context.Context, sess *model.Session) string {
	profile, err := s.auth.GetProfile(ctx, sess)
	if err != nil || profile == nil || strings.TrimSpace(profile.Name) == "" {
		s.logger.Debug("Staff name lookup failed, using email",
			zap.Int64("telegram_id", sess.TelegramID))
		return sess.StaffEmail
	}
	return strings.TrimSpace(profile.Name)
}

// Require returns the live session of a chat or ErrNoSession
func (s *SessionService) Require(ctx context.Context, telegramID int64) (*model.Session, error) {
	sess, sealed, err := s.store.Get(ctx, telegramID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrNoSession
	}

	if sess.Expired(s.now()) {
		s.logger.Info("Session expired", zap.Int64("telegram_id", telegramID))
		if err := s.Logout(ctx, telegramID); err != nil {
			return nil, err
		}
		return nil, ErrNoSession
	}

	token, err := s.sealer.Open(sealed)
	if err != nil {
		s.logger.Warn("Dropping unreadable session", zap.Int64("telegram_id", telegramID), zap.Error(err))
		if err := s.Logout(ctx, telegramID); err != nil {
			return nil, err
		}
		return nil, ErrNoSession
	}
	sess.Token = token

	return sess, nil
}

// Logout tears the session down: stored row and every in-memory copy
func (s *SessionService) Logout(ctx context.Context, telegramID int64) error {
	if err := s.store.Delete(ctx, telegramID); err != nil {
		return err
	}
	s.teardown(telegramID)

	s.logger.Info("Session closed", zap.Int64("telegram_id", telegramID))
	return nil
}

// Invalidate handles a backend auth failure; it returns true when err was one
func (s *SessionService) Invalidate(ctx context.Context, telegramID int64, err error) bool {
	if !errors.Is(err, api.ErrUnauthorized) {
		return false
	}
	if logoutErr := s.Logout(ctx, telegramID); logoutErr != nil {
		s.logger.Error("Failed to close rejected session",
			zap.Int64("telegram_id", telegramID),
			zap.Error(logoutErr))
	}
	return true
}

// SweepExpired removes every expired session and returns how many were dropped
func (s *SessionService) SweepExpired(ctx context.Context) (int, error) {
	ids, err := s.store.DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, err
	}
	for _, id := range ids {
		s.teardown(id)
	}
	return len(ids), nil
}

func (s *SessionService) teardown(telegramID int64) {
	s.mu.RLock()
	hooks := append([]func(int64){}, s.onTeardown...)
	s.mu.RUnlock()

	for _, fn := range hooks {
		fn(telegramID)
	}
}

// tokenExpiry reads the exp claim without verifying the signature; the
// backend remains the only judge of validity.
func tokenExpiry(token string, fallback time.Time) time.Time {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return fallback
	}
	if claims.ExpiresAt == nil {
		return fallback
	}
	return claims.ExpiresAt.Time
}
