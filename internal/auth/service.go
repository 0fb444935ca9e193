package auth

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"pharmhub/internal/entity"
	"pharmhub/internal/usecase"
)

const (
	// maxLoginAttempts consecutive failures lock an address out until the
	// attempt window lapses or a success resets the counter.
	maxLoginAttempts = 5
	attemptWindow    = 15 * time.Minute

	tokenTTL = 12 * time.Hour
)

// Service performs the credential check against the member directory and
// gates repeated failures through the local attempt counter.
type Service struct {
	directory usecase.MemberDirectory
	state     usecase.LocalStore
	secret    string
	logger    *zap.Logger
}

func NewService(directory usecase.MemberDirectory, state usecase.LocalStore, secret string, logger *zap.Logger) *Service {
	return &Service{
		directory: directory,
		state:     state,
		secret:    secret,
		logger:    logger,
	}
}

// Login verifies the email/password pair. "No such member" and "wrong
// password" both surface as ErrInvalidCredentials so callers cannot
// enumerate addresses. On success the attempt counter resets, a session
// snapshot is stored, and a signed token is returned.
func (s *Service) Login(ctx context.Context, email, password string) (entity.MemberAccount, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	attemptKey := usecase.KeyLoginAttempts + email

	if locked, err := s.isLockedOut(ctx, attemptKey); err != nil {
		return entity.MemberAccount{}, "", err
	} else if locked {
		return entity.MemberAccount{}, "", usecase.ErrRateLimited
	}

	creds, err := s.directory.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			return entity.MemberAccount{}, "", s.recordFailure(ctx, attemptKey)
		}
		return entity.MemberAccount{}, "", err
	}

	if !s.verify(creds, password) {
		return entity.MemberAccount{}, "", s.recordFailure(ctx, attemptKey)
	}

	if err := s.state.Delete(ctx, attemptKey); err != nil {
		s.logger.Warn("failed to reset attempt counter", zap.Error(err))
	}

	token, err := GenerateToken(s.secret, creds.Account.ID, creds.Account.Email, tokenTTL)
	if err != nil {
		return entity.MemberAccount{}, "", err
	}

	if snapshot, err := json.Marshal(creds.Account); err == nil {
		if err := s.state.Set(ctx, usecase.KeySession+creds.Account.ID, string(snapshot), tokenTTL); err != nil {
			s.logger.Warn("failed to store session snapshot", zap.Error(err))
		}
	}

	return creds.Account, token, nil
}

// Logout drops the stored session snapshot. The token itself simply
// expires; there is no revocation list.
func (s *Service) Logout(ctx context.Context, memberID string) error {
	return s.state.Delete(ctx, usecase.KeySession+memberID)
}

// ParseToken validates a session token issued by this service.
func (s *Service) ParseToken(token string) (*Claims, error) {
	return ParseToken(s.secret, token)
}

func (s *Service) verify(creds usecase.MemberCredentials, password string) bool {
	if creds.PasswordHash != "" {
		return VerifyPassword(creds.PasswordHash, password)
	}
	if VerifyTempPassword(creds.TempPassword, password) {
		s.logger.Warn("member authenticated via legacy temp password, needs hash migration",
			zap.String("member_id", creds.Account.ID))
		return true
	}
	return false
}

func (s *Service) isLockedOut(ctx context.Context, attemptKey string) (bool, error) {
	v, ok, err := s.state.Get(ctx, attemptKey)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	count, err := strconv.Atoi(v)
	if err != nil {
		return false, nil
	}
	return count >= maxLoginAttempts, nil
}

func (s *Service) recordFailure(ctx context.Context, attemptKey string) error {
	if _, err := s.state.Incr(ctx, attemptKey, attemptWindow); err != nil {
		s.logger.Warn("failed to record login attempt", zap.Error(err))
	}
	return usecase.ErrInvalidCredentials
}
