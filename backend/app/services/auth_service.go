package services

import (
	"context"
	"errors"
	"time"

	"inkwell/backend/app/errs"
	"inkwell/backend/app/hash"
	jwtutil "inkwell/backend/app/jwt"
	"inkwell/backend/app/models"
	"inkwell/backend/app/ratelimit"
	"inkwell/backend/app/repo"
	"inkwell/backend/global"
)

// AuthService is the authenticator: it turns credentials into tokens and
// tokens back into live identities.
type AuthService struct {
	users   *repo.UserRepository
	signer  *jwtutil.Signer
	limiter ratelimit.Limiter // nil disables throttling
}

func NewAuthService(users *repo.UserRepository, signer *jwtutil.Signer, limiter ratelimit.Limiter) *AuthService {
	return &AuthService{users: users, signer: signer, limiter: limiter}
}

// Login verifies credentials and issues a session token. Unknown username and
// wrong password collapse into the single ErrBadCredentials so the endpoint
// cannot be used to enumerate accounts. The last-login stamp is best-effort:
// a failed update is logged and the login still succeeds.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	if username == "" || password == "" {
		return "", nil, errs.ErrBadCredentials
	}
	if s.limiter != nil {
		ok, err := s.limiter.Allow(ctx, username)
		if err != nil {
			// Throttle store outage fails open; losing the throttle is
			// better than losing logins.
			global.Logger.Warn().Err(err).Msg("login throttle unavailable")
		} else if !ok {
			return "", nil, errs.ErrThrottled
		}
	}

	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			s.recordFailure(ctx, username)
			return "", nil, errs.ErrBadCredentials
		}
		return "", nil, err
	}
	if !hash.Verify(password, u.PasswordHash) {
		s.recordFailure(ctx, username)
		return "", nil, errs.ErrBadCredentials
	}

	token, err := s.signer.Sign(u.Username)
	if err != nil {
		return "", nil, err
	}

	now := time.Now()
	u.LastLoginAt = &now
	if err := s.users.Update(ctx, u); err != nil {
		global.Logger.Warn().Err(err).Str("username", u.Username).Msg("last-login update failed")
	}
	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, username); err != nil {
			global.Logger.Warn().Err(err).Msg("login throttle reset failed")
		}
	}
	return token, u, nil
}

func (s *AuthService) recordFailure(ctx context.Context, username string) {
	if s.limiter == nil {
		return
	}
	if err := s.limiter.RecordFailure(ctx, username); err != nil {
		global.Logger.Warn().Err(err).Msg("login throttle record failed")
	}
}

// Authenticate resolves a bearer token to a live identity. A token whose
// subject no longer exists fails closed; signature and expiry failures are
// logged distinctly but both come back as ErrUnauthorized.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	username, err := s.signer.Parse(token)
	if err != nil {
		if errors.Is(err, errs.ErrTokenExpired) {
			global.Logger.Debug().Msg("rejected expired token")
		} else {
			global.Logger.Debug().Msg("rejected invalid token")
		}
		return nil, errs.ErrUnauthorized
	}
	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, errs.ErrUnauthorized
	}
	return u, nil
}
