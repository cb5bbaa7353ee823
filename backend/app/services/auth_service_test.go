package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"inkwell/backend/app/errs"
	jwtutil "inkwell/backend/app/jwt"
	"inkwell/backend/app/repo"
)

func testSigner() *jwtutil.Signer {
	return &jwtutil.Signer{Secret: []byte("test-secret"), Issuer: "inkwell-test", ExpHours: 1}
}

func newAuthFixture(t *testing.T) (*AuthService, *UserService) {
	t.Helper()
	gdb := testDB(t)
	users := repo.NewUserRepository(gdb)
	entries := repo.NewJournalRepository(gdb)
	userSvc := NewUserService(users, entries)
	return NewAuthService(users, testSigner(), nil), userSvc
}

func TestLoginSuccess(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	authSvc, userSvc := newAuthFixture(t)

	_, err := userSvc.Signup(ctx, "alice", "pw1", "a@x.com")
	require.NoError(t, err)

	token, u, err := authSvc.Login(ctx, "alice", "pw1")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotNil(t, u.LastLoginAt, "successful login must stamp last-login")
	require.WithinDuration(t, time.Now(), *u.LastLoginAt, 5*time.Second)

	got, err := authSvc.Authenticate(ctx, token)
	require.NoError(t, err)
	require.Equal(t, "alice", got.Username)
}

// Unknown username and wrong password must be indistinguishable.
func TestLoginBadCredentials(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	authSvc, userSvc := newAuthFixture(t)

	_, err := userSvc.Signup(ctx, "alice", "pw1", "")
	require.NoError(t, err)

	_, _, errWrongPass := authSvc.Login(ctx, "alice", "wrong")
	_, _, errNoUser := authSvc.Login(ctx, "ghost", "pw1")
	require.ErrorIs(t, errWrongPass, errs.ErrBadCredentials)
	require.ErrorIs(t, errNoUser, errs.ErrBadCredentials)
	require.Equal(t, errWrongPass.Error(), errNoUser.Error())
}

func TestAuthenticateDeletedUserFailsClosed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	authSvc, userSvc := newAuthFixture(t)

	_, err := userSvc.Signup(ctx, "alice", "pw1", "")
	require.NoError(t, err)
	token, _, err := authSvc.Login(ctx, "alice", "pw1")
	require.NoError(t, err)

	require.NoError(t, userSvc.Delete(ctx, "alice"))

	_, err = authSvc.Authenticate(ctx, token)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestAuthenticateGarbageToken(t *testing.T) {
	t.Parallel()
	authSvc, _ := newAuthFixture(t)

	for _, tok := range []string{"", "junk", "a.b.c"} {
		_, err := authSvc.Authenticate(context.Background(), tok)
		require.ErrorIs(t, err, errs.ErrUnauthorized)
	}
}

// fakeLimiter is an in-memory stand-in for the redis limiter.
type fakeLimiter struct {
	max      int
	failures map[string]int
}

func (l *fakeLimiter) Allow(_ context.Context, key string) (bool, error) {
	return l.failures[key] < l.max, nil
}

func (l *fakeLimiter) RecordFailure(_ context.Context, key string) error {
	l.failures[key]++
	return nil
}

func (l *fakeLimiter) Reset(_ context.Context, key string) error {
	delete(l.failures, key)
	return nil
}

// downLimiter simulates a throttle store outage: every call errors.
type downLimiter struct{}

func (downLimiter) Allow(context.Context, string) (bool, error) {
	return false, errors.New("connection refused")
}

func (downLimiter) RecordFailure(context.Context, string) error {
	return errors.New("connection refused")
}

func (downLimiter) Reset(context.Context, string) error {
	return errors.New("connection refused")
}

// A throttle store outage must fail open: correct credentials still log in,
// wrong credentials still come back as bad credentials rather than a 5xx.
func TestLoginLimiterOutageFailsOpen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	gdb := testDB(t)
	users := repo.NewUserRepository(gdb)
	userSvc := NewUserService(users, repo.NewJournalRepository(gdb))
	authSvc := NewAuthService(users, testSigner(), downLimiter{})

	_, err := userSvc.Signup(ctx, "alice", "pw1", "")
	require.NoError(t, err)

	token, u, err := authSvc.Login(ctx, "alice", "pw1")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, "alice", u.Username)

	_, _, err = authSvc.Login(ctx, "alice", "wrong")
	require.ErrorIs(t, err, errs.ErrBadCredentials)
}

func TestLoginThrottling(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	gdb := testDB(t)
	users := repo.NewUserRepository(gdb)
	userSvc := NewUserService(users, repo.NewJournalRepository(gdb))
	limiter := &fakeLimiter{max: 3, failures: map[string]int{}}
	authSvc := NewAuthService(users, testSigner(), limiter)

	_, err := userSvc.Signup(ctx, "alice", "pw1", "")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, _, err := authSvc.Login(ctx, "alice", "wrong")
		require.ErrorIs(t, err, errs.ErrBadCredentials)
	}
	// Window exhausted: even the right password is throttled now.
	_, _, err = authSvc.Login(ctx, "alice", "pw1")
	require.ErrorIs(t, err, errs.ErrThrottled)

	// A success after the window clears the counter.
	limiter.failures = map[string]int{}
	_, _, err = authSvc.Login(ctx, "alice", "pw1")
	require.NoError(t, err)
	require.Empty(t, limiter.failures)
}
