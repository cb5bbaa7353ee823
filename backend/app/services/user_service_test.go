package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"inkwell/backend/app/dto"
	"inkwell/backend/app/errs"
	"inkwell/backend/app/hash"
	"inkwell/backend/app/models"
	"inkwell/backend/app/repo"
)

func newUserFixture(t *testing.T) (*UserService, *repo.JournalRepository) {
	t.Helper()
	gdb := testDB(t)
	journalRepo := repo.NewJournalRepository(gdb)
	return NewUserService(repo.NewUserRepository(gdb), journalRepo), journalRepo
}

func TestSignup(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	users, _ := newUserFixture(t)

	u, err := users.Signup(ctx, "alice", "pw1", "a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)
	require.Equal(t, []string{models.RoleUser}, u.RoleList())
	require.False(t, u.IsAdmin())
	require.True(t, hash.Verify("pw1", u.PasswordHash))
	require.NotEqual(t, "pw1", u.PasswordHash)
	require.Nil(t, u.LastLoginAt)

	_, err = users.Signup(ctx, "alice", "other", "")
	require.ErrorIs(t, err, errs.ErrDuplicateUsername)

	_, err = users.Signup(ctx, "", "pw", "")
	require.ErrorIs(t, err, errs.ErrValidation)
	_, err = users.Signup(ctx, "carol", "", "")
	require.ErrorIs(t, err, errs.ErrValidation)
}

func TestEnsureAdmin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	users, _ := newUserFixture(t)

	require.NoError(t, users.EnsureAdmin(ctx, "root", "rootpw", "root@x.com"))
	admin, err := users.FindByUsername(ctx, "root")
	require.NoError(t, err)
	require.True(t, admin.IsAdmin())
	require.True(t, admin.HasRole(models.RoleUser), "admins keep the USER role")

	// Idempotent once an admin exists.
	require.NoError(t, users.EnsureAdmin(ctx, "root", "rootpw", ""))
	require.NoError(t, users.EnsureAdmin(ctx, "other-admin", "pw", ""))
	_, err = users.FindByUsername(ctx, "other-admin")
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestEnsureAdminRefusesTakenUsername(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	users, _ := newUserFixture(t)

	_, err := users.Signup(ctx, "root", "pw", "")
	require.NoError(t, err)
	require.Error(t, users.EnsureAdmin(ctx, "root", "rootpw", ""),
		"must not promote an existing non-admin account")
}

func TestProfile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	users, journalRepo := newUserFixture(t)

	u, err := users.Signup(ctx, "alice", "pw1", "a@x.com")
	require.NoError(t, err)
	require.NoError(t, journalRepo.Create(ctx, &models.JournalEntry{ID: "e1", Title: "t", OwnerID: u.ID}))

	p, err := users.Profile(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, "alice", p.Username)
	require.Equal(t, "a@x.com", p.Email)
	require.Equal(t, int64(1), p.TotalEntries)
	require.Equal(t, []string{models.RoleUser}, p.Roles)

	_, err = users.Profile(ctx, "ghost")
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestUpdateProfile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	users, _ := newUserFixture(t)

	_, err := users.Signup(ctx, "alice", "pw1", "a@x.com")
	require.NoError(t, err)
	_, err = users.Signup(ctx, "bob", "pw2", "")
	require.NoError(t, err)

	// Partial: only password changes, username and email stay.
	u, err := users.UpdateProfile(ctx, "alice", dto.UpdateProfileRequest{Password: "pw9"})
	require.NoError(t, err)
	require.Equal(t, "alice", u.Username)
	require.Equal(t, "a@x.com", u.Email)
	require.True(t, hash.Verify("pw9", u.PasswordHash))

	// Explicit empty email clears it.
	empty := ""
	u, err = users.UpdateProfile(ctx, "alice", dto.UpdateProfileRequest{Email: &empty})
	require.NoError(t, err)
	require.Equal(t, "", u.Email)

	// Renaming onto a taken username conflicts.
	_, err = users.UpdateProfile(ctx, "alice", dto.UpdateProfileRequest{Username: "bob"})
	require.ErrorIs(t, err, errs.ErrDuplicateUsername)

	// Rename to a free name works.
	u, err = users.UpdateProfile(ctx, "alice", dto.UpdateProfileRequest{Username: "alice2"})
	require.NoError(t, err)
	require.Equal(t, "alice2", u.Username)
	_, err = users.FindByUsername(ctx, "alice2")
	require.NoError(t, err)
}

func TestDeleteAccountRemovesEntries(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	users, journalRepo := newUserFixture(t)

	u, err := users.Signup(ctx, "alice", "pw1", "")
	require.NoError(t, err)
	require.NoError(t, journalRepo.Create(ctx, &models.JournalEntry{ID: "e1", Title: "t", OwnerID: u.ID}))

	require.NoError(t, users.Delete(ctx, "alice"))
	_, err = users.FindByUsername(ctx, "alice")
	require.ErrorIs(t, err, errs.ErrNotFound)
	count, err := journalRepo.CountForOwner(ctx, u.ID)
	require.NoError(t, err)
	require.Zero(t, count)
}
