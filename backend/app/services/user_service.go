package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"inkwell/backend/app/dto"
	"inkwell/backend/app/errs"
	"inkwell/backend/app/hash"
	"inkwell/backend/app/models"
	"inkwell/backend/app/repo"
	"inkwell/backend/global"
)

type UserService struct {
	users   *repo.UserRepository
	entries *repo.JournalRepository
}

func NewUserService(users *repo.UserRepository, entries *repo.JournalRepository) *UserService {
	return &UserService{users: users, entries: entries}
}

func (s *UserService) Signup(ctx context.Context, username, password, email string) (*models.User, error) {
	return s.create(ctx, username, password, email, models.RoleUser)
}

// CreateAdmin is reachable only through the ManageUsers-gated admin route.
func (s *UserService) CreateAdmin(ctx context.Context, username, password, email string) (*models.User, error) {
	return s.create(ctx, username, password, email, models.RoleUser+","+models.RoleAdmin)
}

func (s *UserService) create(ctx context.Context, username, password, email, roles string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", errs.ErrValidation)
	}
	if len(username) > 191 {
		return nil, fmt.Errorf("%w: username too long", errs.ErrValidation)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", errs.ErrValidation)
	}
	digest, err := hash.Password(password)
	if err != nil {
		return nil, err
	}
	u := &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: digest,
		Email:        strings.TrimSpace(email),
		Roles:        roles,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// EnsureAdmin seeds the bootstrap admin at startup. If any admin already
// exists it does nothing. If the configured name is taken by a non-admin it
// errors out rather than silently promoting the account.
func (s *UserService) EnsureAdmin(ctx context.Context, username, password, email string) error {
	exists, err := s.users.AdminExists(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return fmt.Errorf("bootstrap admin username %q is taken by a non-admin account", username)
	}
	global.Logger.Info().Str("username", username).Msg("seeding bootstrap admin")
	_, err = s.CreateAdmin(ctx, username, password, email)
	return err
}

func (s *UserService) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.users.FindByUsername(ctx, username)
}

func (s *UserService) FindAll(ctx context.Context) ([]models.User, error) {
	return s.users.FindAll(ctx)
}

func (s *UserService) Profile(ctx context.Context, username string) (*dto.UserProfile, error) {
	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	total, err := s.entries.CountForOwner(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	p := &dto.UserProfile{
		Username:     u.Username,
		Email:        u.Email,
		Roles:        u.RoleList(),
		TotalEntries: total,
	}
	if !u.CreatedAt.IsZero() {
		p.MemberSince = u.CreatedAt.Format("Jan 02, 2006")
	}
	return p, nil
}

// UpdateProfile applies a partial update. A blank username or password keeps
// the stored value; a non-nil empty email clears it.
func (s *UserService) UpdateProfile(ctx context.Context, username string, req dto.UpdateProfileRequest) (*models.User, error) {
	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	changed := false
	if next := strings.TrimSpace(req.Username); next != "" && next != u.Username {
		if len(next) > 191 {
			return nil, fmt.Errorf("%w: username too long", errs.ErrValidation)
		}
		u.Username = next
		changed = true
	}
	if req.Password != "" {
		digest, err := hash.Password(req.Password)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = digest
		changed = true
	}
	if req.Email != nil {
		u.Email = strings.TrimSpace(*req.Email)
		changed = true
	}
	if !changed {
		return u, nil
	}
	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) Delete(ctx context.Context, username string) error {
	return s.users.DeleteByUsername(ctx, username)
}
