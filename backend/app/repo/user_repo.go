package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"inkwell/backend/app/errs"
	"inkwell/backend/app/models"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

// Create inserts a new user. Two concurrent creates with the same username
// race on the unique index; exactly one wins, the other gets
// ErrDuplicateUsername.
func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.ErrDuplicateUsername
		}
		return err
	}
	return nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Update(ctx context.Context, u *models.User) error {
	if err := r.db.WithContext(ctx).Save(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.ErrDuplicateUsername
		}
		return err
	}
	return nil
}

// DeleteByUsername removes the user and all their journal entries in one
// transaction; a half-applied account deletion must never be observable.
func (r *UserRepository) DeleteByUsername(ctx context.Context, username string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var u models.User
		if err := tx.Where("username = ?", username).First(&u).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.ErrNotFound
			}
			return err
		}
		if err := tx.Where("owner_id = ?", u.ID).Delete(&models.JournalEntry{}).Error; err != nil {
			return err
		}
		return tx.Delete(&u).Error
	})
}

func (r *UserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Order("username").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// AdminExists reports whether any account holds the ADMIN role. Used once at
// startup to decide whether the bootstrap admin needs seeding.
func (r *UserRepository) AdminExists(ctx context.Context) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).
		Where("roles LIKE ?", "%"+models.RoleAdmin+"%").Count(&count).Error
	return count > 0, err
}
