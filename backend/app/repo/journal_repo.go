package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"inkwell/backend/app/errs"
	"inkwell/backend/app/models"
)

type JournalRepository struct{ db *gorm.DB }

func NewJournalRepository(db *gorm.DB) *JournalRepository { return &JournalRepository{db: db} }

func (r *JournalRepository) Create(ctx context.Context, e *models.JournalEntry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

// FindForOwner scopes the lookup by owner in the query itself, so an entry
// belonging to someone else is indistinguishable from one that never existed.
func (r *JournalRepository) FindForOwner(ctx context.Context, id, ownerID string) (*models.JournalEntry, error) {
	var e models.JournalEntry
	err := r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).First(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *JournalRepository) ListForOwner(ctx context.Context, ownerID string, ascending bool) ([]models.JournalEntry, error) {
	order := "created_at DESC"
	if ascending {
		order = "created_at ASC"
	}
	var entries []models.JournalEntry
	err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order(order).Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *JournalRepository) Save(ctx context.Context, e *models.JournalEntry) error {
	return r.db.WithContext(ctx).Save(e).Error
}

// DeleteForOwner reports whether a row was actually removed. Ownership lives
// in a single column, so the delete is one statement and cannot leave a
// dangling membership record behind.
func (r *JournalRepository) DeleteForOwner(ctx context.Context, id, ownerID string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).Delete(&models.JournalEntry{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// FindByID is the unscoped lookup reserved for admin inspection.
func (r *JournalRepository) FindByID(ctx context.Context, id string) (*models.JournalEntry, error) {
	var e models.JournalEntry
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&e).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *JournalRepository) FindAll(ctx context.Context) ([]models.JournalEntry, error) {
	var entries []models.JournalEntry
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *JournalRepository) CountForOwner(ctx context.Context, ownerID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.JournalEntry{}).
		Where("owner_id = ?", ownerID).Count(&count).Error
	return count, err
}
