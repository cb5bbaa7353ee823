package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"inkwell/backend/app/dto"
	"inkwell/backend/app/errs"
	"inkwell/backend/app/models"
	"inkwell/backend/app/repo"
)

const maxTitleLen = 200

// JournalService is the entry gateway. Every operation except the admin views
// is parameterized by the caller's resolved owner id, never by anything the
// client supplied.
type JournalService struct {
	entries *repo.JournalRepository
	users   *repo.UserRepository
}

func NewJournalService(entries *repo.JournalRepository, users *repo.UserRepository) *JournalService {
	return &JournalService{entries: entries, users: users}
}

func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", fmt.Errorf("%w: title is required", errs.ErrValidation)
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return "", fmt.Errorf("%w: title exceeds %d characters", errs.ErrValidation, maxTitleLen)
	}
	return title, nil
}

func (s *JournalService) Create(ctx context.Context, ownerID, title, content string) (*models.JournalEntry, error) {
	title, err := validateTitle(title)
	if err != nil {
		return nil, err
	}
	e := &models.JournalEntry{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		CreatedAt: time.Now(),
		OwnerID:   ownerID,
	}
	if err := s.entries.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *JournalService) ListForOwner(ctx context.Context, ownerID string, ascending bool) ([]models.JournalEntry, error) {
	return s.entries.ListForOwner(ctx, ownerID, ascending)
}

func (s *JournalService) GetForOwner(ctx context.Context, id, ownerID string) (*models.JournalEntry, error) {
	return s.entries.FindForOwner(ctx, id, ownerID)
}

// Update applies a partial patch: a blank title or content keeps the stored
// value. CreatedAt is re-stamped server-side whenever the patch actually
// changes something, matching create semantics.
func (s *JournalService) Update(ctx context.Context, id, ownerID string, patch dto.EntryRequest) (*models.JournalEntry, error) {
	e, err := s.entries.FindForOwner(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	changed := false
	if t := strings.TrimSpace(patch.Title); t != "" && t != e.Title {
		if utf8.RuneCountInString(t) > maxTitleLen {
			return nil, fmt.Errorf("%w: title exceeds %d characters", errs.ErrValidation, maxTitleLen)
		}
		e.Title = t
		changed = true
	}
	if patch.Content != "" && patch.Content != e.Content {
		e.Content = patch.Content
		changed = true
	}
	if !changed {
		return e, nil
	}
	e.CreatedAt = time.Now()
	if err := s.entries.Save(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *JournalService) Delete(ctx context.Context, id, ownerID string) (bool, error) {
	return s.entries.DeleteForOwner(ctx, id, ownerID)
}

// GetByID bypasses ownership scoping; callers must hold ReadAny.
func (s *JournalService) GetByID(ctx context.Context, id string) (*models.JournalEntry, error) {
	return s.entries.FindByID(ctx, id)
}

// ListAllGrouped is the admin view: every entry in the store, grouped by
// owning username, groups sorted by name.
func (s *JournalService) ListAllGrouped(ctx context.Context) ([]dto.OwnerEntries, error) {
	all, err := s.entries.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Username
	}
	byOwner := make(map[string][]models.JournalEntry)
	for _, e := range all {
		name := names[e.OwnerID]
		if name == "" {
			// Entry whose owner vanished mid-scan; group under the raw id
			// rather than dropping it from the audit view.
			name = e.OwnerID
		}
		byOwner[name] = append(byOwner[name], e)
	}
	groups := make([]dto.OwnerEntries, 0, len(byOwner))
	for name, entries := range byOwner {
		groups = append(groups, dto.OwnerEntries{Username: name, Entries: entries})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Username < groups[j].Username })
	return groups, nil
}
