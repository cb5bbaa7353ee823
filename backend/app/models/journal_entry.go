package models

import "time"

// JournalEntry belongs to exactly one user. OwnerID is the only place the
// relation is stored; the owner's entry list is always derived by query.
type JournalEntry struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	Content   string    `gorm:"type:text" json:"content,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	OwnerID   string    `gorm:"size:36;index;not null" json:"-"`
}
