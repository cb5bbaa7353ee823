package dto

import "inkwell/backend/app/models"

// EntryRequest serves both create and update. On update a blank field keeps
// the stored value.
type EntryRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// OwnerEntries is one group in the admin list-all view.
type OwnerEntries struct {
	Username string                `json:"username"`
	Entries  []models.JournalEntry `json:"entries"`
}
