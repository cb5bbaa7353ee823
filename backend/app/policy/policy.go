// Package policy is the single access-control decision point. Authorize is
// pure: no storage access, no caching, evaluated fresh on every request.
package policy

import "inkwell/backend/app/models"

type Action int

const (
	// ReadOwn and WriteOwn cover a user's own entries and profile.
	ReadOwn Action = iota
	WriteOwn
	// ReadAny is the admin override for inspecting any user's entries.
	// It deliberately does not imply WriteOwn on others' data.
	ReadAny
	// ManageUsers gates admin account administration.
	ManageUsers
)

func Authorize(caller *models.User, action Action, resourceOwnerID string) bool {
	if caller == nil {
		return false
	}
	switch action {
	case ReadAny, ManageUsers:
		return caller.IsAdmin()
	case ReadOwn, WriteOwn:
		return caller.ID != "" && caller.ID == resourceOwnerID
	}
	return false
}
