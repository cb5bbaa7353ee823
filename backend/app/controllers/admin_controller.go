package controllers

import (
	"net/http"

	"inkwell/backend/app/dto"
	"inkwell/backend/app/services"
)

// AdminController handlers sit behind the ReadAny / ManageUsers middleware
// gates wired in the router.
type AdminController struct {
	Users   *services.UserService
	Entries *services.JournalService
}

func NewAdminController(users *services.UserService, entries *services.JournalService) *AdminController {
	return &AdminController{Users: users, Entries: entries}
}

func (c *AdminController) AllEntries(w http.ResponseWriter, r *http.Request) {
	groups, err := c.Entries.ListAllGrouped(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, groups)
}

func (c *AdminController) EntryByID(w http.ResponseWriter, r *http.Request) {
	e, err := c.Entries.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (c *AdminController) AllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := c.Users.FindAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (c *AdminController) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	u, err := c.Users.CreateAdmin(r.Context(), req.Username, req.Password, req.Email)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, u)
}
