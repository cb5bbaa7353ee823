package controllers

import (
	"net/http"

	"inkwell/backend/app/dto"
	"inkwell/backend/app/errs"
	"inkwell/backend/app/middleware"
	"inkwell/backend/app/services"
)

type UserController struct{ Users *services.UserService }

func NewUserController(users *services.UserService) *UserController {
	return &UserController{Users: users}
}

func (c *UserController) Profile(w http.ResponseWriter, r *http.Request) {
	caller := middleware.Identity(r.Context())
	if caller == nil {
		writeError(w, errs.ErrUnauthorized)
		return
	}
	p, err := c.Users.Profile(r.Context(), caller.Username)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (c *UserController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	caller := middleware.Identity(r.Context())
	if caller == nil {
		writeError(w, errs.ErrUnauthorized)
		return
	}
	var req dto.UpdateProfileRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	u, err := c.Users.UpdateProfile(r.Context(), caller.Username, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (c *UserController) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	caller := middleware.Identity(r.Context())
	if caller == nil {
		writeError(w, errs.ErrUnauthorized)
		return
	}
	if err := c.Users.Delete(r.Context(), caller.Username); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "account deleted"})
}
