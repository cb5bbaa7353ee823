package controllers

import (
	"net/http"

	"inkwell/backend/app/dto"
	"inkwell/backend/app/errs"
	"inkwell/backend/app/middleware"
	"inkwell/backend/app/policy"
	"inkwell/backend/app/services"
)

// JournalController owns the /journal routes. Every handler scopes its work
// to the authenticated caller's own id; client-supplied owner fields do not
// exist in the API.
type JournalController struct{ Entries *services.JournalService }

func NewJournalController(entries *services.JournalService) *JournalController {
	return &JournalController{Entries: entries}
}

func (c *JournalController) List(w http.ResponseWriter, r *http.Request) {
	caller := middleware.Identity(r.Context())
	if caller == nil || !policy.Authorize(caller, policy.ReadOwn, caller.ID) {
		writeError(w, errs.ErrForbidden)
		return
	}
	ascending := r.URL.Query().Get("sort") == "asc"
	entries, err := c.Entries.ListForOwner(r.Context(), caller.ID, ascending)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (c *JournalController) Create(w http.ResponseWriter, r *http.Request) {
	caller := middleware.Identity(r.Context())
	if caller == nil || !policy.Authorize(caller, policy.WriteOwn, caller.ID) {
		writeError(w, errs.ErrForbidden)
		return
	}
	var req dto.EntryRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	e, err := c.Entries.Create(r.Context(), caller.ID, req.Title, req.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, e)
}

func (c *JournalController) Get(w http.ResponseWriter, r *http.Request) {
	caller := middleware.Identity(r.Context())
	if caller == nil || !policy.Authorize(caller, policy.ReadOwn, caller.ID) {
		writeError(w, errs.ErrForbidden)
		return
	}
	e, err := c.Entries.GetForOwner(r.Context(), r.PathValue("id"), caller.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (c *JournalController) Update(w http.ResponseWriter, r *http.Request) {
	caller := middleware.Identity(r.Context())
	if caller == nil || !policy.Authorize(caller, policy.WriteOwn, caller.ID) {
		writeError(w, errs.ErrForbidden)
		return
	}
	var req dto.EntryRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	e, err := c.Entries.Update(r.Context(), r.PathValue("id"), caller.ID, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (c *JournalController) Delete(w http.ResponseWriter, r *http.Request) {
	caller := middleware.Identity(r.Context())
	if caller == nil || !policy.Authorize(caller, policy.WriteOwn, caller.ID) {
		writeError(w, errs.ErrForbidden)
		return
	}
	deleted, err := c.Entries.Delete(r.Context(), r.PathValue("id"), caller.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	if !deleted {
		writeError(w, errs.ErrNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
