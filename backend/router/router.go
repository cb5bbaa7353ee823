package router

import (
	"net/http"

	"inkwell/backend/app/controllers"
	"inkwell/backend/app/middleware"
	"inkwell/backend/app/policy"
)

// NewRouter wires the public, authenticated and admin route groups. Public
// routes bypass the access policy entirely; everything else goes through the
// auth middleware first.
func NewRouter(authCtrl *controllers.AuthController, journalCtrl *controllers.JournalController,
	userCtrl *controllers.UserController, adminCtrl *controllers.AdminController,
	mw *middleware.Auth) http.Handler {

	mux := http.NewServeMux()

	// public
	mux.HandleFunc("GET /healthz", authCtrl.HealthCheck)
	mux.HandleFunc("POST /auth/sign-up", authCtrl.Signup)
	mux.HandleFunc("POST /auth/login", authCtrl.Login)
	mux.HandleFunc("POST /auth/logout", authCtrl.Logout)
	mux.HandleFunc("POST /auth/validate", authCtrl.Validate)

	// owner-scoped
	auth := func(h http.HandlerFunc) http.Handler { return mw.RequireAuth(h) }
	mux.Handle("GET /journal", auth(journalCtrl.List))
	mux.Handle("POST /journal", auth(journalCtrl.Create))
	mux.Handle("GET /journal/{id}", auth(journalCtrl.Get))
	mux.Handle("PUT /journal/{id}", auth(journalCtrl.Update))
	mux.Handle("DELETE /journal/{id}", auth(journalCtrl.Delete))
	mux.Handle("GET /user/profile", auth(userCtrl.Profile))
	mux.Handle("PUT /user/profile", auth(userCtrl.UpdateProfile))
	mux.Handle("DELETE /user/profile", auth(userCtrl.DeleteProfile))

	// admin
	readAny := func(h http.HandlerFunc) http.Handler { return mw.RequireAction(policy.ReadAny, h) }
	manage := func(h http.HandlerFunc) http.Handler { return mw.RequireAction(policy.ManageUsers, h) }
	mux.Handle("GET /admin/entries", readAny(adminCtrl.AllEntries))
	mux.Handle("GET /admin/entries/{id}", readAny(adminCtrl.EntryByID))
	mux.Handle("GET /admin/users", manage(adminCtrl.AllUsers))
	mux.Handle("POST /admin/users", manage(adminCtrl.CreateUser))

	return mux
}
