package controllers

import (
	"net/http"

	"inkwell/backend/app/dto"
	"inkwell/backend/app/services"
)

type AuthController struct {
	Authn *services.AuthService
	Users *services.UserService
}

func NewAuthController(authn *services.AuthService, users *services.UserService) *AuthController {
	return &AuthController{Authn: authn, Users: users}
}

func (c *AuthController) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (c *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	u, err := c.Users.Signup(r.Context(), req.Username, req.Password, req.Email)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, u)
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	token, u, err := c.Authn.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.AuthResponse{AccessToken: token, Username: u.Username})
}

// Logout is advisory: tokens are stateless and expire by time, the client
// simply discards its copy.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

// Validate lets a client check a cached token without performing a request.
func (c *AuthController) Validate(w http.ResponseWriter, r *http.Request) {
	authz := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(authz) <= len(prefix) || authz[:len(prefix)] != prefix {
		writeJSON(w, http.StatusUnauthorized, dto.TokenStatus{Valid: false})
		return
	}
	u, err := c.Authn.Authenticate(r.Context(), authz[len(prefix):])
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, dto.TokenStatus{Valid: false})
		return
	}
	writeJSON(w, http.StatusOK, dto.TokenStatus{Valid: true, Username: u.Username})
}
