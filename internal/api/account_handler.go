package api

import (
	"errors"
	"net/http"

	"github.com/edututor-ai/backend/internal/domain/account"
	"github.com/edututor-ai/backend/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type RegisterRequest struct {
	Username string `json:"username" example:"amira"`
	Email    string `json:"email" example:"amira@example.com"`
	Password string `json:"password" example:"secret"`
	Role     string `json:"role" example:"student"`
}

func (r *RegisterRequest) Validate() error {
	if r.Username == "" {
		return errors.New("username is required")
	}
	if r.Email == "" {
		return errors.New("email is required")
	}
	if r.Password == "" {
		return errors.New("password is required")
	}
	role := account.Role(r.Role)
	if role != account.RoleStudent && role != account.RoleEducator {
		return errors.New("role must be student or educator")
	}
	return nil
}

type LoginRequest struct {
	Username string `json:"username" example:"amira"`
	Password string `json:"password" example:"secret"`
}

func (r *LoginRequest) Validate() error {
	if r.Username == "" {
		return errors.New("username is required")
	}
	if r.Password == "" {
		return errors.New("password is required")
	}
	return nil
}

type AccountResponse struct {
	IsOk bool           `json:"isOk"`
	User map[string]any `json:"user"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// register creates a student or educator account.
// @Summary      Register an account
// @Tags         Accounts
// @Accept       json
// @Produce      json
// @Param        body  body      RegisterRequest  true  "Account to create"
// @Success      201   {object}  AccountResponse
// @Failure      400   {object}  map[string]any
// @Failure      409   {object}  map[string]any  "username already taken"
// @Failure      500   {object}  map[string]string
// @Router       /api/register [post]
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	acct, err := h.records.Register(req.Username, req.Email, req.Password, account.Role(req.Role))
	if errors.Is(err, service.ErrUsernameTaken) {
		respondError(w, http.StatusConflict, err.Error())
		return
	}
	if h.handleStoreError(w, err) {
		return
	}
	respondJSON(w, http.StatusCreated, AccountResponse{IsOk: true, User: acct.Record()})
}

// login checks credentials and echoes the matching account.
// @Summary      Log in
// @Tags         Accounts
// @Accept       json
// @Produce      json
// @Param        body  body      LoginRequest  true  "Credentials"
// @Success      200   {object}  AccountResponse
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]any  "invalid username or password"
// @Failure      500   {object}  map[string]string
// @Router       /api/login [post]
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.records.Login(req.Username, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		respondError(w, http.StatusUnauthorized, err.Error())
		return
	}
	if h.handleStoreError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, AccountResponse{IsOk: true, User: user})
}
