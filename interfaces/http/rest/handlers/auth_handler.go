package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"inkwell/application/store"
	"inkwell/domain/core/entities"
	"inkwell/pkg/auth"
	"inkwell/pkg/common"
	"inkwell/pkg/utils"
)

// AuthHandler exposes the session store over HTTP.
type AuthHandler struct {
	sessions *store.SessionStore
	tokens   *auth.TokenIssuer
	logger   *zap.Logger
}

// NewAuthHandler creates the auth handler.
func NewAuthHandler(sessions *store.SessionStore, tokens *auth.TokenIssuer, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		sessions: sessions,
		tokens:   tokens,
		logger:   logger,
	}
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Name     string `json:"name" validate:"required,max=100"`
}

// SessionResponse is the success body of login and register.
type SessionResponse struct {
	User  entities.User `json:"user"`
	Token string        `json:"token"`
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION", "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION", err.Error())
		return
	}

	user, err := h.sessions.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		respondAppError(w, err)
		return
	}

	h.respondSession(w, user)
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION", "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION", err.Error())
		return
	}

	user, err := h.sessions.SignUp(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		respondAppError(w, err)
		return
	}

	h.respondSession(w, user)
}

// Logout handles POST /auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.SignOut(r.Context()); err != nil {
		respondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]string{"message": "signed out"})
}

// Me handles GET /auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	current := h.sessions.Current()
	if current == nil {
		common.RespondError(w, http.StatusUnauthorized, "NOT_AUTHENTICATED", "not signed in")
		return
	}
	common.RespondJSON(w, http.StatusOK, current)
}

func (h *AuthHandler) respondSession(w http.ResponseWriter, user entities.User) {
	token, err := h.tokens.Issue(user)
	if err != nil {
		h.logger.Error("issue session token", zap.Error(err))
		common.RespondError(w, http.StatusInternalServerError, "INTERNAL", "could not issue session token")
		return
	}
	common.RespondJSON(w, http.StatusOK, SessionResponse{User: user, Token: token})
}
