package http

import (
	"errors"
	"log/slog"
	"net/http"

	apperrors "github.com/nithishkannan87/AIM-FOOTWEAR/pkg/errors"
	"github.com/nithishkannan87/AIM-FOOTWEAR/pkg/httputil"
	"github.com/nithishkannan87/AIM-FOOTWEAR/pkg/middleware"
	"github.com/nithishkannan87/AIM-FOOTWEAR/pkg/validator"

	"github.com/nithishkannan87/AIM-FOOTWEAR/internal/domain"
	"github.com/nithishkannan87/AIM-FOOTWEAR/internal/identity"
	"github.com/nithishkannan87/AIM-FOOTWEAR/internal/session"
)

// TokenSource issues and verifies ID tokens for authenticated sessions. The
// local identity provider satisfies it.
type TokenSource interface {
	IssueToken(acct *identity.Account) (string, error)
	ValidateToken(tokenString string) (*identity.Account, error)
}

// AuthHandler handles HTTP requests for the auth endpoints.
type AuthHandler struct {
	facade *session.Facade
	tokens TokenSource
	logger *slog.Logger
}

// NewAuthHandler creates a new auth HTTP handler over the session facade.
func NewAuthHandler(facade *session.Facade, tokens TokenSource, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{facade: facade, tokens: tokens, logger: logger}
}

// --- Request DTOs ---

// SignUpRequest is the JSON request body for account creation.
type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required,min=1,max=100"`
}

// LoginRequest is the JSON request body for signing in.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionResponse is the JSON payload describing the session state. Session
// is null when signed out.
type SessionResponse struct {
	Session *domain.Session `json:"session"`
	Loading bool            `json:"loading"`
	Token   string          `json:"token,omitempty"`
}

// --- Handlers ---

// SignUp handles POST /api/v1/auth/signup
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req SignUpRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	s, err := h.facade.SignUp(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		httputil.WriteError(w, r, mapIdentityError(err), h.logger)
		return
	}

	h.writeSessionWithToken(w, r, s, http.StatusCreated)
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	s, err := h.facade.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		httputil.WriteError(w, r, mapIdentityError(err), h.logger)
		return
	}

	h.writeSessionWithToken(w, r, s, http.StatusOK)
}

// Logout handles POST /api/v1/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.facade.Logout(r.Context()); err != nil {
		httputil.WriteError(w, r, mapIdentityError(err), h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{
		Data: SessionResponse{Session: nil, Loading: false},
	})
}

// Session handles GET /api/v1/auth/session
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{
		Data: SessionResponse{Session: h.facade.Current(), Loading: h.facade.Loading()},
	})
}

// Me handles GET /api/v1/auth/me. It runs behind the bearer-token middleware
// and echoes the token subject's session.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	current := h.facade.Current()
	if current == nil || current.UID != userID {
		httputil.WriteError(w, r, apperrors.NotFound("session", userID), h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{
		Data: SessionResponse{Session: current, Loading: false},
	})
}

// validateToken adapts the token source to the auth middleware's contract.
func (h *AuthHandler) validateToken(token string) (*middleware.Claims, error) {
	acct, err := h.tokens.ValidateToken(token)
	if err != nil {
		return nil, err
	}
	return &middleware.Claims{UserID: acct.UID, Email: acct.Email, Name: acct.DisplayName}, nil
}

func (h *AuthHandler) writeSessionWithToken(w http.ResponseWriter, r *http.Request, s *domain.Session, status int) {
	token, err := h.tokens.IssueToken(&identity.Account{
		UID:         s.UID,
		Email:       s.Email,
		DisplayName: s.Name,
	})
	if err != nil {
		httputil.WriteError(w, r, apperrors.Internal(err), h.logger)
		return
	}

	httputil.WriteJSON(w, status, httputil.Response{
		Data: SessionResponse{Session: s, Loading: false, Token: token},
	})
}

// mapIdentityError translates provider sentinels into API errors with the
// right HTTP statuses. Unknown errors pass through and render as internal.
func mapIdentityError(err error) error {
	switch {
	case errors.Is(err, identity.ErrInvalidCredentials):
		return apperrors.Unauthorized("invalid email or password")
	case errors.Is(err, identity.ErrEmailInUse):
		return apperrors.AlreadyExists("account", "email", "requested")
	case errors.Is(err, identity.ErrWeakPassword):
		return apperrors.InvalidInput("password does not meet the minimum length")
	case errors.Is(err, identity.ErrAccountNotFound):
		return apperrors.NotFound("account", "requested")
	}
	return err
}
