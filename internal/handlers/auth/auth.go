package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/GlebRadaev/prizepanda/internal/domain"
	"github.com/GlebRadaev/prizepanda/internal/dto"
	"github.com/GlebRadaev/prizepanda/internal/service/authservice"
	pkgauth "github.com/GlebRadaev/prizepanda/pkg/auth"
	"github.com/GlebRadaev/prizepanda/pkg/utils"
)

type Service interface {
	Register(ctx context.Context, username, password string) (*domain.Account, error)
	Authenticate(ctx context.Context, username, password string) (*domain.Account, error)
	GenerateToken(accountID uuid.UUID) (string, error)
	ElevateAdmin(ctx context.Context, accountID uuid.UUID, password string) (string, error)
	Logout(ctx context.Context, claims *pkgauth.Claims) error
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register godoc
//
//	@Summary		Register a new user
//	@Description	Create a new account with username and password and get a bearer token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		200		{object}	dto.TokenResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid input"
//	@Failure		409		{object}	utils.Response	"Username already exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if !utils.DecodeAndValidate(w, r, &req) {
		return
	}
	account, err := h.authService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, authservice.ErrUsernameTaken) {
			utils.RespondWithError(w, http.StatusConflict, "Username already exists")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Registration failed")
		return
	}
	h.respondWithToken(w, account, "User created successfully")
}

// Login godoc
//
//	@Summary		Authenticate user
//	@Description	Log in with username and password and get a bearer token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.TokenResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid input"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if !utils.DecodeAndValidate(w, r, &req) {
		return
	}
	account, err := h.authService.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidCredentials) {
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Login failed")
		return
	}
	h.respondWithToken(w, account, "Login successful")
}

func (h *AuthHandler) respondWithToken(w http.ResponseWriter, account *domain.Account, message string) {
	token, err := h.authService.GenerateToken(account.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.TokenResponseDTO{
		Message: message,
		Token:   token,
		Account: dto.NewAccountResponse(account),
	})
}

// Logout godoc
//
//	@Summary		Log out
//	@Description	Revoke the bearer token used for this request
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.MessageResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	claims, ok := pkgauth.ClaimsFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if err := h.authService.Logout(r.Context(), claims); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Logout failed")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "Logout successful"})
}

// AdminLogin godoc
//
//	@Summary		Elevate to admin
//	@Description	Exchange the admin password for a short-lived admin token. The caller must already be logged in.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AdminLoginRequestDTO	true	"Admin password"
//	@Success		200		{object}	dto.TokenResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid input"
//	@Failure		401		{object}	utils.Response	"Invalid admin password"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/login [post]
func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	accountID, ok := pkgauth.AccountIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "You must be logged in first")
		return
	}
	var req dto.AdminLoginRequestDTO
	if !utils.DecodeAndValidate(w, r, &req) {
		return
	}
	token, err := h.authService.ElevateAdmin(r.Context(), accountID, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrInvalidAdminPassword):
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid admin password")
		case errors.Is(err, authservice.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Admin login failed")
		}
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.TokenResponseDTO{
		Message: "Admin access granted",
		Token:   token,
	})
}
