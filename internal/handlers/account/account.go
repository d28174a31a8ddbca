package account

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/GlebRadaev/prizepanda/internal/domain"
	"github.com/GlebRadaev/prizepanda/internal/dto"
	"github.com/GlebRadaev/prizepanda/internal/service/accountservice"
	pkgauth "github.com/GlebRadaev/prizepanda/pkg/auth"
	"github.com/GlebRadaev/prizepanda/pkg/utils"
)

type Service interface {
	GetAccount(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	Overview(ctx context.Context) (*domain.Overview, error)
}

type AccountHandler struct {
	accountService Service
}

func New(accountService Service) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

// GetUser godoc
//
//	@Summary		Current user
//	@Description	Get the profile and balance of the logged in user
//	@Tags			User
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.AccountResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user [get]
func (h *AccountHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	accountID, ok := pkgauth.AccountIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	account, err := h.accountService.GetAccount(r.Context(), accountID)
	if err != nil {
		if errors.Is(err, accountservice.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load user")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewAccountResponse(account))
}

// ListUsers godoc
//
//	@Summary		List users
//	@Description	All accounts, newest first
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.AccountResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/users [get]
func (h *AccountHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accountService.ListAccounts(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to list users")
		return
	}
	resp := make([]*dto.AccountResponseDTO, 0, len(accounts))
	for i := range accounts {
		resp = append(resp, dto.NewAccountResponse(&accounts[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Overview godoc
//
//	@Summary		Admin overview
//	@Description	Number of users, active gift codes and pending withdrawals
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.OverviewResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/overview [get]
func (h *AccountHandler) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.accountService.Overview(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load overview")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewOverviewResponse(overview))
}
