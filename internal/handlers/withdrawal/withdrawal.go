package withdrawal

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/prizepanda/internal/domain"
	"github.com/GlebRadaev/prizepanda/internal/dto"
	"github.com/GlebRadaev/prizepanda/internal/service/withdrawalservice"
	pkgauth "github.com/GlebRadaev/prizepanda/pkg/auth"
	"github.com/GlebRadaev/prizepanda/pkg/money"
	"github.com/GlebRadaev/prizepanda/pkg/utils"
	"github.com/GlebRadaev/prizepanda/pkg/validate"
)

type Service interface {
	Create(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, payoutAddress string) (*domain.WithdrawalRequest, error)
	Resolve(ctx context.Context, id uuid.UUID, decision domain.WithdrawalStatus) (*domain.WithdrawalRequest, error)
	ListAll(ctx context.Context) ([]domain.WithdrawalRequest, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]domain.WithdrawalRequest, error)
}

type WithdrawalHandler struct {
	withdrawalService Service
}

func New(withdrawalService Service) *WithdrawalHandler {
	return &WithdrawalHandler{
		withdrawalService: withdrawalService,
	}
}

// Withdraw godoc
//
//	@Summary		Request a withdrawal
//	@Description	Submit a withdrawal to a UPI id. The balance is debited when an admin approves the request.
//	@Tags			User
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawRequestDTO	true	"Withdrawal request"
//	@Success		201		{object}	dto.WithdrawResponseDTO
//	@Failure		400		{object}	utils.Response	"Below minimum, insufficient balance or invalid input"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/withdraw [post]
func (h *WithdrawalHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	accountID, ok := pkgauth.AccountIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.WithdrawRequestDTO
	if !utils.DecodeAndValidate(w, r, &req) {
		return
	}
	amount, err := money.Parse(req.Amount)
	if err != nil {
		utils.RespondWithValidationError(w, []validate.FieldError{{Field: "amount", Message: err.Error()}})
		return
	}

	created, err := h.withdrawalService.Create(r.Context(), accountID, amount, req.UpiID)
	if err != nil {
		switch {
		case errors.Is(err, withdrawalservice.ErrBelowMinimum):
			utils.RespondWithError(w, http.StatusBadRequest, "Minimum withdrawal amount is ₹"+withdrawalservice.MinimumAmount.String())
		case errors.Is(err, withdrawalservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusBadRequest, "Insufficient balance")
		case errors.Is(err, withdrawalservice.ErrInvalidPayoutAddress):
			utils.RespondWithValidationError(w, []validate.FieldError{{Field: "upiId", Message: "must not be blank"}})
		case errors.Is(err, withdrawalservice.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to submit withdrawal")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.WithdrawResponseDTO{
		Message:    "Withdrawal request submitted successfully",
		Withdrawal: dto.NewWithdrawalResponse(created),
	})
}

// ListWithdrawals godoc
//
//	@Summary		Withdrawal history
//	@Description	Withdrawal requests of the logged in user, newest first
//	@Tags			User
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.WithdrawalResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/withdrawals [get]
func (h *WithdrawalHandler) ListWithdrawals(w http.ResponseWriter, r *http.Request) {
	accountID, ok := pkgauth.AccountIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	withdrawals, err := h.withdrawalService.ListByAccount(r.Context(), accountID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to list withdrawals")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWithdrawalListResponse(withdrawals))
}

// ListAll godoc
//
//	@Summary		List all withdrawals
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.WithdrawalResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals [get]
func (h *WithdrawalHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	withdrawals, err := h.withdrawalService.ListAll(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to list withdrawals")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWithdrawalListResponse(withdrawals))
}

// Resolve godoc
//
//	@Summary		Approve or decline a withdrawal
//	@Description	Only pending requests can be resolved. Approval debits the user's balance.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"Withdrawal ID"
//	@Param			request	body		dto.ResolveWithdrawalRequestDTO	true	"Decision"
//	@Success		200		{object}	dto.WithdrawResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid status or insufficient balance"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		403		{object}	utils.Response	"Admin access required"
//	@Failure		404		{object}	utils.Response	"Withdrawal not found"
//	@Failure		409		{object}	utils.Response	"Withdrawal already resolved"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals/{id} [patch]
func (h *WithdrawalHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid withdrawal ID")
		return
	}
	var req dto.ResolveWithdrawalRequestDTO
	if !utils.DecodeAndValidate(w, r, &req) {
		return
	}

	resolved, err := h.withdrawalService.Resolve(r.Context(), id, domain.WithdrawalStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, withdrawalservice.ErrInvalidDecision):
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid status")
		case errors.Is(err, withdrawalservice.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Withdrawal not found")
		case errors.Is(err, withdrawalservice.ErrInvalidTransition):
			utils.RespondWithError(w, http.StatusConflict, "Withdrawal already resolved")
		case errors.Is(err, withdrawalservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusBadRequest, "Insufficient balance")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update withdrawal")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WithdrawResponseDTO{
		Message:    "Withdrawal status updated",
		Withdrawal: dto.NewWithdrawalResponse(resolved),
	})
}
