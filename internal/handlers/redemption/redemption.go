package redemption

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/prizepanda/internal/domain"
	"github.com/GlebRadaev/prizepanda/internal/dto"
	"github.com/GlebRadaev/prizepanda/internal/service/redemptionservice"
	pkgauth "github.com/GlebRadaev/prizepanda/pkg/auth"
	"github.com/GlebRadaev/prizepanda/pkg/money"
	"github.com/GlebRadaev/prizepanda/pkg/utils"
	"github.com/GlebRadaev/prizepanda/pkg/validate"
)

type Service interface {
	Redeem(ctx context.Context, accountID uuid.UUID, code string) (decimal.Decimal, error)
	ListRedemptions(ctx context.Context, accountID uuid.UUID) ([]domain.RedemptionDetail, error)
	CreateCode(ctx context.Context, code *domain.GiftCode) (*domain.GiftCode, error)
	ListCodes(ctx context.Context) ([]domain.GiftCode, error)
	DeactivateCode(ctx context.Context, id uuid.UUID) (*domain.GiftCode, error)
}

type RedemptionHandler struct {
	redemptionService Service
}

func New(redemptionService Service) *RedemptionHandler {
	return &RedemptionHandler{
		redemptionService: redemptionService,
	}
}

var redeemErrors = map[error]struct {
	code    int
	message string
}{
	redemptionservice.ErrNotFound:        {http.StatusNotFound, "Gift code not found"},
	redemptionservice.ErrInactive:        {http.StatusBadRequest, "Gift code is inactive"},
	redemptionservice.ErrExpired:         {http.StatusBadRequest, "Gift code has expired"},
	redemptionservice.ErrLimitReached:    {http.StatusBadRequest, "Gift code usage limit reached"},
	redemptionservice.ErrAlreadyRedeemed: {http.StatusBadRequest, "You have already redeemed this code"},
}

// Redeem godoc
//
//	@Summary		Redeem a gift code
//	@Description	Credit the prize of a gift code to the logged in user. Each user can redeem a code once.
//	@Tags			User
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RedeemRequestDTO	true	"Gift code"
//	@Success		200		{object}	dto.RedeemResponseDTO
//	@Failure		400		{object}	utils.Response	"Code inactive, expired, exhausted or already redeemed"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		404		{object}	utils.Response	"Gift code not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/redeem [post]
func (h *RedemptionHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	accountID, ok := pkgauth.AccountIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.RedeemRequestDTO
	if !utils.DecodeAndValidate(w, r, &req) {
		return
	}

	prize, err := h.redemptionService.Redeem(r.Context(), accountID, req.Code)
	if err != nil {
		for target, resp := range redeemErrors {
			if errors.Is(err, target) {
				utils.RespondWithError(w, resp.code, resp.message)
				return
			}
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to redeem gift code")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RedeemResponseDTO{
		Message:     "Gift code redeemed successfully",
		PrizeAmount: money.Format(prize),
	})
}

// ListRedemptions godoc
//
//	@Summary		Redemption history
//	@Description	Gift codes redeemed by the logged in user, newest first
//	@Tags			User
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.RedemptionResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/redemptions [get]
func (h *RedemptionHandler) ListRedemptions(w http.ResponseWriter, r *http.Request) {
	accountID, ok := pkgauth.AccountIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	redemptions, err := h.redemptionService.ListRedemptions(r.Context(), accountID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to list redemptions")
		return
	}
	resp := make([]dto.RedemptionResponseDTO, 0, len(redemptions))
	for _, rd := range redemptions {
		resp = append(resp, dto.NewRedemptionResponse(rd))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// ListCodes godoc
//
//	@Summary		List gift codes
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.GiftCodeResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/gift-codes [get]
func (h *RedemptionHandler) ListCodes(w http.ResponseWriter, r *http.Request) {
	codes, err := h.redemptionService.ListCodes(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to list gift codes")
		return
	}
	resp := make([]dto.GiftCodeResponseDTO, 0, len(codes))
	for i := range codes {
		resp = append(resp, dto.NewGiftCodeResponse(&codes[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// CreateCode godoc
//
//	@Summary		Create a gift code
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateGiftCodeRequestDTO	true	"Gift code"
//	@Success		201		{object}	dto.GiftCodeResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid input"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		403		{object}	utils.Response	"Admin access required"
//	@Failure		409		{object}	utils.Response	"Gift code already exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/gift-codes [post]
func (h *RedemptionHandler) CreateCode(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateGiftCodeRequestDTO
	if !utils.DecodeAndValidate(w, r, &req) {
		return
	}
	prize, err := money.Parse(req.PrizeAmount)
	if err != nil || !prize.IsPositive() {
		utils.RespondWithValidationError(w, []validate.FieldError{{Field: "prizeAmount", Message: "must be greater than 0"}})
		return
	}

	created, err := h.redemptionService.CreateCode(r.Context(), &domain.GiftCode{
		Code:        req.Code,
		PrizeAmount: prize,
		UsageLimit:  req.UsageLimit,
		ExpiresAt:   req.ExpiresAt,
		IsActive:    true,
	})
	if err != nil {
		switch {
		case errors.Is(err, redemptionservice.ErrExpiryInPast):
			utils.RespondWithValidationError(w, []validate.FieldError{{Field: "expiresAt", Message: "must be in the future"}})
		case errors.Is(err, redemptionservice.ErrCodeExists):
			utils.RespondWithError(w, http.StatusConflict, "Gift code already exists")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create gift code")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewGiftCodeResponse(created))
}

// DeactivateCode godoc
//
//	@Summary		Deactivate a gift code
//	@Description	The code stays in the list but can no longer be redeemed
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Gift code ID"
//	@Success		200	{object}	dto.MessageResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid gift code ID"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		404	{object}	utils.Response	"Gift code not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/gift-codes/{id} [delete]
func (h *RedemptionHandler) DeactivateCode(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid gift code ID")
		return
	}
	if _, err := h.redemptionService.DeactivateCode(r.Context(), id); err != nil {
		if errors.Is(err, redemptionservice.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Gift code not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to deactivate gift code")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "Gift code deactivated"})
}
