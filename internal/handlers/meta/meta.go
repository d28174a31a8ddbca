package meta

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/prizepanda/internal/dto"
	"github.com/GlebRadaev/prizepanda/pkg/upi"
	"github.com/GlebRadaev/prizepanda/pkg/utils"
)

type Options struct {
	SubscribeURL string
	DonateUPIID  string
	DonatePayee  string
}

type MetaHandler struct {
	opts Options
}

func New(opts Options) *MetaHandler {
	return &MetaHandler{opts: opts}
}

// Config godoc
//
//	@Summary		Public client configuration
//	@Tags			Meta
//	@Produce		json
//	@Success		200	{object}	dto.ConfigResponseDTO
//	@Router			/api/config [get]
func (h *MetaHandler) Config(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, dto.ConfigResponseDTO{SubscribeURL: h.opts.SubscribeURL})
}

// DonateQR godoc
//
//	@Summary		Donation QR code
//	@Description	PNG QR code with a UPI payment link for donations
//	@Tags			Meta
//	@Produce		png
//	@Success		200	{file}		binary
//	@Failure		404	{object}	utils.Response	"Donations are not configured"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/donate/qr [get]
func (h *MetaHandler) DonateQR(w http.ResponseWriter, r *http.Request) {
	if h.opts.DonateUPIID == "" {
		utils.RespondWithError(w, http.StatusNotFound, "Donations are not configured")
		return
	}
	png, err := upi.QRCode(h.opts.DonateUPIID, h.opts.DonatePayee)
	if err != nil {
		zap.L().Error("can't render donation qr code", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(png); err != nil {
		zap.L().Error("can't write qr code", zap.Error(err))
	}
}
