package meta

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/prizepanda/internal/dto"
	"github.com/GlebRadaev/prizepanda/pkg/utils"
)

func TestConfigHandler(t *testing.T) {
	handler := New(Options{SubscribeURL: "https://t.me/prizepanda"})

	rec := httptest.NewRecorder()
	handler.Config(rec, httptest.NewRequest(http.MethodGet, "/api/config", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp dto.ConfigResponseDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "https://t.me/prizepanda", resp.SubscribeURL)
}

func TestDonateQRHandler(t *testing.T) {
	tests := []struct {
		name         string
		opts         Options
		expectedCode int
	}{
		{
			name:         "Renders png",
			opts:         Options{DonateUPIID: "panda@upi", DonatePayee: "PrizePanda"},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Not configured",
			opts:         Options{},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			New(tt.opts).DonateQR(rec, httptest.NewRequest(http.MethodGet, "/api/donate/qr", nil))

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
				assert.Equal(t, []byte("\x89PNG"), rec.Body.Bytes()[:4])
				return
			}
			var resp utils.Response
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, "Donations are not configured", resp.Message)
		})
	}
}
