package upi

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayURI(t *testing.T) {
	uri, err := PayURI("panda@upi", "PrizePanda")
	require.NoError(t, err)
	assert.Equal(t, "upi://pay?cu=INR&pa=panda%40upi&pn=PrizePanda", uri)

	_, err = PayURI("", "PrizePanda")
	assert.ErrorIs(t, err, ErrEmptyPayee)
}

func TestQRCode(t *testing.T) {
	img, err := QRCode("panda@upi", "PrizePanda")
	require.NoError(t, err)

	decoded, err := png.Decode(bytes.NewReader(img))
	require.NoError(t, err)
	assert.Equal(t, qrSize, decoded.Bounds().Dx())
}
