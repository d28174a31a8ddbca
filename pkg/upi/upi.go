package upi

import (
	"errors"
	"net/url"

	"github.com/skip2/go-qrcode"
)

const qrSize = 300

var ErrEmptyPayee = errors.New("upi id is empty")

func PayURI(upiID, payeeName string) (string, error) {
	if upiID == "" {
		return "", ErrEmptyPayee
	}
	q := url.Values{}
	q.Set("pa", upiID)
	if payeeName != "" {
		q.Set("pn", payeeName)
	}
	q.Set("cu", "INR")
	u := url.URL{Scheme: "upi", Host: "pay", RawQuery: q.Encode()}
	return u.String(), nil
}

// QRCode renders a PNG QR code pointing at the UPI payment URI.
func QRCode(upiID, payeeName string) ([]byte, error) {
	uri, err := PayURI(upiID, payeeName)
	if err != nil {
		return nil, err
	}
	return qrcode.Encode(uri, qrcode.Medium, qrSize)
}
