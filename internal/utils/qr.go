package utils

import (
	"fmt"
	"net/url"
	"os"

	"github.com/skip2/go-qrcode"
)

// GenerateOrderQR génère un QR (PNG 256px) pointant vers la page de
// suivi de la commande sur le front.
func GenerateOrderQR(orderID string) ([]byte, error) {
	base := os.Getenv("FRONTEND_ORDER_URL")
	if base == "" {
		base = "http://localhost:3000/order-confirmation"
	}

	q := url.Values{}
	q.Set("id", orderID)

	return qrcode.Encode(fmt.Sprintf("%s?%s", base, q.Encode()), qrcode.Medium, 256)
}
