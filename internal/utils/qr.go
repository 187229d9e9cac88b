package utils

import (
	"encoding/base64"
	"fmt"

	"github.com/skip2/go-qrcode"
)

// GenerateReceiptQR génère le QR du reçu de paiement en base64, prêt à
// mettre dans <img src="...">. Le contenu encode la référence de paiement
// et le montant : ecartx:payment:<ref>:<montant>.
func GenerateReceiptQR(paymentRef string, amount float64) (string, error) {
	payload := fmt.Sprintf("ecartx:payment:%s:%.2f", paymentRef, amount)

	png, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
