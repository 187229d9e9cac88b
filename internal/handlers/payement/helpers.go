package pa

import (
	"math"
	"regexp"
	"strings"

	"ecartx_back_end/internal/models"
)

// calcTotal calcule le montant total d'un panier
func calcTotal(items []models.CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Le seul code promo du mock : welcome10 = 10% du total.
const welcomeCoupon = "welcome10"

// couponDiscount retourne la remise pour un code donné, ou ok=false si le
// code est inconnu. La casse et les espaces sont ignorés.
func couponDiscount(code string, total float64) (discount float64, ok bool) {
	if strings.ToLower(strings.TrimSpace(code)) == welcomeCoupon {
		return round2(total * 0.10), true
	}
	return 0, false
}

var (
	emailRe = regexp.MustCompile(`\S+@\S+\.\S+`)
	phoneRe = regexp.MustCompile(`^\+?[0-9\-()\s]{7,}$`)
)

// customerForm est le formulaire de l'écran de paiement.
type customerForm struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Address  string `json:"address"`
}

// validateForm applique les règles de l'écran de paiement : nom >= 2
// caractères, adresse >= 5, email et téléphone valides s'ils sont fournis.
func validateForm(f customerForm) (string, bool) {
	if len(strings.TrimSpace(f.FullName)) < 2 {
		return "Nom requis (2 caractères minimum)", false
	}
	if len(strings.TrimSpace(f.Address)) < 5 {
		return "Adresse requise (5 caractères minimum)", false
	}
	if f.Email != "" && !emailRe.MatchString(f.Email) {
		return "Email invalide", false
	}
	if f.Phone != "" && !phoneRe.MatchString(f.Phone) {
		return "Téléphone invalide", false
	}
	return "", true
}
