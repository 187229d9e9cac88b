package catalog

import (
	"math"

	"ecartx_back_end/internal/models"
)

// round2 arrondit au centime (demi-centime vers le haut), pour que toutes
// les surfaces affichent et facturent exactement le même montant.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FinalPrice calcule le prix effectif d'un produit, offre appliquée.
// Sans offre : le prix de base inchangé.
// Offre "percent" : price * (1 - value/100), arrondi à 2 décimales.
// Offre "flat" : price - value, plafonné à 0 (jamais négatif).
// Pure et déterministe, aucune erreur possible.
func FinalPrice(p models.Product) float64 {
	if p.Offer == nil {
		return p.Price
	}
	if p.Offer.Type == "percent" {
		return round2(p.Price * (1 - p.Offer.Value/100))
	}
	return round2(math.Max(0, p.Price-p.Offer.Value))
}

// DiscountPercent calcule le pourcentage de remise à afficher.
// Sans offre : 0. Offre "percent" : la valeur telle quelle.
// Offre "flat" : value/price*100 arrondi, avec price == 0 traité
// explicitement (retourne 0 au lieu d'une division par zéro).
// Le résultat est toujours dans [0, 100].
func DiscountPercent(p models.Product) float64 {
	if p.Offer == nil {
		return 0
	}
	var pct float64
	if p.Offer.Type == "percent" {
		pct = p.Offer.Value
	} else {
		if p.Price == 0 {
			return 0
		}
		pct = math.Round(p.Offer.Value / p.Price * 100)
	}
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// InStock applique la convention canonique : stock absent = 0 = rupture.
func InStock(p models.Product) bool {
	return p.Stock > 0
}
