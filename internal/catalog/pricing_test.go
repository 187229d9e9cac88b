package catalog

import (
	"math"
	"testing"

	"ecartx_back_end/internal/models"
)

func TestFinalPrice(t *testing.T) {
	tests := []struct {
		name    string
		product models.Product
		want    float64
	}{
		{
			name:    "sans offre, prix inchangé",
			product: models.Product{Price: 59.0},
			want:    59.0,
		},
		{
			name:    "offre percent 15% sur 100",
			product: models.Product{Price: 100, Offer: &models.Offer{Type: "percent", Value: 15}},
			want:    85.0,
		},
		{
			name:    "offre percent avec arrondi à 2 décimales",
			product: models.Product{Price: 19.99, Offer: &models.Offer{Type: "percent", Value: 15}},
			want:    16.99, // 19.99 * 0.85 = 16.9915
		},
		{
			name:    "offre flat simple",
			product: models.Product{Price: 29.5, Offer: &models.Offer{Type: "flat", Value: 5}},
			want:    24.5,
		},
		{
			name:    "offre flat supérieure au prix, plafonnée à 0",
			product: models.Product{Price: 10, Offer: &models.Offer{Type: "flat", Value: 25}},
			want:    0,
		},
		{
			name:    "prix zéro sans offre",
			product: models.Product{Price: 0},
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FinalPrice(tt.product)
			if got != tt.want {
				t.Errorf("FinalPrice() = %v, attendu %v", got, tt.want)
			}
		})
	}
}

// Le prix effectif reste toujours dans [0, prix de base], quel que soit le
// produit du catalogue de démonstration.
func TestFinalPriceBounds(t *testing.T) {
	for _, p := range demoProducts() {
		fp := FinalPrice(p)
		if fp < 0 || fp > p.Price {
			t.Errorf("produit %s : FinalPrice %v hors de [0, %v]", p.ID, fp, p.Price)
		}
	}
}

func TestDiscountPercent(t *testing.T) {
	tests := []struct {
		name    string
		product models.Product
		want    float64
	}{
		{
			name:    "sans offre",
			product: models.Product{Price: 50},
			want:    0,
		},
		{
			name:    "offre percent, valeur telle quelle",
			product: models.Product{Price: 100, Offer: &models.Offer{Type: "percent", Value: 15}},
			want:    15,
		},
		{
			name:    "offre flat, pourcentage recalculé",
			product: models.Product{Price: 49, Offer: &models.Offer{Type: "flat", Value: 10}},
			want:    20, // 10/49 = 20.4% arrondi
		},
		{
			name:    "offre flat sur prix zéro, division gardée",
			product: models.Product{Price: 0, Offer: &models.Offer{Type: "flat", Value: 10}},
			want:    0,
		},
		{
			name:    "offre flat supérieure au prix, bornée à 100",
			product: models.Product{Price: 5, Offer: &models.Offer{Type: "flat", Value: 50}},
			want:    100,
		},
		{
			name:    "offre percent négative, bornée à 0",
			product: models.Product{Price: 10, Offer: &models.Offer{Type: "percent", Value: -5}},
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DiscountPercent(tt.product)
			if got != tt.want {
				t.Errorf("DiscountPercent() = %v, attendu %v", got, tt.want)
			}
		})
	}
}

// DiscountPercent ne retourne jamais NaN, jamais de négatif, jamais plus de
// 100, y compris sur un prix nul.
func TestDiscountPercentTotal(t *testing.T) {
	cases := []models.Product{
		{Price: 0, Offer: &models.Offer{Type: "flat", Value: 10}},
		{Price: 0, Offer: &models.Offer{Type: "percent", Value: 30}},
		{Price: 0},
		{Price: 100, Offer: &models.Offer{Type: "flat", Value: 1000}},
	}
	for _, p := range cases {
		got := DiscountPercent(p)
		if math.IsNaN(got) || math.IsInf(got, 0) || got < 0 || got > 100 {
			t.Errorf("DiscountPercent(%+v) = %v, hors de [0, 100]", p, got)
		}
	}
}

// DiscountPercent vaut 0 si et seulement si le produit n'a pas d'offre
// exploitable.
func TestDiscountZeroIffNoOffer(t *testing.T) {
	for _, p := range demoProducts() {
		got := DiscountPercent(p)
		if p.Offer == nil && got != 0 {
			t.Errorf("produit %s sans offre : remise %v != 0", p.ID, got)
		}
		if p.Offer != nil && p.Price > 0 && got == 0 {
			t.Errorf("produit %s avec offre : remise nulle inattendue", p.ID)
		}
	}
}

func TestInStock(t *testing.T) {
	if InStock(models.Product{Stock: 0}) {
		t.Error("stock 0 devrait être en rupture")
	}
	if !InStock(models.Product{Stock: 3}) {
		t.Error("stock 3 devrait être disponible")
	}
}
