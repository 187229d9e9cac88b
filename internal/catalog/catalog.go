package catalog

import (
	"fmt"
	"log"

	"ecartx_back_end/internal/models"
)

// Le catalogue est chargé une seule fois au démarrage puis en lecture seule
// pour toute la vie du process : les handlers peuvent le parcourir
// simultanément sans aucune synchronisation.
var products []models.Product

// Load charge le catalogue de démonstration. Dans un vrai système, une
// source réseau ou disque se substituerait ici sans toucher au contrat de
// Search.
func Load() {
	products = demoProducts()
	log.Printf("✅ Catalogue chargé : %d produits", len(products))
}

// Products retourne le catalogue complet, dans l'ordre de chargement.
func Products() []models.Product {
	return products
}

// FindByID retourne le produit correspondant à l'identifiant.
func FindByID(id string) (models.Product, error) {
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, fmt.Errorf("produit introuvable: %s", id)
}

// Deals retourne les produits du carrousel promotionnel : remise d'au moins
// minDiscount pour cent, au plus limit articles, dans l'ordre du catalogue.
func Deals(minDiscount float64, limit int) []models.Product {
	var out []models.Product
	for _, p := range products {
		if DiscountPercent(p) >= minDiscount {
			out = append(out, p)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}
