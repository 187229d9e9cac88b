package product

import (
	"net/http"
	"sort"

	"ecartx_back_end/internal/catalog"

	"github.com/gin-gonic/gin"
)

// GetProductFilters retourne les filtres disponibles pour la feuille de
// filtres : catégories, marques, bornes de prix (sur prix effectif) et
// options de tri.
func GetProductFilters(c *gin.Context) {
	products := catalog.Products()

	brandSet := make(map[string]bool)
	var minPrice, maxPrice float64
	first := true

	for _, p := range products {
		if p.Brand != "" {
			brandSet[p.Brand] = true
		}
		fp := catalog.FinalPrice(p)
		if first {
			minPrice, maxPrice = fp, fp
			first = false
			continue
		}
		if fp < minPrice {
			minPrice = fp
		}
		if fp > maxPrice {
			maxPrice = fp
		}
	}

	brands := make([]string, 0, len(brandSet))
	for b := range brandSet {
		brands = append(brands, b)
	}
	sort.Strings(brands)

	c.JSON(http.StatusOK, gin.H{
		"categories": []gin.H{
			{"key": "all", "label": "All"},
			{"key": "fashion", "label": "Fashion"},
			{"key": "electronics", "label": "Electronics"},
			{"key": "home", "label": "Home"},
			{"key": "medical", "label": "Medical"},
		},
		"medical_subs": []gin.H{
			{"key": "medical_medicine", "label": "Medicine"},
			{"key": "medical_sanitary", "label": "Sanitary"},
			{"key": "medical_device", "label": "Devices"},
		},
		"brands": brands,
		"price_range": gin.H{
			"min": minPrice,
			"max": maxPrice,
		},
		"sort_options": []gin.H{
			{"value": "popular", "label": "Popular"},
			{"value": "price_low_high", "label": "Prix croissant"},
			{"value": "price_high_low", "label": "Prix décroissant"},
			{"value": "discount", "label": "Remise"},
			{"value": "newest", "label": "Plus récents"},
		},
	})
}
