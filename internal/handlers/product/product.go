package product

import (
	"net/http"
	"strconv"
	"strings"

	"ecartx_back_end/internal/catalog"
	"ecartx_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

// ListProducts est la surface de browse/recherche : elle construit une
// Query depuis les paramètres d'URL, délègue tout au moteur du catalogue
// et rend le résultat tel quel (paginé). Aucune logique de filtre ici :
// le moteur est l'unique source de vérité.
func ListProducts(c *gin.Context) {
	q := catalog.Query{
		Term:       c.Query("q"),
		Category:   c.DefaultQuery("category", "all"),
		MedicalSub: c.DefaultQuery("medical_sub", "all"),
		SortKey:    c.DefaultQuery("sort", "popular"),
	}

	if c.Query("only_offers") == "true" {
		q.OnlyOffers = true
	}
	if c.Query("in_stock") == "true" {
		q.InStockOnly = true
	}
	if v := c.Query("rating_min"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			q.RatingMin = &f
		}
	}
	if v := c.Query("price_min"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			q.PriceMin = &f
		}
	}
	if v := c.Query("price_max"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			q.PriceMax = &f
		}
	}
	if v := c.Query("brands"); v != "" {
		for _, b := range strings.Split(v, ",") {
			if b = strings.TrimSpace(b); b != "" {
				q.Brands = append(q.Brands, b)
			}
		}
	}

	results := catalog.Search(catalog.Products(), q)

	// Pagination
	pageNum, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limitNum, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if pageNum < 1 {
		pageNum = 1
	}
	if limitNum < 1 || limitNum > 100 {
		limitNum = 20
	}

	total := len(results)
	start := (pageNum - 1) * limitNum
	end := start + limitNum
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	c.JSON(http.StatusOK, gin.H{
		"products": views(results[start:end]),
		"pagination": gin.H{
			"page":        pageNum,
			"limit":       limitNum,
			"total":       total,
			"total_pages": (total + limitNum - 1) / limitNum,
		},
		"filters": gin.H{
			"query":       q.Term,
			"category":    catalog.NormalizeCategory(q.Category),
			"medical_sub": q.MedicalSub,
			"sort":        catalog.NormalizeSortKey(q.SortKey),
		},
	})
}

// GetProduct retourne la fiche produit avec le couple (prix effectif,
// pourcentage de remise) calculé par le moteur de prix, le même que
// partout ailleurs.
func GetProduct(c *gin.Context) {
	p, err := catalog.FindByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	c.JSON(http.StatusOK, view(p))
}

// GetDeals retourne le carrousel promotionnel : remise >= 15%, 10 articles
// max, dans l'ordre du catalogue.
func GetDeals(c *gin.Context) {
	deals := catalog.Deals(15, 10)
	c.JSON(http.StatusOK, gin.H{"deals": views(deals)})
}

// view enrichit un produit des champs dérivés que chaque surface affiche.
func view(p models.Product) gin.H {
	return gin.H{
		"product":          p,
		"final_price":      catalog.FinalPrice(p),
		"discount_percent": catalog.DiscountPercent(p),
		"in_stock":         catalog.InStock(p),
	}
}

func views(products []models.Product) []gin.H {
	out := make([]gin.H, len(products))
	for i, p := range products {
		out[i] = view(p)
	}
	return out
}
