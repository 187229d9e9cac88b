package user

import (
	"log"
	"net/http"

	"ecartx_back_end/internal/cache"
	"ecartx_back_end/internal/catalog"
	"ecartx_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

// GetWishlist récupère la wishlist de l'utilisateur.
// GET /api/wishlist
func GetWishlist(c *gin.Context) {
	userID := c.GetString("user_id")

	items, err := cache.GetWishlist(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture wishlist"})
		return
	}

	c.JSON(http.StatusOK, models.Wishlist{UserID: userID, Items: items})
}

// AddToWishlist ajoute un produit en tête de wishlist. Idempotent : un
// produit déjà présent n'est pas dupliqué.
// POST /api/wishlist
func AddToWishlist(c *gin.Context) {
	userID := c.GetString("user_id")

	var req struct {
		ProductID string `json:"product_id" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	product, err := catalog.FindByID(req.ProductID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	items, err := cache.GetWishlist(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture wishlist"})
		return
	}

	for _, it := range items {
		if it.ID == product.ID {
			c.JSON(http.StatusOK, gin.H{
				"message":    "Produit déjà dans la wishlist",
				"product_id": product.ID,
			})
			return
		}
	}

	// Projection {id, title, image, price, brand}, le plus récent en tête
	entry := models.WishlistItem{
		ID:    product.ID,
		Title: product.Title,
		Image: product.Image,
		Price: product.Price,
		Brand: product.Brand,
	}
	items = append([]models.WishlistItem{entry}, items...)

	if err := cache.SaveWishlist(userID, items); err != nil {
		log.Printf("❌ Erreur ajout wishlist: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur ajout à la wishlist"})
		return
	}

	log.Printf("⭐ Produit %s ajouté à la wishlist de %s", product.ID, userID)

	c.JSON(http.StatusOK, gin.H{
		"message":    "Produit ajouté à la wishlist",
		"product_id": product.ID,
	})
}

// RemoveFromWishlist retire un produit de la wishlist.
// DELETE /api/wishlist/:productId
func RemoveFromWishlist(c *gin.Context) {
	userID := c.GetString("user_id")
	productID := c.Param("productId")

	items, err := cache.GetWishlist(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture wishlist"})
		return
	}

	next := items[:0]
	for _, it := range items {
		if it.ID != productID {
			next = append(next, it)
		}
	}

	if err := cache.SaveWishlist(userID, next); err != nil {
		log.Printf("❌ Erreur suppression wishlist: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression de la wishlist"})
		return
	}

	log.Printf("🗑️ Produit %s retiré de la wishlist de %s", productID, userID)

	c.JSON(http.StatusOK, gin.H{"message": "Produit retiré de la wishlist"})
}

// ClearWishlist vide la wishlist.
// DELETE /api/wishlist
func ClearWishlist(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := cache.SaveWishlist(userID, []models.WishlistItem{}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur vidage wishlist"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Wishlist vidée"})
}
