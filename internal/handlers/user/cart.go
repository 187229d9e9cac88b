package user

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"ecartx_back_end/internal/catalog"
	"ecartx_back_end/internal/database"
	"ecartx_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

const cartTTL = 30 * 24 * time.Hour

func cartKey(userID string) string { return "cart:" + userID }

// loadCart lit le panier depuis Redis ; panier absent = panier vide.
func loadCart(ctx context.Context, userID string) []models.CartItem {
	data, err := database.Redis.Get(ctx, cartKey(userID)).Result()
	if err != nil || data == "" {
		return nil
	}
	var cart []models.CartItem
	_ = json.Unmarshal([]byte(data), &cart)
	return cart
}

// saveCart sauvegarde le panier (30 jours) et notifie le canal de
// synchronisation temps réel.
func saveCart(ctx context.Context, userID string, cart []models.CartItem) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	if err := database.Redis.Set(ctx, cartKey(userID), data, cartTTL).Err(); err != nil {
		return err
	}
	database.Redis.Publish(ctx, cartKey(userID), "updated")
	return nil
}

// mergeCartItem ajoute un article au panier en fusionnant les quantités si
// la ligne existe déjà. Pur : retourne un nouveau slice.
func mergeCartItem(cart []models.CartItem, item models.CartItem) []models.CartItem {
	for i := range cart {
		if cart[i].ProductID == item.ProductID {
			next := make([]models.CartItem, len(cart))
			copy(next, cart)
			next[i].Quantity += item.Quantity
			return next
		}
	}
	return append(append([]models.CartItem{}, cart...), item)
}

// adjustQuantity modifie la quantité d'une ligne de delta ; une quantité
// qui tombe à 0 supprime la ligne. Pur également.
func adjustQuantity(cart []models.CartItem, productID string, delta int) []models.CartItem {
	next := make([]models.CartItem, 0, len(cart))
	for _, it := range cart {
		if it.ProductID == productID {
			it.Quantity += delta
			if it.Quantity <= 0 {
				continue
			}
		}
		next = append(next, it)
	}
	return next
}

func cartTotals(cart []models.CartItem) (totalQty int, totalPrice float64) {
	for _, it := range cart {
		totalQty += it.Quantity
		totalPrice += it.Price * float64(it.Quantity)
	}
	return
}

// GetCart retourne le panier courant.
// GET /api/cart
func GetCart(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	cart := loadCart(context.Background(), userID)
	if cart == nil {
		cart = []models.CartItem{}
	}
	qty, total := cartTotals(cart)

	c.JSON(http.StatusOK, gin.H{
		"items":       cart,
		"total_qty":   qty,
		"total_price": total,
	})
}

// AddToCart ajoute un produit au panier. Le prix stocké est TOUJOURS le
// prix effectif calculé par le moteur de prix, jamais le prix de base.
// POST /api/cart/add
func AddToCart(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	var input struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	if input.Quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantité invalide"})
		return
	}

	product, err := catalog.FindByID(input.ProductID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}
	if !catalog.InStock(product) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Produit en rupture de stock"})
		return
	}

	item := models.CartItem{
		ProductID: product.ID,
		Title:     product.Title,
		Price:     catalog.FinalPrice(product),
		Quantity:  input.Quantity,
		ImageURL:  product.Image,
	}

	ctx := context.Background()
	cart := mergeCartItem(loadCart(ctx, userID), item)

	if err := saveCart(ctx, userID, cart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Produit ajouté au panier",
		"items":   cart,
	})
}

// IncrementCartItem augmente la quantité d'une ligne de 1.
// POST /api/cart/increment/:productId
func IncrementCartItem(c *gin.Context) {
	changeQuantity(c, +1)
}

// DecrementCartItem diminue la quantité d'une ligne de 1 ; à 0 la ligne
// disparaît.
// POST /api/cart/decrement/:productId
func DecrementCartItem(c *gin.Context) {
	changeQuantity(c, -1)
}

func changeQuantity(c *gin.Context, delta int) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	productID := c.Param("productId")
	ctx := context.Background()

	cart := loadCart(ctx, userID)
	next := adjustQuantity(cart, productID, delta)

	if err := saveCart(ctx, userID, next); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": next})
}

// RemoveFromCart supprime une ligne du panier.
// DELETE /api/cart/:productId
func RemoveFromCart(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	productID := c.Param("productId")
	ctx := context.Background()

	cart := loadCart(ctx, userID)
	next := []models.CartItem{}
	for _, it := range cart {
		if it.ProductID != productID {
			next = append(next, it)
		}
	}

	if err := saveCart(ctx, userID, next); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Produit supprimé du panier",
		"items":   next,
	})
}

// ClearCart vide complètement le panier.
// DELETE /api/cart
func ClearCart(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	ctx := context.Background()
	if err := database.Redis.Del(ctx, cartKey(userID)).Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors du vidage du panier"})
		return
	}
	database.Redis.Publish(ctx, cartKey(userID), "cleared")

	c.JSON(http.StatusOK, gin.H{"message": "Panier vidé avec succès"})
}
