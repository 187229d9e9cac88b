package pa

import (
	"context"
	"encoding/json"
	"log"
	"math"
	"net/http"
	"time"

	"ecartx_back_end/internal/catalog"
	"ecartx_back_end/internal/database"
	"ecartx_back_end/internal/handlers/user"
	"ecartx_back_end/internal/models"
	"ecartx_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Délai artificiel du paiement mocké, comme la latence d'une vraie
// passerelle.
const mockGatewayDelay = 800 * time.Millisecond

// Checkout exécute le paiement mocké : validation du formulaire client,
// recalcul de chaque ligne via le moteur de prix (le panier stocké n'est
// jamais cru sur parole), coupon, délai artificiel, enregistrement de la
// commande, vidage du panier et reçu avec QR.
// POST /api/payment/checkout
func Checkout(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	var req struct {
		customerForm
		CouponCode string `json:"coupon_code"` // Optionnel
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}

	if msg, ok := validateForm(req.customerForm); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	// 1. Récupérer le panier depuis Redis
	ctx := context.Background()
	cartKey := "cart:" + userID

	cartData, err := database.Redis.Get(ctx, cartKey).Result()
	if err != nil || cartData == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Panier vide ou introuvable"})
		return
	}

	var cartItems []models.CartItem
	if err := json.Unmarshal([]byte(cartData), &cartItems); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture panier"})
		return
	}
	if len(cartItems) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Panier vide"})
		return
	}

	// 2. Revalider chaque ligne contre le catalogue : stock disponible et
	// prix effectif recalculé par le moteur (les surfaces doivent facturer
	// exactement ce que le listing affiche)
	for i, item := range cartItems {
		product, err := catalog.FindByID(item.ProductID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable: " + item.ProductID})
			return
		}
		if product.Stock < item.Quantity {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     "Stock insuffisant",
				"product":   product.Title,
				"available": product.Stock,
				"requested": item.Quantity,
			})
			return
		}
		cartItems[i].Title = product.Title
		cartItems[i].Price = catalog.FinalPrice(product)
	}

	// 3. Total + coupon
	totalPrice := calcTotal(cartItems)

	var discountAmount float64
	if req.CouponCode != "" {
		discount, ok := couponDiscount(req.CouponCode, totalPrice)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Code promo invalide"})
			return
		}
		discountAmount = discount
		log.Printf("✅ Coupon appliqué: %s (%.2f de réduction)", welcomeCoupon, discountAmount)
	}

	finalPrice := round2(math.Max(0, totalPrice-discountAmount))

	// 4. "Passerelle" de paiement mockée
	time.Sleep(mockGatewayDelay)
	paymentID := "pay_" + uuid.NewString()

	// 5. Enregistrer la commande et vider le panier
	itemCount := 0
	for _, it := range cartItems {
		itemCount += it.Quantity
	}

	order := models.Order{
		ID:        "o_" + uuid.NewString(),
		UserID:    userID,
		Title:     cartItems[0].Title,
		Items:     cartItems,
		ItemCount: itemCount,
		Total:     finalPrice,
		Discount:  discountAmount,
		Status:    models.OrderStatusProcessing,
		CreatedAt: time.Now(),
	}
	user.RecordOrder(order)

	database.Redis.Del(ctx, cartKey)
	database.Redis.Publish(ctx, cartKey, "cleared")

	// 6. Reçu avec QR de la référence de paiement
	qr, err := utils.GenerateReceiptQR(paymentID, finalPrice)
	if err != nil {
		log.Printf("⚠️ Erreur génération QR: %v", err)
	}

	log.Printf("💳 Paiement mock confirmé: %s (%.2f → %.2f) pour %s", paymentID, totalPrice, finalPrice, userID)

	c.JSON(http.StatusOK, gin.H{
		"payment_id":      paymentID,
		"order_id":        order.ID,
		"amount":          finalPrice,
		"original_amount": totalPrice,
		"discount":        discountAmount,
		"items_count":     len(cartItems),
		"receipt_qr":      qr,
	})
}
