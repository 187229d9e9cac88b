package user

import (
	"log"
	"net/http"
	"strings"

	"ecartx_back_end/internal/cache"

	"github.com/gin-gonic/gin"
)

// RegisterPushToken enregistre le token de device. Aucune passerelle push
// derrière : le token est simplement conservé dans le store.
// POST /api/notifications/token
func RegisterPushToken(c *gin.Context) {
	userID := c.GetString("user_id")

	var input struct {
		Token string `json:"token"`
	}

	if err := c.ShouldBindJSON(&input); err != nil || strings.TrimSpace(input.Token) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Token manquant"})
		return
	}

	if err := cache.SavePushToken(userID, input.Token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur enregistrement token"})
		return
	}

	log.Printf("🔔 Token push enregistré pour %s", userID)

	c.JSON(http.StatusOK, gin.H{"message": "Token enregistré"})
}

// TestNotification simule une notification locale : rien n'est envoyé, on
// renvoie l'écho de ce qu'un vrai backend programmerait.
// POST /api/notifications/test
func TestNotification(c *gin.Context) {
	userID := c.GetString("user_id")

	token, err := cache.GetPushToken(userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Aucun token enregistré pour cet utilisateur"})
		return
	}

	log.Printf("🔔 Notification de test programmée pour %s (token %s)", userID, token)

	c.JSON(http.StatusOK, gin.H{
		"scheduled":  true,
		"in_seconds": 3,
		"content": gin.H{
			"title": "EcartX",
			"body":  "Local test notification 🚀",
		},
	})
}
