package user

import (
	"log"
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	phoneRe = regexp.MustCompile(`^\+?[0-9\-()\s]{7,}$`)
	otpRe   = regexp.MustCompile(`^[0-9]{6}$`)
)

// RequestOTP envoie un code de vérification mocké : rien ne part sur le
// réseau, le code est simplement loggé côté serveur.
// POST /api/auth/otp/request
func RequestOTP(c *gin.Context) {
	var input struct {
		Phone string `json:"phone"`
	}

	if err := c.ShouldBindJSON(&input); err != nil || !phoneRe.MatchString(input.Phone) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Numéro de téléphone invalide"})
		return
	}

	time.Sleep(mockNetworkDelay)

	requestID := uuid.NewString()
	log.Printf("📱 OTP mock envoyé à %s (request %s)", input.Phone, requestID)

	c.JSON(http.StatusOK, gin.H{
		"message":    "Code envoyé",
		"request_id": requestID,
	})
}

// VerifyOTP vérifie le code : le mock accepte n'importe quel code à 6
// chiffres, comme l'écran d'origine.
// POST /api/auth/otp/verify
func VerifyOTP(c *gin.Context) {
	var input struct {
		Phone string `json:"phone"`
		Code  string `json:"code"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if !otpRe.MatchString(input.Code) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Entrez le code à 6 chiffres"})
		return
	}

	log.Printf("✅ OTP vérifié pour %s", input.Phone)

	c.JSON(http.StatusOK, gin.H{
		"verified": true,
		"message":  "Téléphone vérifié",
	})
}
