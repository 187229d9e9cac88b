package user

import (
	"log"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"time"

	"ecartx_back_end/internal/models"
	"ecartx_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// L'auth est entièrement mockée : un store utilisateur en mémoire, seedé
// avec le compte de démo, et un délai artificiel qui imite la latence
// réseau du vrai backend.
var mockNetworkDelay = 800 * time.Millisecond

var (
	usersMu      sync.RWMutex
	usersByEmail = map[string]*models.User{}
)

var emailRe = regexp.MustCompile(`\S+@\S+\.\S+`)

// SeedDemoUser crée le compte de démonstration test@example.com / 123456.
func SeedDemoUser() {
	hash, err := utils.HashPassword("123456")
	if err != nil {
		log.Printf("⚠️ Impossible de seeder l'utilisateur de démo: %v", err)
		return
	}

	usersMu.Lock()
	usersByEmail["test@example.com"] = &models.User{
		ID:        uuid.NewString(),
		Email:     "test@example.com",
		Password:  hash,
		Name:      "Demo User",
		CreatedAt: time.Now(),
	}
	usersMu.Unlock()

	log.Println("✅ Utilisateur de démo seedé (test@example.com)")
}

// Register crée un compte dans le store en mémoire.
// POST /api/auth/register
func Register(c *gin.Context) {
	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Phone    string `json:"phone"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if len(strings.TrimSpace(input.Name)) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nom trop court"})
		return
	}
	if !emailRe.MatchString(input.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email invalide"})
		return
	}
	if len(input.Password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Mot de passe trop court (6 caractères minimum)"})
		return
	}

	time.Sleep(mockNetworkDelay)

	usersMu.Lock()
	defer usersMu.Unlock()

	if _, exists := usersByEmail[input.Email]; exists {
		c.JSON(http.StatusConflict, gin.H{"error": "Un compte existe déjà avec cet email"})
		return
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création du compte"})
		return
	}

	u := &models.User{
		ID:        uuid.NewString(),
		Email:     input.Email,
		Password:  hash,
		Name:      strings.TrimSpace(input.Name),
		Phone:     strings.TrimSpace(input.Phone),
		CreatedAt: time.Now(),
	}
	usersByEmail[u.Email] = u

	token, err := utils.GenerateJWT(*u)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération token"})
		return
	}

	log.Printf("✅ Compte créé: %s", u.Email)

	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user":  u,
	})
}

// Login vérifie l'email/mot de passe contre le store en mémoire.
// POST /api/auth/login
func Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	time.Sleep(mockNetworkDelay)

	usersMu.RLock()
	u, exists := usersByEmail[input.Email]
	usersMu.RUnlock()

	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Email ou mot de passe invalide"})
		return
	}

	ok, err := utils.VerifyPassword(input.Password, u.Password)
	if err != nil || !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Email ou mot de passe invalide"})
		return
	}

	token, err := utils.GenerateJWT(*u)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération token"})
		return
	}

	log.Printf("✅ Connexion: %s", u.Email)

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  u,
	})
}
