package user

import (
	"net/http"

	"ecartx_back_end/internal/cache"
	"ecartx_back_end/internal/catalog"
	"ecartx_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

// GetBrowseState restaure le dernier état de navigation du client
// (catégorie, sous-catégorie médicale, tri, dernière recherche).
// GET /api/browse-state
func GetBrowseState(c *gin.Context) {
	userID := c.GetString("user_id")

	state, err := cache.GetBrowseState(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture état de navigation"})
		return
	}
	if state == nil {
		// Valeurs par défaut du premier lancement
		state = &models.BrowseUIState{
			SelectedCategory: catalog.CategoryAll,
			MedicalSub:       catalog.CategoryAll,
			SortKey:          catalog.SortPopular,
		}
	}

	c.JSON(http.StatusOK, state)
}

// SaveBrowseState persiste l'état de navigation tel quel (blob JSON opaque
// pour le store ; les clés hors vocabulaire sont repliées avant écriture).
// PUT /api/browse-state
func SaveBrowseState(c *gin.Context) {
	userID := c.GetString("user_id")

	var state models.BrowseUIState
	if err := c.ShouldBindJSON(&state); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	state.SelectedCategory = catalog.NormalizeCategory(state.SelectedCategory)
	state.SortKey = catalog.NormalizeSortKey(state.SortKey)

	if err := cache.SaveBrowseState(userID, state); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde état de navigation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "État sauvegardé"})
}
