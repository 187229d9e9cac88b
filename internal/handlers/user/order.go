package user

import (
	"net/http"
	"sort"
	"sync"
	"time"

	"ecartx_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

// L'historique de commandes est mocké : un jeu fixe au démarrage, enrichi
// des commandes créées par le checkout pendant la vie du process.
var (
	ordersMu sync.RWMutex
	orders   []models.Order
)

func mockOrders() []models.Order {
	day := func(d string) time.Time {
		t, _ := time.Parse("2006-01-02", d)
		return t
	}
	return []models.Order{
		{ID: "o124", Title: "Headphones", ItemCount: 1, Total: 49.99, Status: models.OrderStatusProcessing, CreatedAt: day("2025-09-18")},
		{ID: "o123", Title: "Sneakers", ItemCount: 2, Total: 119.0, Status: models.OrderStatusDelivered, CreatedAt: day("2025-09-10")},
		{ID: "o122", Title: "USB-C Cable", ItemCount: 3, Total: 15.0, Status: models.OrderStatusDelivered, CreatedAt: day("2025-08-31")},
		{ID: "o121", Title: "Smart Watch", ItemCount: 1, Total: 199.0, Status: models.OrderStatusCancelled, CreatedAt: day("2025-08-20")},
	}
}

// SeedMockOrders charge l'historique de démonstration.
func SeedMockOrders() {
	ordersMu.Lock()
	orders = mockOrders()
	ordersMu.Unlock()
}

// RecordOrder ajoute une commande créée par le checkout.
func RecordOrder(o models.Order) {
	ordersMu.Lock()
	orders = append(orders, o)
	ordersMu.Unlock()
}

// GetOrders retourne l'historique, le plus récent en premier. Les commandes
// de démo n'ont pas de propriétaire : elles sont visibles par tous.
// GET /api/orders
func GetOrders(c *gin.Context) {
	userID := c.GetString("user_id")

	ordersMu.RLock()
	out := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if o.UserID == "" || o.UserID == userID {
			out = append(out, o)
		}
	}
	ordersMu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	c.JSON(http.StatusOK, gin.H{"orders": out})
}
