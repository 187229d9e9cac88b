package models

import "time"

// Statuts possibles d'une commande
const (
	OrderStatusProcessing = "processing"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

type Order struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Title     string     `json:"title"` // libellé du premier article
	Items     []CartItem `json:"items,omitempty"`
	ItemCount int        `json:"item_count"`
	Total     float64    `json:"total"`
	Discount  float64    `json:"discount,omitempty"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
}
