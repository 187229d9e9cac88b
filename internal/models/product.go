package models

// Offer décrit une remise attachée à un produit.
// Type "percent" : Value est un pourcentage (0-100).
// Type "flat" : Value est un montant soustrait du prix de base.
// ExpiresAt est purement décoratif : aucun composant ne le vérifie.
type Offer struct {
	Type      string  `json:"type"` // "flat" ou "percent"
	Value     float64 `json:"value"`
	Label     string  `json:"label,omitempty"`
	ExpiresAt string  `json:"expires_at,omitempty"`
}

// Product est une donnée de référence immuable : chargée une fois au
// démarrage, jamais modifiée ensuite.
type Product struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Brand      string   `json:"brand,omitempty"`
	Price      float64  `json:"price"`
	Rating     float64  `json:"rating,omitempty"` // 0-5, absent = 0
	Reviews    int      `json:"reviews,omitempty"`
	Stock      int      `json:"stock"` // 0 = rupture de stock
	Categories []string `json:"categories"`
	Tags       []string `json:"tags,omitempty"`
	Image      string   `json:"image,omitempty"`
	Offer      *Offer   `json:"offer,omitempty"`
}
