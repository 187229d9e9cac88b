package models

// WishlistItem est la projection minimale d'un produit conservée dans la
// wishlist : {id, title, image, price, brand}, sérialisée en JSON sous une
// clé fixe du store clé-valeur.
type WishlistItem struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Image string  `json:"image,omitempty"`
	Price float64 `json:"price"`
	Brand string  `json:"brand,omitempty"`
}

type Wishlist struct {
	UserID string         `json:"user_id"`
	Items  []WishlistItem `json:"items"`
}
