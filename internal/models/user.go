package models

import "time"

// User est un compte du store mocké : tout vit en mémoire, il n'y a pas de
// vrai fournisseur d'identité derrière.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // hash Argon2id, jamais sérialisé
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
