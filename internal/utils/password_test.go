package utils

import (
	"strings"
	"testing"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("123456")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Errorf("format de hash inattendu: %s", hash)
	}

	ok, err := VerifyPassword("123456", hash)
	if err != nil {
		t.Fatalf("VerifyPassword: %v", err)
	}
	if !ok {
		t.Error("le bon mot de passe devrait être accepté")
	}

	ok, err = VerifyPassword("autre-mot-de-passe", hash)
	if err != nil {
		t.Fatalf("VerifyPassword: %v", err)
	}
	if ok {
		t.Error("un mauvais mot de passe ne devrait pas être accepté")
	}
}

// Deux hashs du même mot de passe diffèrent (salt aléatoire).
func TestHashPasswordSalted(t *testing.T) {
	h1, _ := HashPassword("123456")
	h2, _ := HashPassword("123456")
	if h1 == h2 {
		t.Error("deux hashs identiques : le salt n'est pas aléatoire")
	}
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	if _, err := VerifyPassword("x", "pas-un-hash"); err == nil {
		t.Error("un hash malformé devrait retourner une erreur")
	}
}
