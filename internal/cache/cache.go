package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ecartx_back_end/internal/database"
	"ecartx_back_end/internal/models"

	"github.com/redis/go-redis/v9"
)

var ctx = context.Background()

// Clés fixes du store clé-valeur. Seules deux petites collections sont
// persistées : la wishlist et le dernier état de navigation.
const (
	wishlistKeyPrefix    = "wishlist:"
	browseStateKeyPrefix = "browse_state:"
	pushTokenKeyPrefix   = "push_token:"
)

// --- Wishlist ---

// GetWishlist récupère la wishlist d'un utilisateur (blob JSON opaque).
// Une clé absente retourne une liste vide, pas une erreur.
func GetWishlist(userID string) ([]models.WishlistItem, error) {
	data, err := database.Redis.Get(ctx, wishlistKeyPrefix+userID).Result()
	if err == redis.Nil {
		return []models.WishlistItem{}, nil
	}
	if err != nil {
		return nil, err
	}

	var items []models.WishlistItem
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return nil, fmt.Errorf("wishlist corrompue pour %s: %v", userID, err)
	}
	return items, nil
}

// SaveWishlist écrase la wishlist complète (pas de TTL : c'est une donnée
// utilisateur, pas un cache).
func SaveWishlist(userID string, items []models.WishlistItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return database.Redis.Set(ctx, wishlistKeyPrefix+userID, data, 0).Err()
}

// --- État de navigation ---

// GetBrowseState récupère le dernier état de navigation, ou nil s'il n'a
// jamais été sauvegardé.
func GetBrowseState(userID string) (*models.BrowseUIState, error) {
	data, err := database.Redis.Get(ctx, browseStateKeyPrefix+userID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var state models.BrowseUIState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func SaveBrowseState(userID string, state models.BrowseUIState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return database.Redis.Set(ctx, browseStateKeyPrefix+userID, data, 0).Err()
}

// --- Tokens push (mock) ---

// SavePushToken enregistre le token de device pour les notifications
// mockées. 90 jours, comme une vraie registration expirerait.
func SavePushToken(userID, token string) error {
	return database.Redis.Set(ctx, pushTokenKeyPrefix+userID, token, 90*24*time.Hour).Err()
}

func GetPushToken(userID string) (string, error) {
	return database.Redis.Get(ctx, pushTokenKeyPrefix+userID).Result()
}

// --- Cache générique ---

// SetCache stocke une valeur dans le cache
func SetCache(key string, value interface{}, duration time.Duration) error {
	return database.Redis.Set(ctx, key, value, duration).Err()
}

// GetCache récupère une valeur du cache
func GetCache(key string) (string, error) {
	return database.Redis.Get(ctx, key).Result()
}

// DeleteCache supprime une clé du cache
func DeleteCache(key string) error {
	return database.Redis.Del(ctx, key).Err()
}

// --- Rate Limiting ---

// IncrementRateLimit incrémente le compteur de rate limit
func IncrementRateLimit(key string, window time.Duration) (int64, error) {
	pipe := database.Redis.Pipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, window)
	_, err := pipe.Exec(ctx)
	if err != nil {
		return 0, err
	}
	return incr.Val(), nil
}
