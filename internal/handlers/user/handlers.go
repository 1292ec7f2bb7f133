package user

import (
	"velora_back_end/internal/store"

	"github.com/redis/go-redis/v9"
)

// État partagé des handlers, câblé au démarrage par main.
var (
	Store       store.Store
	Notifier    store.Notifier
	RedisClient *redis.Client // pub/sub du WebSocket panier, nil en tests
)

func Init(s store.Store, n store.Notifier, r *redis.Client) {
	Store = s
	Notifier = n
	RedisClient = r
}
