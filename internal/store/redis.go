package store

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Les paniers expirent comme les paniers abandonnés du front : 30 jours.
// Les commandes et la session admin n'expirent jamais.
const cartTTL = 30 * 24 * time.Hour

var Redis *redis.Client

// Connect initialise le client Redis global.
func Connect() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	Redis = redis.NewClient(&redis.Options{
		Addr:     os.Getenv("REDIS_HOST"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	if err := Redis.Ping(ctx).Err(); err != nil {
		log.Fatal("❌ Erreur connexion Redis:", err)
	}
	log.Println("✅ Connecté à Redis")
}

// RedisStore implémente Store et Notifier sur Redis.
type RedisStore struct {
	Client *redis.Client
}

// NewRedisStore construit un RedisStore sur le client global.
func NewRedisStore() *RedisStore {
	return &RedisStore{Client: Redis}
}

func (r *RedisStore) Get(ctx context.Context, key string) (string, error) {
	data, err := r.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	return data, err
}

func (r *RedisStore) Set(ctx context.Context, key, value string) error {
	var ttl time.Duration
	if strings.HasPrefix(key, KeyCart) {
		ttl = cartTTL
	}
	return r.Client.Set(ctx, key, value, ttl).Err()
}

func (r *RedisStore) Del(ctx context.Context, key string) error {
	return r.Client.Del(ctx, key).Err()
}

func (r *RedisStore) Publish(ctx context.Context, channel, payload string) error {
	return r.Client.Publish(ctx, channel, payload).Err()
}
