package store

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"reflect"
)

// Clés fixes du stockage persistant.
const (
	KeyCart      = "cart"
	KeyOrders    = "orders"
	KeyAdminAuth = "adminAuth"
)

var ErrNotFound = errors.New("clé absente")

// Store est le contrat clé/valeur derrière lequel tout l'état vit.
// Chaque clé est durable indépendamment : il n'y a aucune transaction
// multi-clés, et deux écrivains concurrents se recouvrent en
// dernier-écrivain-gagnant.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Del(ctx context.Context, key string) error
}

// Notifier publie un signal de changement sur un canal (synchro temps
// réel du panier via WebSocket).
type Notifier interface {
	Publish(ctx context.Context, channel, payload string) error
}

// CartKey retourne la clé du panier d'une session. Les sessions
// anonymes partagent la clé nue "cart".
func CartKey(owner string) string {
	if owner == "" {
		return KeyCart
	}
	return KeyCart + ":" + owner
}

// ReadJSON désérialise la valeur stockée sous key dans v. Une valeur
// absente ou corrompue laisse v intact : l'appelant part d'une
// collection vide et ne voit jamais d'erreur. Le décodage passe par un
// tampon pour qu'un échec en cours de route (champ au mauvais type) ne
// laisse jamais de données partielles dans v.
func ReadJSON(ctx context.Context, s Store, key string, v any) {
	data, err := s.Get(ctx, key)
	if err != nil || data == "" {
		return
	}
	tmp := reflect.New(reflect.TypeOf(v).Elem())
	if err := json.Unmarshal([]byte(data), tmp.Interface()); err != nil {
		log.Printf("⚠️ Valeur corrompue sous la clé %q, repli sur collection vide", key)
		return
	}
	reflect.ValueOf(v).Elem().Set(tmp.Elem())
}

// WriteJSON sérialise v et remplace intégralement la valeur sous key.
func WriteJSON(ctx context.Context, s Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, string(data))
}
