// Package admingate est un verrou de démonstration : un unique couple
// identifiant/mot de passe fixe, un drapeau "true" persisté sans
// expiration, des tentatives illimitées. Ce n'est PAS une frontière de
// sécurité — un déploiement réel exige une authentification côté
// serveur digne de ce nom.
package admingate

import (
	"context"
	"log"
	"os"

	"velora_back_end/internal/store"
	"velora_back_end/internal/utils"
)

type Gate struct {
	store    store.Store
	username string
	hash     string // Argon2id du mot de passe fixe, calculé au démarrage
}

func New(s store.Store) *Gate {
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Fatal("❌ Impossible de hasher le mot de passe admin:", err)
	}

	return &Gate{store: s, username: username, hash: hash}
}

// Login ne réussit que pour le couple fixe. En cas de succès, persiste
// la sentinelle "true" sous adminAuth.
func (g *Gate) Login(ctx context.Context, username, password string) bool {
	if username != g.username {
		return false
	}
	ok, err := utils.VerifyPassword(password, g.hash)
	if err != nil || !ok {
		return false
	}
	if err := g.store.Set(ctx, store.KeyAdminAuth, "true"); err != nil {
		log.Printf("⚠️ Session admin non persistée: %v", err)
	}
	return true
}

func (g *Gate) Logout(ctx context.Context) error {
	return g.store.Del(ctx, store.KeyAdminAuth)
}

func (g *Gate) IsAuthenticated(ctx context.Context) bool {
	v, err := g.store.Get(ctx, store.KeyAdminAuth)
	return err == nil && v == "true"
}
