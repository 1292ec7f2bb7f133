package cart

import (
	"context"

	"velora_back_end/internal/models"
	"velora_back_end/internal/store"
)

// Manager maintient le panier d'une session : une séquence ordonnée de
// lignes, au plus une par produit, réécrite intégralement à chaque
// mutation (lecture-modification-écriture, dernier écrivain gagnant).
type Manager struct {
	store    store.Store
	notifier store.Notifier // optionnel
	owner    string
}

func NewManager(s store.Store, n store.Notifier, owner string) *Manager {
	return &Manager{store: s, notifier: n, owner: owner}
}

func (m *Manager) key() string {
	return store.CartKey(m.owner)
}

// Items retourne le panier courant. Clé absente ou valeur corrompue
// donnent un panier vide, jamais une erreur.
func (m *Manager) Items(ctx context.Context) []models.CartItem {
	items := []models.CartItem{}
	store.ReadJSON(ctx, m.store, m.key(), &items)
	return items
}

// Add incrémente la quantité si le produit est déjà dans le panier,
// sinon ajoute une ligne en fin (l'ordre d'insertion est préservé).
// Une notification de changement est émise, exactement une par appel.
func (m *Manager) Add(ctx context.Context, p models.Product) ([]models.CartItem, error) {
	items := m.Items(ctx)

	found := false
	for i := range items {
		if items[i].ID == p.ID {
			items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		items = append(items, models.CartItem{Product: p, Quantity: 1})
	}

	if err := m.persist(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

// SetQuantity remplace la quantité telle quelle, sans borne : le
// clampage à ≥1 est la responsabilité de l'appelant. Produit absent :
// aucun effet sur les lignes, le panier est réécrit tel quel.
func (m *Manager) SetQuantity(ctx context.Context, id models.ProductID, quantity int) ([]models.CartItem, error) {
	items := m.Items(ctx)
	for i := range items {
		if items[i].ID == id {
			items[i].Quantity = quantity
			break
		}
	}
	if err := m.persist(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

// Remove filtre la ligne du produit et persiste le résultat.
func (m *Manager) Remove(ctx context.Context, id models.ProductID) ([]models.CartItem, error) {
	items := m.Items(ctx)
	kept := []models.CartItem{}
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	if err := m.persist(ctx, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

// Subtotal est la somme exacte des prix × quantités (IEEE-754 double).
func (m *Manager) Subtotal(ctx context.Context) float64 {
	total := 0.0
	for _, item := range m.Items(ctx) {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// Livraison offerte et taxe nulle : le total est le sous-total.
func (m *Manager) Shipping(context.Context) float64 { return 0 }
func (m *Manager) Tax(context.Context) float64      { return 0 }

func (m *Manager) Total(ctx context.Context) float64 {
	return m.Subtotal(ctx)
}

// Clear supprime la clé du panier.
func (m *Manager) Clear(ctx context.Context) error {
	if err := m.store.Del(ctx, m.key()); err != nil {
		return err
	}
	m.notify(ctx, "cleared")
	return nil
}

func (m *Manager) persist(ctx context.Context, items []models.CartItem) error {
	if err := store.WriteJSON(ctx, m.store, m.key(), items); err != nil {
		return err
	}
	m.notify(ctx, "updated")
	return nil
}

func (m *Manager) notify(ctx context.Context, payload string) {
	if m.notifier != nil {
		_ = m.notifier.Publish(ctx, m.key(), payload)
	}
}
