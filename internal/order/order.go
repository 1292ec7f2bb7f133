package order

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	"velora_back_end/internal/cart"
	"velora_back_end/internal/checkout"
	"velora_back_end/internal/models"
	"velora_back_end/internal/store"
)

var (
	ErrEmptyCart = errors.New("panier vide")
	ErrNotFound  = errors.New("commande introuvable")
)

// Manager gère la liste des commandes, persistée comme un unique
// tableau JSON sous la clé "orders". La liste n'est pas partitionnée
// par utilisateur.
type Manager struct {
	store store.Store
}

func NewManager(s store.Store) *Manager {
	return &Manager{store: s}
}

// MaskCard réduit un numéro de carte à ses 4 derniers chiffres,
// préfixés du masque fixe. Les espaces internes sont ignorés.
func MaskCard(raw string) string {
	digits := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] >= '0' && raw[i] <= '9' {
			digits = append(digits, raw[i])
		}
	}
	last4 := string(digits)
	if len(digits) > 4 {
		last4 = string(digits[len(digits)-4:])
	}
	return "****-****-****-" + last4
}

// Create transforme l'instantané du panier et le formulaire (déjà
// validé par checkout.Validate, jamais revalidé ici) en une commande
// immuable, l'ajoute à la liste puis vide le panier. Les deux
// écritures sont indépendantes : une interruption entre elles peut
// laisser la commande enregistrée et le panier plein.
func (m *Manager) Create(ctx context.Context, cm *cart.Manager, form checkout.Form) (models.Order, error) {
	items := cm.Items(ctx)
	if len(items) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	now := time.Now()
	ord := models.Order{
		ID:          strconv.FormatInt(now.UnixMilli(), 10),
		Shipping:    form.Shipping(),
		CardNumber:  MaskCard(form.CardNumber),
		Items:       append([]models.CartItem(nil), items...),
		TotalAmount: cm.Total(ctx),
		Status:      models.StatusPending,
		OrderDate:   now.UTC(),
	}

	orders := m.List(ctx)
	orders = append(orders, ord)
	if err := store.WriteJSON(ctx, m.store, store.KeyOrders, orders); err != nil {
		return models.Order{}, err
	}

	if err := cm.Clear(ctx); err != nil {
		log.Printf("⚠️ Commande %s enregistrée mais panier non vidé: %v", ord.ID, err)
	}

	return ord, nil
}

// List retourne toutes les commandes. Clé absente ou corrompue donne
// une liste vide.
func (m *Manager) List(ctx context.Context) []models.Order {
	orders := []models.Order{}
	store.ReadJSON(ctx, m.store, store.KeyOrders, &orders)
	return orders
}

func (m *Manager) Get(ctx context.Context, id string) (models.Order, error) {
	for _, ord := range m.List(ctx) {
		if ord.ID == id {
			return ord, nil
		}
	}
	return models.Order{}, ErrNotFound
}

// UpdateStatus remplace le seul champ Status de la commande. Toute
// transition est acceptée, y compris delivered → pending.
func (m *Manager) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) (models.Order, error) {
	orders := m.List(ctx)
	for i := range orders {
		if orders[i].ID == id {
			orders[i].Status = status
			if err := store.WriteJSON(ctx, m.store, store.KeyOrders, orders); err != nil {
				return models.Order{}, err
			}
			return orders[i], nil
		}
	}
	return models.Order{}, ErrNotFound
}

// Remove filtre la commande et persiste, sans condition : la
// confirmation préalable est l'affaire de la couche de présentation.
func (m *Manager) Remove(ctx context.Context, id string) error {
	orders := m.List(ctx)
	kept := []models.Order{}
	for _, ord := range orders {
		if ord.ID != id {
			kept = append(kept, ord)
		}
	}
	return store.WriteJSON(ctx, m.store, store.KeyOrders, kept)
}
