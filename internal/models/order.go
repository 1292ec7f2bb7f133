package models

import "time"

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

// ValidStatus vérifie l'appartenance à l'énumération. Aucune machine à
// états n'est imposée entre statuts : toute transition est acceptée.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

type ShippingInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

// Order est un instantané immuable du panier au moment du paiement.
// Seul Status peut changer après création.
type Order struct {
	ID          string       `json:"id"`
	Shipping    ShippingInfo `json:"shippingInfo"`
	CardNumber  string       `json:"cardNumber"` // masqué, seuls les 4 derniers chiffres subsistent
	Items       []CartItem   `json:"items"`
	TotalAmount float64      `json:"totalAmount"`
	Status      OrderStatus  `json:"status"`
	OrderDate   time.Time    `json:"orderDate"`
}
