package models

// CartItem est une ligne de panier : un produit et sa quantité.
// Invariant : au plus une ligne par ProductID dans un panier.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}
