package models

import "encoding/json"

// ProductID accepte les identifiants numériques (API catalogue externe)
// comme les chaînes, et se sérialise toujours en chaîne.
type ProductID string

func (id *ProductID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = ProductID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ProductID(n.String())
	return nil
}

// Product est une valeur externe immuable : le catalogue appartient à
// une API tierce, on ne fait que la refléter dans le panier.
type Product struct {
	ID       ProductID `json:"id"`
	Name     string    `json:"name"`
	Price    float64   `json:"price"`
	Image    string    `json:"image"`
	Category string    `json:"category,omitempty"`
}
