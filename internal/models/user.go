package models

// User vient du fournisseur d'identité externe (OAuth). On ne stocke
// aucun compte localement.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Picture  string `json:"picture"`
	Provider string `json:"provider"`
}
