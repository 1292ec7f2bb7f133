package checkout

import (
	"errors"
	"regexp"

	"velora_back_end/internal/models"
)

// Form porte les champs livraison + paiement du formulaire de checkout.
type Form struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	ZipCode    string `json:"zipCode"`
	CardNumber string `json:"cardNumber"`
	ExpiryDate string `json:"expiryDate"`
	CVV        string `json:"cvv"`
}

func (f Form) Shipping() models.ShippingInfo {
	return models.ShippingInfo{
		Name:    f.Name,
		Email:   f.Email,
		Phone:   f.Phone,
		Address: f.Address,
		City:    f.City,
		State:   f.State,
		ZipCode: f.ZipCode,
	}
}

var (
	ErrInvalidEmail  = errors.New("adresse email invalide")
	ErrInvalidPhone  = errors.New("numéro de téléphone invalide")
	ErrInvalidCard   = errors.New("numéro de carte invalide")
	ErrInvalidExpiry = errors.New("date d'expiration invalide (MM/YY)")
	ErrInvalidCVV    = errors.New("CVV invalide")
)

var (
	emailRx  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRx  = regexp.MustCompile(`^[0-9]{10}$`)
	cardRx   = regexp.MustCompile(`^[0-9]{16}$`)
	expiryRx = regexp.MustCompile(`^(0[1-9]|1[0-2])/([0-9]{2})$`)
	cvvRx    = regexp.MustCompile(`^[0-9]{3,4}$`)
	spaceRx  = regexp.MustCompile(`\s`)
)

// Validate vérifie les champs dans l'ordre fixe email, téléphone,
// carte, expiration, CVV et s'arrête à la première erreur. Fonction
// pure : aucun effet de bord, même entrée, même verdict.
func Validate(f Form) error {
	if !emailRx.MatchString(f.Email) {
		return ErrInvalidEmail
	}
	if !phoneRx.MatchString(f.Phone) {
		return ErrInvalidPhone
	}
	if !cardRx.MatchString(spaceRx.ReplaceAllString(f.CardNumber, "")) {
		return ErrInvalidCard
	}
	if !expiryRx.MatchString(f.ExpiryDate) {
		return ErrInvalidExpiry
	}
	if !cvvRx.MatchString(f.CVV) {
		return ErrInvalidCVV
	}
	return nil
}
