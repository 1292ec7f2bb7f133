package checkout_test

import (
	"testing"

	"velora_back_end/internal/checkout"

	"github.com/stretchr/testify/assert"
)

func validForm() checkout.Form {
	return checkout.Form{
		Name:       "Jane Doe",
		Email:      "a@b.co",
		Phone:      "1234567890",
		Address:    "1 Main St",
		City:       "Springfield",
		State:      "IL",
		ZipCode:    "62704",
		CardNumber: "4111111111111111",
		ExpiryDate: "09/27",
		CVV:        "123",
	}
}

func TestValidateAccepts(t *testing.T) {
	assert.NoError(t, checkout.Validate(validForm()))
}

func TestValidateAcceptsCardWithSpaces(t *testing.T) {
	f := validForm()
	f.CardNumber = "4111 1111 1111 1111"
	assert.NoError(t, checkout.Validate(f))
}

func TestValidateAccepts4DigitCVV(t *testing.T) {
	f := validForm()
	f.CVV = "1234"
	assert.NoError(t, checkout.Validate(f))
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*checkout.Form)
		want   error
	}{
		{"email sans domaine", func(f *checkout.Form) { f.Email = "not-an-email" }, checkout.ErrInvalidEmail},
		{"email avec espace", func(f *checkout.Form) { f.Email = "a b@c.co" }, checkout.ErrInvalidEmail},
		{"téléphone trop court", func(f *checkout.Form) { f.Phone = "12345" }, checkout.ErrInvalidPhone},
		{"téléphone avec séparateurs", func(f *checkout.Form) { f.Phone = "123-456-7890" }, checkout.ErrInvalidPhone},
		{"carte avec tirets", func(f *checkout.Form) { f.CardNumber = "4111-1111-1111" }, checkout.ErrInvalidCard},
		{"carte trop courte", func(f *checkout.Form) { f.CardNumber = "411111111111111" }, checkout.ErrInvalidCard},
		{"mois d'expiration invalide", func(f *checkout.Form) { f.ExpiryDate = "13/25" }, checkout.ErrInvalidExpiry},
		{"expiration sans slash", func(f *checkout.Form) { f.ExpiryDate = "0927" }, checkout.ErrInvalidExpiry},
		{"CVV trop court", func(f *checkout.Form) { f.CVV = "12" }, checkout.ErrInvalidCVV},
		{"CVV trop long", func(f *checkout.Form) { f.CVV = "12345" }, checkout.ErrInvalidCVV},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			tt.mutate(&f)
			assert.ErrorIs(t, checkout.Validate(f), tt.want)
		})
	}
}

// La première erreur court-circuite : les champs suivants ne sont pas
// examinés dans la même passe.
func TestValidateShortCircuitsOnFirstFailure(t *testing.T) {
	f := validForm()
	f.Email = "not-an-email"
	f.Phone = "12345"
	f.CVV = "1"

	assert.ErrorIs(t, checkout.Validate(f), checkout.ErrInvalidEmail)
}

func TestValidateIsReferentiallyTransparent(t *testing.T) {
	f := validForm()
	f.Phone = "12345"

	first := checkout.Validate(f)
	second := checkout.Validate(f)
	assert.Equal(t, first, second)
}
