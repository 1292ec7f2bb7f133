package user

import (
	"errors"
	"log"
	"net/http"

	"velora_back_end/internal/checkout"
	"velora_back_end/internal/order"
	"velora_back_end/internal/utils"

	"github.com/gin-gonic/gin"
)

//
// 🟢 POST /api/checkout
//
func Checkout(c *gin.Context) {
	var form checkout.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	// Validation synchrone, première erreur bloquante
	if err := checkout.Validate(form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cm := cartManager(c)
	om := order.NewManager(Store)

	ord, err := om.Create(c.Request.Context(), cm, form)
	if err != nil {
		if errors.Is(err, order.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Panier vide"})
			return
		}
		log.Printf("❌ Erreur création commande: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la création de la commande"})
		return
	}

	if utils.EmailEnabled() {
		go func() {
			if err := utils.SendOrderConfirmationEmail(ord); err != nil {
				log.Printf("⚠️ Email de confirmation non envoyé pour %s: %v", ord.ID, err)
			}
		}()
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Commande confirmée",
		"order":   ord,
	})
}
