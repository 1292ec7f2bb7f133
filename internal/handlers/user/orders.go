package user

import (
	"net/http"

	"velora_back_end/internal/order"
	"velora_back_end/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/orders/:id — page de confirmation de commande
func GetOrder(c *gin.Context) {
	om := order.NewManager(Store)

	ord, err := om.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": ord})
}

// GET /api/orders/:id/qr — QR de suivi en PNG
func GetOrderQR(c *gin.Context) {
	om := order.NewManager(Store)

	ord, err := om.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}

	png, err := utils.GenerateOrderQR(ord.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "qr fail"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
