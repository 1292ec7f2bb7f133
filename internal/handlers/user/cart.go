package user

import (
	"net/http"

	"velora_back_end/internal/cart"
	"velora_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

func cartManager(c *gin.Context) *cart.Manager {
	// user_id vide = session invitée (clé de panier nue)
	return cart.NewManager(Store, Notifier, c.GetString("user_id"))
}

// GET /api/cart
func GetCart(c *gin.Context) {
	cm := cartManager(c)
	ctx := c.Request.Context()

	c.JSON(http.StatusOK, gin.H{
		"items":    cm.Items(ctx),
		"subtotal": cm.Subtotal(ctx),
		"shipping": cm.Shipping(ctx),
		"tax":      cm.Tax(ctx),
		"total":    cm.Total(ctx),
	})
}

//
// 🟢 POST /api/cart/add
//
func AddToCart(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if product.ID == "" || product.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Produit invalide"})
		return
	}

	items, err := cartManager(c).Add(c.Request.Context(), product)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de l'ajout au panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": product.Name + " ajouté au panier",
		"items":   items,
	})
}

// PUT /api/cart/:productId — remplace la quantité telle quelle, le
// front borne à ≥1 avant l'appel
func UpdateQuantity(c *gin.Context) {
	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	productID := models.ProductID(c.Param("productId"))
	items, err := cartManager(c).SetQuantity(c.Request.Context(), productID, input.Quantity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour du panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

//
// ❌ DELETE /api/cart/:productId
//
func RemoveFromCart(c *gin.Context) {
	productID := models.ProductID(c.Param("productId"))

	items, err := cartManager(c).Remove(c.Request.Context(), productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression du panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Produit supprimé du panier",
		"items":   items,
	})
}

//
// 🧹 DELETE /api/cart/clear
//
func ClearCart(c *gin.Context) {
	if err := cartManager(c).Clear(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors du vidage du panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Panier vidé avec succès",
	})
}
