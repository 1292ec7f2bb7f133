package admin

import (
	"errors"
	"log"
	"net/http"

	"velora_back_end/internal/admingate"
	"velora_back_end/internal/models"
	"velora_back_end/internal/order"
	"velora_back_end/internal/store"
	"velora_back_end/internal/utils"

	"github.com/gin-gonic/gin"
)

var (
	Store store.Store
	Gate  *admingate.Gate
)

func Init(s store.Store, g *admingate.Gate) {
	Store = s
	Gate = g
}

//
// 🔐 POST /api/admin/login
//
func Login(c *gin.Context) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if !Gate.Login(c.Request.Context(), input.Username, input.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Identifiants invalides"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Connexion admin réussie"})
}

// POST /api/admin/logout
func Logout(c *gin.Context) {
	if err := Gate.Logout(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la déconnexion"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Déconnecté"})
}

// GET /api/admin/orders
func ListOrders(c *gin.Context) {
	om := order.NewManager(Store)
	orders := om.List(c.Request.Context())

	// Chiffres du tableau de bord : total, CA, commandes en attente
	revenue := 0.0
	pending := 0
	for _, ord := range orders {
		revenue += ord.TotalAmount
		if ord.Status == models.StatusPending {
			pending++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"orders":  orders,
		"total":   len(orders),
		"revenue": revenue,
		"pending": pending,
	})
}

// PUT /api/admin/orders/:id/status
func UpdateOrderStatus(c *gin.Context) {
	var input struct {
		Status models.OrderStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if !models.ValidStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Statut inconnu"})
		return
	}

	om := order.NewManager(Store)
	ord, err := om.UpdateStatus(c.Request.Context(), c.Param("id"), input.Status)
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour du statut"})
		return
	}

	if utils.EmailEnabled() {
		go func() {
			if err := utils.SendOrderStatusEmail(ord); err != nil {
				log.Printf("⚠️ Email de statut non envoyé pour %s: %v", ord.ID, err)
			}
		}()
	}

	c.JSON(http.StatusOK, gin.H{"order": ord})
}

// DELETE /api/admin/orders/:id — la confirmation est côté front, ici
// le filtrage est inconditionnel
func RemoveOrder(c *gin.Context) {
	om := order.NewManager(Store)
	if err := om.Remove(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression commande"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Commande supprimée"})
}

//
// 📤 GET /api/admin/orders/export
//
func ExportOrders(c *gin.Context) {
	om := order.NewManager(Store)
	csv := order.ExportCSV(om.List(c.Request.Context()))

	c.Header("Content-Disposition", `attachment; filename=`+order.ExportFilename)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csv))
}
