package middleware

import (
	"net/http"

	"velora_back_end/internal/admingate"

	"github.com/gin-gonic/gin"
)

// AdminRequired vérifie que la session admin est ouverte (sentinelle
// adminAuth présente). Pas de verrouillage, pas de limite d'essais.
func AdminRequired(gate *admingate.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !gate.IsAuthenticated(c.Request.Context()) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Accès réservé aux administrateurs"})
			c.Abort()
			return
		}
		c.Next()
	}
}
