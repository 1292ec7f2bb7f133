package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/me — identité fournie par le provider OAuth externe
func GetMe(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"user_id": c.GetString("user_id"),
		"email":   c.GetString("email"),
		"name":    c.GetString("name"),
		"picture": c.GetString("picture"),
	})
}
