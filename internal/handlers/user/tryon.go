package user

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// GET /api/tryon — renvoi à sens unique vers l'application d'essayage
// virtuel externe, aucun canal de retour.
func VirtualTryOn(c *gin.Context) {
	target := os.Getenv("TRYON_URL")
	if target == "" {
		target = "https://huggingface.co/spaces/Kwai-Kolors/Kolors-Virtual-Try-On"
	}
	c.Redirect(http.StatusFound, target)
}
