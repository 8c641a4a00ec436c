package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HandleHealthcheck godoc
// @Summary      Service banner and route index
// @Tags         healthcheck
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Router       / [get]
func HandleHealthcheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"message": "Terraza Zócalo - Sistema de registro de Hosteos",
		"routes": gin.H{
			"/api/v1/access":                  "resolve a secret key to an identity",
			"/api/v1/teams/:teamID":           "per-team entry board",
			"/api/v1/teams/:teamID/events":    "record a hosteo",
			"/api/v1/events/:eventID/confirm": "waiter confirmation",
			"/api/v1/reports/teams/:teamID":   "daily team report (777 = global)",
		},
	})
}
