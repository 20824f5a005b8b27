package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// health godoc
// @Summary Health check
// @Tags health
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}
