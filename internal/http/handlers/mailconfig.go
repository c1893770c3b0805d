package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/config"
)

type MailConfigHandler struct {
	cfg config.SendGridConfig
}

func NewMailConfigHandler(cfg config.SendGridConfig) *MailConfigHandler {
	return &MailConfigHandler{cfg: cfg}
}

// Check reports whether outbound email is configured. Missing values are a
// normal not-configured answer, never an error; only an unexpected panic
// becomes a 500 with configured:false.
func (h *MailConfigHandler) Check(c *gin.Context) {
	defer func() {
		if r := recover(); r != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":      "Internal server error",
				"configured": false,
			})
		}
	}()

	hasKey := h.cfg.APIKey != ""
	hasFrom := h.cfg.FromEmail != ""

	c.JSON(http.StatusOK, gin.H{
		"configured":   hasKey && hasFrom,
		"hasApiKey":    hasKey,
		"hasFromEmail": hasFrom,
	})
}
