package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/sms"
)

type CampaignHandler struct {
	svc *sms.CampaignService
}

func NewCampaignHandler(svc *sms.CampaignService) *CampaignHandler {
	return &CampaignHandler{svc: svc}
}

type campaignRequest struct {
	Message string `json:"message"`
}

// Send broadcasts one SMS per known phone number. The response accounts
// per recipient instead of failing the whole batch on the first error.
func (h *CampaignHandler) Send(c *gin.Context) {
	var in campaignRequest
	// body is optional; an empty message falls back to the default text
	_ = c.ShouldBindJSON(&in)

	res, err := h.svc.Broadcast(c.Request.Context(), in.Message)
	if err != nil {
		if errors.Is(err, sms.ErrNoRecipients) {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": sms.ErrNoRecipients.Error()})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"sent":           res.Sent,
		"failed":         res.Failed,
		"failed_numbers": res.FailedNumbers,
	})
}
