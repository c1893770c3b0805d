package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/http/middleware"
	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/modules/stats"
	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/shared/apperr"
)

type DashboardHandler struct {
	stats *stats.Service
}

func NewDashboardHandler(svc *stats.Service) *DashboardHandler {
	return &DashboardHandler{stats: svc}
}

// Stats serves the poller's latest snapshot. refresh=1 forces a recompute,
// and so does a cold start before the first poll tick lands.
func (h *DashboardHandler) Stats(c *gin.Context) {
	ov, ready := h.stats.Latest()
	if !ready || c.Query("refresh") == "1" {
		if err := h.stats.Refresh(c.Request.Context()); err != nil {
			middleware.Fail(c, apperr.Wrap(err))
			return
		}
		ov, _ = h.stats.Latest()
	}

	c.JSON(http.StatusOK, ov)
}
