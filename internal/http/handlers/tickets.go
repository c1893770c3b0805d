package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/http/middleware"
	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/http/validation"
	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/modules/tickets"
	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/shared/apperr"
	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/pkg/view"
)

type TicketsHandler struct {
	repo *tickets.Repo
	svc  *tickets.Service
}

func NewTicketsHandler(repo *tickets.Repo, svc *tickets.Service) *TicketsHandler {
	return &TicketsHandler{repo: repo, svc: svc}
}

func (h *TicketsHandler) List(c *gin.Context) {
	rows, err := h.repo.List(c.Request.Context(), tickets.ListParams{
		Q:      c.Query("q"),
		Status: c.Query("status"),
	})
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tickets": rows,
		"facets": view.DeriveFacets(rows,
			func(t tickets.Ticket) string { return t.Status },
			func(t tickets.Ticket) string { return t.RequesterName },
		),
	})
}

func (h *TicketsHandler) Detail(c *gin.Context) {
	t, err := h.repo.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Ticket not found."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	acts, err := h.repo.Activities(c.Request.Context(), t.ID)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"ticket": t, "activities": acts})
}

type ticketRequest struct {
	Subject        string `json:"subject" binding:"required"`
	RequesterName  string `json:"requester_name" binding:"required"`
	RequesterEmail string `json:"requester_email" binding:"omitempty,email"`
}

func (h *TicketsHandler) Create(c *gin.Context) {
	var in ticketRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Ticket is invalid.", validation.FromBindError(err, &in)))
		return
	}

	t, err := h.repo.Create(c.Request.Context(), tickets.Ticket{
		Subject:        in.Subject,
		RequesterName:  in.RequesterName,
		RequesterEmail: in.RequesterEmail,
	})
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	c.JSON(http.StatusCreated, t)
}

type ticketStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=open pending closed"`
}

func (h *TicketsHandler) SetStatus(c *gin.Context) {
	var in ticketStatusRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Status is invalid.", validation.FromBindError(err, &in)))
		return
	}

	err := h.repo.UpdateStatus(c.Request.Context(), c.Param("id"), in.Status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Ticket not found."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "status": in.Status})
}

// Resolve closes the ticket; it disappears from the default open view on
// the next refetch.
func (h *TicketsHandler) Resolve(c *gin.Context) {
	if err := h.svc.Resolve(c.Request.Context(), c.Param("id")); err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "status": tickets.StatusClosed})
}

func (h *TicketsHandler) AddActivity(c *gin.Context) {
	var in tickets.AddActivityInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Activity is invalid.", validation.FromBindError(err, &in)))
		return
	}

	if in.Sender == "" {
		if u, ok := middleware.CurrentUser(c); ok {
			in.Sender = u.Email
		}
	}

	a, err := h.svc.AddActivity(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, a)
}
