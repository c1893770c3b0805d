package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/http/middleware"
	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/http/validation"
	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/modules/orders"
	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/shared/apperr"
	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/pkg/view"
)

type OrdersHandler struct {
	repo     *orders.Repo
	svc      *orders.Service
	currency string
}

func NewOrdersHandler(repo *orders.Repo, svc *orders.Service, currency string) *OrdersHandler {
	return &OrdersHandler{repo: repo, svc: svc, currency: currency}
}

func (h *OrdersHandler) List(c *gin.Context) {
	rows, err := h.repo.List(c.Request.Context(), orders.ListParams{
		Q:      c.Query("q"),
		Status: c.Query("status"),
	})
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders": view.OrderList(rows, h.currency),
		"facets": view.DeriveFacets(rows,
			func(o orders.Order) string { return o.Status },
			func(o orders.Order) string { return o.CustomerName },
		),
	})
}

func (h *OrdersHandler) Detail(c *gin.Context) {
	o, items, err := h.repo.GetWithItems(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Order not found."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	c.JSON(http.StatusOK, view.NewOrderDetail(o, items, h.currency))
}

func (h *OrdersHandler) Create(c *gin.Context) {
	var in orders.CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Order is invalid.", validation.FromBindError(err, &in)))
		return
	}

	o, items, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, view.NewOrderDetail(o, items, h.currency))
}

type setStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=paid refunded cancelled"`
}

func (h *OrdersHandler) SetStatus(c *gin.Context) {
	var in setStatusRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Status is invalid.", validation.FromBindError(err, &in)))
		return
	}

	err := h.repo.UpdateStatus(c.Request.Context(), c.Param("id"), in.Status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Order not found."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "status": in.Status})
}
