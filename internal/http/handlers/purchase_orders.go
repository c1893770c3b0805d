package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/http/middleware"
	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/http/validation"
	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/modules/purchaseorders"
	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/shared/apperr"
	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/pkg/view"
)

type PurchaseOrdersHandler struct {
	repo *purchaseorders.Repo
	svc  *purchaseorders.Service
}

func NewPurchaseOrdersHandler(repo *purchaseorders.Repo, svc *purchaseorders.Service) *PurchaseOrdersHandler {
	return &PurchaseOrdersHandler{repo: repo, svc: svc}
}

func (h *PurchaseOrdersHandler) List(c *gin.Context) {
	rows, err := h.repo.List(c.Request.Context(), purchaseorders.ListParams{
		Q:          c.Query("q"),
		Status:     c.Query("status"),
		SupplierID: c.Query("supplier_id"),
	})
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"purchase_orders": rows,
		"facets": view.DeriveFacets(rows,
			func(po purchaseorders.PurchaseOrder) string { return po.Status },
			nil,
		),
	})
}

func (h *PurchaseOrdersHandler) Detail(c *gin.Context) {
	po, items, err := h.repo.GetWithItems(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Purchase order not found."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"purchase_order": po, "items": items})
}

func (h *PurchaseOrdersHandler) Create(c *gin.Context) {
	var in purchaseorders.CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Purchase order is invalid.", validation.FromBindError(err, &in)))
		return
	}

	po, items, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"purchase_order": po, "items": items})
}

type poUpdateRequest struct {
	Date  time.Time `json:"date"`
	Notes string    `json:"notes"`
}

func (h *PurchaseOrdersHandler) Update(c *gin.Context) {
	var in poUpdateRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Purchase order is invalid.", validation.FromBindError(err, &in)))
		return
	}

	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}
	err := h.repo.Update(c.Request.Context(), c.Param("id"), purchaseorders.PurchaseOrder{
		Date:  date,
		Notes: in.Notes,
	})
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	c.Status(http.StatusNoContent)
}

// CycleStatus is the status chip click: pending → approved → received →
// cancelled → pending.
func (h *PurchaseOrdersHandler) CycleStatus(c *gin.Context) {
	id := c.Param("id")

	po, _, err := h.repo.GetWithItems(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Purchase order not found."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	next, err := h.svc.CycleStatus(c.Request.Context(), id, po.Status)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "status": next})
}
