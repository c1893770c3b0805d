package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/http/middleware"
	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/http/validation"
	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/modules/suppliers"
	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/shared/apperr"
)

type SuppliersHandler struct {
	repo *suppliers.Repo
}

func NewSuppliersHandler(repo *suppliers.Repo) *SuppliersHandler {
	return &SuppliersHandler{repo: repo}
}

func (h *SuppliersHandler) List(c *gin.Context) {
	rows, err := h.repo.List(c.Request.Context(), suppliers.ListParams{Q: c.Query("q")})
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"suppliers": rows})
}

func (h *SuppliersHandler) Detail(c *gin.Context) {
	s, err := h.repo.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Supplier not found."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, s)
}

type supplierRequest struct {
	Name        string `json:"name" binding:"required"`
	ContactName string `json:"contact_name"`
	Email       string `json:"email" binding:"omitempty,email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	ImageURL    string `json:"image_url"`
}

func (h *SuppliersHandler) Create(c *gin.Context) {
	var in supplierRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Supplier is invalid.", validation.FromBindError(err, &in)))
		return
	}

	s, err := h.repo.Create(c.Request.Context(), suppliers.Supplier{
		Name:        in.Name,
		ContactName: in.ContactName,
		Email:       in.Email,
		Phone:       in.Phone,
		Address:     in.Address,
		ImageURL:    in.ImageURL,
	})
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	c.JSON(http.StatusCreated, s)
}

func (h *SuppliersHandler) Update(c *gin.Context) {
	var in supplierRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Supplier is invalid.", validation.FromBindError(err, &in)))
		return
	}

	err := h.repo.Update(c.Request.Context(), c.Param("id"), suppliers.Supplier{
		Name:        in.Name,
		ContactName: in.ContactName,
		Email:       in.Email,
		Phone:       in.Phone,
		Address:     in.Address,
		ImageURL:    in.ImageURL,
	})
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	c.Status(http.StatusNoContent)
}
