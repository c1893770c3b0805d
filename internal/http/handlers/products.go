package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/http/middleware"
	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/http/validation"
	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/modules/products"
	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/shared/apperr"
)

const maxImageBytes = 8 << 20 // 8 MiB upload cap

type ProductsHandler struct {
	repo   *products.Repo
	images *products.ImageService
}

func NewProductsHandler(repo *products.Repo, images *products.ImageService) *ProductsHandler {
	return &ProductsHandler{repo: repo, images: images}
}

func (h *ProductsHandler) List(c *gin.Context) {
	rows, err := h.repo.List(c.Request.Context(), products.ListParams{Q: c.Query("q")})
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": rows})
}

type productRequest struct {
	Name       string  `json:"name" binding:"required"`
	SalesPrice float64 `json:"sales_price" binding:"gte=0"`
	CostPrice  float64 `json:"cost_price" binding:"gte=0"`
}

func (h *ProductsHandler) Create(c *gin.Context) {
	var in productRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Product is invalid.", validation.FromBindError(err, &in)))
		return
	}

	p, err := h.repo.Create(c.Request.Context(), products.Product{
		Name:       in.Name,
		SalesPrice: in.SalesPrice,
		CostPrice:  in.CostPrice,
	})
	if err != nil {
		if products.IsDuplicateKey(err) {
			middleware.Fail(c, apperr.ConflictErr("A product with this name already exists."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	c.JSON(http.StatusCreated, p)
}

func (h *ProductsHandler) Update(c *gin.Context) {
	var in productRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Product is invalid.", validation.FromBindError(err, &in)))
		return
	}

	err := h.repo.Update(c.Request.Context(), c.Param("id"), products.Product{
		Name:       in.Name,
		SalesPrice: in.SalesPrice,
		CostPrice:  in.CostPrice,
	})
	if err != nil {
		if products.IsDuplicateKey(err) {
			middleware.Fail(c, apperr.ConflictErr("A product with this name already exists."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ProductsHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProductsHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		middleware.Fail(c, apperr.InvalidErr("An image file is required.", nil))
		return
	}
	if file.Size > maxImageBytes {
		middleware.Fail(c, apperr.InvalidErr("Image is too large.", nil))
		return
	}

	f, err := file.Open()
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxImageBytes))
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	res, err := h.images.Upload(c.Request.Context(), c.Param("id"), file.Filename, data)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Product not found."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": res.URL, "thumb_url": res.ThumbURL})
}
