package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/http/middleware"
	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/http/validation"
	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/modules/users"
	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/shared/apperr"
	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/storage"
)

type UsersHandler struct {
	repo  *users.Repo
	store storage.Storage
}

func NewUsersHandler(repo *users.Repo, store storage.Storage) *UsersHandler {
	return &UsersHandler{repo: repo, store: store}
}

func (h *UsersHandler) List(c *gin.Context) {
	rows, err := h.repo.List(c.Request.Context(), users.ListParams{
		Q:    c.Query("q"),
		Role: c.Query("role"),
	})
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": rows})
}

// Me returns the caller's own row. This is the only user read a customer
// role can reach.
func (h *UsersHandler) Me(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		middleware.Fail(c, apperr.UnauthorizedErr("Authentication required."))
		return
	}

	row, err := h.repo.GetByID(c.Request.Context(), u.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("User not found."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, row)
}

type upsertUserRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email" binding:"required,email"`
	AvatarURL string `json:"avatar_url"`
}

func (h *UsersHandler) Upsert(c *gin.Context) {
	var in upsertUserRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("User is invalid.", validation.FromBindError(err, &in)))
		return
	}

	u, err := h.repo.Upsert(c.Request.Context(), users.User{
		Name:      in.Name,
		Email:     in.Email,
		AvatarURL: in.AvatarURL,
	})
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	c.JSON(http.StatusOK, u)
}

type updateUserRequest struct {
	Name      string `json:"name"`
	Role      string `json:"role" binding:"omitempty,oneof=employee customer"`
	AvatarURL string `json:"avatar_url"`
	Phone     string `json:"phone"`
}

func (h *UsersHandler) Update(c *gin.Context) {
	var in updateUserRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("User is invalid.", validation.FromBindError(err, &in)))
		return
	}

	id := c.Param("id")
	existing, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("User not found."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	role := in.Role
	if role == "" {
		role = existing.Role
	}
	err = h.repo.Update(c.Request.Context(), id, users.User{
		Name:      in.Name,
		Role:      role,
		AvatarURL: in.AvatarURL,
		Phone:     in.Phone,
	})
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	c.Status(http.StatusNoContent)
}

// UploadAvatar stores the caller's avatar image and writes the URL back on
// their own row. No resizing; avatars are small enough as uploaded.
func (h *UsersHandler) UploadAvatar(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		middleware.Fail(c, apperr.UnauthorizedErr("Authentication required."))
		return
	}

	file, err := c.FormFile("avatar")
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

	res, err := h.store.Put(c.Request.Context(), f, storage.PutInput{
		Filename:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Size:        file.Size,
		Kind:        "avatars",
	})
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	if err := h.repo.UpdateAvatar(c.Request.Context(), u.ID, res.URL); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("User not found."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatar_url": res.URL})
}
