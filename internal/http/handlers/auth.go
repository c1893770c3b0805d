package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/config"
	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/http/middleware"
	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/http/validation"
	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/modules/users"
	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/shared/apperr"
)

type AuthHandler struct {
	repo *users.Repo
	cfg  config.Config
}

func NewAuthHandler(repo *users.Repo, cfg config.Config) *AuthHandler {
	return &AuthHandler{repo: repo, cfg: cfg}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var in loginRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Login is invalid.", validation.FromBindError(err, &in)))
		return
	}

	u, err := h.repo.GetByEmail(c.Request.Context(), in.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			middleware.Fail(c, apperr.UnauthorizedErr("Wrong email or password."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)) != nil {
		middleware.Fail(c, apperr.UnauthorizedErr("Wrong email or password."))
		return
	}

	token, err := h.issueToken(u)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": u})
}

func (h *AuthHandler) issueToken(u users.User) (string, error) {
	now := time.Now()
	claims := middleware.Claims{
		Email: u.Email,
		Role:  u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(h.cfg.JWTTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(h.cfg.JWTSecret))
}
