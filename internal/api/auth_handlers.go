package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"acquisitions/internal/auth"
	"acquisitions/internal/config"
	"acquisitions/internal/user"
)

type SignupRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=255"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=6,max=128"`
	Role     string `json:"role" binding:"omitempty,oneof=user admin"`
}

type SigninRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /signup
func SignupHandler(cfg *config.Config, svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Validation failed",
				"details": formatValidationError(err),
			})
			return
		}

		u, err := svc.Register(req.Name, req.Email, req.Password, user.Role(req.Role))
		if err != nil {
			if errors.Is(err, user.ErrEmailTaken) {
				c.JSON(http.StatusConflict, gin.H{"error": "email already exists"})
				return
			}
			logger(c).Error("signup failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		token, err := auth.GenerateJWT(cfg.JWTSecret, u.ID, u.Email, string(u.Role), cfg.TokenTTL)
		if err != nil {
			logger(c).Error("failed to issue token", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		auth.SetTokenCookie(c, cfg, token)

		c.JSON(http.StatusCreated, gin.H{
			"message": "Registration success",
			"user":    u.Public(),
		})
	}
}

// POST /signin
func SigninHandler(cfg *config.Config, svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SigninRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Validation failed",
				"details": formatValidationError(err),
			})
			return
		}

		u, err := svc.Login(req.Email, req.Password)
		if err != nil {
			// One response for unknown email and wrong password.
			if errors.Is(err, auth.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
				return
			}
			logger(c).Error("signin failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		token, err := auth.GenerateJWT(cfg.JWTSecret, u.ID, u.Email, string(u.Role), cfg.TokenTTL)
		if err != nil {
			logger(c).Error("failed to issue token", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		auth.SetTokenCookie(c, cfg, token)

		c.JSON(http.StatusOK, gin.H{
			"message": "Login success",
			"user": gin.H{
				"name":  u.Name,
				"email": u.Email,
			},
		})
	}
}

// POST /logout
//
// Stateless logout: the cookie is expired and the token stays valid
// until its own expiry. Always succeeds, with or without a session.
func LogoutHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth.ClearTokenCookie(c, cfg)
		c.JSON(http.StatusOK, gin.H{
			"message": "User logged out successfully!",
		})
	}
}

// GET /me
func MeHandler(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get(auth.CtxUserID)
		u, err := svc.GetUser(userID.(uint))
		if err != nil {
			if errors.Is(err, user.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			logger(c).Error("profile lookup failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": u.Public()})
	}
}

// GET /users (admin only)
func ListUsersHandler(repo *user.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := repo.List()
		if err != nil {
			logger(c).Error("user list failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		out := make([]user.Public, 0, len(users))
		for i := range users {
			out = append(out, users[i].Public())
		}
		c.JSON(http.StatusOK, gin.H{"users": out})
	}
}

// logger returns the request-scoped logger set by RequestID, falling
// back to the process default.
func logger(c *gin.Context) *slog.Logger {
	if l, ok := c.Get(ctxLogger); ok {
		if lg, ok := l.(*slog.Logger); ok {
			return lg
		}
	}
	return slog.Default()
}
