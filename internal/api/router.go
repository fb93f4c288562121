package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"acquisitions/internal/auth"
	"acquisitions/internal/config"
	"acquisitions/internal/user"
)

func SetupRouter(cfg *config.Config, dbConn *gorm.DB) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.CORSAllowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	repo := user.NewRepository(dbConn)
	svc := auth.NewService(repo, nil)

	r.GET("/health", healthHandler)

	// Auth flow
	r.POST("/signup", SignupHandler(cfg, svc))
	r.POST("/signin", SigninHandler(cfg, svc))
	r.POST("/logout", LogoutHandler(cfg))

	// Token-gated
	r.GET("/me", auth.Middleware(cfg, false), MeHandler(svc))

	// Admin: users
	r.GET("/users", auth.Middleware(cfg, true), ListUsersHandler(repo))

	return r
}
