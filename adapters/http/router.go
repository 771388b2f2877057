package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/yun0-0514/dev-blog/pkg/auth"
	"github.com/yun0-0514/dev-blog/pkg/logger"
)

type RouterConfig struct {
	ServiceName    string
	AllowedOrigins []string
	JWTService     *auth.JWTService
	Logger         logger.Logger

	AboutHandler *AboutHandler
	AuthHandler  *AuthHandler
	PostHandler  *PostHandler
	RSSHandler   *RSSHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.ServiceName))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(ErrorMiddleware(cfg.Logger))

	authMiddleware := AuthMiddleware(cfg.JWTService, cfg.Logger)

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })
		api.POST("/auth/login", cfg.AuthHandler.Login)

		api.GET("/about", cfg.AboutHandler.GetAbout)
		api.GET("/posts/latest", cfg.PostHandler.ListLatestPosts)
		api.GET("/categories", cfg.PostHandler.ListCategories)
		api.GET("/rss", cfg.RSSHandler.GenerateRSS)

		private := api.Group("/")
		private.Use(authMiddleware)
		{
			private.POST("/about", cfg.AboutHandler.CreateAbout)
			private.PUT("/about", cfg.AboutHandler.UpdateAbout)
			private.GET("/user", cfg.AuthHandler.CurrentUser)
		}
	}

	return router
}
