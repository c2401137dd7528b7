package api

import (
	"time"

	"flavor-lab/internal/api/handlers/health"
	pairingHandler "flavor-lab/internal/api/handlers/pairing"
	"flavor-lab/internal/api/middleware"
	"flavor-lab/internal/core/pairing"
	"flavor-lab/internal/infrastructure/config"
	"flavor-lab/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// 請求體大小限制 (1MB)：查詢請求都是小 JSON
const maxBodySize = 1 << 20

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, service *pairing.Service) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.BodySizeLimit(maxBodySize))

	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}
	router.Use(middleware.Deduplication(cfg))

	// 注入設定與服務，供健康檢查端點讀取
	router.Use(func(c *gin.Context) {
		c.Set("config", cfg)
		c.Set("pairing_service", service)
		c.Next()
	})

	// 健康檢查路由
	router.GET("/health", health.HealthCheck)
	router.GET("/ready", health.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)

	// API 路由組
	api := router.Group("/api/v1")
	{
		handler := pairingHandler.NewHandler(service, cfg)

		ingredients := api.Group("/ingredients")
		{
			ingredients.GET("/search", handler.HandleSearch)
			ingredients.GET("/:id", handler.HandleGetIngredient)
		}

		api.GET("/categories", handler.HandleCategories)
		api.GET("/translate/:token", handler.HandleTranslate)

		pairingGroup := api.Group("/pairing")
		{
			pairingGroup.POST("/score", handler.HandleScorePair)
			pairingGroup.POST("/consonance", handler.HandleConsonance)
			pairingGroup.POST("/contrast", handler.HandleContrast)
			pairingGroup.POST("/combinations", handler.HandleCombinations)
		}
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.Int("food_catalog_size", service.CatalogSize(false)),
		zap.Int("vegan_catalog_size", service.CatalogSize(true)),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}
