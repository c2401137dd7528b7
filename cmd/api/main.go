package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flavor-lab/internal/api"
	"flavor-lab/internal/core/cache"
	"flavor-lab/internal/core/catalog"
	"flavor-lab/internal/core/pairing"
	"flavor-lab/internal/core/translate"
	"flavor-lab/internal/infrastructure/config"
	"flavor-lab/internal/pkg/common"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 載入 .env
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found")
	}

	// 載入設定
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 初始化 logger（需在載入 config 後）
	if err := common.InitLogger(cfg.LogLevel); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	common.LogInfo("載入設定",
		zap.String("dataset_path", cfg.Dataset.Path),
		zap.Int("combo_candidate_pool", cfg.Combo.CandidatePool),
		zap.String("cache_backend", cfg.Cache.Backend),
	)

	// 翻譯服務
	translator := translate.NewTranslator()

	// 載入食材目錄：完整版與素食過濾版於啟動時各建一份，
	// 之後唯讀共用。資料集讀不到屬致命錯誤。
	fullCatalog, fullReport, err := catalog.LoadFile(cfg.Dataset.Path, false, translator)
	if err != nil {
		common.LogFatal("無法讀取風味資料集",
			zap.String("path", cfg.Dataset.Path),
			zap.Error(err),
		)
	}
	veganCatalog, veganReport, err := catalog.LoadFile(cfg.Dataset.Path, true, translator)
	if err != nil {
		common.LogFatal("無法讀取風味資料集",
			zap.String("path", cfg.Dataset.Path),
			zap.Error(err),
		)
	}
	common.LogInfo("目錄載入統計",
		zap.Int("完整目錄", fullReport.Loaded),
		zap.Int("素食目錄", veganReport.Loaded),
		zap.Int("跳過列數", fullReport.Skipped),
	)

	// 初始化快取
	store, err := cache.New(cfg)
	if err != nil {
		common.LogFatal("Failed to initialize cache", zap.Error(err))
	}
	if store != nil {
		defer store.Close()
	}

	// 配對查詢服務
	service := pairing.NewService(fullCatalog, veganCatalog, translator, store, cfg.Combo.CandidatePool)

	// 設置路由
	router, err := api.SetupRouter(cfg, service)
	if err != nil {
		common.LogError("Failed to setup router", zap.Error(err))
		os.Exit(1)
	}

	// 設置 HTTP 服務器
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// 啟動服務器
	go func() {
		common.LogInfo("啟動應用",
			zap.String("version", cfg.App.Version),
			zap.String("env", cfg.App.Env),
			zap.Bool("debug", cfg.App.Debug),
			zap.Int("port", cfg.Server.Port),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			common.LogError("Failed to start server",
				zap.Error(err),
			)
			os.Exit(1)
		}
	}()

	// 等待中斷信號
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	common.LogInfo("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		common.LogError("Server forced to shutdown",
			zap.Error(err),
		)
		os.Exit(1)
	}

	common.LogInfo("Server exited")
}
