package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"workbench/backend/internal/api/handler"
	"workbench/backend/internal/chathub"
	"workbench/backend/internal/config"
	"workbench/backend/internal/gallery"
	"workbench/backend/internal/logging"
	"workbench/backend/internal/models"
	"workbench/backend/internal/storage"
	"workbench/backend/internal/telegram"
)

func main() {
	logging.InitLogger()
	defer logging.Logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logging.Logger.Fatal("failed to load configuration", zap.Error(err))
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN()), &gorm.Config{})
	if err != nil {
		logging.Logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := autoMigrate(db); err != nil {
		logging.Logger.Fatal("failed to migrate database", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logging.Logger.Fatal("failed to connect to redis", zap.Error(err))
		}
	}

	store := storage.NewStorageService(db, rdb)

	hub := chathub.NewHub()
	go hub.Run()

	chat := chathub.NewChatService(store, hub)
	if rdb != nil {
		bridge := chathub.NewBridge(rdb, hub)
		chat.SetBridge(bridge)
		go bridge.Run(ctx)
		logging.Logger.Info("redis broadcast bridge enabled", zap.String("addr", cfg.RedisAddr))
	}

	blobs, err := gallery.NewBlobStore(cfg)
	if err != nil {
		logging.Logger.Fatal("failed to connect to blob store", zap.Error(err))
	}
	resizer := gallery.NewResizer()
	if err := resizer.CheckAvailable(); err != nil {
		// Uploads still work; every variant falls back to the original.
		logging.Logger.Warn("image resizer unavailable", zap.Error(err))
	}
	gal := gallery.NewService(blobs, resizer, cfg.TmpDir)

	if cfg.TelegramBotToken != "" {
		bot, err := telegram.NewBotService(cfg.TelegramBotToken, cfg.TelegramChatID, hub, chat)
		if err != nil {
			logging.Logger.Error("failed to start telegram bridge", zap.Error(err))
		} else {
			go bot.Run()
		}
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	h := handler.NewHandler(store, hub, chat, gal, cfg)
	h.RegisterRoutes(router)

	srv := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logging.Logger.Info("server listening", zap.String("addr", cfg.ServerAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logging.Logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Logger.Error("forced shutdown", zap.Error(err))
		os.Exit(1)
	}
}

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.ChatMessage{},
		&models.Project{},
		&models.Campaign{},
		&models.Task{},
		&models.Product{},
		&models.Item{},
		&models.GalleryImage{},
	)
}
