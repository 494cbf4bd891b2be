package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"procommunity/internal/auth"
	"procommunity/internal/config"
	apphttp "procommunity/internal/http"
	"procommunity/internal/repository/memory"
	"procommunity/internal/service"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	if cfg.SessionSecretInsecure() {
		logger.Warn("SESSION_SECRET is not set; using the insecure development default")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	userStore := memory.NewUserStore()
	postStore := memory.NewPostStore()

	userService := service.NewUserService(userStore, postStore)
	postService := service.NewPostService(postStore)
	statsService := service.NewStatsService(userStore, postStore)

	if err := service.Seed(ctx, userService, postService, cfg); err != nil {
		logger.Fatalf("seed data: %v", err)
	}

	sessions, err := auth.NewSessionManager(
		cfg.Session.Secret,
		cfg.Session.Issuer,
		time.Duration(cfg.Session.TTLMinutes)*time.Minute,
	)
	if err != nil {
		logger.Fatalf("setup sessions: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(apphttp.RequestLogger(logger))

	handler := apphttp.NewHandler(userService, postService, statsService, sessions, logger, apphttp.AdminSettings{
		SessionSecretInsecure: cfg.SessionSecretInsecure(),
		SeedDemo:              cfg.Seed.Demo,
	})
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		logger.Infof("listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("http shutdown: %v", err)
	}

	logger.Info("bye")
}
