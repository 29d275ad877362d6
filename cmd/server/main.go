package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"parcel_backend/internal/app/di"
	"parcel_backend/internal/app/router"
	"parcel_backend/internal/config"
	infradb "parcel_backend/internal/platform/db"
	"parcel_backend/internal/platform/logger"
	infraredis "parcel_backend/internal/platform/redis"
	"parcel_backend/internal/shared/ratelimiter"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	l, err := logger.New(os.Stdout, cfg.Log.Level, cfg.Log.Pretty)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	slog.SetDefault(l)

	// db
	// 接続できない間は読み取りは空、書き込みは503になり、利用時に再接続を試みる
	db := infradb.Connect(cfg.Database(), l, di.Models()...)

	// Redis
	var rdb *redisv9.Client
	if addr := cfg.RedisAddr(); addr != "" {
		if tmp, err := infraredis.NewRedisClient(context.Background(), addr, cfg.Redis.Password); err != nil {
			slog.Warn("redis unavailable, running without cache", "error", err)
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("failed to close redis client", "error", err)
				}
			}()
		}
	}

	repos := di.NewRepositories(db, rdb, cfg.Redis.TTL)
	handlers := di.NewHandlers(cfg.Auth, db, repos)

	// ルータ生成
	r := router.NewRouter(handlers, router.Options{
		JWTSecret:      cfg.Auth.JWTSecret,
		ServiceToken:   cfg.Auth.ServiceToken,
		Logger:         l,
		SessionLimiter: ratelimiter.NewRateLimiter(cfg.HTTP.SessionRateLimit, time.Minute),
		CORSOrigins:    cfg.HTTP.CORSOrigins,
	})

	// JWT_SECRETチェック（開発中の注意喚起）
	if cfg.Auth.JWTSecret == "" {
		slog.Warn("JWT_SECRET is not set; authenticated routes will answer 500")
	}
	if cfg.Auth.ServiceToken == "" {
		slog.Warn("AUTH_SERVICE_TOKEN is not set; /auth/session rejects every request")
	}

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	slog.Info("listening", "addr", addr)
	if err := r.Run(addr); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
