package app

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"Gin_redis_rental_registry/registry"
	"Gin_redis_rental_registry/session"
	"Gin_redis_rental_registry/stream"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// 简化别名，便于 handlers 调用
type Ctx = gin.Context
type H = gin.H

// App 聚合各依赖
type App struct {
	Router   *gin.Engine
	RDB      *redis.Client
	Registry *registry.Registry
	Sess     session.Store
	Config   Config
}

// Config 从环境变量读取
type Config struct {
	RedisAddr  string
	RedisPwd   string
	WebOrigin  string
	AdminName  string
	SessionTTL time.Duration
}

func MustNew() *App {
	cfg := loadConfig()

	// --- Redis ---
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPwd, DB: 0})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("redis: %v", err)
	}

	// --- Registry ---
	// The registry captures the admin identity once, here. Rentals go out
	// on the Redis stream for whoever wants to follow them.
	reg := registry.New(cfg.AdminName, nil, stream.NewRentalLog(rdb))

	// --- Gin ---
	r := gin.Default()
	useCORS(r, cfg.WebOrigin)

	return &App{
		Router:   r,
		RDB:      rdb,
		Registry: reg,
		Sess:     session.NewAppSessionStore(rdb, cfg.SessionTTL),
		Config:   cfg,
	}
}

func (a *App) Close() { _ = a.RDB.Close() }

func loadConfig() Config {
	get := func(k, def string) string {
		v := os.Getenv(k)
		if v == "" {
			return def
		}
		return v
	}
	ttlSec := get("SESSION_TTL_SECONDS", "86400")
	ttl := 24 * time.Hour
	if d, err := time.ParseDuration(ttlSec + "s"); err == nil {
		ttl = d
	}
	return Config{
		RedisAddr:  get("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPwd:   os.Getenv("REDIS_PASSWORD"),
		WebOrigin:  get("WEB_ORIGIN", "http://localhost:3000"),
		AdminName:  strings.ToLower(strings.TrimSpace(get("ADMIN_NAME", "admin"))),
		SessionTTL: ttl,
	}
}
