package main

import (
	"log"

	redisv9 "github.com/redis/go-redis/v9"

	"user_backend/internal/app/di"
	"user_backend/internal/app/router"
	authadapters "user_backend/internal/feature/auth/adapters"
	authhandler "user_backend/internal/feature/auth/transport/handler"
	authusecase "user_backend/internal/feature/auth/usecase"
	usershandler "user_backend/internal/feature/users/transport/handler"
	usersusecase "user_backend/internal/feature/users/usecase"
	"user_backend/internal/platform/config"
	infradb "user_backend/internal/platform/db"
	infraredis "user_backend/internal/platform/redis"
	"user_backend/internal/platform/token"
)

func main() {
	// 設定読み込み（JWT_SECRET未設定はここで致命エラー）
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	// db
	db := infradb.OpenDB()

	// Redis（ログインレートリミッター用。なければインメモリにフォールバック）
	var rdb *redisv9.Client
	if cfg.RedisAddr == "" {
		rdb = nil
	} else if tmp, err := infraredis.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword); err != nil {
		log.Println("[WARN] Redis unavailable. Falling back to in-memory login limiter.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// セッショントークンのCodec（シークレットは起動時に注入）
	codec := token.NewCodec(cfg.JWTSecret, cfg.TokenTTL)

	// Repository
	userRepo := authadapters.NewUserPostgres(db)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, codec)
	usersUC := usersusecase.NewUsersUsecase(userRepo)

	// Handler
	limiter := di.NewLoginLimiter(rdb)
	authH := authhandler.NewAuthHandler(authUC, limiter, cfg.Production, cfg.TokenTTL)
	usersH := usershandler.NewUsersHandler(usersUC)

	// ルータ生成
	router := router.NewRouter(codec, authH, usersH)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
