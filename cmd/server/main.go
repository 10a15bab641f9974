package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"account_backend/internal/app/di"
	"account_backend/internal/app/router"
	accounthandler "account_backend/internal/feature/account/transport/handler"
	"account_backend/internal/feature/account/usecase"
	infradb "account_backend/internal/platform/db"
	"account_backend/internal/platform/hash"
	infraredis "account_backend/internal/platform/redis"
	"account_backend/internal/platform/token"
)

func main() {
	// .envを読み込む（ローカル開発用、無ければシステム環境変数を使用）
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository（Redisが使える場合はキャッシュでラップ）
	userRepo := di.NewUserRepository(rdb, db, 5*time.Minute)

	// JWT_SECRETチェック（開発中の注意喚起）
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}
	tokens := token.NewManager(secret, 0, 0)

	// Usecase
	accountUC := usecase.NewAccountUsecase(userRepo, hash.NewScrypt(), tokens)

	// Handler
	accountH := accounthandler.NewAccountHandler(accountUC)

	// ルータ生成
	router := router.NewRouter(accountH, tokens)

	addr := ":8080"
	if p := os.Getenv("PORT"); p != "" {
		addr = ":" + p
	}

	if err := router.Run(addr); err != nil {
		log.Fatal(err)
	}
}
