package main

import (
	"log"

	"heritage_backend/internal/app/router"
	authadapters "heritage_backend/internal/feature/auth/adapters"
	authhandler "heritage_backend/internal/feature/auth/transport/handler"
	authusecase "heritage_backend/internal/feature/auth/usecase"
	heritageadapters "heritage_backend/internal/feature/heritage/adapters"
	heritagehandler "heritage_backend/internal/feature/heritage/transport/handler"
	heritageusecase "heritage_backend/internal/feature/heritage/usecase"
	"heritage_backend/internal/platform/config"
	infradb "heritage_backend/internal/platform/db"
	"heritage_backend/internal/platform/mapdoc"
	infraredis "heritage_backend/internal/platform/redis"
	"heritage_backend/internal/platform/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// db
	db := infradb.OpenDB(cfg)

	// Redis（セッションストア。キャッシュではないため必須）
	rdb, err := infraredis.NewRedisClient(cfg)
	if err != nil {
		log.Fatal("Redis unavailable: ", err)
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Println("[ERROR] Failed to close Redis client:", err)
		}
	}()

	// SESSION_SECRETチェック（開発中の注意喚起）
	if cfg.SessionSecret == "" {
		log.Println("[WARN] SESSION_SECRET is not set. Set a strong secret in production.")
	}

	// Repository
	userRepo := authadapters.NewUserMySQL(db)
	pointRepo := heritageadapters.NewHeritageMySQL(db)
	sessionRepo := session.NewSessionRedis(rdb, "session")

	// Session manager（署名クッキー + Redisレコード）
	sessions := session.NewManager(sessionRepo, session.NewTokenCodec(cfg.SessionSecret), cfg.SessionTTL)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo)
	heritageUC := heritageusecase.NewHeritageUsecase(pointRepo)

	// 地図ドキュメントのライター
	maps, err := mapdoc.NewWriter(cfg.MapsDir)
	if err != nil {
		log.Fatal(err)
	}

	// Handler
	authH := authhandler.NewAuthHandler(authUC, sessions)
	heritageH := heritagehandler.NewHeritageHandler(heritageUC, maps)

	// ルータ生成
	router := router.NewRouter(authH, heritageH, sessions, cfg.MapsDir)

	if err := router.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
