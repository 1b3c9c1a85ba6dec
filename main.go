package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "library-backend/docs"
	"library-backend/internal/diag"
	"library-backend/internal/library/books"
	"library-backend/internal/library/loans"
	"library-backend/internal/library/members"
	"library-backend/internal/platform/auth"
	"library-backend/internal/platform/docstore"
	"library-backend/internal/platform/requestid"
)

// @title        Digital Library API
// @version      1.0
// @description  書籍・会員・貸出を管理するCRUDバックエンド
// @BasePath     /api
func main() {
	// .env はあれば読む（ローカル開発用）
	_ = godotenv.Load()

	cfg, err := docstore.LoadConfig("config/config.yaml")
	if err != nil {
		panic(err)
	}

	log.Printf("[INFO] mode:%s\n", cfg.Mode)

	store, err := docstore.Connect(cfg.Database)
	if err != nil {
		panic(err)
	}
	defer store.Close(context.Background())

	// 接続確認に失敗しても起動は続ける。状態は GET /test で確認できる。
	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	if err := store.Ping(pingCtx); err != nil {
		log.Printf("[WARN] document store not reachable: %v", err)
	} else {
		log.Printf("[INFO] connected to document store: %s", cfg.Database.Name)
	}
	cancel()

	if cfg.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), requestid.New())
	_ = r.SetTrustedProxies(nil)

	// フロントは別オリジンで動くので全許可
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	diag.RegisterRoutes(r, store)

	// /api
	api := r.Group("/api")
	books.RegisterRoutes(api, books.NewService(store))
	members.RegisterRoutes(api, members.NewService(store))
	loans.RegisterRoutes(api, loans.NewService(store))
	auth.RegisterRoutes(api, auth.NewService(store, []byte(cfg.Auth.Secret)))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r,
	}

	go func() {
		log.Printf("[INFO] listening on http://0.0.0.0:%d", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Println("[INFO] shutting down...")
	ctx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
}
