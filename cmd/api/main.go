package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"stockpulse/db"
	"stockpulse/internal/handler"
	"stockpulse/internal/repository"
	"stockpulse/internal/store"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	var archiver handler.SnapshotArchiver
	if connStr := os.Getenv("DATABASE_URL"); connStr != "" {
		conn, err := db.Connect(connStr)
		if err != nil {
			log.Fatalf("error connecting to DB: %v", err)
		}
		defer conn.Close()

		repo, err := repository.NewSnapshotRepository(conn)
		if err != nil {
			log.Fatalf("error initializing snapshot repository: %v", err)
		}
		archiver = repo
		slog.Info("snapshot archive enabled")
	}

	stockStore := store.NewMemory()
	stockHandler := handler.NewStockHandler(stockStore, archiver)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/", stockHandler.Home)
	r.GET("/api/stocks", stockHandler.GetStocks)
	r.POST("/api/update", stockHandler.UpdateStocks)
	r.GET("/api/status", stockHandler.GetStatus)
	r.GET("/api/history", stockHandler.GetHistory)
	r.GET("/health", stockHandler.GetHealth)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
