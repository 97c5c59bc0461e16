package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fsanztor01/TrimTime/internal/config"
	dbpkg "github.com/fsanztor01/TrimTime/internal/db"
	"github.com/fsanztor01/TrimTime/internal/logger"
	"github.com/fsanztor01/TrimTime/internal/middleware"
	"github.com/fsanztor01/TrimTime/internal/routes"
)

func main() {

	logger.Init(os.Getenv("DEBUG") == "true")
	defer logger.Sync()

	cfg := config.Load()

	// Without DATABASE_URL everything runs on the in-memory store, which is
	// enough for local development against the booking flow.
	var db *gorm.DB
	if cfg.DBUrl != "" {
		db = dbpkg.NewDB(cfg)
	} else {
		log.Println("DATABASE_URL not set, using in-memory store")
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
