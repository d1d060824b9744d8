package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/armariolabs/armario-api/internal/config"
	dbpkg "github.com/armariolabs/armario-api/internal/db"
	"github.com/armariolabs/armario-api/internal/routes"
)

func main() {

	zerolog.TimeFieldFormat = time.RFC3339
	zlog.Logger = zlog.Output(os.Stdout)

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
