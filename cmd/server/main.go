package main

import (
	"log"
	"net/http"

	"campus_hop/internal/config"
	"campus_hop/internal/logger"
	"campus_hop/internal/middleware"
	"campus_hop/internal/routes"
	"campus_hop/internal/store"

	"github.com/gin-gonic/gin"
)

func main() {
	settings := config.Load()

	// Initialize structured logging to file
	logger.Setup(settings.LogFile)

	gin.SetMode(settings.GinMode)

	// Seed the in-memory store; a restart resets everything to this state
	s := store.New(store.Seed(), logger.StoreLogger())

	// Setup Gin router
	r := routes.SetupRouter(s)

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	log.Printf("🚀 Server running at %s", settings.ListenAddr)
	log.Fatal(http.ListenAndServe(settings.ListenAddr, handler))
}
