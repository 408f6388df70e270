package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/LSUDOKO/GlobalRoute-Navigator/config"
	"github.com/LSUDOKO/GlobalRoute-Navigator/handlers"
	"github.com/LSUDOKO/GlobalRoute-Navigator/planner"
	"github.com/LSUDOKO/GlobalRoute-Navigator/services"
)

func main() {
	cfg := config.Load()

	log.Printf("Loading transport graph from %s", cfg.GraphPath)
	graph, err := planner.LoadFromFile(cfg.GraphPath)
	if err != nil {
		log.Fatalf("failed to load graph: %v", err)
	}
	log.Printf("Graph loaded: %d nodes, %d edges", graph.NodeCount(), graph.EdgeCount())

	plannerService := services.NewPlannerService(graph, cfg.SearchTimeout)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
	}))

	pathsHandler := handlers.NewPathsHandler(plannerService, cfg.GraphPath)
	pathsHandler.RegisterRoutes(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	log.Printf("GlobalRoute Navigator listening on :%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
