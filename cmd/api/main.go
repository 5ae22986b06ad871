package main

import (
	"fmt"
	"os"

	"unit-commitment/internal/api/handlers"
	"unit-commitment/internal/api/middleware"
	"unit-commitment/internal/mip/branchbound"

	"github.com/gin-gonic/gin"
)

func main() {
	log := middleware.NewLogger("server")

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	solver := branchbound.New()
	planHandler := handlers.NewPlanHandler(solver)
	plantHandler := handlers.NewPlantHandler()
	solverHandler := handlers.NewSolverHandler()
	rankHandler := handlers.NewRankHandler(solver)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/plan", planHandler.RunPlan)
		api.GET("/plants", plantHandler.ListPlants)
		api.GET("/solvers", solverHandler.ListSolvers)
		api.GET("/rank", rankHandler.RankScenarios)
	}

	addr := fmt.Sprintf(":%s", port)
	log.Info().Str("addr", addr).Msg("starting API server")
	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
