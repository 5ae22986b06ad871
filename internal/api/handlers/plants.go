package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"unit-commitment/internal/api/middleware"
	"unit-commitment/internal/api/models"
	"unit-commitment/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// PlantHandler handles plant-preset requests
type PlantHandler struct {
	plantDir string
	log      zerolog.Logger
}

// NewPlantHandler creates a new plant handler
func NewPlantHandler() *PlantHandler {
	dir := os.Getenv("PLANT_DIR")
	if dir == "" {
		dir = "./examples/plants"
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return &PlantHandler{
		plantDir: dir,
		log:      middleware.NewLogger("plants"),
	}
}

// ListPlants handles GET /api/v1/plants
func (h *PlantHandler) ListPlants(c *gin.Context) {
	plants := []models.PlantInfo{}

	entries, err := os.ReadDir(h.plantDir)
	if err != nil {
		h.log.Warn().Err(err).Str("dir", h.plantDir).Msg("plant directory unreadable")
		c.JSON(http.StatusOK, gin.H{"plants": plants})
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(h.plantDir, entry.Name())
		info, err := loadPlantInfo(path, entry.Name())
		if err != nil {
			h.log.Warn().Err(err).Str("file", path).Msg("skipping invalid plant file")
			continue
		}
		plants = append(plants, *info)
	}

	c.JSON(http.StatusOK, gin.H{"plants": plants})
}

func loadPlantInfo(path, filename string) (*models.PlantInfo, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var wrapper struct {
		Plant config.PlantConfig `yaml:"plant"`
	}
	if err := yaml.Unmarshal(raw, &wrapper); err != nil {
		return nil, err
	}

	id := strings.TrimSuffix(filename, ".yaml")
	name := wrapper.Plant.Name
	if name == "" {
		name = id
	}

	return &models.PlantInfo{
		ID:   id,
		Name: name,
		File: path,
		Specs: models.PlantSpecs{
			MinOutputMW: wrapper.Plant.MinOutputMW,
			MaxOutputMW: wrapper.Plant.MaxOutputMW,
			StartUpCost: wrapper.Plant.StartUpCost,
		},
	}, nil
}
