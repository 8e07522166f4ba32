package config

import (
	"log"

	"gorm.io/gorm"
	"p9e.in/hotinfo/models"
)

// SeedDefaultRoutes populates the route registry with the fixed default
// area list if the table is empty. Skips silently when rows already exist.
func SeedDefaultRoutes(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Route{}).Count(&count).Error; err != nil {
		log.Printf("Route seeding skipped, count failed: %v", err)
		return
	}
	if count > 0 {
		return
	}

	routes := make([]models.Route, len(models.DefaultRouteNames))
	for i, name := range models.DefaultRouteNames {
		routes[i] = models.Route{Name: name, Position: i + 1}
	}
	if err := db.Create(&routes).Error; err != nil {
		log.Printf("Route seeding failed: %v", err)
		return
	}
	log.Printf("Seeded %d default routes", len(routes))
}
