package handler

import (
	"github.com/adil-bs/Universal-ticket-mock-APIs/constants"
	"github.com/adil-bs/Universal-ticket-mock-APIs/database"
	"github.com/gofiber/fiber/v2"
)

const serviceVersion = "2.0.0"

func Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message":         "Universal Ticketing API is live!",
		"version":         serviceVersion,
		"supported_modes": []string{constants.MODE_TRAIN, constants.MODE_BUS, constants.MODE_FLIGHT},
		"endpoints": fiber.Map{
			"availability": "/api/travel/availability",
			"booking":      "/api/book",
			"cancellation": "/api/cancel",
		},
	})
}

func HealthCheck(c *fiber.Ctx) error {
	dbStatus := "connected"
	if err := database.DB.Exec("SELECT 1").Error; err != nil {
		dbStatus = "disconnected"
	}

	return c.JSON(fiber.Map{
		"status":   "healthy",
		"service":  "Universal Ticketing API",
		"version":  serviceVersion,
		"database": dbStatus,
	})
}

func GetTransportModes(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"supported_modes": []string{constants.MODE_TRAIN, constants.MODE_BUS, constants.MODE_FLIGHT},
		"implemented":     []string{constants.MODE_TRAIN},
		"coming_soon":     []string{constants.MODE_BUS, constants.MODE_FLIGHT},
	})
}
