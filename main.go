package main

import (
	"log"

	"github.com/adil-bs/Universal-ticket-mock-APIs/config"
	"github.com/adil-bs/Universal-ticket-mock-APIs/database"
	"github.com/adil-bs/Universal-ticket-mock-APIs/helper"
	"github.com/adil-bs/Universal-ticket-mock-APIs/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: config.ConfigDefault("CORS_ORIGINS", "*"),
		AllowMethods: "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	database.ConnectDB()

	helper.StartRetentionSweeper()
	defer helper.StopRetentionSweeper()
	helper.StartWaitlistSweeper()
	defer helper.StopWaitlistSweeper()

	router.SetupRoutes(app)
	log.Fatal(app.Listen(":" + config.ConfigDefault("APP_PORT", "8000")))
}
