package main

import (
	"log"

	"formaplus/config"
	"formaplus/database"
	authRoutes "formaplus/routers/authRoutes"
	courseRoutes "formaplus/routers/courseRoutes"
	messagingRoutes "formaplus/routers/messagingRoutes"
	revenueRoutes "formaplus/routers/revenueRoutes"
	trackingRoutes "formaplus/routers/trackingRoutes"
	"formaplus/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve uploaded thumbnails and issued certificates
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	courseRoutes.SetupTrainerCourseRoutes(app)
	trackingRoutes.SetupTrackingRoutes(app)
	revenueRoutes.SetupRevenueRoutes(app)
	messagingRoutes.SetupMessagingRoutes(app)

	if config.AppConfig.EnableRevenueSnapshots {
		utils.StartRevenueScheduler()
	}

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
