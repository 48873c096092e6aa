package revenueRoutes

import (
	controllers "formaplus/controllers/revenue"
	"formaplus/middleware"
	"formaplus/models"

	"github.com/gofiber/fiber/v2"
)

// SetupRevenueRoutes sets up the admin revenue reporting and trainer
// dashboard routes.
func SetupRevenueRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin))
	adminGroup.Get("/revenue", controllers.AdminRevenueReport)
	adminGroup.Get("/revenue/snapshots", controllers.AdminRevenueSnapshots)
	adminGroup.Get("/dashboard/stats", controllers.AdminPlatformStats)

	trainerGroup := app.Group("/trainer", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTrainer, models.RoleAdmin))
	trainerGroup.Get("/revenue", controllers.TrainerRevenueDashboard)
}
