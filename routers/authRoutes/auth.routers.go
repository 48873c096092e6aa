package authRoutes

import (
	authControllers "formaplus/controllers/auth"
	"formaplus/middleware"
	authValidators "formaplus/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidators.Signup(), authControllers.Signup)
	authGroup.Patch("/verify/email", authValidators.VerifyEmail(), authControllers.VerifyEmail)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Put("/change/password", middleware.JWTMiddleware, authValidators.ChangePassword(), authControllers.ChangePassword)
	authGroup.Get("/login/history", middleware.JWTMiddleware, authValidators.LoginHistory(), authControllers.LoginHistoryList)
}
