package messagingRoutes

import (
	controllers "formaplus/controllers/messaging"
	"formaplus/middleware"
	validators "formaplus/validators/messaging"

	"github.com/gofiber/fiber/v2"
)

// SetupMessagingRoutes sets up the learner/trainer messaging routes
func SetupMessagingRoutes(app *fiber.App) {
	messageGroup := app.Group("/message", middleware.JWTMiddleware)

	messageGroup.Post("/send", validators.SendMessage(), controllers.SendMessage)
	messageGroup.Get("/inbox", controllers.Inbox)
	messageGroup.Get("/conversation/:userId", validators.Conversation(), controllers.Conversation)
	messageGroup.Patch("/:messageId/read", validators.MessageID(), controllers.MarkMessageRead)
}
