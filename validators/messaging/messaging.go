package messagingValidator

import (
	"strconv"
	"strings"

	messagingController "formaplus/controllers/messaging"
	"formaplus/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func fieldErrors(err error) map[string]string {
	errors := make(map[string]string)
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrors {
			field := strings.ToLower(fieldError.Field())
			switch fieldError.Tag() {
			case "required":
				errors[field] = "This field is required!"
			case "min":
				errors[field] = "Must be at least " + fieldError.Param() + " characters long!"
			case "max":
				errors[field] = "Must be at most " + fieldError.Param() + " characters long!"
			default:
				errors[field] = "Invalid value!"
			}
		}
	}
	return errors
}

func pathID(param, localKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params(param))
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid "+param+" parameter!", nil)
		}
		c.Locals(localKey, id)
		return c.Next()
	}
}

// SendMessage validates the outgoing message body
func SendMessage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(messagingController.SendMessageRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Subject = strings.TrimSpace(reqData.Subject)
		reqData.Body = strings.TrimSpace(reqData.Body)

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedMessage", reqData)
		return c.Next()
	}
}

// Conversation validates the :userId parameter of the thread route
func Conversation() fiber.Handler {
	return pathID("userId", "otherUserID")
}

// MessageID validates the :messageId parameter
func MessageID() fiber.Handler {
	return pathID("messageId", "messageID")
}
