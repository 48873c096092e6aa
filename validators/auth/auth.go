package authValidator

import (
	"strings"

	authController "formaplus/controllers/auth"
	"formaplus/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// fieldErrors converts validator.v10 errors into the field->message map
// returned by ValidationErrorResponse.
func fieldErrors(err error) map[string]string {
	errors := make(map[string]string)
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrors {
			field := strings.ToLower(fieldError.Field())
			switch fieldError.Tag() {
			case "required":
				errors[field] = "This field is required!"
			case "email":
				errors[field] = "Must be a valid email address!"
			case "min":
				errors[field] = "Must be at least " + fieldError.Param() + " characters long!"
			case "max":
				errors[field] = "Must be at most " + fieldError.Param() + " characters long!"
			case "len":
				errors[field] = "Must be exactly " + fieldError.Param() + " characters long!"
			case "oneof":
				errors[field] = "Must be one of: " + fieldError.Param() + "!"
			case "numeric":
				errors[field] = "Must contain only digits!"
			case "nefield":
				errors[field] = "Must differ from the current value!"
			default:
				errors[field] = "Invalid value!"
			}
		}
	}
	return errors
}

// Signup validates the registration request
func Signup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(authController.SignupRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Name = strings.TrimSpace(reqData.Name)
		reqData.Email = strings.TrimSpace(strings.ToLower(reqData.Email))
		reqData.Role = strings.ToUpper(strings.TrimSpace(reqData.Role))
		reqData.Headline = strings.TrimSpace(reqData.Headline)

		if reqData.Role == "" {
			reqData.Role = "LEARNER"
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedSignup", reqData)
		return c.Next()
	}
}

// VerifyEmail validates the OTP verification request
func VerifyEmail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(authController.VerifyEmailRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Email = strings.TrimSpace(strings.ToLower(reqData.Email))
		reqData.Code = strings.TrimSpace(reqData.Code)

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedVerifyEmail", reqData)
		return c.Next()
	}
}

// Login validates the login request
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(authController.LoginRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Email = strings.TrimSpace(strings.ToLower(reqData.Email))

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}

// ChangePassword validates the password change request
func ChangePassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(authController.ChangePasswordRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedChangePassword", reqData)
		return c.Next()
	}
}

// LoginHistory validates the pagination query for the login audit list
func LoginHistory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		page := c.QueryInt("page", 1)
		limit := c.QueryInt("limit", 10)

		if page <= 0 || limit <= 0 || limit > 100 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid pagination parameters!", nil)
		}

		c.Locals("validatedLoginHistory", &authController.PaginationRequest{Page: page, Limit: limit})
		return c.Next()
	}
}
