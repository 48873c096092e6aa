package trackingValidator

import (
	"strconv"
	"strings"

	"formaplus/middleware"

	"github.com/gofiber/fiber/v2"
)

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

// Enroll validates the :courseId parameter of the enrollment route
func Enroll() fiber.Handler {
	return pathID("courseId", "courseID")
}

// CompleteResource validates the course and resource route parameters
func CompleteResource() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := strconv.Atoi(c.Params("courseId"))
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid courseId parameter!", nil)
		}
		resourceID, err := strconv.Atoi(c.Params("resourceId"))
		if err != nil || resourceID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid resourceId parameter!", nil)
		}

		c.Locals("courseID", courseID)
		c.Locals("resourceID", resourceID)
		return c.Next()
	}
}

// CertificateEligibility validates the :courseId parameter
func CertificateEligibility() fiber.Handler {
	return pathID("courseId", "courseID")
}

// ConfirmPayment validates the gateway reference in the request body
func ConfirmPayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			PaymentReference string `json:"paymentReference"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reference := strings.TrimSpace(reqData.PaymentReference)
		if reference == "" || len(reference) > 100 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Payment reference is required!", nil)
		}

		c.Locals("paymentReference", reference)
		return c.Next()
	}
}
