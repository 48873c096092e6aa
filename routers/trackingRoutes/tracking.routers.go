package trackingRoutes

import (
	controllers "formaplus/controllers/tracking"
	"formaplus/middleware"
	"formaplus/models"
	validators "formaplus/validators/tracking"

	"github.com/gofiber/fiber/v2"
)

// SetupTrackingRoutes sets up enrollment, progress and payment routes for
// learners.
func SetupTrackingRoutes(app *fiber.App) {
	learnerGroup := app.Group("/tracking", middleware.JWTMiddleware, middleware.RequireRole(models.RoleLearner, models.RoleAdmin))

	// Enrollment
	learnerGroup.Post("/course/:courseId/enroll", validators.Enroll(), controllers.EnrollInCourse)
	learnerGroup.Get("/enrollments", controllers.GetMyEnrollments)

	// Progress
	learnerGroup.Post("/course/:courseId/resource/:resourceId/complete", validators.CompleteResource(), controllers.CompleteResource)
	learnerGroup.Get("/course/:courseId/certificate", validators.CertificateEligibility(), controllers.GetCertificateEligibility)
	learnerGroup.Get("/progress", controllers.GetMyProgress)

	// Payment
	learnerGroup.Post("/payment/order", controllers.CreatePaymentOrder)
	learnerGroup.Post("/payment/confirm", validators.ConfirmPayment(), controllers.ConfirmPayment)
}
