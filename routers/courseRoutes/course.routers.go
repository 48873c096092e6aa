package courseRoutes

import (
	controllers "formaplus/controllers/course"
	"formaplus/middleware"
	validators "formaplus/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the learner-facing catalog routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Catalog browsing
	courseGroup.Get("/list", middleware.JWTMiddleware, validators.CourseList(), controllers.GetAllCourses)
	courseGroup.Get("/:courseId", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseDetails)
	courseGroup.Get("/:courseId/chapter/:chapterId/resources", middleware.JWTMiddleware, validators.CourseID(), validators.ChapterID(), controllers.GetChapterResources)

	// Reviews
	courseGroup.Post("/:courseId/review", middleware.JWTMiddleware, validators.CourseID(), validators.Review(), controllers.AddReview)
	courseGroup.Get("/:courseId/reviews", middleware.JWTMiddleware, validators.CourseID(), controllers.ListReviews)
}
