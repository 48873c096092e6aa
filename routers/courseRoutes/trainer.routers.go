package courseRoutes

import (
	controllers "formaplus/controllers/course"
	"formaplus/middleware"
	"formaplus/models"
	validators "formaplus/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupTrainerCourseRoutes sets up the trainer course management routes.
// Admins pass the role check too, so they can moderate any course.
func SetupTrainerCourseRoutes(app *fiber.App) {
	trainerGroup := app.Group("/trainer/course", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTrainer, models.RoleAdmin))

	// Course CRUD
	trainerGroup.Post("/create", validators.CreateCourse(), controllers.TrainerCreateCourse)
	trainerGroup.Get("/list", controllers.TrainerListCourses)
	trainerGroup.Put("/:courseId", validators.CourseID(), validators.UpdateCourse(), controllers.TrainerUpdateCourse)
	trainerGroup.Post("/:courseId/publish", validators.CourseID(), controllers.TrainerPublishCourse)
	trainerGroup.Delete("/:courseId", validators.CourseID(), controllers.TrainerDeleteCourse)
	trainerGroup.Post("/:courseId/thumbnail", validators.CourseID(), controllers.TrainerUploadThumbnail)

	// Chapter management
	trainerGroup.Post("/:courseId/chapter", validators.CourseID(), validators.Chapter(), controllers.TrainerCreateChapter)
	trainerGroup.Put("/:courseId/chapter/:chapterId", validators.CourseID(), validators.ChapterID(), validators.Chapter(), controllers.TrainerUpdateChapter)

	// Resource management
	trainerGroup.Post("/:courseId/chapter/:chapterId/resource", validators.CourseID(), validators.ChapterID(), validators.Resource(), controllers.TrainerCreateResource)
	trainerGroup.Post("/:courseId/resource/:resourceId/publish", validators.CourseID(), validators.ResourceID(), controllers.TrainerPublishResource)
	trainerGroup.Delete("/:courseId/resource/:resourceId", validators.CourseID(), validators.ResourceID(), controllers.TrainerDeleteResource)
}
