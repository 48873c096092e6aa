package controllers

import (
	"formaplus/database"
	"formaplus/middleware"
	"formaplus/models"
	courseModels "formaplus/models/course"
	trackingModels "formaplus/models/tracking"

	"github.com/gofiber/fiber/v2"
)

// GetAllCourses lists published courses for the catalog, with filters and pagination
func GetAllCourses(c *fiber.Ctx) error {
	reqData, _ := c.Locals("validatedCourseList").(*CourseListRequest)

	page := 1
	limit := 10
	if reqData != nil {
		page = reqData.Page
		limit = reqData.Limit
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&courseModels.Course{}).
		Where("is_deleted = ? AND is_published = ? AND status = ?", false, true, "ACTIVE")

	if reqData != nil && reqData.Category != "" {
		db = db.Where("category = ?", reqData.Category)
	}
	if reqData != nil && reqData.TrainerID > 0 {
		db = db.Where("trainer_id = ?", reqData.TrainerID)
	}

	var total int64
	db.Count(&total)

	var courses []courseModels.Course
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	// Enrich with trainer name and resource count
	type CourseWithTrainer struct {
		courseModels.Course
		TrainerName   string `json:"trainer_name"`
		ResourceCount int    `json:"resource_count"`
	}

	result := make([]CourseWithTrainer, len(courses))
	for i, course := range courses {
		var trainer models.User
		database.Database.Db.Where("id = ?", course.TrainerID).First(&trainer)
		result[i] = CourseWithTrainer{
			Course:        course,
			TrainerName:   trainer.Name,
			ResourceCount: courseModels.PublishedResourceCount(database.Database.Db, course.ID),
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": result,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetCourseDetails gets course details with chapters for learners
func GetCourseDetails(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// Get chapters in order
	var chapters []courseModels.Chapter
	database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("order_index asc").Find(&chapters)

	var trainer models.User
	database.Database.Db.Where("id = ?", course.TrainerID).First(&trainer)

	// Check if the learner is enrolled
	isEnrolled := false
	var progressPercent int
	if record, err := trackingModels.FindRecord(database.Database.Db, userID); err == nil {
		if enrollment := record.FindCourseEnrollment(course.ID); enrollment != nil {
			isEnrolled = true
			progressPercent = enrollment.ProgressPercent
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", fiber.Map{
		"course":           course,
		"chapters":         chapters,
		"trainer_name":     trainer.Name,
		"trainer_headline": trainer.Headline,
		"resource_count":   courseModels.PublishedResourceCount(database.Database.Db, course.ID),
		"is_enrolled":      isEnrolled,
		"progress_percent": progressPercent,
	})
}

// GetChapterResources lists the published resources of a chapter for an
// enrolled learner, with per-resource completion flags.
func GetChapterResources(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	chapterID := c.Locals("chapterID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// Only enrolled learners may read resources
	record, err := trackingModels.FindRecord(database.Database.Db, userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}
	enrollment := record.FindCourseEnrollment(course.ID)
	if enrollment == nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	var resources []courseModels.Resource
	if err := database.Database.Db.
		Where("course_id = ? AND chapter_id = ? AND is_deleted = ? AND is_published = ?", courseID, chapterID, false, true).
		Order("order_index asc").Find(&resources).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch resources!", nil)
	}

	type ResourceWithCompletion struct {
		courseModels.Resource
		IsCompleted bool `json:"is_completed"`
	}

	result := make([]ResourceWithCompletion, len(resources))
	for i, resource := range resources {
		result[i] = ResourceWithCompletion{
			Resource:    resource,
			IsCompleted: enrollment.HasCompletedResource(resource.ID),
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resources fetched successfully!", fiber.Map{
		"resources":        result,
		"progress_percent": enrollment.ProgressPercent,
	})
}
