package controllers

import (
	"strings"

	"formaplus/database"
	"formaplus/middleware"
	courseModels "formaplus/models/course"
	"formaplus/utils"

	"github.com/gofiber/fiber/v2"
)

// ownedCourse loads a course and checks the authenticated trainer owns it.
// Admins pass the ownership check for moderation purposes.
func ownedCourse(c *fiber.Ctx, courseID int) (*courseModels.Course, error) {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return nil, middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return nil, middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	role, _ := c.Locals("userRole").(string)
	if course.TrainerID != userID && role != "ADMIN" {
		return nil, middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this course!", nil)
	}
	return &course, nil
}

// TrainerCreateCourse creates a draft course owned by the trainer
func TrainerCreateCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*CreateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := courseModels.Course{
		TrainerID:    userID,
		Title:        reqData.Title,
		Description:  reqData.Description,
		Category:     reqData.Category,
		Price:        reqData.Price,
		Duration:     reqData.Duration,
		ThumbnailURL: reqData.ThumbnailURL,
		Status:       "DRAFT",
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// TrainerUpdateCourse updates fields of an owned course
func TrainerUpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	course, err := ownedCourse(c, courseID)
	if err != nil {
		return err
	}

	reqData, ok := c.Locals("validatedCourseUpdate").(*UpdateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != "" {
		course.Title = reqData.Title
	}
	if reqData.Description != "" {
		course.Description = reqData.Description
	}
	if reqData.Category != "" {
		course.Category = reqData.Category
	}
	// Price changes only affect future enrollments; historical records keep
	// their price at enrollment time.
	if reqData.Price != nil {
		course.Price = *reqData.Price
	}
	if reqData.Duration > 0 {
		course.Duration = reqData.Duration
	}
	if reqData.ThumbnailURL != "" {
		course.ThumbnailURL = reqData.ThumbnailURL
	}
	if reqData.Status != "" {
		course.Status = reqData.Status
	}

	if err := database.Database.Db.Save(course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// TrainerPublishCourse makes an owned course visible in the catalog
func TrainerPublishCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	course, err := ownedCourse(c, courseID)
	if err != nil {
		return err
	}

	course.IsPublished = true
	course.Status = "ACTIVE"

	if err := database.Database.Db.Save(course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to publish course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course published successfully!", course)
}

// TrainerDeleteCourse soft-deletes an owned course
func TrainerDeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	course, err := ownedCourse(c, courseID)
	if err != nil {
		return err
	}

	course.IsDeleted = true
	course.IsPublished = false

	if err := database.Database.Db.Save(course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// TrainerListCourses lists all courses owned by the trainer, drafts included
func TrainerListCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var courses []courseModels.Course
	if err := database.Database.Db.Where("trainer_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
		"total":   len(courses),
	})
}

// TrainerUploadThumbnail stores a thumbnail image for an owned course
func TrainerUploadThumbnail(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	course, err := ownedCourse(c, courseID)
	if err != nil {
		return err
	}

	file, err := c.FormFile("thumbnail")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Thumbnail file is required!", nil)
	}

	ext := strings.ToLower(file.Filename[strings.LastIndex(file.Filename, ".")+1:])
	if ext != "jpg" && ext != "jpeg" && ext != "png" && ext != "webp" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Thumbnail must be a jpg, png or webp image!", nil)
	}

	filePath, err := utils.SaveUploadedFile(file, "public/uploads/thumbnails")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save thumbnail!", nil)
	}

	course.ThumbnailURL = utils.GetFileURL(filePath)
	if err := database.Database.Db.Save(course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Thumbnail uploaded successfully!", fiber.Map{
		"thumbnail_url": course.ThumbnailURL,
	})
}

// TrainerCreateChapter adds a chapter to an owned course
func TrainerCreateChapter(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	course, err := ownedCourse(c, courseID)
	if err != nil {
		return err
	}

	reqData, ok := c.Locals("validatedChapter").(*ChapterRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	chapter := courseModels.Chapter{
		CourseID:    course.ID,
		Title:       reqData.Title,
		Description: reqData.Description,
		OrderIndex:  reqData.OrderIndex,
	}

	if err := database.Database.Db.Create(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create chapter!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Chapter created successfully!", chapter)
}

// TrainerUpdateChapter updates a chapter of an owned course
func TrainerUpdateChapter(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)
	chapterID := c.Locals("chapterID").(int)

	course, err := ownedCourse(c, courseID)
	if err != nil {
		return err
	}

	var chapter courseModels.Chapter
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", chapterID, course.ID, false).First(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found!", nil)
	}

	reqData, ok := c.Locals("validatedChapter").(*ChapterRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != "" {
		chapter.Title = reqData.Title
	}
	if reqData.Description != "" {
		chapter.Description = reqData.Description
	}
	if reqData.OrderIndex > 0 {
		chapter.OrderIndex = reqData.OrderIndex
	}

	if err := database.Database.Db.Save(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update chapter!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapter updated successfully!", chapter)
}

// TrainerCreateResource adds a resource to a chapter of an owned course
func TrainerCreateResource(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)
	chapterID := c.Locals("chapterID").(int)

	course, err := ownedCourse(c, courseID)
	if err != nil {
		return err
	}

	var chapter courseModels.Chapter
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", chapterID, course.ID, false).First(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found!", nil)
	}

	reqData, ok := c.Locals("validatedResource").(*ResourceRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	resource := courseModels.Resource{
		CourseID:    course.ID,
		ChapterID:   chapter.ID,
		Title:       reqData.Title,
		Description: reqData.Description,
		ContentType: reqData.ContentType,
		TextContent: reqData.TextContent,
		VideoURL:    reqData.VideoURL,
		FileURL:     reqData.FileURL,
		OrderIndex:  reqData.OrderIndex,
	}

	if err := database.Database.Db.Create(&resource).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create resource!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Resource created successfully!", resource)
}

// TrainerPublishResource publishes a resource so it counts toward progress
func TrainerPublishResource(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)
	resourceID := c.Locals("resourceID").(int)

	course, err := ownedCourse(c, courseID)
	if err != nil {
		return err
	}

	var resource courseModels.Resource
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", resourceID, course.ID, false).First(&resource).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Resource not found!", nil)
	}

	resource.IsPublished = true
	if err := database.Database.Db.Save(&resource).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to publish resource!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resource published successfully!", resource)
}

// TrainerDeleteResource soft-deletes a resource. Learners who completed it
// keep the completion in their record; the progress percentage adjusts on
// their next completion event since the resource total is supplied anew on
// each call.
func TrainerDeleteResource(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)
	resourceID := c.Locals("resourceID").(int)

	course, err := ownedCourse(c, courseID)
	if err != nil {
		return err
	}

	var resource courseModels.Resource
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", resourceID, course.ID, false).First(&resource).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Resource not found!", nil)
	}

	resource.IsDeleted = true
	resource.IsPublished = false
	if err := database.Database.Db.Save(&resource).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete resource!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resource deleted successfully!", nil)
}
