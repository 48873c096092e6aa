package controllers

import (
	"formaplus/database"
	"formaplus/middleware"
	"formaplus/models"
	courseModels "formaplus/models/course"
	trackingModels "formaplus/models/tracking"

	"github.com/gofiber/fiber/v2"
)

// AddReview lets an enrolled learner rate a course once
func AddReview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// Only enrolled learners may review
	record, err := trackingModels.FindRecord(database.Database.Db, userID)
	if err != nil || record.FindCourseEnrollment(course.ID) == nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	// One review per learner per course
	var existing models.Review
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You already reviewed this course!", nil)
	}

	reqData, ok := c.Locals("validatedReview").(*ReviewRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	review := models.Review{
		UserID:   userID,
		CourseID: uint(courseID),
		Rating:   reqData.Rating,
		Comment:  reqData.Comment,
	}

	if err := database.Database.Db.Create(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save review!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Review saved successfully!", review)
}

// ListReviews lists the reviews of a course with the reviewer's name
func ListReviews(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var reviews []models.Review
	if err := database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("created_at desc").Find(&reviews).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviews!", nil)
	}

	type ReviewWithUser struct {
		models.Review
		UserName string `json:"user_name"`
	}

	result := make([]ReviewWithUser, len(reviews))
	average := 0.0
	for i, review := range reviews {
		var reviewer models.User
		database.Database.Db.Where("id = ?", review.UserID).First(&reviewer)
		result[i] = ReviewWithUser{Review: review, UserName: reviewer.Name}
		average += float64(review.Rating)
	}
	if len(reviews) > 0 {
		average /= float64(len(reviews))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched successfully!", fiber.Map{
		"reviews":        result,
		"total":          len(result),
		"average_rating": average,
	})
}
