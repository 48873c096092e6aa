package controllers

import (
	"errors"
	"log"

	"formaplus/database"
	"formaplus/middleware"
	"formaplus/models"
	courseModels "formaplus/models/course"
	trackingModels "formaplus/models/tracking"
	"formaplus/utils"

	"github.com/gofiber/fiber/v2"
)

// EnrollInCourse enrolls the learner in a course, snapshotting the course
// price into the enrollment record.
func EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	// Check if course exists and is active
	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ? AND status = ?", courseID, false, true, "ACTIVE").First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not active!", nil)
	}

	record, err := trackingModels.Enroll(database.Database.Db, userID, course.ID, course.Price)
	if err != nil {
		switch {
		case errors.Is(err, trackingModels.ErrAlreadyEnrolled):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already enrolled in this course!", nil)
		case errors.Is(err, trackingModels.ErrInvalidInput):
			return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Invalid enrollment price!", nil)
		default:
			log.Printf("Error enrolling user %d in course %d: %v", userID, courseID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
		}
	}

	go utils.SendEnrollmentEmail(user.Email, user.Name, course.Title)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in course successfully!", record)
}

// GetMyEnrollments returns the learner's full enrollment record with
// per-course progress and course metadata.
func GetMyEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	record, err := trackingModels.FindRecord(database.Database.Db, userID)
	if err != nil {
		if errors.Is(err, trackingModels.ErrNotFound) {
			// A learner without enrollments simply has an empty list
			return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
				"enrollments": []interface{}{},
				"total_paid":  0,
				"is_paid":     false,
			})
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	type EnrollmentWithCourse struct {
		trackingModels.CourseEnrollment
		CourseTitle  string `json:"course_title"`
		CourseStatus string `json:"course_status"`
		TrainerID    uint   `json:"trainer_id"`
	}

	result := make([]EnrollmentWithCourse, len(record.CourseEnrollments))
	for i, enrollment := range record.CourseEnrollments {
		var course courseModels.Course
		database.Database.Db.Where("id = ?", enrollment.CourseID).First(&course)
		result[i] = EnrollmentWithCourse{
			CourseEnrollment: enrollment,
			CourseTitle:      course.Title,
			CourseStatus:     course.Status,
			TrainerID:        course.TrainerID,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments":       result,
		"total_paid":        record.TotalPaid,
		"is_paid":           record.PaymentDate != nil,
		"payment_date":      record.PaymentDate,
		"payment_reference": record.PaymentReference,
	})
}
