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

// CompleteResource records a resource completion event for the learner and
// re-derives the course progress. Replays of the same resource are safe.
func CompleteResource(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)
	resourceID := c.Locals("resourceID").(int)

	// Check if course exists and is published
	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not published!", nil)
	}

	// Check if the resource exists within the course
	var resource courseModels.Resource
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ? AND is_published = ?", resourceID, courseID, false, true).First(&resource).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Resource not found!", nil)
	}

	// The catalog supplies the resource total; the tracker itself knows
	// nothing about the course structure.
	totalResources := courseModels.PublishedResourceCount(database.Database.Db, course.ID)

	wasIssued := false
	if eligibility, err := trackingModels.CheckCertificateEligibility(database.Database.Db, userID, course.ID); err == nil {
		wasIssued = eligibility.Certificate.Issued
	}

	enrollment, err := trackingModels.RecordResourceCompletion(database.Database.Db, userID, course.ID, uint(resourceID), totalResources)
	if err != nil {
		switch {
		case errors.Is(err, trackingModels.ErrNotFound):
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
		case errors.Is(err, trackingModels.ErrInvalidInput):
			return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Invalid resource count!", nil)
		default:
			log.Printf("Error recording completion for user %d: %v", userID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record completion!", nil)
		}
	}

	// Notify once, at the call that crossed the threshold
	if enrollment.Certificate.Issued && !wasIssued {
		go utils.SendCertificateEmail(user.Email, user.Name, course.Title, enrollment.Certificate.CertificateURL)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resource completion recorded successfully!", enrollment)
}

// GetCertificateEligibility reports the learner's progress and certificate
// state for one course. Read-only.
func GetCertificateEligibility(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	eligibility, err := trackingModels.CheckCertificateEligibility(database.Database.Db, userID, uint(courseID))
	if err != nil {
		if errors.Is(err, trackingModels.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found for this course!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check eligibility!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Eligibility fetched successfully!", eligibility)
}

// GetMyProgress returns per-course progress for the learner's dashboard
func GetMyProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	record, err := trackingModels.FindRecord(database.Database.Db, userID)
	if err != nil {
		if errors.Is(err, trackingModels.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
				"courses": []interface{}{},
			})
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	type CourseProgress struct {
		CourseID        uint                       `json:"course_id"`
		CourseTitle     string                     `json:"course_title"`
		ProgressPercent int                        `json:"progress_percent"`
		CompletedCount  int                        `json:"completed_count"`
		ResourceCount   int                        `json:"resource_count"`
		Certificate     trackingModels.Certificate `json:"certificate"`
	}

	progress := make([]CourseProgress, len(record.CourseEnrollments))
	for i, enrollment := range record.CourseEnrollments {
		var course courseModels.Course
		database.Database.Db.Where("id = ?", enrollment.CourseID).First(&course)
		progress[i] = CourseProgress{
			CourseID:        enrollment.CourseID,
			CourseTitle:     course.Title,
			ProgressPercent: enrollment.ProgressPercent,
			CompletedCount:  len(enrollment.CompletedResourceIDs),
			ResourceCount:   courseModels.PublishedResourceCount(database.Database.Db, enrollment.CourseID),
			Certificate:     enrollment.Certificate,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"courses": progress,
	})
}
