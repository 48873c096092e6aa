package controllers

import (
	"time"

	"formaplus/database"
	"formaplus/middleware"
	"formaplus/models"
	courseModels "formaplus/models/course"
	trackingModels "formaplus/models/tracking"

	"github.com/gofiber/fiber/v2"
)

// AdminRevenueReport aggregates platform revenue over all paid enrollment
// records, split between platform and trainers at the global ratio.
func AdminRevenueReport(c *fiber.Ctx) error {
	report, err := trackingModels.ComputeRevenue(database.Database.Db, nil)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute revenue!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Revenue report fetched successfully!", fiber.Map{
		"total_revenue":    report.TotalRevenue,
		"platform_share":   report.PlatformShare,
		"trainer_share":    report.TrainerShare,
		"revenue_by_month": report.RevenueByMonth,
		"split": fiber.Map{
			"platform": trackingModels.PlatformShareRate,
			"trainer":  trackingModels.TrainerShareRate,
		},
	})
}

// AdminRevenueSnapshots returns the materialized monthly snapshots written
// by the revenue scheduler.
func AdminRevenueSnapshots(c *fiber.Ctx) error {
	var snapshots []trackingModels.RevenueSnapshot
	if err := database.Database.Db.Order("generated_at desc, month desc").Find(&snapshots).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch snapshots!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Snapshots fetched successfully!", fiber.Map{
		"snapshots": snapshots,
		"total":     len(snapshots),
	})
}

// TrainerRevenueDashboard returns the trainer's 40% share per course and
// month, with per-learner detail lines for auditability.
func TrainerRevenueDashboard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var courses []courseModels.Course
	if err := database.Database.Db.Where("trainer_id = ? AND is_deleted = ?", userID, false).Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	courseIDs := make([]uint, len(courses))
	titles := make(map[uint]string, len(courses))
	for i, course := range courses {
		courseIDs[i] = course.ID
		titles[course.ID] = course.Title
	}

	lookupLearner := func(id uint) (string, string) {
		var learner models.User
		database.Database.Db.Select("name, email").Where("id = ?", id).First(&learner)
		return learner.Name, learner.Email
	}

	revenue, err := trackingModels.TrainerCourseRevenue(database.Database.Db, courseIDs, lookupLearner)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute revenue!", nil)
	}

	type CourseRevenueView struct {
		CourseID     uint                           `json:"course_id"`
		CourseTitle  string                         `json:"course_title"`
		TrainerShare float64                        `json:"trainer_share"`
		ByMonth      map[string]float64             `json:"by_month"`
		Details      []trackingModels.RevenueDetail `json:"details"`
	}

	result := make([]CourseRevenueView, 0, len(revenue))
	totalShare := 0.0
	for courseID, courseRevenue := range revenue {
		result = append(result, CourseRevenueView{
			CourseID:     courseID,
			CourseTitle:  titles[courseID],
			TrainerShare: courseRevenue.TrainerShare,
			ByMonth:      courseRevenue.ByMonth,
			Details:      courseRevenue.Details,
		})
		totalShare += courseRevenue.TrainerShare
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Revenue dashboard fetched successfully!", fiber.Map{
		"courses":       result,
		"total_revenue": totalShare,
		"share_rate":    trackingModels.TrainerShareRate,
	})
}

// AdminPlatformStats gets dashboard statistics
func AdminPlatformStats(c *fiber.Ctx) error {
	var totalCourses, publishedCourses, totalLearners, totalEnrollments, issuedCertificates int64

	db := database.Database.Db
	db.Model(&courseModels.Course{}).Where("is_deleted = ?", false).Count(&totalCourses)
	db.Model(&courseModels.Course{}).Where("is_deleted = ? AND is_published = ?", false, true).Count(&publishedCourses)
	db.Model(&models.User{}).Where("is_deleted = ? AND role = ?", false, models.RoleLearner).Count(&totalLearners)
	db.Model(&trackingModels.CourseEnrollment{}).Count(&totalEnrollments)
	db.Model(&trackingModels.CourseEnrollment{}).Where("certificate_issued = ?", true).Count(&issuedCertificates)

	// Get recent enrollments
	type RecentEnrollment struct {
		LearnerName string    `json:"learner_name"`
		CourseTitle string    `json:"course_title"`
		EnrolledAt  time.Time `json:"enrolled_at"`
	}

	var recentEnrollments []trackingModels.CourseEnrollment
	db.Order("enrolled_at desc").Limit(5).Find(&recentEnrollments)

	recent := make([]RecentEnrollment, len(recentEnrollments))
	for i, enrollment := range recentEnrollments {
		var record trackingModels.EnrollmentRecord
		var learner models.User
		var course courseModels.Course
		db.Where("id = ?", enrollment.RecordID).First(&record)
		db.Where("id = ?", record.LearnerID).First(&learner)
		db.Where("id = ?", enrollment.CourseID).First(&course)
		recent[i] = RecentEnrollment{
			LearnerName: learner.Name,
			CourseTitle: course.Title,
			EnrolledAt:  enrollment.EnrolledAt,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", fiber.Map{
		"stats": fiber.Map{
			"total_courses":       totalCourses,
			"published_courses":   publishedCourses,
			"total_learners":      totalLearners,
			"total_enrollments":   totalEnrollments,
			"issued_certificates": issuedCertificates,
		},
		"recent_enrollments": recent,
	})
}
