package courseValidator

import (
	"strconv"
	"strings"

	courseController "formaplus/controllers/course"
	"formaplus/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func fieldErrors(err error) map[string]string {
	errors := make(map[string]string)
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrors {
			field := strings.ToLower(fieldError.Field())
			switch fieldError.Tag() {
			case "required":
				errors[field] = "This field is required!"
			case "min":
				errors[field] = "Must be at least " + fieldError.Param() + " characters long!"
			case "max":
				errors[field] = "Must be at most " + fieldError.Param() + " characters long!"
			case "gte":
				errors[field] = "Must be greater than or equal to " + fieldError.Param() + "!"
			case "lte":
				errors[field] = "Must be less than or equal to " + fieldError.Param() + "!"
			case "oneof":
				errors[field] = "Must be one of: " + fieldError.Param() + "!"
			default:
				errors[field] = "Invalid value!"
			}
		}
	}
	return errors
}

// pathID parses a positive integer route parameter into the given Locals key
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

// CourseID validates the :courseId route parameter
func CourseID() fiber.Handler {
	return pathID("courseId", "courseID")
}

// ChapterID validates the :chapterId route parameter
func ChapterID() fiber.Handler {
	return pathID("chapterId", "chapterID")
}

// ResourceID validates the :resourceId route parameter
func ResourceID() fiber.Handler {
	return pathID("resourceId", "resourceID")
}

// CourseList validates the catalog listing query
func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		page := c.QueryInt("page", 1)
		limit := c.QueryInt("limit", 10)
		trainerID := c.QueryInt("trainer_id", 0)

		if page <= 0 || limit <= 0 || limit > 100 || trainerID < 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid pagination parameters!", nil)
		}

		c.Locals("validatedCourseList", &courseController.CourseListRequest{
			Page:      page,
			Limit:     limit,
			Category:  strings.TrimSpace(c.Query("category")),
			TrainerID: trainerID,
		})
		return c.Next()
	}
}

// CreateCourse validates the course creation request
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(courseController.CreateCourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Category = strings.TrimSpace(reqData.Category)

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourse validates the partial course update request
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(courseController.UpdateCourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Category = strings.TrimSpace(reqData.Category)
		reqData.Status = strings.ToUpper(strings.TrimSpace(reqData.Status))

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

// Chapter validates chapter create/update requests
func Chapter() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(courseController.ChapterRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedChapter", reqData)
		return c.Next()
	}
}

// Resource validates resource creation, checking the content field matches
// the declared content type.
func Resource() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(courseController.ResourceRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.ContentType = strings.ToUpper(strings.TrimSpace(reqData.ContentType))

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		switch reqData.ContentType {
		case "TEXT":
			if strings.TrimSpace(reqData.TextContent) == "" {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Text content is required for TEXT resources!", nil)
			}
		case "VIDEO":
			if strings.TrimSpace(reqData.VideoURL) == "" {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Video URL is required for VIDEO resources!", nil)
			}
		case "PDF", "IMAGE":
			if strings.TrimSpace(reqData.FileURL) == "" {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "File URL is required for "+reqData.ContentType+" resources!", nil)
			}
		}

		c.Locals("validatedResource", reqData)
		return c.Next()
	}
}

// Review validates the course review request
func Review() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(courseController.ReviewRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Comment = strings.TrimSpace(reqData.Comment)

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedReview", reqData)
		return c.Next()
	}
}
