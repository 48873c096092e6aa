package controllers

import (
	"time"

	"formaplus/database"
	"formaplus/middleware"
	"formaplus/models"
	courseModels "formaplus/models/course"

	"github.com/gofiber/fiber/v2"
)

type SendMessageRequest struct {
	RecipientID uint   `json:"recipientId" validate:"required"`
	CourseID    *uint  `json:"courseId"`
	Subject     string `json:"subject" validate:"required,min=1,max=200"`
	Body        string `json:"body" validate:"required,min=1,max=5000"`
}

// SendMessage delivers a message from the logged-in user to another user,
// optionally attached to a course context.
func SendMessage(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedMessage").(*SendMessageRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.RecipientID == userID {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Cannot send a message to yourself!", nil)
	}

	var recipient models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.RecipientID, false).First(&recipient).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Recipient not found!", nil)
	}

	if reqData.CourseID != nil {
		var course courseModels.Course
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", *reqData.CourseID, false).First(&course).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
	}

	message := models.Message{
		SenderID:    userID,
		RecipientID: reqData.RecipientID,
		CourseID:    reqData.CourseID,
		Subject:     reqData.Subject,
		Body:        reqData.Body,
	}

	if err := database.Database.Db.Create(&message).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send message!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Message sent successfully!", message)
}

// Inbox lists messages received by the logged-in user, newest first
func Inbox(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var messages []models.Message
	if err := database.Database.Db.Where("recipient_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").Find(&messages).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch messages!", nil)
	}

	type MessageWithSender struct {
		models.Message
		SenderName string `json:"sender_name"`
	}

	unread := 0
	result := make([]MessageWithSender, len(messages))
	for i, message := range messages {
		var sender models.User
		database.Database.Db.Where("id = ?", message.SenderID).First(&sender)
		result[i] = MessageWithSender{Message: message, SenderName: sender.Name}
		if message.ReadAt == nil {
			unread++
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Messages fetched successfully!", fiber.Map{
		"messages": result,
		"total":    len(result),
		"unread":   unread,
	})
}

// Conversation returns the two-way thread between the logged-in user and
// another user, oldest first.
func Conversation(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	otherID := c.Locals("otherUserID").(int)

	var messages []models.Message
	if err := database.Database.Db.
		Where("((sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)) AND is_deleted = ?",
			userID, otherID, otherID, userID, false).
		Order("created_at asc").Find(&messages).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch conversation!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Conversation fetched successfully!", fiber.Map{
		"messages": messages,
		"total":    len(messages),
	})
}

// MarkMessageRead stamps a received message as read
func MarkMessageRead(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	messageID := c.Locals("messageID").(int)

	var message models.Message
	if err := database.Database.Db.Where("id = ? AND recipient_id = ? AND is_deleted = ?", messageID, userID, false).First(&message).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Message not found!", nil)
	}

	if message.ReadAt == nil {
		now := time.Now()
		message.ReadAt = &now
		if err := database.Database.Db.Save(&message).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update message!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Message marked as read!", message)
}
