package controllers

import (
	"errors"
	"log"
	"time"

	"formaplus/database"
	"formaplus/middleware"
	"formaplus/models"
	trackingModels "formaplus/models/tracking"
	"formaplus/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CreatePaymentOrder returns the amount due on the learner's record and a
// fresh order reference for the gateway checkout page.
func CreatePaymentOrder(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	record, err := trackingModels.FindRecord(database.Database.Db, userID)
	if err != nil {
		if errors.Is(err, trackingModels.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No enrollments to pay for!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to prepare payment!", nil)
	}

	if record.PaymentDate != nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Record already paid!", fiber.Map{
			"payment_reference": record.PaymentReference,
			"payment_date":      record.PaymentDate,
		})
	}

	orderReference := "ord_" + uuid.NewString()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment order created successfully!", fiber.Map{
		"order_reference": orderReference,
		"amount":          record.TotalPaid,
	})
}

// ConfirmPayment verifies the gateway transaction and marks the learner's
// enrollment record as paid.
func ConfirmPayment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reference, ok := c.Locals("paymentReference").(string)
	if !ok || reference == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Payment reference is required!", nil)
	}

	// Confirm with the gateway before touching the record
	payment, err := utils.VerifyGatewayPayment(reference)
	if err != nil {
		log.Printf("Gateway verification failed for %s: %v", reference, err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Could not verify payment with gateway!", nil)
	}
	if payment.Status != "SUCCESS" {
		return middleware.JsonResponse(c, fiber.StatusPaymentRequired, false, "Payment not completed!", fiber.Map{
			"gateway_status": payment.Status,
		})
	}

	paidAt := payment.PaidAt
	if paidAt.IsZero() {
		paidAt = time.Now()
	}

	record, err := trackingModels.RecordPayment(database.Database.Db, userID, reference, paidAt)
	if err != nil {
		if errors.Is(err, trackingModels.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No enrollment record found!", nil)
		}
		log.Printf("Error recording payment for user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record payment!", nil)
	}

	go utils.SendPaymentReceiptEmail(user.Email, user.Name, reference, record.TotalPaid, paidAt)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment recorded successfully!", record)
}
