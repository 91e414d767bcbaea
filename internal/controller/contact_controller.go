package controller

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"

	"portfolio_backend/internal/model"
	"portfolio_backend/pkg/database"
	"portfolio_backend/pkg/email"
)

type ContactInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}

// CreateContactSubmission accepts a public contact form post and notifies the
// site owner.
func CreateContactSubmission(c *fiber.Ctx) error {
	input := new(ContactInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if input.Name == "" || input.Email == "" || input.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name, email and message are required",
		})
	}

	submission := model.ContactSubmission{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
	}

	if err := database.GetDB().Create(&submission).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not save submission",
		})
	}

	if email.GlobalEmailService != nil {
		if owner := os.Getenv("ADMIN_EMAIL"); owner != "" {
			err := email.GlobalEmailService.SendContactNotificationEmail(owner, email.ContactNotificationData{
				Name:    input.Name,
				Email:   input.Email,
				Subject: input.Subject,
				Message: input.Message,
			})
			if err != nil {
				log.Printf("Could not send contact notification email: %v", err)
			}
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Your message has been sent successfully.",
	})
}

// ListContactSubmissions lists submissions, newest first. Admin only; the
// contact log is append-only so there is no update or delete.
func ListContactSubmissions(c *fiber.Ctx) error {
	var submissions []model.ContactSubmission
	if err := database.GetDB().Order("created_at desc").Find(&submissions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch submissions",
		})
	}

	return c.JSON(submissions)
}
