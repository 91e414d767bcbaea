package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"portfolio_backend/internal/model"
	"portfolio_backend/pkg/database"
)

type SponsorInput struct {
	Name         string `json:"name" validate:"required"`
	LogoURL      string `json:"logo_url"`
	WebsiteURL   string `json:"website_url"`
	Description  string `json:"description"`
	IsActive     *bool  `json:"is_active"`
	DisplayOrder int    `json:"display_order"`
}

type SponsorUpdateInput struct {
	Name         *string `json:"name"`
	LogoURL      *string `json:"logo_url"`
	WebsiteURL   *string `json:"website_url"`
	Description  *string `json:"description"`
	IsActive     *bool   `json:"is_active"`
	DisplayOrder *int    `json:"display_order"`
}

// ListSponsors lists sponsors in display order. Filter: active.
func ListSponsors(c *fiber.Ctx) error {
	query := database.GetDB().Model(&model.Sponsor{})

	if active := c.Query("active"); active != "" {
		query = query.Where("is_active = ?", active == "true")
	}

	var sponsors []model.Sponsor
	if err := query.Order("display_order asc, created_at desc").Find(&sponsors).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch sponsors",
		})
	}

	return c.JSON(sponsors)
}

func GetSponsor(c *fiber.Ctx) error {
	id := c.Params("id")

	var sponsor model.Sponsor
	if err := database.GetDB().First(&sponsor, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Sponsor not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch sponsor",
		})
	}

	return c.JSON(sponsor)
}

func CreateSponsor(c *fiber.Ctx) error {
	input := new(SponsorInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if input.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name is required",
		})
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	sponsor := model.Sponsor{
		Name:         input.Name,
		LogoURL:      input.LogoURL,
		WebsiteURL:   input.WebsiteURL,
		Description:  input.Description,
		IsActive:     isActive,
		DisplayOrder: input.DisplayOrder,
	}

	if err := database.GetDB().Create(&sponsor).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create sponsor",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(sponsor)
}

func UpdateSponsor(c *fiber.Ctx) error {
	id := c.Params("id")
	input := new(SponsorUpdateInput)

	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	var sponsor model.Sponsor
	if err := database.GetDB().First(&sponsor, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Sponsor not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch sponsor",
		})
	}

	if input.Name != nil {
		sponsor.Name = *input.Name
	}
	if input.LogoURL != nil {
		sponsor.LogoURL = *input.LogoURL
	}
	if input.WebsiteURL != nil {
		sponsor.WebsiteURL = *input.WebsiteURL
	}
	if input.Description != nil {
		sponsor.Description = *input.Description
	}
	if input.IsActive != nil {
		sponsor.IsActive = *input.IsActive
	}
	if input.DisplayOrder != nil {
		sponsor.DisplayOrder = *input.DisplayOrder
	}

	if err := database.GetDB().Save(&sponsor).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update sponsor",
		})
	}

	return c.JSON(sponsor)
}

func DeleteSponsor(c *fiber.Ctx) error {
	id := c.Params("id")

	var sponsor model.Sponsor
	if err := database.GetDB().First(&sponsor, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Sponsor not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch sponsor",
		})
	}

	if err := database.GetDB().Delete(&sponsor).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete sponsor",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Sponsor deleted successfully",
	})
}

// RecordSponsorClick bumps the click counter with a single SQL expression so
// concurrent clicks never lose updates.
func RecordSponsorClick(c *fiber.Ctx) error {
	id := c.Params("id")

	result := database.GetDB().Model(&model.Sponsor{}).
		Where("id = ?", id).
		UpdateColumn("click_count", gorm.Expr("click_count + ?", 1))

	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not record click",
		})
	}

	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Sponsor not found",
		})
	}

	var sponsor model.Sponsor
	if err := database.GetDB().First(&sponsor, id).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch sponsor",
		})
	}

	return c.JSON(sponsor)
}
