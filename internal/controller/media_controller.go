package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"portfolio_backend/internal/model"
	"portfolio_backend/pkg/database"
	"portfolio_backend/pkg/utils/jwt"
	"portfolio_backend/pkg/utils/storage"
)

type MediaUpdateInput struct {
	OriginalName *string `json:"original_name"`
	AltText      *string `json:"alt_text"`
}

// ListMedia lists uploads, newest first. The type filter matches the mime
// type by prefix, so type=image covers image/jpeg, image/png and friends.
func ListMedia(c *fiber.Ctx) error {
	query := database.GetDB().Model(&model.Media{})

	if mimePrefix := c.Query("type"); mimePrefix != "" {
		if !strings.Contains(mimePrefix, "/") {
			mimePrefix += "/"
		}
		query = query.Where("mime_type LIKE ?", mimePrefix+"%")
	}

	var media []model.Media
	if err := query.Order("created_at desc").Find(&media).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch media",
		})
	}

	return c.JSON(media)
}

func GetMedia(c *fiber.Ctx) error {
	id := c.Params("id")

	var media model.Media
	if err := database.GetDB().First(&media, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Media not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch media",
		})
	}

	return c.JSON(media)
}

// UploadMedia stores a multipart file in the bucket and records it in the
// media library.
func UploadMedia(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file uploaded",
		})
	}

	result, err := storage.Upload(storage.UploadConfig{
		File:   file,
		Folder: "media",
	})
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	media := model.Media{
		Filename:     result.Filename,
		OriginalName: file.Filename,
		MimeType:     result.ContentType,
		Size:         result.Size,
		URL:          result.URL,
		AltText:      c.FormValue("alt_text"),
		UploadedBy:   claims.UserID,
	}

	if err := database.GetDB().Create(&media).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not save media record",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(media)
}

func UpdateMedia(c *fiber.Ctx) error {
	id := c.Params("id")
	input := new(MediaUpdateInput)

	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	var media model.Media
	if err := database.GetDB().First(&media, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Media not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch media",
		})
	}

	if input.OriginalName != nil {
		media.OriginalName = *input.OriginalName
	}
	if input.AltText != nil {
		media.AltText = *input.AltText
	}

	if err := database.GetDB().Save(&media).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update media",
		})
	}

	return c.JSON(media)
}

func DeleteMedia(c *fiber.Ctx) error {
	id := c.Params("id")

	var media model.Media
	if err := database.GetDB().First(&media, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Media not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch media",
		})
	}

	// Remove the stored object as well; a failure there should not leave the
	// record behind.
	if err := storage.Delete(media.URL); err != nil {
		log.Printf("Could not delete stored object: %v", err)
	}

	if err := database.GetDB().Delete(&media).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete media",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Media deleted successfully",
	})
}
