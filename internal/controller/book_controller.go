package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"portfolio_backend/internal/model"
	"portfolio_backend/pkg/database"
)

type BookInput struct {
	Title       string `json:"title" validate:"required"`
	Author      string `json:"author" validate:"required"`
	Description string `json:"description"`
	CoverURL    string `json:"cover_url"`
	FileURL     string `json:"file_url"`
	FileType    string `json:"file_type"`
	Category    string `json:"category"`
	IsPublished bool   `json:"is_published"`
}

type BookUpdateInput struct {
	Title       *string `json:"title"`
	Author      *string `json:"author"`
	Description *string `json:"description"`
	CoverURL    *string `json:"cover_url"`
	FileURL     *string `json:"file_url"`
	FileType    *string `json:"file_type"`
	Category    *string `json:"category"`
	IsPublished *bool   `json:"is_published"`
}

// ListBooks lists books, newest first. Filters: published, category, search
// (matched case-insensitively against title and author).
func ListBooks(c *fiber.Ctx) error {
	query := database.GetDB().Model(&model.Book{})

	if published := c.Query("published"); published != "" {
		query = query.Where("is_published = ?", published == "true")
	}

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(author) LIKE ?", pattern, pattern)
	}

	var books []model.Book
	if err := query.Order("created_at desc").Find(&books).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch books",
		})
	}

	return c.JSON(books)
}

func GetBook(c *fiber.Ctx) error {
	id := c.Params("id")

	var book model.Book
	if err := database.GetDB().First(&book, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Book not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch book",
		})
	}

	return c.JSON(book)
}

func CreateBook(c *fiber.Ctx) error {
	input := new(BookInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if input.Title == "" || input.Author == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Title and author are required",
		})
	}

	book := model.Book{
		Title:       input.Title,
		Author:      input.Author,
		Description: input.Description,
		CoverURL:    input.CoverURL,
		FileURL:     input.FileURL,
		FileType:    input.FileType,
		Category:    input.Category,
		IsPublished: input.IsPublished,
	}

	if err := database.GetDB().Create(&book).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create book",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(book)
}

func UpdateBook(c *fiber.Ctx) error {
	id := c.Params("id")
	input := new(BookUpdateInput)

	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	var book model.Book
	if err := database.GetDB().First(&book, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Book not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch book",
		})
	}

	if input.Title != nil {
		book.Title = *input.Title
	}
	if input.Author != nil {
		book.Author = *input.Author
	}
	if input.Description != nil {
		book.Description = *input.Description
	}
	if input.CoverURL != nil {
		book.CoverURL = *input.CoverURL
	}
	if input.FileURL != nil {
		book.FileURL = *input.FileURL
	}
	if input.FileType != nil {
		book.FileType = *input.FileType
	}
	if input.Category != nil {
		book.Category = *input.Category
	}
	if input.IsPublished != nil {
		book.IsPublished = *input.IsPublished
	}

	if err := database.GetDB().Save(&book).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update book",
		})
	}

	return c.JSON(book)
}

func DeleteBook(c *fiber.Ctx) error {
	id := c.Params("id")

	var book model.Book
	if err := database.GetDB().First(&book, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Book not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch book",
		})
	}

	if err := database.GetDB().Delete(&book).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete book",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Book deleted successfully",
	})
}
