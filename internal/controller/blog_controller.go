package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"portfolio_backend/internal/model"
	"portfolio_backend/pkg/database"
	"portfolio_backend/pkg/utils/jwt"
	"portfolio_backend/pkg/utils/slugify"
)

type BlogInput struct {
	Title         string         `json:"title" validate:"required"`
	Slug          string         `json:"slug"`
	Excerpt       string         `json:"excerpt"`
	Content       string         `json:"content"`
	CoverImageURL string         `json:"cover_image_url"`
	MetaTitle     string         `json:"meta_title"`
	MetaDesc      string         `json:"meta_description"`
	MetaKeywords  datatypes.JSON `json:"meta_keywords"`
	IsPublished   bool           `json:"is_published"`
}

// BlogUpdateInput is an explicit patch: only fields present in the body are
// applied.
type BlogUpdateInput struct {
	Title         *string         `json:"title"`
	Slug          *string         `json:"slug"`
	Excerpt       *string         `json:"excerpt"`
	Content       *string         `json:"content"`
	CoverImageURL *string         `json:"cover_image_url"`
	MetaTitle     *string         `json:"meta_title"`
	MetaDesc      *string         `json:"meta_description"`
	MetaKeywords  *datatypes.JSON `json:"meta_keywords"`
	IsPublished   *bool           `json:"is_published"`
	PublishedAt   *time.Time      `json:"published_at"`
}

type BlogResponse struct {
	model.Blog
	Author model.AuthorProjection `json:"author"`
}

func blogResponse(blog model.Blog) BlogResponse {
	return BlogResponse{Blog: blog, Author: blog.Author.AsAuthor()}
}

// ListBlogs lists posts, newest first. Filters: published, search (matched
// against title and excerpt).
func ListBlogs(c *fiber.Ctx) error {
	query := database.GetDB().Model(&model.Blog{})

	if published := c.Query("published"); published != "" {
		query = query.Where("is_published = ?", published == "true")
	}

	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(excerpt) LIKE ?", pattern, pattern)
	}

	var blogs []model.Blog
	if err := query.Order("created_at desc").Find(&blogs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch blogs",
		})
	}

	return c.JSON(blogs)
}

func GetBlog(c *fiber.Ctx) error {
	id := c.Params("id")

	var blog model.Blog
	if err := database.GetDB().Preload("Author").First(&blog, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Blog not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch blog",
		})
	}

	return c.JSON(blogResponse(blog))
}

func GetBlogBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var blog model.Blog
	if err := database.GetDB().Where("slug = ?", slug).Preload("Author").First(&blog).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Blog not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch blog",
		})
	}

	return c.JSON(blogResponse(blog))
}

func CreateBlog(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)
	input := new(BlogInput)

	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if input.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Title is required",
		})
	}

	blog := model.Blog{
		Title:         input.Title,
		Slug:          input.Slug,
		Excerpt:       input.Excerpt,
		Content:       input.Content,
		CoverImageURL: input.CoverImageURL,
		MetaTitle:     input.MetaTitle,
		MetaDesc:      input.MetaDesc,
		MetaKeywords:  input.MetaKeywords,
		IsPublished:   input.IsPublished,
		AuthorID:      claims.UserID,
	}

	if err := database.GetDB().Create(&blog).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create blog",
		})
	}

	database.GetDB().Preload("Author").First(&blog, blog.ID)

	return c.Status(fiber.StatusCreated).JSON(blogResponse(blog))
}

func UpdateBlog(c *fiber.Ctx) error {
	id := c.Params("id")
	input := new(BlogUpdateInput)

	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	var blog model.Blog
	if err := database.GetDB().First(&blog, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Blog not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch blog",
		})
	}

	if input.Title != nil && *input.Title != blog.Title {
		blog.Title = *input.Title
		// A title change without an explicit slug re-derives it.
		if input.Slug == nil {
			blog.Slug = slugify.Make(*input.Title)
		}
	}
	if input.Slug != nil && *input.Slug != "" {
		blog.Slug = *input.Slug
	}
	if input.Excerpt != nil {
		blog.Excerpt = *input.Excerpt
	}
	if input.Content != nil {
		blog.Content = *input.Content
	}
	if input.CoverImageURL != nil {
		blog.CoverImageURL = *input.CoverImageURL
	}
	if input.MetaTitle != nil {
		blog.MetaTitle = *input.MetaTitle
	}
	if input.MetaDesc != nil {
		blog.MetaDesc = *input.MetaDesc
	}
	if input.MetaKeywords != nil {
		blog.MetaKeywords = *input.MetaKeywords
	}
	if input.IsPublished != nil {
		// First transition to published stamps PublishedAt; it is never
		// cleared afterwards.
		if *input.IsPublished && blog.PublishedAt == nil && input.PublishedAt == nil {
			now := time.Now()
			blog.PublishedAt = &now
		}
		blog.IsPublished = *input.IsPublished
	}
	if input.PublishedAt != nil {
		blog.PublishedAt = input.PublishedAt
	}

	if err := database.GetDB().Save(&blog).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update blog",
		})
	}

	database.GetDB().Preload("Author").First(&blog, blog.ID)

	return c.JSON(blogResponse(blog))
}

func DeleteBlog(c *fiber.Ctx) error {
	id := c.Params("id")

	var blog model.Blog
	if err := database.GetDB().First(&blog, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Blog not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch blog",
		})
	}

	if err := database.GetDB().Delete(&blog).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete blog",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Blog deleted successfully",
	})
}
