package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"portfolio_backend/internal/controller"
	"portfolio_backend/internal/middleware"
	"portfolio_backend/internal/model"
	"portfolio_backend/pkg/config"
	"portfolio_backend/pkg/cron"
	"portfolio_backend/pkg/database"
	"portfolio_backend/pkg/email"
	"portfolio_backend/pkg/seed"
)

func setupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Auth Routes
	auth := api.Group("/auth")
	auth.Post("/register", controller.Register)
	auth.Post("/login", controller.Login)

	api.Get("/me", middleware.AuthMiddleware(), controller.GetMe)

	// Settings routes
	settings := api.Group("/settings", middleware.AuthMiddleware())
	settings.Get("/profile", controller.GetProfile)
	settings.Put("/profile", controller.UpdateProfile)
	settings.Post("/avatar", controller.UploadAvatar)

	authRequired := middleware.AuthMiddleware()
	adminOnly := middleware.RequireAdmin()

	// Blog routes: reads are public, writes are admin only
	blogs := api.Group("/blogs")
	blogs.Get("/", controller.ListBlogs)
	blogs.Get("/slug/:slug", controller.GetBlogBySlug)
	blogs.Get("/:id", controller.GetBlog)
	blogs.Post("/", authRequired, adminOnly, controller.CreateBlog)
	blogs.Put("/:id", authRequired, adminOnly, controller.UpdateBlog)
	blogs.Delete("/:id", authRequired, adminOnly, controller.DeleteBlog)

	// Book routes
	books := api.Group("/books")
	books.Get("/", controller.ListBooks)
	books.Get("/:id", controller.GetBook)
	books.Post("/", authRequired, adminOnly, controller.CreateBook)
	books.Put("/:id", authRequired, adminOnly, controller.UpdateBook)
	books.Delete("/:id", authRequired, adminOnly, controller.DeleteBook)

	// Contact form: anyone may submit, only admins read the log
	api.Post("/contact", controller.CreateContactSubmission)
	api.Get("/contact", authRequired, adminOnly, controller.ListContactSubmissions)

	// Media library (admin surface)
	media := api.Group("/media", authRequired, adminOnly)
	media.Get("/", controller.ListMedia)
	media.Post("/upload", controller.UploadMedia)
	media.Get("/:id", controller.GetMedia)
	media.Put("/:id", controller.UpdateMedia)
	media.Delete("/:id", controller.DeleteMedia)

	// Sponsor banners: public reads and click tracking, admin writes
	sponsors := api.Group("/sponsors")
	sponsors.Get("/", controller.ListSponsors)
	sponsors.Get("/:id", controller.GetSponsor)
	sponsors.Patch("/:id/click", controller.RecordSponsorClick)
	sponsors.Post("/", authRequired, adminOnly, controller.CreateSponsor)
	sponsors.Put("/:id", authRequired, adminOnly, controller.UpdateSponsor)
	sponsors.Delete("/:id", authRequired, adminOnly, controller.DeleteSponsor)

	// Dashboard routes
	dashboard := api.Group("/dashboard", authRequired, adminOnly)
	dashboard.Get("/stats", controller.GetDashboardStats)
}

func main() {
	cfg := config.Load()

	if key := cfg.Email.ResendAPIKey; key != "" {
		if err := email.InitEmailService(key); err != nil {
			log.Fatal("Could not initialize email service:", err)
		}
		log.Println("Email service initialized")
	} else {
		log.Println("RESEND_API_KEY not set, email notifications disabled")
	}

	controller.InitAuthController()
	cron.InitContactDigestCron()

	if cfg.Database.URL == "" {
		log.Fatal("DATABASE_URL is not set in .env")
	}

	database.InitDB(cfg.Database.URL)
	err := database.MigrateDatabase(
		&model.User{},
		&model.LoginHistory{},
		&model.Blog{},
		&model.Book{},
		&model.ContactSubmission{},
		&model.Media{},
		&model.Sponsor{},
	)
	if err != nil {
		log.Printf("Migration warning: %v", err)
	}

	seed.SeedAdminUser(database.GetDB())
	seed.SeedSponsors(database.GetDB())

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New())

	setupRoutes(app)

	log.Printf("Server is running on port %s", cfg.Server.Port)
	log.Fatal(app.Listen(":" + cfg.Server.Port))
}
