package routes

import (
	"stagedesk/configs/configssession"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// SetupRoutes wires the global middleware and every route group.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	app.Use(recoverMiddleware.New())
	app.Use(logger.New())
	app.Use(initializeSessionStore())

	registerDashboardRoutes(app, db)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/dashboard/home", fiber.StatusFound)
	})

	// Catches everything no route matched.
	app.Use(notFoundHandler)
}

// initializeSessionStore puts the shared session store into locals so the
// flash helpers can reach it from any handler.
func initializeSessionStore() fiber.Handler {
	sessionStore := configssession.SetupSession()
	return func(c *fiber.Ctx) error {
		c.Locals("session_store", sessionStore)
		return c.Next()
	}
}

func notFoundHandler(c *fiber.Ctx) error {
	accepts := c.Accepts("application/json", "text/html")
	switch accepts {
	case "application/json":
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "resource not found"})
	default:
		return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{"Title": "Page Not Found"}, "layouts/error_layout")
	}
}
