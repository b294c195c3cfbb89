package handlers

import (
	"log"

	"snakegame/web"

	"github.com/gofiber/fiber/v2"
)

// PageHandler serves the HTML shells. The records page sits behind the
// session guard and redirects anonymous visitors to the login page.
type PageHandler struct{}

// NewPageHandler creates a new PageHandler.
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// RegisterRoutes registers the page routes with the Fiber app.
func (h *PageHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	router.Get("/", h.page("index.html"))
	router.Get("/login", h.page("login.html"))
	router.Get("/register", h.page("register.html"))
	router.Get("/game", h.page("game.html"))
	router.Get("/records", authRequired, h.page("records.html"))
}

func (h *PageHandler) page(name string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		body, err := web.Page(name)
		if err != nil {
			log.Printf("Error loading page %s: %v", name, err)
			return c.Status(fiber.StatusInternalServerError).SendString("page unavailable")
		}
		c.Type("html", "utf-8")
		return c.Send(body)
	}
}
