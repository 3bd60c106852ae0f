package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/virtual-panel/internal/models"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// HandleHealth handles GET /api/health
func (h *HealthHandler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(models.HealthResponse{
		Success: true,
		Message: "Server is running!",
	})
}
