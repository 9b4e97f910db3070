package server

import (
	"barterly/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ToggleBookmark handles POST /api/bookmarks/:barterId/toggle
func (s *Server) ToggleBookmark(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	barterID, err := s.parseID(c, "barterId")
	if err != nil {
		return nil
	}

	bookmarked, err := s.bookmarkService.Toggle(c.Context(), userID, barterID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{"bookmarked": bookmarked})
}

// GetBookmarks handles GET /api/bookmarks
func (s *Server) GetBookmarks(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	views, err := s.bookmarkService.List(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"bookmarks": views,
		"count":     len(views),
	})
}
