package server

import (
	"time"

	"barterly/internal/models"
	"barterly/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetBarters handles GET /api/barters
// Public; when the caller sends a valid bearer token the feed carries their
// bookmark state.
func (s *Server) GetBarters(c *fiber.Ctx) error {
	pagination := parsePagination(c, service.DefaultFeedPageSize)
	category := c.Query("category")

	items, err := s.feedService.List(c.Context(), viewerID(c), category, pagination.Limit, pagination.Offset)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"barters": items,
		"count":   len(items),
	})
}

// GetBarter handles GET /api/barters/:id
func (s *Server) GetBarter(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	barter, err := s.barterService.Get(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusNotFound, err)
	}

	now := time.Now()
	return c.JSON(fiber.Map{
		"barter":       barter,
		"display_mode": barter.Mode.Display(),
		"time_ago":     models.TimeAgo(barter.CreatedAt, now),
		"is_expired":   barter.IsExpired(now),
		"expires_in":   barter.ExpiresIn(now),
	})
}

// CreateBarter handles POST /api/barters
func (s *Server) CreateBarter(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var input service.CreateBarterInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	barter, err := s.barterService.Create(c.Context(), userID, input)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.Status(fiber.StatusCreated).JSON(barter)
}

// GetMyBarters handles GET /api/users/me/barters
func (s *Server) GetMyBarters(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	barters, err := s.barterService.ListByOwner(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(barters)
}
