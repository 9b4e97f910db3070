package server

import (
	"barterly/internal/middleware"
	"barterly/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateRequest handles POST /api/requests/:barterId
func (s *Server) CreateRequest(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	barterID, err := s.parseID(c, "barterId")
	if err != nil {
		return nil
	}

	request, err := s.requestService.Create(c.Context(), userID, barterID)
	if err != nil {
		middleware.RequestsCreated.WithLabelValues("rejected").Inc()
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	middleware.RequestsCreated.WithLabelValues("created").Inc()

	return c.Status(fiber.StatusCreated).JSON(request)
}

// GetRequests handles GET /api/requests?role=received|sent&status=
func (s *Server) GetRequests(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	role := models.RequestRole(c.Query("role", string(models.RequestRoleReceived)))
	status := models.RequestStatus(c.Query("status"))

	views, err := s.requestService.List(c.Context(), userID, role, status)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"requests": views,
		"count":    len(views),
	})
}

// AcceptRequest handles POST /api/requests/:requestId/accept
func (s *Server) AcceptRequest(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	requestID, err := s.parseID(c, "requestId")
	if err != nil {
		return nil
	}

	request, err := s.requestService.Accept(c.Context(), userID, requestID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(request)
}

// DeclineRequest handles POST /api/requests/:requestId/decline
func (s *Server) DeclineRequest(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	requestID, err := s.parseID(c, "requestId")
	if err != nil {
		return nil
	}

	request, err := s.requestService.Decline(c.Context(), userID, requestID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(request)
}

// CancelRequest handles DELETE /api/requests/:requestId
func (s *Server) CancelRequest(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	requestID, err := s.parseID(c, "requestId")
	if err != nil {
		return nil
	}

	if err := s.requestService.Cancel(c.Context(), userID, requestID); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{"message": "Request cancelled"})
}
