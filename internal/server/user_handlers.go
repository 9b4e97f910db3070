package server

import (
	"barterly/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	user, err := s.userService.Get(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"user":       user,
		"avatar_key": user.AvatarKey(),
	})
}

// UpdateMyProfile handles PUT /api/users/me
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Bio string `json:"bio"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateBio(c.Context(), userID, req.Bio)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(user)
}

// GetMyStats handles GET /api/users/me/stats
func (s *Server) GetMyStats(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	stats, err := s.userService.GetStats(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(stats)
}

// GetMySkills handles GET /api/users/me/skills
func (s *Server) GetMySkills(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	skills, err := s.userService.GetSkills(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(skills)
}

// UpdateMySkills handles PUT /api/users/me/skills
func (s *Server) UpdateMySkills(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		SkillIDs []uint `json:"skill_ids"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.userService.ReplaceSkills(c.Context(), userID, req.SkillIDs); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	skills, err := s.userService.GetSkills(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(skills)
}

// GetUserProfile handles GET /api/users/:id
// Public profile: identity, avatar key, stats, and selected skills.
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.Get(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusNotFound, err)
	}

	stats, err := s.userService.GetStats(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	skills, err := s.userService.GetSkills(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"id":         user.ID,
		"username":   user.Username,
		"bio":        user.Bio,
		"avatar_key": user.AvatarKey(),
		"stats":      stats,
		"skills":     skills,
	})
}
