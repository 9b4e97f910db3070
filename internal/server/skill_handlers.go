package server

import (
	"barterly/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetSkills handles GET /api/skills
func (s *Server) GetSkills(c *fiber.Ctx) error {
	skills, err := s.skillService.ListSkills(c.Context())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(skills)
}

// GetCategories handles GET /api/skills/categories
func (s *Server) GetCategories(c *fiber.Ctx) error {
	categories, err := s.skillService.ListCategories(c.Context())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(categories)
}

// GetSubcategorySkills handles GET /api/skills/subcategories/:id
func (s *Server) GetSubcategorySkills(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	skills, err := s.skillService.SkillsInSubcategory(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(skills)
}
