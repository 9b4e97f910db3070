package service

import (
	"context"
	"strings"

	"barterly/internal/models"
	"barterly/internal/repository"
	"barterly/internal/validation"
)

// CreateBarterInput carries the user-supplied fields of a new posting.
type CreateBarterInput struct {
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	Mode         models.BarterMode `json:"mode"`
	TeachSkillID uint              `json:"teach_skill_id"`
	LearnSkillID uint              `json:"learn_skill_id"`
	SkillRating  int               `json:"skill_rating"`
}

// BarterService provides barter posting business logic.
type BarterService struct {
	barterRepo repository.BarterRepository
	skillRepo  repository.SkillRepository
}

// NewBarterService returns a new BarterService.
func NewBarterService(barterRepo repository.BarterRepository, skillRepo repository.SkillRepository) *BarterService {
	return &BarterService{
		barterRepo: barterRepo,
		skillRepo:  skillRepo,
	}
}

// Create validates and stores a new posting for the owner. Both skills must
// resolve against the catalog.
func (s *BarterService) Create(ctx context.Context, ownerID uint, input CreateBarterInput) (*models.Barter, error) {
	// Store the same trimmed values the validator sees.
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)

	if err := validation.ValidateBarterInput(
		input.Title, input.Description, input.Mode,
		input.TeachSkillID, input.LearnSkillID, input.SkillRating,
	); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	skills, err := s.skillRepo.GetByIDs(ctx, []uint{input.TeachSkillID, input.LearnSkillID})
	if err != nil {
		return nil, err
	}
	if _, ok := skills[input.TeachSkillID]; !ok {
		return nil, models.NewValidationError("Unknown skill to teach")
	}
	if _, ok := skills[input.LearnSkillID]; !ok {
		return nil, models.NewValidationError("Unknown skill to learn")
	}

	barter := &models.Barter{
		OwnerID:      ownerID,
		Title:        input.Title,
		Description:  input.Description,
		Mode:         input.Mode,
		TeachSkillID: input.TeachSkillID,
		LearnSkillID: input.LearnSkillID,
		SkillRating:  input.SkillRating,
	}
	if err := s.barterRepo.Create(ctx, barter); err != nil {
		return nil, err
	}

	return s.barterRepo.GetByID(ctx, barter.ID)
}

// Get returns a single posting with owner and skills resolved.
func (s *BarterService) Get(ctx context.Context, id uint) (*models.Barter, error) {
	return s.barterRepo.GetByID(ctx, id)
}

// ListByOwner returns the user's own postings newest-first.
func (s *BarterService) ListByOwner(ctx context.Context, ownerID uint) ([]models.Barter, error) {
	return s.barterRepo.ListByOwner(ctx, ownerID)
}
