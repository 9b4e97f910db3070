package service

import (
	"context"

	"barterly/internal/cache"
	"barterly/internal/models"
	"barterly/internal/repository"
	"barterly/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// UserService provides account and profile business logic.
type UserService struct {
	userRepo  repository.UserRepository
	skillRepo repository.SkillRepository
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository, skillRepo repository.SkillRepository) *UserService {
	return &UserService{
		userRepo:  userRepo,
		skillRepo: skillRepo,
	}
}

// Register creates an account with a bcrypt-hashed password.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	if existing, err := s.userRepo.GetByEmail(ctx, email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, models.NewConflictError("A user with this email already exists")
	}
	if existing, err := s.userRepo.GetByUsername(ctx, username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, models.NewConflictError("A user with this username already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: string(hash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate checks credentials and returns the user. The error message is
// identical for an unknown email and a wrong password.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewAuthenticationError("Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.NewAuthenticationError("Invalid email or password")
	}
	return user, nil
}

// Get returns a user by id. Profile reads are cached; the cached copy omits
// the password hash (json:"-"), which profile consumers never need. Writes
// invalidate the key in the repository.
func (s *UserService) Get(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if cache.GetJSON(ctx, cache.UserKey(id), &user) {
		return &user, nil
	}

	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	cache.SetJSON(ctx, cache.UserKey(id), u, cache.UserTTL)
	return u, nil
}

// GetStats returns the profile counters for the user.
func (s *UserService) GetStats(ctx context.Context, userID uint) (*models.UserStats, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.userRepo.GetStats(ctx, userID)
}

// GetSkills returns the user's selected skills.
func (s *UserService) GetSkills(ctx context.Context, userID uint) ([]models.UserSkill, error) {
	return s.userRepo.GetSkills(ctx, userID)
}

// ReplaceSkills swaps the user's selected skill set. All ids must resolve
// against the catalog and the set is capped at three.
func (s *UserService) ReplaceSkills(ctx context.Context, userID uint, skillIDs []uint) error {
	if err := validation.ValidateSkillSelection(skillIDs); err != nil {
		return models.NewValidationError(err.Error())
	}

	skills, err := s.skillRepo.GetByIDs(ctx, skillIDs)
	if err != nil {
		return err
	}
	for _, id := range skillIDs {
		if _, ok := skills[id]; !ok {
			return models.NewValidationError("Unknown skill selection")
		}
	}

	return s.userRepo.ReplaceSkills(ctx, userID, skillIDs)
}

// UpdateBio sets the profile bio.
func (s *UserService) UpdateBio(ctx context.Context, userID uint, bio string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Bio = bio
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
