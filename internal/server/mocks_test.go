package server

import (
	"context"

	"barterly/internal/models"
	"barterly/internal/repository"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByIDs(ctx context.Context, ids []uint) ([]models.User, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetSkills(ctx context.Context, userID uint) ([]models.UserSkill, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserSkill), args.Error(1)
}

func (m *MockUserRepository) ReplaceSkills(ctx context.Context, userID uint, skillIDs []uint) error {
	args := m.Called(ctx, userID, skillIDs)
	return args.Error(0)
}

func (m *MockUserRepository) GetStats(ctx context.Context, userID uint) (*models.UserStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserStats), args.Error(1)
}

// MockSkillRepository is a mock of the SkillRepository interface
type MockSkillRepository struct {
	mock.Mock
}

func (m *MockSkillRepository) ListSkills(ctx context.Context) ([]models.Skill, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Skill), args.Error(1)
}

func (m *MockSkillRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockSkillRepository) SkillsInSubcategory(ctx context.Context, subcategoryID uint) ([]models.Skill, error) {
	args := m.Called(ctx, subcategoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Skill), args.Error(1)
}

func (m *MockSkillRepository) GetByIDs(ctx context.Context, ids []uint) (map[uint]models.Skill, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uint]models.Skill), args.Error(1)
}

// MockBarterRepository is a mock of the BarterRepository interface
type MockBarterRepository struct {
	mock.Mock
}

func (m *MockBarterRepository) Create(ctx context.Context, barter *models.Barter) error {
	args := m.Called(ctx, barter)
	return args.Error(0)
}

func (m *MockBarterRepository) GetByID(ctx context.Context, id uint) (*models.Barter, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Barter), args.Error(1)
}

func (m *MockBarterRepository) List(ctx context.Context, filter repository.BarterFilter) ([]models.Barter, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Barter), args.Error(1)
}

func (m *MockBarterRepository) ListByOwner(ctx context.Context, ownerID uint) ([]models.Barter, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Barter), args.Error(1)
}

// MockBookmarkRepository is a mock of the BookmarkRepository interface
type MockBookmarkRepository struct {
	mock.Mock
}

func (m *MockBookmarkRepository) Add(ctx context.Context, userID, barterID uint) error {
	args := m.Called(ctx, userID, barterID)
	return args.Error(0)
}

func (m *MockBookmarkRepository) Remove(ctx context.Context, userID, barterID uint) error {
	args := m.Called(ctx, userID, barterID)
	return args.Error(0)
}

func (m *MockBookmarkRepository) Exists(ctx context.Context, userID, barterID uint) (bool, error) {
	args := m.Called(ctx, userID, barterID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookmarkRepository) ListBarterIDs(ctx context.Context, userID uint) ([]uint, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

func (m *MockBookmarkRepository) ListWithBarters(ctx context.Context, userID uint) ([]models.Bookmark, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Bookmark), args.Error(1)
}

// MockRequestRepository is a mock of the RequestRepository interface
type MockRequestRepository struct {
	mock.Mock
}

func (m *MockRequestRepository) Create(ctx context.Context, request *models.BarterRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockRequestRepository) GetByID(ctx context.Context, id uint) (*models.BarterRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BarterRequest), args.Error(1)
}

func (m *MockRequestRepository) FindActive(ctx context.Context, barterID, requesterID uint) (*models.BarterRequest, error) {
	args := m.Called(ctx, barterID, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BarterRequest), args.Error(1)
}

func (m *MockRequestRepository) UpdateStatus(ctx context.Context, requestID uint, status models.RequestStatus) error {
	args := m.Called(ctx, requestID, status)
	return args.Error(0)
}

func (m *MockRequestRepository) Delete(ctx context.Context, requestID uint) error {
	args := m.Called(ctx, requestID)
	return args.Error(0)
}

func (m *MockRequestRepository) ListByOwner(ctx context.Context, ownerID uint, status models.RequestStatus) ([]models.BarterRequest, error) {
	args := m.Called(ctx, ownerID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BarterRequest), args.Error(1)
}

func (m *MockRequestRepository) ListByRequester(ctx context.Context, requesterID uint, status models.RequestStatus) ([]models.BarterRequest, error) {
	args := m.Called(ctx, requesterID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BarterRequest), args.Error(1)
}
