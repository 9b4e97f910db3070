package service

import (
	"context"

	"barterly/internal/models"
	"barterly/internal/repository"
)

type barterRepoStub struct {
	createFn      func(context.Context, *models.Barter) error
	getByIDFn     func(context.Context, uint) (*models.Barter, error)
	listFn        func(context.Context, repository.BarterFilter) ([]models.Barter, error)
	listByOwnerFn func(context.Context, uint) ([]models.Barter, error)
}

func (s *barterRepoStub) Create(ctx context.Context, barter *models.Barter) error {
	return s.createFn(ctx, barter)
}
func (s *barterRepoStub) GetByID(ctx context.Context, id uint) (*models.Barter, error) {
	return s.getByIDFn(ctx, id)
}
func (s *barterRepoStub) List(ctx context.Context, filter repository.BarterFilter) ([]models.Barter, error) {
	return s.listFn(ctx, filter)
}
func (s *barterRepoStub) ListByOwner(ctx context.Context, ownerID uint) ([]models.Barter, error) {
	return s.listByOwnerFn(ctx, ownerID)
}

type requestRepoStub struct {
	createFn          func(context.Context, *models.BarterRequest) error
	getByIDFn         func(context.Context, uint) (*models.BarterRequest, error)
	findActiveFn      func(context.Context, uint, uint) (*models.BarterRequest, error)
	updateStatusFn    func(context.Context, uint, models.RequestStatus) error
	deleteFn          func(context.Context, uint) error
	listByOwnerFn     func(context.Context, uint, models.RequestStatus) ([]models.BarterRequest, error)
	listByRequesterFn func(context.Context, uint, models.RequestStatus) ([]models.BarterRequest, error)
}

func (s *requestRepoStub) Create(ctx context.Context, request *models.BarterRequest) error {
	return s.createFn(ctx, request)
}
func (s *requestRepoStub) GetByID(ctx context.Context, id uint) (*models.BarterRequest, error) {
	return s.getByIDFn(ctx, id)
}
func (s *requestRepoStub) FindActive(ctx context.Context, barterID, requesterID uint) (*models.BarterRequest, error) {
	return s.findActiveFn(ctx, barterID, requesterID)
}
func (s *requestRepoStub) UpdateStatus(ctx context.Context, requestID uint, status models.RequestStatus) error {
	return s.updateStatusFn(ctx, requestID, status)
}
func (s *requestRepoStub) Delete(ctx context.Context, requestID uint) error {
	return s.deleteFn(ctx, requestID)
}
func (s *requestRepoStub) ListByOwner(ctx context.Context, ownerID uint, status models.RequestStatus) ([]models.BarterRequest, error) {
	return s.listByOwnerFn(ctx, ownerID, status)
}
func (s *requestRepoStub) ListByRequester(ctx context.Context, requesterID uint, status models.RequestStatus) ([]models.BarterRequest, error) {
	return s.listByRequesterFn(ctx, requesterID, status)
}

type skillRepoStub struct {
	listSkillsFn          func(context.Context) ([]models.Skill, error)
	listCategoriesFn      func(context.Context) ([]models.Category, error)
	skillsInSubcategoryFn func(context.Context, uint) ([]models.Skill, error)
	getByIDsFn            func(context.Context, []uint) (map[uint]models.Skill, error)
}

func (s *skillRepoStub) ListSkills(ctx context.Context) ([]models.Skill, error) {
	return s.listSkillsFn(ctx)
}
func (s *skillRepoStub) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.listCategoriesFn(ctx)
}
func (s *skillRepoStub) SkillsInSubcategory(ctx context.Context, subcategoryID uint) ([]models.Skill, error) {
	return s.skillsInSubcategoryFn(ctx, subcategoryID)
}
func (s *skillRepoStub) GetByIDs(ctx context.Context, ids []uint) (map[uint]models.Skill, error) {
	return s.getByIDsFn(ctx, ids)
}

type userRepoStub struct {
	createFn        func(context.Context, *models.User) error
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	getByIDsFn      func(context.Context, []uint) ([]models.User, error)
	updateFn        func(context.Context, *models.User) error
	getSkillsFn     func(context.Context, uint) ([]models.UserSkill, error)
	replaceSkillsFn func(context.Context, uint, []uint) error
	getStatsFn      func(context.Context, uint) (*models.UserStats, error)
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) GetByIDs(ctx context.Context, ids []uint) ([]models.User, error) {
	return s.getByIDsFn(ctx, ids)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) GetSkills(ctx context.Context, userID uint) ([]models.UserSkill, error) {
	return s.getSkillsFn(ctx, userID)
}
func (s *userRepoStub) ReplaceSkills(ctx context.Context, userID uint, skillIDs []uint) error {
	return s.replaceSkillsFn(ctx, userID, skillIDs)
}
func (s *userRepoStub) GetStats(ctx context.Context, userID uint) (*models.UserStats, error) {
	return s.getStatsFn(ctx, userID)
}

type bookmarkRepoStub struct {
	addFn             func(context.Context, uint, uint) error
	removeFn          func(context.Context, uint, uint) error
	existsFn          func(context.Context, uint, uint) (bool, error)
	listBarterIDsFn   func(context.Context, uint) ([]uint, error)
	listWithBartersFn func(context.Context, uint) ([]models.Bookmark, error)
}

func (s *bookmarkRepoStub) Add(ctx context.Context, userID, barterID uint) error {
	return s.addFn(ctx, userID, barterID)
}
func (s *bookmarkRepoStub) Remove(ctx context.Context, userID, barterID uint) error {
	return s.removeFn(ctx, userID, barterID)
}
func (s *bookmarkRepoStub) Exists(ctx context.Context, userID, barterID uint) (bool, error) {
	return s.existsFn(ctx, userID, barterID)
}
func (s *bookmarkRepoStub) ListBarterIDs(ctx context.Context, userID uint) ([]uint, error) {
	return s.listBarterIDsFn(ctx, userID)
}
func (s *bookmarkRepoStub) ListWithBarters(ctx context.Context, userID uint) ([]models.Bookmark, error) {
	return s.listWithBartersFn(ctx, userID)
}

func noopBarterRepo() *barterRepoStub {
	return &barterRepoStub{
		createFn:  func(context.Context, *models.Barter) error { return nil },
		getByIDFn: func(context.Context, uint) (*models.Barter, error) { return &models.Barter{}, nil },
		listFn: func(context.Context, repository.BarterFilter) ([]models.Barter, error) {
			return nil, nil
		},
		listByOwnerFn: func(context.Context, uint) ([]models.Barter, error) { return nil, nil },
	}
}

func noopRequestRepo() *requestRepoStub {
	return &requestRepoStub{
		createFn:       func(context.Context, *models.BarterRequest) error { return nil },
		getByIDFn:      func(context.Context, uint) (*models.BarterRequest, error) { return &models.BarterRequest{}, nil },
		findActiveFn:   func(context.Context, uint, uint) (*models.BarterRequest, error) { return nil, nil },
		updateStatusFn: func(context.Context, uint, models.RequestStatus) error { return nil },
		deleteFn:       func(context.Context, uint) error { return nil },
		listByOwnerFn: func(context.Context, uint, models.RequestStatus) ([]models.BarterRequest, error) {
			return nil, nil
		},
		listByRequesterFn: func(context.Context, uint, models.RequestStatus) ([]models.BarterRequest, error) {
			return nil, nil
		},
	}
}

func noopSkillRepo() *skillRepoStub {
	return &skillRepoStub{
		listSkillsFn:          func(context.Context) ([]models.Skill, error) { return nil, nil },
		listCategoriesFn:      func(context.Context) ([]models.Category, error) { return nil, nil },
		skillsInSubcategoryFn: func(context.Context, uint) ([]models.Skill, error) { return nil, nil },
		getByIDsFn: func(context.Context, []uint) (map[uint]models.Skill, error) {
			return map[uint]models.Skill{}, nil
		},
	}
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn:        func(context.Context, *models.User) error { return nil },
		getByIDFn:       func(context.Context, uint) (*models.User, error) { return &models.User{}, nil },
		getByEmailFn:    func(context.Context, string) (*models.User, error) { return nil, nil },
		getByUsernameFn: func(context.Context, string) (*models.User, error) { return nil, nil },
		getByIDsFn:      func(context.Context, []uint) ([]models.User, error) { return nil, nil },
		updateFn:        func(context.Context, *models.User) error { return nil },
		getSkillsFn:     func(context.Context, uint) ([]models.UserSkill, error) { return nil, nil },
		replaceSkillsFn: func(context.Context, uint, []uint) error { return nil },
		getStatsFn:      func(context.Context, uint) (*models.UserStats, error) { return &models.UserStats{}, nil },
	}
}

func noopBookmarkRepo() *bookmarkRepoStub {
	return &bookmarkRepoStub{
		addFn:             func(context.Context, uint, uint) error { return nil },
		removeFn:          func(context.Context, uint, uint) error { return nil },
		existsFn:          func(context.Context, uint, uint) (bool, error) { return false, nil },
		listBarterIDsFn:   func(context.Context, uint) ([]uint, error) { return nil, nil },
		listWithBartersFn: func(context.Context, uint) ([]models.Bookmark, error) { return nil, nil },
	}
}
