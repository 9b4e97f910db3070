package repository

import (
	"context"
	"errors"

	"barterly/internal/models"

	"gorm.io/gorm"
)

// RequestRepository defines the interface for barter request data operations
type RequestRepository interface {
	Create(ctx context.Context, request *models.BarterRequest) error
	GetByID(ctx context.Context, id uint) (*models.BarterRequest, error)
	FindActive(ctx context.Context, barterID, requesterID uint) (*models.BarterRequest, error)
	UpdateStatus(ctx context.Context, requestID uint, status models.RequestStatus) error
	Delete(ctx context.Context, requestID uint) error
	ListByOwner(ctx context.Context, ownerID uint, status models.RequestStatus) ([]models.BarterRequest, error)
	ListByRequester(ctx context.Context, requesterID uint, status models.RequestStatus) ([]models.BarterRequest, error)
}

type requestRepository struct {
	db *gorm.DB
}

// NewRequestRepository creates a new request repository
func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

// Create inserts the request. The partial unique index on active
// (barter_id, requester_id) pairs closes the check-then-insert race: a
// concurrent duplicate surfaces here as a conflict, not a second row.
func (r *requestRepository) Create(ctx context.Context, request *models.BarterRequest) error {
	if err := r.db.WithContext(ctx).Create(request).Error; err != nil {
		return translateError(err, "You already have an active request for this barter")
	}
	return nil
}

func (r *requestRepository) GetByID(ctx context.Context, id uint) (*models.BarterRequest, error) {
	var request models.BarterRequest
	if err := r.db.WithContext(ctx).
		Preload("Barter").
		Preload("Barter.TeachSkill").
		Preload("Barter.LearnSkill").
		Preload("Requester").
		Preload("Owner").
		First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Request", id)
		}
		return nil, translateError(err, "")
	}
	return &request, nil
}

func (r *requestRepository) FindActive(ctx context.Context, barterID, requesterID uint) (*models.BarterRequest, error) {
	var request models.BarterRequest
	err := r.db.WithContext(ctx).
		Where("barter_id = ? AND requester_id = ? AND status IN ?",
			barterID, requesterID,
			[]models.RequestStatus{models.RequestStatusPending, models.RequestStatusAccepted}).
		First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // no active request
		}
		return nil, translateError(err, "")
	}
	return &request, nil
}

func (r *requestRepository) UpdateStatus(ctx context.Context, requestID uint, status models.RequestStatus) error {
	if err := r.db.WithContext(ctx).
		Model(&models.BarterRequest{}).
		Where("id = ?", requestID).
		Update("status", status).Error; err != nil {
		return translateError(err, "")
	}
	return nil
}

// Delete removes the row outright. Cancellation hard-deletes so the owner's
// received view never sees a cancelled marker and the active-pair index
// frees up for a re-request.
func (r *requestRepository) Delete(ctx context.Context, requestID uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.BarterRequest{}, requestID).Error; err != nil {
		return translateError(err, "")
	}
	return nil
}

func (r *requestRepository) ListByOwner(ctx context.Context, ownerID uint, status models.RequestStatus) ([]models.BarterRequest, error) {
	return r.list(ctx, "owner_id", ownerID, status)
}

func (r *requestRepository) ListByRequester(ctx context.Context, requesterID uint, status models.RequestStatus) ([]models.BarterRequest, error) {
	return r.list(ctx, "requester_id", requesterID, status)
}

func (r *requestRepository) list(ctx context.Context, column string, userID uint, status models.RequestStatus) ([]models.BarterRequest, error) {
	query := r.db.WithContext(ctx).
		Where(column+" = ?", userID).
		Preload("Barter").
		Preload("Barter.TeachSkill").
		Preload("Barter.LearnSkill").
		Preload("Requester").
		Preload("Owner").
		Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var requests []models.BarterRequest
	if err := query.Find(&requests).Error; err != nil {
		return nil, translateError(err, "")
	}
	return requests, nil
}
