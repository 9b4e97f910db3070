package service

import (
	"context"

	"barterly/internal/models"
	"barterly/internal/repository"
)

// RequestService provides exchange-request business logic.
type RequestService struct {
	requestRepo repository.RequestRepository
	barterRepo  repository.BarterRepository
}

// NewRequestService returns a new RequestService.
func NewRequestService(requestRepo repository.RequestRepository, barterRepo repository.BarterRepository) *RequestService {
	return &RequestService{
		requestRepo: requestRepo,
		barterRepo:  barterRepo,
	}
}

// Create issues a pending request against the barter. The active-pair check
// here is a fast path for a friendly error; the storage-level unique index is
// what actually closes the race with concurrent creates.
func (s *RequestService) Create(ctx context.Context, requesterID, barterID uint) (*models.BarterRequest, error) {
	barter, err := s.barterRepo.GetByID(ctx, barterID)
	if err != nil {
		return nil, err
	}

	if barter.OwnerID == requesterID {
		return nil, models.NewAuthorizationError("You cannot request your own barter")
	}

	existing, err := s.requestRepo.FindActive(ctx, barterID, requesterID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("You already have an active request for this barter")
	}

	request := &models.BarterRequest{
		BarterID:    barterID,
		RequesterID: requesterID,
		OwnerID:     barter.OwnerID,
		Status:      models.RequestStatusPending,
	}
	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	return s.requestRepo.GetByID(ctx, request.ID)
}

// Accept moves a pending request to accepted. Only the barter's owner may act.
func (s *RequestService) Accept(ctx context.Context, ownerID, requestID uint) (*models.BarterRequest, error) {
	return s.decide(ctx, ownerID, requestID, models.RequestStatusAccepted)
}

// Decline moves a pending request to declined. Only the barter's owner may act.
func (s *RequestService) Decline(ctx context.Context, ownerID, requestID uint) (*models.BarterRequest, error) {
	return s.decide(ctx, ownerID, requestID, models.RequestStatusDeclined)
}

func (s *RequestService) decide(ctx context.Context, ownerID, requestID uint, status models.RequestStatus) (*models.BarterRequest, error) {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if request.OwnerID != ownerID {
		return nil, models.NewAuthorizationError("Only the barter owner can decide this request")
	}
	if request.Status != models.RequestStatusPending {
		return nil, models.NewInvalidStateError("Request has already been decided")
	}

	if err := s.requestRepo.UpdateStatus(ctx, requestID, status); err != nil {
		return nil, err
	}

	return s.requestRepo.GetByID(ctx, requestID)
}

// Cancel withdraws the caller's own pending request. The row is deleted, so
// the pair frees up for a later re-request.
func (s *RequestService) Cancel(ctx context.Context, requesterID, requestID uint) error {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return err
	}

	if request.RequesterID != requesterID {
		return models.NewAuthorizationError("You can only cancel your own requests")
	}
	if request.Status != models.RequestStatusPending {
		return models.NewInvalidStateError("Only pending requests can be cancelled")
	}

	return s.requestRepo.Delete(ctx, requestID)
}

// List returns the caller's side of the ledger decorated for display.
// role selects received (requests against the caller's barters) or sent;
// status optionally narrows, e.g. the pending tab uses sent+pending.
func (s *RequestService) List(ctx context.Context, userID uint, role models.RequestRole, status models.RequestStatus) ([]models.RequestView, error) {
	if !role.Valid() {
		return nil, models.NewValidationError("role must be \"received\" or \"sent\"")
	}
	if status != "" && status != models.RequestStatusPending &&
		status != models.RequestStatusAccepted && status != models.RequestStatusDeclined {
		return nil, models.NewValidationError("unknown request status")
	}

	var (
		requests []models.BarterRequest
		err      error
	)
	if role == models.RequestRoleReceived {
		requests, err = s.requestRepo.ListByOwner(ctx, userID, status)
	} else {
		requests, err = s.requestRepo.ListByRequester(ctx, userID, status)
	}
	if err != nil {
		return nil, err
	}

	views := make([]models.RequestView, 0, len(requests))
	for _, r := range requests {
		views = append(views, decorateRequest(r, role))
	}
	return views, nil
}

// decorateRequest flattens a ledger row for display. The counterpart is the
// other party: the requester on the received side, the owner on the sent side.
// Missing joins fall back rather than erroring.
func decorateRequest(r models.BarterRequest, role models.RequestRole) models.RequestView {
	view := models.RequestView{
		ID:             r.ID,
		BarterID:       r.BarterID,
		BarterTitle:    "",
		TeachSkillName: models.UnknownSkillName,
		LearnSkillName: models.UnknownSkillName,
		Counterpart:    models.AnonymousUserName,
		Status:         r.Status,
		CreatedAt:      r.CreatedAt,
	}

	if r.Barter != nil {
		view.BarterTitle = r.Barter.Title
		if r.Barter.TeachSkill != nil {
			view.TeachSkillName = r.Barter.TeachSkill.Name
		}
		if r.Barter.LearnSkill != nil {
			view.LearnSkillName = r.Barter.LearnSkill.Name
		}
	}

	counterpart := r.Requester
	view.CounterpartID = r.RequesterID
	if role == models.RequestRoleSent {
		counterpart = r.Owner
		view.CounterpartID = r.OwnerID
	}
	if counterpart != nil {
		view.Counterpart = counterpart.Username
		view.AvatarKey = counterpart.AvatarKey()
	}

	return view
}
