package models

import "time"

// RequestStatus defines lifecycle states for barter exchange requests.
type RequestStatus string

const (
	// RequestStatusPending indicates the request awaits the owner's decision.
	RequestStatusPending RequestStatus = "pending"
	// RequestStatusAccepted indicates the owner agreed to the exchange.
	RequestStatusAccepted RequestStatus = "accepted"
	// RequestStatusDeclined indicates the owner turned the request down.
	RequestStatusDeclined RequestStatus = "declined"
)

// Terminal reports whether no further transition may leave the status.
func (s RequestStatus) Terminal() bool {
	return s == RequestStatusAccepted || s == RequestStatusDeclined
}

// Active reports whether the request still blocks a new request for the
// same (barter, requester) pair.
func (s RequestStatus) Active() bool {
	return s == RequestStatusPending || s == RequestStatusAccepted
}

// BarterRequest is a proposal from one user to exchange with a barter's owner.
//
// OwnerID is denormalized from the barter at creation time so the received/sent
// views never need a join to resolve authorization. Cancellation deletes the
// row outright, so "cancelled" is not a stored status. The partial unique index
// on (barter_id, requester_id) over active statuses is created in
// database.Migrate; it is the authoritative guard against duplicate active
// requests.
type BarterRequest struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	BarterID    uint          `gorm:"not null;index" json:"barter_id"`
	RequesterID uint          `gorm:"not null;index" json:"requester_id"`
	OwnerID     uint          `gorm:"not null;index" json:"owner_id"`
	Status      RequestStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`

	Barter    *Barter `gorm:"foreignKey:BarterID" json:"barter,omitempty"`
	Requester *User   `gorm:"foreignKey:RequesterID" json:"requester,omitempty"`
	Owner     *User   `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
}

// RequestRole selects which side of the ledger a listing shows.
type RequestRole string

const (
	// RequestRoleReceived lists requests against the caller's barters.
	RequestRoleReceived RequestRole = "received"
	// RequestRoleSent lists requests the caller issued.
	RequestRoleSent RequestRole = "sent"
)

// Valid reports whether the role is one of the two listing sides.
func (r RequestRole) Valid() bool {
	return r == RequestRoleReceived || r == RequestRoleSent
}

// RequestView is a ledger row decorated for display: the counterpart user's
// identity plus the barter's skill names, with documented fallbacks when a
// join is missing.
type RequestView struct {
	ID             uint          `json:"id"`
	BarterID       uint          `json:"barter_id"`
	BarterTitle    string        `json:"barter_title"`
	TeachSkillName string        `json:"teach_skill_name"`
	LearnSkillName string        `json:"learn_skill_name"`
	Counterpart    string        `json:"counterpart"`
	CounterpartID  uint          `json:"counterpart_id"`
	AvatarKey      string        `json:"avatar_key"`
	Status         RequestStatus `json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
}
