package models

import (
	"fmt"
	"time"
)

// RequestStatus defines the state of a connection request between two users.
type RequestStatus string

const (
	// StatusInterested means the sender wants to connect with the receiver.
	// The request is pending until the receiver reviews it.
	StatusInterested RequestStatus = "interested"

	// StatusIgnored means the sender passed on the receiver. Ignored
	// requests are never reviewable and simply keep the pair out of each
	// other's feeds.
	StatusIgnored RequestStatus = "ignored"

	// StatusAccepted means the receiver accepted the request, and the two
	// users are now connected.
	StatusAccepted RequestStatus = "accepted"

	// StatusRejected means the receiver declined the request.
	StatusRejected RequestStatus = "rejected"
)

// ConnectionRequest represents a directed relationship record between two users.
// The primary key is a composite of (FromUserID, ToUserID) to ensure uniqueness
// of the directed edge. PairKey additionally carries a unique constraint on the
// unordered pair, so A->B and B->A can never coexist: a concurrent
// opposite-direction insert loses at the database rather than slipping past the
// read-then-write checks.
type ConnectionRequest struct {
	FromUserID uint          `gorm:"primaryKey"`
	ToUserID   uint          `gorm:"primaryKey"`
	PairKey    string        `gorm:"size:64;uniqueIndex;not null"`
	Status     RequestStatus `gorm:"type:varchar(20);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Define foreign key relationships
	FromUser User `gorm:"foreignKey:FromUserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	ToUser   User `gorm:"foreignKey:ToUserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// PairKeyFor returns the canonical unordered pair key for two user IDs.
// The key is identical regardless of direction.
func PairKeyFor(a, b uint) string {
	if a > b {
		a, b = b, a
	}
	return fmt.Sprintf("%d:%d", a, b)
}
