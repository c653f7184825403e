package workflow

import "errors"

// Every precondition violation maps to one of these sentinel errors, so the
// routing layer can match with errors.Is and surface a stable client-facing
// message. Store connectivity failures pass through wrapped and are treated
// as server errors instead.
var (
	// ErrInvalidStatus means the status/decision value is not allowed for
	// the operation.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrUserNotFound means the referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrSelfRequest means a user tried to send a request to themselves.
	ErrSelfRequest = errors.New("cannot send a request to yourself")

	// ErrReverseRequestExists means the target already has a record toward
	// the sender; the sender should review that request instead.
	ErrReverseRequestExists = errors.New("the other user already sent you a request")

	// ErrDuplicateRelation means a record for the ordered pair already exists.
	ErrDuplicateRelation = errors.New("a request between these users already exists")

	// ErrRequestNotFound means no pending request matches the review.
	ErrRequestNotFound = errors.New("request not found")

	// ErrAlreadyReviewed means the request is not in the interested state:
	// it was already accepted/rejected, or it was an ignore and is never
	// reviewable.
	ErrAlreadyReviewed = errors.New("request already reviewed")

	// ErrSelfReview means a user tried to review their own request.
	ErrSelfReview = errors.New("cannot review your own request")

	// ErrConnectionNotFound means no accepted connection exists between the
	// two users.
	ErrConnectionNotFound = errors.New("connection not found")
)
