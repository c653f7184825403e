package workflow

import (
	"fmt"

	"devconnect/backend/internal/models"
	"devconnect/backend/internal/store"

	"gorm.io/gorm"
)

// Engine validates and applies connection-request state transitions and
// computes the discovery feed. It holds no state between calls; the store is
// the only serialization point between concurrent requests.
type Engine struct {
	users       *store.UserStore
	connections *store.ConnectionStore
}

// New creates an Engine over the given database.
func New(db *gorm.DB) *Engine {
	return &Engine{
		users:       store.NewUserStore(db),
		connections: store.NewConnectionStore(db),
	}
}

// FeedPage is one page of discovery-feed candidates plus paging metadata.
type FeedPage struct {
	Items       []models.User
	Page        int
	PageSize    int
	TotalCount  int64
	TotalPages  int
	HasNextPage bool
}

// SendRequest creates a directed request from one user to another. The status
// must be interested or ignored. Preconditions are checked in a fixed order so
// each violation yields its own error; the unique pair-key index backs them up
// against concurrent opposite-direction inserts.
func (e *Engine) SendRequest(fromID, toID uint, status models.RequestStatus) (*models.ConnectionRequest, error) {
	if status != models.StatusInterested && status != models.StatusIgnored {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	exists, err := e.users.Exists(toID)
	if err != nil {
		return nil, fmt.Errorf("checking target user: %w", err)
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	if fromID == toID {
		return nil, ErrSelfRequest
	}

	reverse, err := e.connections.FindByPair(toID, fromID)
	if err != nil {
		return nil, fmt.Errorf("checking reverse request: %w", err)
	}
	if reverse != nil {
		return nil, ErrReverseRequestExists
	}

	forward, err := e.connections.FindByPair(fromID, toID)
	if err != nil {
		return nil, fmt.Errorf("checking existing request: %w", err)
	}
	if forward != nil {
		return nil, ErrDuplicateRelation
	}

	record, err := e.connections.Create(fromID, toID, status)
	if err != nil {
		// A concurrent insert can beat the checks above; the pair-key
		// constraint rejects ours. Re-read to report which direction won.
		if reverse, rerr := e.connections.FindByPair(toID, fromID); rerr == nil && reverse != nil {
			return nil, ErrReverseRequestExists
		}
		if forward, rerr := e.connections.FindByPair(fromID, toID); rerr == nil && forward != nil {
			return nil, ErrDuplicateRelation
		}
		return nil, fmt.Errorf("creating request: %w", err)
	}
	return record, nil
}

// ReviewRequest accepts or rejects a pending request addressed to the
// reviewer. Only requests in the interested state can be reviewed, exactly
// once.
func (e *Engine) ReviewRequest(reviewerID, fromID uint, decision models.RequestStatus) (*models.ConnectionRequest, error) {
	if decision != models.StatusAccepted && decision != models.StatusRejected {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, decision)
	}

	record, err := e.connections.FindByPair(fromID, reviewerID)
	if err != nil {
		return nil, fmt.Errorf("looking up request: %w", err)
	}
	if record == nil {
		return nil, ErrRequestNotFound
	}

	if record.Status != models.StatusInterested {
		return nil, ErrAlreadyReviewed
	}

	exists, err := e.users.Exists(fromID)
	if err != nil {
		return nil, fmt.Errorf("checking sender: %w", err)
	}
	if !exists {
		// The sender was deleted after sending.
		return nil, ErrUserNotFound
	}

	if fromID == reviewerID {
		return nil, ErrSelfReview
	}

	if err := e.connections.UpdateStatus(record, decision); err != nil {
		return nil, fmt.Errorf("updating request: %w", err)
	}
	record.Status = decision
	return record, nil
}

// GetFeed returns the page of users the caller has never interacted with.
// Exclusion is status-agnostic: any record involving the caller, in either
// direction and in any state, removes the other party from the feed.
func (e *Engine) GetFeed(userID uint, page, pageSize int) (*FeedPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	involving, err := e.connections.FindAllInvolving(userID)
	if err != nil {
		return nil, fmt.Errorf("loading relationship set: %w", err)
	}

	seen := map[uint]bool{userID: true}
	excluded := []uint{userID}
	for _, r := range involving {
		for _, id := range []uint{r.FromUserID, r.ToUserID} {
			if !seen[id] {
				seen[id] = true
				excluded = append(excluded, id)
			}
		}
	}

	total, err := e.users.CountExcluding(excluded)
	if err != nil {
		return nil, fmt.Errorf("counting candidates: %w", err)
	}

	items, err := e.users.FindExcluding(excluded, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, fmt.Errorf("loading candidates: %w", err)
	}

	return &FeedPage{
		Items:       items,
		Page:        page,
		PageSize:    pageSize,
		TotalCount:  total,
		TotalPages:  (int(total) + pageSize - 1) / pageSize,
		HasNextPage: int64(page*pageSize) < total,
	}, nil
}

// IncomingRequests returns the pending requests addressed to the user, with
// the sender's profile attached.
func (e *Engine) IncomingRequests(userID uint) ([]models.ConnectionRequest, error) {
	records, err := e.connections.FindIncoming(userID, models.StatusInterested)
	if err != nil {
		return nil, fmt.Errorf("loading incoming requests: %w", err)
	}
	return records, nil
}

// Connections returns the profiles of everyone the user holds an accepted
// connection with.
func (e *Engine) Connections(userID uint) ([]models.User, error) {
	records, err := e.connections.FindAccepted(userID)
	if err != nil {
		return nil, fmt.Errorf("loading connections: %w", err)
	}

	counterparts := make([]models.User, 0, len(records))
	for _, r := range records {
		if r.FromUserID == userID {
			counterparts = append(counterparts, r.ToUser)
		} else {
			counterparts = append(counterparts, r.FromUser)
		}
	}
	return counterparts, nil
}

// RemoveConnection deletes the accepted connection between the user and the
// other party, whichever direction it was created in. This is the only way a
// record is removed outside of cascading user deletion, and it frees the pair
// to send fresh requests to each other.
func (e *Engine) RemoveConnection(userID, otherID uint) error {
	record, err := e.connections.FindByPair(userID, otherID)
	if err != nil {
		return fmt.Errorf("looking up connection: %w", err)
	}
	if record == nil || record.Status != models.StatusAccepted {
		record, err = e.connections.FindByPair(otherID, userID)
		if err != nil {
			return fmt.Errorf("looking up connection: %w", err)
		}
	}
	if record == nil || record.Status != models.StatusAccepted {
		return ErrConnectionNotFound
	}

	if err := e.connections.Delete(record); err != nil {
		return fmt.Errorf("deleting connection: %w", err)
	}
	return nil
}
