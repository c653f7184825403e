package workflow_test

import (
	"fmt"
	"path/filepath"
	"testing"

	"devconnect/backend/internal/models"
	"devconnect/backend/internal/workflow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Skill{}, &models.ConnectionRequest{}))
	return db
}

func createUser(t *testing.T, db *gorm.DB, nickname string) uint {
	t.Helper()

	user := models.User{
		Nickname:     nickname,
		Email:        nickname + "@example.com",
		PasswordHash: "not-a-real-hash",
	}
	require.NoError(t, db.Create(&user).Error)
	return user.ID
}

func TestSendRequestCreatesRecord(t *testing.T) {
	db := newTestDB(t)
	engine := workflow.New(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	record, err := engine.SendRequest(alice, bob, models.StatusInterested)
	require.NoError(t, err)
	assert.Equal(t, alice, record.FromUserID)
	assert.Equal(t, bob, record.ToUserID)
	assert.Equal(t, models.StatusInterested, record.Status)

	incoming, err := engine.IncomingRequests(bob)
	require.NoError(t, err)
	require.Len(t, incoming, 1)
	assert.Equal(t, alice, incoming[0].FromUserID)
	assert.Equal(t, "alice", incoming[0].FromUser.Nickname)
}

func TestSendRequestInvalidStatus(t *testing.T) {
	db := newTestDB(t)
	engine := workflow.New(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	for _, status := range []models.RequestStatus{models.StatusAccepted, models.StatusRejected, "nonsense"} {
		_, err := engine.SendRequest(alice, bob, status)
		assert.ErrorIs(t, err, workflow.ErrInvalidStatus, "status %q", status)
	}
}

func TestSendRequestUnknownTarget(t *testing.T) {
	db := newTestDB(t)
	engine := workflow.New(db)
	alice := createUser(t, db, "alice")

	_, err := engine.SendRequest(alice, alice+999, models.StatusInterested)
	assert.ErrorIs(t, err, workflow.ErrUserNotFound)
}

func TestSendRequestToSelf(t *testing.T) {
	db := newTestDB(t)
	engine := workflow.New(db)
	alice := createUser(t, db, "alice")

	_, err := engine.SendRequest(alice, alice, models.StatusInterested)
	assert.ErrorIs(t, err, workflow.ErrSelfRequest)
}

// After A->B succeeds, any further request in either direction must fail:
// duplicate for A, reverse for B.
func TestSendRequestBlocksBothDirections(t *testing.T) {
	db := newTestDB(t)
	engine := workflow.New(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	_, err := engine.SendRequest(alice, bob, models.StatusInterested)
	require.NoError(t, err)

	_, err = engine.SendRequest(alice, bob, models.StatusInterested)
	assert.ErrorIs(t, err, workflow.ErrDuplicateRelation)
	_, err = engine.SendRequest(alice, bob, models.StatusIgnored)
	assert.ErrorIs(t, err, workflow.ErrDuplicateRelation)

	_, err = engine.SendRequest(bob, alice, models.StatusInterested)
	assert.ErrorIs(t, err, workflow.ErrReverseRequestExists)
	_, err = engine.SendRequest(bob, alice, models.StatusIgnored)
	assert.ErrorIs(t, err, workflow.ErrReverseRequestExists)
}

// A rejected record keeps blocking new requests in both directions: the
// exclusion is status-agnostic and the unordered pair key still exists.
func TestSendRequestBlockedAfterRejection(t *testing.T) {
	db := newTestDB(t)
	engine := workflow.New(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	_, err := engine.SendRequest(alice, bob, models.StatusInterested)
	require.NoError(t, err)
	_, err = engine.ReviewRequest(bob, alice, models.StatusRejected)
	require.NoError(t, err)

	_, err = engine.SendRequest(bob, alice, models.StatusInterested)
	assert.ErrorIs(t, err, workflow.ErrReverseRequestExists)
	_, err = engine.SendRequest(alice, bob, models.StatusInterested)
	assert.ErrorIs(t, err, workflow.ErrDuplicateRelation)
}

func TestReviewRequestAccept(t *testing.T) {
	db := newTestDB(t)
	engine := workflow.New(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	_, err := engine.SendRequest(alice, bob, models.StatusInterested)
	require.NoError(t, err)

	record, err := engine.ReviewRequest(bob, alice, models.StatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, record.Status)

	aliceConns, err := engine.Connections(alice)
	require.NoError(t, err)
	require.Len(t, aliceConns, 1)
	assert.Equal(t, bob, aliceConns[0].ID)

	bobConns, err := engine.Connections(bob)
	require.NoError(t, err)
	require.Len(t, bobConns, 1)
	assert.Equal(t, alice, bobConns[0].ID)

	// Accepted requests leave the pending queue.
	incoming, err := engine.IncomingRequests(bob)
	require.NoError(t, err)
	assert.Empty(t, incoming)
}

func TestReviewRequestOnlyOnce(t *testing.T) {
	db := newTestDB(t)
	engine := workflow.New(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	_, err := engine.SendRequest(alice, bob, models.StatusInterested)
	require.NoError(t, err)

	_, err = engine.ReviewRequest(bob, alice, models.StatusAccepted)
	require.NoError(t, err)

	_, err = engine.ReviewRequest(bob, alice, models.StatusAccepted)
	assert.ErrorIs(t, err, workflow.ErrAlreadyReviewed)
	_, err = engine.ReviewRequest(bob, alice, models.StatusRejected)
	assert.ErrorIs(t, err, workflow.ErrAlreadyReviewed)

	// Status did not flip on the failed attempts.
	conns, err := engine.Connections(bob)
	require.NoError(t, err)
	assert.Len(t, conns, 1)
}

func TestReviewRequestNotFound(t *testing.T) {
	db := newTestDB(t)
	engine := workflow.New(db)
	alice := createUser(t, db, "alice")
	carol := createUser(t, db, "carol")

	_, err := engine.ReviewRequest(alice, carol, models.StatusAccepted)
	assert.ErrorIs(t, err, workflow.ErrRequestNotFound)
}

func TestReviewRequestInvalidDecision(t *testing.T) {
	db := newTestDB(t)
	engine := workflow.New(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	_, err := engine.SendRequest(alice, bob, models.StatusInterested)
	require.NoError(t, err)

	for _, decision := range []models.RequestStatus{models.StatusInterested, models.StatusIgnored, "maybe"} {
		_, err := engine.ReviewRequest(bob, alice, decision)
		assert.ErrorIs(t, err, workflow.ErrInvalidStatus, "decision %q", decision)
	}
}

func TestReviewIgnoredRequestNotReviewable(t *testing.T) {
	db := newTestDB(t)
	engine := workflow.New(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	_, err := engine.SendRequest(alice, bob, models.StatusIgnored)
	require.NoError(t, err)

	// Ignored requests never show up for review and can never transition.
	incoming, err := engine.IncomingRequests(bob)
	require.NoError(t, err)
	assert.Empty(t, incoming)

	_, err = engine.ReviewRequest(bob, alice, models.StatusAccepted)
	assert.ErrorIs(t, err, workflow.ErrAlreadyReviewed)
}

func TestReviewRequestSenderDeleted(t *testing.T) {
	db := newTestDB(t)
	engine := workflow.New(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	_, err := engine.SendRequest(alice, bob, models.StatusInterested)
	require.NoError(t, err)

	// Delete the sender but leave the record behind.
	require.NoError(t, db.Delete(&models.User{}, alice).Error)

	_, err = engine.ReviewRequest(bob, alice, models.StatusAccepted)
	assert.ErrorIs(t, err, workflow.ErrUserNotFound)
}

func TestFeedExcludesEveryInvolvedUser(t *testing.T) {
	db := newTestDB(t)
	engine := workflow.New(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	carol := createUser(t, db, "carol")
	dave := createUser(t, db, "dave")
	erin := createUser(t, db, "erin")

	// alice<->bob accepted, alice->carol ignored, dave->alice pending.
	_, err := engine.SendRequest(alice, bob, models.StatusInterested)
	require.NoError(t, err)
	_, err = engine.ReviewRequest(bob, alice, models.StatusAccepted)
	require.NoError(t, err)
	_, err = engine.SendRequest(alice, carol, models.StatusIgnored)
	require.NoError(t, err)
	_, err = engine.SendRequest(dave, alice, models.StatusInterested)
	require.NoError(t, err)

	feed, err := engine.GetFeed(alice, 1, 10)
	require.NoError(t, err)
	require.Len(t, feed.Items, 1)
	assert.Equal(t, erin, feed.Items[0].ID)
	assert.Equal(t, int64(1), feed.TotalCount)

	// The exclusion works from both sides of the accepted edge.
	feed, err = engine.GetFeed(bob, 1, 10)
	require.NoError(t, err)
	for _, u := range feed.Items {
		assert.NotEqual(t, alice, u.ID)
	}
}

func TestFeedPaginationIsAPartition(t *testing.T) {
	db := newTestDB(t)
	engine := workflow.New(db)
	viewer := createUser(t, db, "viewer")

	candidates := map[uint]bool{}
	for i := 0; i < 25; i++ {
		candidates[createUser(t, db, fmt.Sprintf("candidate%02d", i))] = true
	}

	feed, err := engine.GetFeed(viewer, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(25), feed.TotalCount)
	assert.Equal(t, 3, feed.TotalPages)
	assert.True(t, feed.HasNextPage)
	assert.Len(t, feed.Items, 10)

	seen := map[uint]bool{}
	for page := 1; page <= feed.TotalPages; page++ {
		p, err := engine.GetFeed(viewer, page, 10)
		require.NoError(t, err)
		for _, u := range p.Items {
			assert.False(t, seen[u.ID], "user %d appeared twice", u.ID)
			assert.True(t, candidates[u.ID], "user %d is not a candidate", u.ID)
			seen[u.ID] = true
		}
		assert.Equal(t, page < feed.TotalPages, p.HasNextPage)
	}
	assert.Len(t, seen, 25)
}

func TestFeedBeyondLastPageIsEmpty(t *testing.T) {
	db := newTestDB(t)
	engine := workflow.New(db)
	viewer := createUser(t, db, "viewer")
	createUser(t, db, "only-candidate")

	feed, err := engine.GetFeed(viewer, 5, 10)
	require.NoError(t, err)
	assert.Empty(t, feed.Items)
	assert.Equal(t, int64(1), feed.TotalCount)
	assert.False(t, feed.HasNextPage)
}

func TestRemoveConnection(t *testing.T) {
	db := newTestDB(t)
	engine := workflow.New(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	_, err := engine.SendRequest(alice, bob, models.StatusInterested)
	require.NoError(t, err)
	_, err = engine.ReviewRequest(bob, alice, models.StatusAccepted)
	require.NoError(t, err)

	// The receiver can remove the connection even though the record points
	// the other way.
	require.NoError(t, engine.RemoveConnection(bob, alice))

	conns, err := engine.Connections(alice)
	require.NoError(t, err)
	assert.Empty(t, conns)

	// The pair is free to start over.
	_, err = engine.SendRequest(bob, alice, models.StatusInterested)
	require.NoError(t, err)

	err = engine.RemoveConnection(alice, bob)
	assert.ErrorIs(t, err, workflow.ErrConnectionNotFound)
}

func TestRemoveConnectionRequiresAccepted(t *testing.T) {
	db := newTestDB(t)
	engine := workflow.New(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	_, err := engine.SendRequest(alice, bob, models.StatusInterested)
	require.NoError(t, err)

	err = engine.RemoveConnection(alice, bob)
	assert.ErrorIs(t, err, workflow.ErrConnectionNotFound)
	err = engine.RemoveConnection(bob, alice)
	assert.ErrorIs(t, err, workflow.ErrConnectionNotFound)
}
