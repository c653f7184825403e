package store_test

import (
	"path/filepath"
	"testing"

	"devconnect/backend/internal/models"
	"devconnect/backend/internal/store"

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

func TestPairKeyFor(t *testing.T) {
	assert.Equal(t, "3:7", models.PairKeyFor(3, 7))
	assert.Equal(t, "3:7", models.PairKeyFor(7, 3))
	assert.Equal(t, "5:5", models.PairKeyFor(5, 5))
}

// The unordered pair key rejects a second record for the pair in either
// direction. This is what closes the concurrent A->B/B->A race.
func TestCreateEnforcesPairUniqueness(t *testing.T) {
	db := newTestDB(t)
	conns := store.NewConnectionStore(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	_, err := conns.Create(alice, bob, models.StatusInterested)
	require.NoError(t, err)

	_, err = conns.Create(alice, bob, models.StatusIgnored)
	assert.Error(t, err)

	_, err = conns.Create(bob, alice, models.StatusInterested)
	assert.Error(t, err)
}

func TestFindByPairIsDirectional(t *testing.T) {
	db := newTestDB(t)
	conns := store.NewConnectionStore(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	_, err := conns.Create(alice, bob, models.StatusInterested)
	require.NoError(t, err)

	forward, err := conns.FindByPair(alice, bob)
	require.NoError(t, err)
	require.NotNil(t, forward)
	assert.Equal(t, models.StatusInterested, forward.Status)

	reverse, err := conns.FindByPair(bob, alice)
	require.NoError(t, err)
	assert.Nil(t, reverse)
}

func TestFindIncomingFiltersByStatus(t *testing.T) {
	db := newTestDB(t)
	conns := store.NewConnectionStore(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	carol := createUser(t, db, "carol")

	_, err := conns.Create(alice, carol, models.StatusInterested)
	require.NoError(t, err)
	_, err = conns.Create(bob, carol, models.StatusIgnored)
	require.NoError(t, err)

	all, err := conns.FindIncoming(carol)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	pending, err := conns.FindIncoming(carol, models.StatusInterested)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, alice, pending[0].FromUserID)
	assert.Equal(t, "alice", pending[0].FromUser.Nickname)
}

func TestFindAllInvolvingSpansBothDirections(t *testing.T) {
	db := newTestDB(t)
	conns := store.NewConnectionStore(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	carol := createUser(t, db, "carol")

	_, err := conns.Create(alice, bob, models.StatusInterested)
	require.NoError(t, err)
	_, err = conns.Create(carol, alice, models.StatusIgnored)
	require.NoError(t, err)
	_, err = conns.Create(bob, carol, models.StatusInterested)
	require.NoError(t, err)

	involving, err := conns.FindAllInvolving(alice)
	require.NoError(t, err)
	assert.Len(t, involving, 2)
}

func TestFindAcceptedPreloadsBothParties(t *testing.T) {
	db := newTestDB(t)
	conns := store.NewConnectionStore(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	record, err := conns.Create(alice, bob, models.StatusInterested)
	require.NoError(t, err)

	accepted, err := conns.FindAccepted(alice)
	require.NoError(t, err)
	assert.Empty(t, accepted)

	require.NoError(t, conns.UpdateStatus(record, models.StatusAccepted))

	accepted, err = conns.FindAccepted(alice)
	require.NoError(t, err)
	require.Len(t, accepted, 1)
	assert.Equal(t, "alice", accepted[0].FromUser.Nickname)
	assert.Equal(t, "bob", accepted[0].ToUser.Nickname)
}

func TestDeleteRemovesRecord(t *testing.T) {
	db := newTestDB(t)
	conns := store.NewConnectionStore(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	record, err := conns.Create(alice, bob, models.StatusAccepted)
	require.NoError(t, err)
	require.NoError(t, conns.Delete(record))

	found, err := conns.FindByPair(alice, bob)
	require.NoError(t, err)
	assert.Nil(t, found)

	// The pair key is free again.
	_, err = conns.Create(bob, alice, models.StatusInterested)
	require.NoError(t, err)
}

func TestUserStoreFindExcluding(t *testing.T) {
	db := newTestDB(t)
	users := store.NewUserStore(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	carol := createUser(t, db, "carol")
	dave := createUser(t, db, "dave")

	count, err := users.CountExcluding([]uint{alice, carol})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	page, err := users.FindExcluding([]uint{alice, carol}, 0, 10)
	require.NoError(t, err)
	require.Len(t, page, 2)
	// Ordered by ID so paging stays deterministic.
	assert.Equal(t, bob, page[0].ID)
	assert.Equal(t, dave, page[1].ID)

	second, err := users.FindExcluding([]uint{alice, carol}, 1, 10)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, dave, second[0].ID)
}

func TestDeleteWithRelationsPurgesEdges(t *testing.T) {
	db := newTestDB(t)
	users := store.NewUserStore(db)
	conns := store.NewConnectionStore(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	carol := createUser(t, db, "carol")

	_, err := conns.Create(alice, bob, models.StatusAccepted)
	require.NoError(t, err)
	_, err = conns.Create(carol, alice, models.StatusInterested)
	require.NoError(t, err)
	_, err = conns.Create(bob, carol, models.StatusInterested)
	require.NoError(t, err)

	require.NoError(t, users.DeleteWithRelations(alice))

	gone, err := users.FindByID(alice)
	require.NoError(t, err)
	assert.Nil(t, gone)

	involving, err := conns.FindAllInvolving(alice)
	require.NoError(t, err)
	assert.Empty(t, involving, "no dangling edges may remain")

	// Unrelated records survive.
	remaining, err := conns.FindAllInvolving(carol)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}
