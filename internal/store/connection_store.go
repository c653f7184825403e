package store

import (
	"errors"

	"devconnect/backend/internal/models"

	"gorm.io/gorm"
)

// ConnectionStore handles durable storage and lookup of connection requests.
type ConnectionStore struct {
	db *gorm.DB
}

// NewConnectionStore creates a ConnectionStore backed by the given database.
func NewConnectionStore(db *gorm.DB) *ConnectionStore {
	return &ConnectionStore{db: db}
}

// Create inserts a new directed record for the ordered pair. The unique index
// on PairKey rejects the insert if any record for the unordered pair already
// exists, in either direction.
func (s *ConnectionStore) Create(fromID, toID uint, status models.RequestStatus) (*models.ConnectionRequest, error) {
	record := models.ConnectionRequest{
		FromUserID: fromID,
		ToUserID:   toID,
		PairKey:    models.PairKeyFor(fromID, toID),
		Status:     status,
	}
	if err := s.db.Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// FindByPair returns the record for the ordered pair, or nil if none exists.
func (s *ConnectionStore) FindByPair(fromID, toID uint) (*models.ConnectionRequest, error) {
	var record models.ConnectionRequest
	err := s.db.Where("from_user_id = ? AND to_user_id = ?", fromID, toID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// FindIncoming returns all records addressed to the user, optionally filtered
// by status. The sending user is preloaded for profile projection.
func (s *ConnectionStore) FindIncoming(toID uint, status ...models.RequestStatus) ([]models.ConnectionRequest, error) {
	query := s.db.Where("to_user_id = ?", toID).Preload("FromUser.Skills")
	if len(status) > 0 {
		query = query.Where("status IN ?", status)
	}

	var records []models.ConnectionRequest
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// FindAllInvolving returns every record where the user is either party,
// regardless of status. Used to build the feed exclusion set.
func (s *ConnectionStore) FindAllInvolving(userID uint) ([]models.ConnectionRequest, error) {
	var records []models.ConnectionRequest
	err := s.db.Where("from_user_id = ? OR to_user_id = ?", userID, userID).Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// FindAccepted returns all accepted records where the user is either party,
// with both users preloaded.
func (s *ConnectionStore) FindAccepted(userID uint) ([]models.ConnectionRequest, error) {
	var records []models.ConnectionRequest
	err := s.db.Where("(from_user_id = ? OR to_user_id = ?) AND status = ?", userID, userID, models.StatusAccepted).
		Preload("FromUser.Skills").
		Preload("ToUser.Skills").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// UpdateStatus persists a status transition. Legality of the transition is the
// caller's responsibility.
func (s *ConnectionStore) UpdateStatus(record *models.ConnectionRequest, status models.RequestStatus) error {
	return s.db.Model(record).Update("status", status).Error
}

// Delete removes a record. Only used for accepted-connection removal and
// cascading user deletion.
func (s *ConnectionStore) Delete(record *models.ConnectionRequest) error {
	return s.db.Where("from_user_id = ? AND to_user_id = ?", record.FromUserID, record.ToUserID).
		Delete(&models.ConnectionRequest{}).Error
}
