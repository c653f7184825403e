package store

import (
	"errors"

	"devconnect/backend/internal/models"

	"gorm.io/gorm"
)

// UserStore answers lookups against the user directory.
type UserStore struct {
	db *gorm.DB
}

// NewUserStore creates a UserStore backed by the given database.
func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// FindByID returns the user with the given ID, or nil if none exists.
func (s *UserStore) FindByID(id uint) (*models.User, error) {
	var user models.User
	err := s.db.Preload("Skills").First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Exists reports whether a user with the given ID exists.
func (s *UserStore) Exists(id uint) (bool, error) {
	var count int64
	if err := s.db.Model(&models.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountExcluding counts users whose ID is not in the exclusion set.
func (s *UserStore) CountExcluding(excluded []uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.User{}).Where("id NOT IN ?", excluded).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// FindExcluding returns a page of users whose ID is not in the exclusion set,
// ordered by ID so pagination is deterministic across pages.
func (s *UserStore) FindExcluding(excluded []uint, offset, limit int) ([]models.User, error) {
	var users []models.User
	err := s.db.Where("id NOT IN ?", excluded).
		Order("id").
		Offset(offset).
		Limit(limit).
		Preload("Skills").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// DeleteWithRelations deletes a user and, in the same transaction, purges
// every connection record referencing them. Leaves no dangling edges behind.
func (s *UserStore) DeleteWithRelations(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("from_user_id = ? OR to_user_id = ?", id, id).
			Delete(&models.ConnectionRequest{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, id).Error
	})
}
