package store

import (
	"gorm.io/gorm"

	"github.com/asharma-dev/lpg-booking-backend/internal/models"
)

// GetUser looks a consumer up by consumer number and mobile together.
// Returns nil without error when no record matches.
func (s *Store) GetUser(consumerNo, mobile string) (*models.User, error) {
	return findOne[models.User](s, func(db *gorm.DB) *gorm.DB {
		return db.Where("consumer_no = ? AND mobile = ?", consumerNo, mobile)
	})
}

// GetUserByEmailOrMobile matches either field; used by the registration
// screen to detect an existing account.
func (s *Store) GetUserByEmailOrMobile(email, mobile string) (*models.User, error) {
	return findOne[models.User](s, func(db *gorm.DB) *gorm.DB {
		return db.Where("email = ? OR mobile = ?", email, mobile)
	})
}

func (s *Store) CreateUser(user *models.User) error {
	if err := s.guard(); err != nil {
		return err
	}
	return classify(s.db.Create(user).Error)
}
