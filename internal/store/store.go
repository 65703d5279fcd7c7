package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/asharma-dev/lpg-booking-backend/internal/models"
)

// Store is the persistence gateway. It wraps the database handle created at
// startup and is injected into every handler; methods guard against use
// before the connection exists.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) guard() error {
	if s == nil || s.db == nil {
		return ErrStoreUnavailable
	}
	return nil
}

// findOne runs a query and reports absence as a nil result, never an error.
func findOne[T any](s *Store, query func(*gorm.DB) *gorm.DB) (*T, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	var rec T
	err := query(s.db).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Collections returns the full contents of every collection keyed by
// collection name, in a stable order. Used by the admin database view and
// the snapshot export.
func (s *Store) Collections() (map[string]interface{}, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}

	users, err := s.Users()
	if err != nil {
		return nil, err
	}
	bookings, err := s.Bookings()
	if err != nil {
		return nil, err
	}
	payments, err := s.Payments()
	if err != nil {
		return nil, err
	}
	feedback, err := s.Feedback()
	if err != nil {
		return nil, err
	}
	issues, err := s.DeliveryIssues()
	if err != nil {
		return nil, err
	}
	alerts, err := s.SOSAlerts()
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"users":          users,
		"bookings":       bookings,
		"payments":       payments,
		"feedback":       feedback,
		"deliveryIssues": issues,
		"sosAlerts":      alerts,
	}, nil
}

func (s *Store) Users() ([]models.User, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	users := []models.User{}
	if err := s.db.Order("registered_at").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Store) Bookings() ([]models.Booking, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	bookings := []models.Booking{}
	if err := s.db.Order("created_at").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *Store) Payments() ([]models.Payment, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	payments := []models.Payment{}
	if err := s.db.Order("created_at").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func (s *Store) Feedback() ([]models.Feedback, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	feedback := []models.Feedback{}
	if err := s.db.Order("created_at").Find(&feedback).Error; err != nil {
		return nil, err
	}
	return feedback, nil
}

func (s *Store) DeliveryIssues() ([]models.DeliveryIssue, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	issues := []models.DeliveryIssue{}
	if err := s.db.Order("created_at").Find(&issues).Error; err != nil {
		return nil, err
	}
	return issues, nil
}

func (s *Store) SOSAlerts() ([]models.SOSAlert, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	alerts := []models.SOSAlert{}
	if err := s.db.Order("created_at").Find(&alerts).Error; err != nil {
		return nil, err
	}
	return alerts, nil
}
