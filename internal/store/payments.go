package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/asharma-dev/lpg-booking-backend/internal/models"
)

// PaymentsByBookings lists payments whose bookingId falls in the given set.
func (s *Store) PaymentsByBookings(bookingIDs []string) ([]models.Payment, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	payments := []models.Payment{}
	err := s.db.Where("booking_id IN ?", bookingIDs).Order("created_at").Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (s *Store) CreatePayment(payment *models.Payment) error {
	if err := s.guard(); err != nil {
		return err
	}
	return classify(s.db.Create(payment).Error)
}

// UpdatePayment merges the partial update into the stored payment, with the
// same validate-on-merge behavior as bookings.
func (s *Store) UpdatePayment(id string, update models.PaymentUpdate) error {
	if err := s.guard(); err != nil {
		return err
	}

	var payment models.Payment
	if err := s.db.Where("id = ?", id).First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	update.Apply(&payment)
	if err := models.Validate(&payment); err != nil {
		return err
	}
	return classify(s.db.Save(&payment).Error)
}
