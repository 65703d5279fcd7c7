package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/asharma-dev/lpg-booking-backend/internal/models"
)

// BookingsByConsumer lists a consumer's bookings in insertion order.
func (s *Store) BookingsByConsumer(consumerNo string) ([]models.Booking, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	bookings := []models.Booking{}
	err := s.db.Where("consumer_no = ?", consumerNo).Order("created_at").Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// GetBooking looks a booking up by its id and owning consumer together.
func (s *Store) GetBooking(bookingID, consumerNo string) (*models.Booking, error) {
	return findOne[models.Booking](s, func(db *gorm.DB) *gorm.DB {
		return db.Where("id = ? AND consumer_no = ?", bookingID, consumerNo)
	})
}

func (s *Store) CreateBooking(booking *models.Booking) error {
	if err := s.guard(); err != nil {
		return err
	}
	return classify(s.db.Create(booking).Error)
}

// UpdateBooking merges the partial update into the stored booking and runs
// the merged record through the same validation used at create time.
func (s *Store) UpdateBooking(id string, update models.BookingUpdate) error {
	if err := s.guard(); err != nil {
		return err
	}

	var booking models.Booking
	if err := s.db.Where("id = ?", id).First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	update.Apply(&booking)
	if err := models.Validate(&booking); err != nil {
		return err
	}
	return classify(s.db.Save(&booking).Error)
}
