package store

import (
	"github.com/asharma-dev/lpg-booking-backend/internal/models"
)

func (s *Store) CreateFeedback(feedback *models.Feedback) error {
	if err := s.guard(); err != nil {
		return err
	}
	return classify(s.db.Create(feedback).Error)
}

func (s *Store) CreateDeliveryIssue(issue *models.DeliveryIssue) error {
	if err := s.guard(); err != nil {
		return err
	}
	return classify(s.db.Create(issue).Error)
}

func (s *Store) CreateSOSAlert(alert *models.SOSAlert) error {
	if err := s.guard(); err != nil {
		return err
	}
	return classify(s.db.Create(alert).Error)
}
