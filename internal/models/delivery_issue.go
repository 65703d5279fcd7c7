package models

import (
	"time"

	"gorm.io/gorm"
)

// IssueStatusReported is the initial status of a delivery issue. No endpoint
// transitions it further; the field exists for back-office tooling.
const IssueStatusReported = "Reported"

// DeliveryIssue is an append-only problem report filed against a booking.
type DeliveryIssue struct {
	ID          string    `json:"id" gorm:"primaryKey" validate:"required"`
	BookingID   string    `json:"bookingId" validate:"required"`
	ConsumerNo  string    `json:"consumerNo" validate:"required"`
	Description string    `json:"description" validate:"required"`
	Status      string    `json:"status" validate:"required"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (DeliveryIssue) TableName() string {
	return "deliveryIssues"
}

func (i *DeliveryIssue) BeforeCreate(tx *gorm.DB) error {
	if i.Status == "" {
		i.Status = IssueStatusReported
	}
	if i.CreatedAt.IsZero() {
		i.CreatedAt = time.Now()
	}
	return Validate(i)
}
