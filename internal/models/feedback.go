package models

import (
	"time"

	"gorm.io/gorm"
)

type FeedbackCategory string

const (
	FeedbackServiceQuality FeedbackCategory = "Service Quality"
	FeedbackDelivery       FeedbackCategory = "Delivery"
	FeedbackPayment        FeedbackCategory = "Payment"
	FeedbackOther          FeedbackCategory = "Other"
)

// Feedback is an append-only consumer comment.
type Feedback struct {
	ID         string           `json:"id" gorm:"primaryKey" validate:"required"`
	ConsumerNo string           `json:"consumerNo" validate:"required"`
	Category   FeedbackCategory `json:"category" validate:"required,oneof='Service Quality' Delivery Payment Other"`
	Comment    string           `json:"comment" validate:"required"`
	CreatedAt  time.Time        `json:"createdAt"`
}

func (Feedback) TableName() string {
	return "feedback"
}

func (f *Feedback) BeforeCreate(tx *gorm.DB) error {
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now()
	}
	return Validate(f)
}
