package models

import (
	"time"

	"gorm.io/gorm"
)

const SOSStatusSent = "Sent"

// SOSAlert is an emergency signal raised by a consumer, typically from the
// mobile front-end's panic button. Append-only.
type SOSAlert struct {
	ID         string    `json:"id" gorm:"primaryKey" validate:"required"`
	ConsumerNo string    `json:"consumerNo" validate:"required"`
	Mobile     string    `json:"mobile" validate:"required,digits=10"`
	Status     string    `json:"status" validate:"required"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (SOSAlert) TableName() string {
	return "sosAlerts"
}

func (a *SOSAlert) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = SOSStatusSent
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	return Validate(a)
}
