package models

import (
	"time"

	"gorm.io/gorm"
)

type PaymentMethod string

const (
	PaymentMethodCard PaymentMethod = "card"
	PaymentMethodCash PaymentMethod = "cash"
	PaymentMethodUPI  PaymentMethod = "UPI"
)

const (
	PaymentStatusCompleted = "Completed"
	PaymentReferenceNone   = "N/A"
)

// Payment records money received against a booking. bookingId is a value
// reference only; the booking is not required to exist.
type Payment struct {
	ID          string        `json:"id" gorm:"primaryKey" validate:"required"`
	BookingID   string        `json:"bookingId" validate:"required"`
	Amount      float64       `json:"amount" validate:"required,min=1"`
	Method      PaymentMethod `json:"method" validate:"required,oneof=card cash UPI"`
	Reference   string        `json:"reference" validate:"required"`
	PaymentDate Date          `json:"paymentDate" validate:"required"`
	Status      string        `json:"status" validate:"required"`
	CreatedAt   time.Time     `json:"createdAt"`
}

func (Payment) TableName() string {
	return "payments"
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.Reference == "" {
		p.Reference = PaymentReferenceNone
	}
	if p.Status == "" {
		p.Status = PaymentStatusCompleted
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	return Validate(p)
}

// PaymentUpdate carries the fields a partial payment update may change.
type PaymentUpdate struct {
	BookingID   *string        `json:"bookingId"`
	Amount      *float64       `json:"amount"`
	Method      *PaymentMethod `json:"method"`
	Reference   *string        `json:"reference"`
	PaymentDate *Date          `json:"paymentDate"`
	Status      *string        `json:"status"`
}

func (u PaymentUpdate) Apply(p *Payment) {
	if u.BookingID != nil {
		p.BookingID = *u.BookingID
	}
	if u.Amount != nil {
		p.Amount = *u.Amount
	}
	if u.Method != nil {
		p.Method = *u.Method
	}
	if u.Reference != nil {
		p.Reference = *u.Reference
	}
	if u.PaymentDate != nil {
		p.PaymentDate = *u.PaymentDate
	}
	if u.Status != nil {
		p.Status = *u.Status
	}
}
