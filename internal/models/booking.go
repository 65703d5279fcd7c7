package models

import (
	"time"

	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "Pending"
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusDelivered BookingStatus = "Delivered"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

type CylinderType string

const (
	CylinderDomestic   CylinderType = "14.2kg"
	CylinderSmall      CylinderType = "5kg"
	CylinderCommercial CylinderType = "19kg"
)

// Booking is a cylinder refill order placed by a consumer. The id is
// supplied by the caller and must be unique.
type Booking struct {
	ID           string        `json:"id" gorm:"primaryKey" validate:"required"`
	ConsumerNo   string        `json:"consumerNo" validate:"required"`
	Mobile       string        `json:"mobile" validate:"required,digits=10"`
	CylinderType CylinderType  `json:"cylinderType" validate:"required,oneof=14.2kg 5kg 19kg"`
	Quantity     int           `json:"quantity" validate:"required,min=1,max=5"`
	DeliveryDate Date          `json:"deliveryDate" validate:"required"`
	Status       BookingStatus `json:"status" validate:"required,oneof=Pending Confirmed Delivered Cancelled"`
	CreatedAt    time.Time     `json:"createdAt"`
}

func (Booking) TableName() string {
	return "bookings"
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.Status == "" {
		b.Status = BookingStatusPending
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	return Validate(b)
}

// BookingUpdate carries the fields a partial booking update may change.
// Nil pointers leave the stored value untouched.
type BookingUpdate struct {
	ConsumerNo   *string        `json:"consumerNo"`
	Mobile       *string        `json:"mobile"`
	CylinderType *CylinderType  `json:"cylinderType"`
	Quantity     *int           `json:"quantity"`
	DeliveryDate *Date          `json:"deliveryDate"`
	Status       *BookingStatus `json:"status"`
}

// Apply merges the update into an existing booking.
func (u BookingUpdate) Apply(b *Booking) {
	if u.ConsumerNo != nil {
		b.ConsumerNo = *u.ConsumerNo
	}
	if u.Mobile != nil {
		b.Mobile = *u.Mobile
	}
	if u.CylinderType != nil {
		b.CylinderType = *u.CylinderType
	}
	if u.Quantity != nil {
		b.Quantity = *u.Quantity
	}
	if u.DeliveryDate != nil {
		b.DeliveryDate = *u.DeliveryDate
	}
	if u.Status != nil {
		b.Status = *u.Status
	}
}
