package models

import (
	"time"

	"gorm.io/gorm"
)

type MaritalStatus string

const (
	MaritalMarried   MaritalStatus = "Married"
	MaritalUnmarried MaritalStatus = "Unmarried"
)

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// UserStatusApproved is the registration status applied to new consumers.
const UserStatusApproved = "Approved"

// User is a registered LPG consumer. consumerNo and email are unique across
// the collection; the related* fields describe the family member the
// connection is held with.
type User struct {
	ConsumerNo       string        `json:"consumerNo" gorm:"primaryKey;column:consumer_no" validate:"required"`
	RequestNo        string        `json:"requestNo,omitempty"`
	Name             string        `json:"name" validate:"required"`
	Email            string        `json:"email" gorm:"uniqueIndex;not null" validate:"required,email"`
	DOB              Date          `json:"dob,omitempty" gorm:"column:dob"`
	Marital          MaritalStatus `json:"marital" validate:"required,oneof=Married Unmarried"`
	Mobile           string        `json:"mobile" validate:"required,digits=10"`
	Gender           Gender        `json:"gender" validate:"required,oneof=Male Female Other"`
	Nationality      string        `json:"nationality,omitempty"`
	Address          string        `json:"address,omitempty"`
	AppliedDate      Date          `json:"appliedDate,omitempty"`
	Related          string        `json:"related" validate:"required,oneof=Spouse Father"`
	RelatedFirstName string        `json:"relatedFirstName,omitempty"`
	RelatedLastName  string        `json:"relatedLastName,omitempty"`
	RelatedAddress   string        `json:"relatedAddress,omitempty"`
	City             string        `json:"city,omitempty"`
	Pin              string        `json:"pin" validate:"required,digits=6"`
	RegisteredAt     time.Time     `json:"registeredAt"`
	Status           string        `json:"status" validate:"required"`
}

func (User) TableName() string {
	return "users"
}

// BeforeCreate applies registration defaults and runs schema validation, so
// inserts are checked no matter which entry point produced the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.Status == "" {
		u.Status = UserStatusApproved
	}
	if u.RegisteredAt.IsZero() {
		u.RegisteredAt = time.Now()
	}
	return Validate(u)
}
