package models

import "gorm.io/gorm"

type ContactStatus string

const (
	ContactStatusNew      ContactStatus = "New"
	ContactStatusRead     ContactStatus = "Read"
	ContactStatusAnswered ContactStatus = "Answered"
)

func ValidContactStatus(s ContactStatus) bool {
	switch s {
	case ContactStatusNew, ContactStatusRead, ContactStatusAnswered:
		return true
	}
	return false
}

type ContactMessage struct {
	gorm.Model
	Name        string        `json:"name" gorm:"column:name;not null"`
	Email       string        `json:"email" gorm:"column:email;not null"`
	PhoneNumber string        `json:"phoneNumber" gorm:"column:phone_number;not null"`
	Subject     string        `json:"subject" gorm:"column:subject;not null"`
	Message     string        `json:"message" gorm:"column:message;not null"`
	Status      ContactStatus `json:"status" gorm:"column:status;default:New"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}
