package models

import (
	"regexp"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var phonePattern = regexp.MustCompile(`^\+998\d{9}$`)

type User struct {
	gorm.Model
	Name         string `json:"name" gorm:"column:name;not null"`
	PhoneNumber  string `json:"phoneNumber" gorm:"column:phone_number;unique;not null"`
	Email        string `json:"email" gorm:"column:email;unique;not null"`
	PasswordHash string `json:"-" gorm:"column:password_hash;not null"`
	IsStaff      bool   `json:"isStaff" gorm:"column:is_staff;default:false"`
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}

// ValidPhoneNumber checks the +998XXXXXXXXX format used for login identifiers.
func ValidPhoneNumber(phone string) bool {
	return phonePattern.MatchString(phone)
}

func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}
