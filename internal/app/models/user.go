package models

import (
	"strings"
	"time"
)

type User struct {
	ID          string     `bson:"_id,omitempty"`
	FirstName   string     `bson:"firstName"`
	LastName    string     `bson:"lastName"`
	Email       string     `bson:"email"`
	Password    string     `bson:"password"`
	Role        string     `bson:"role"`
	Gender      string     `bson:"gender,omitempty"`
	DateOfBirth string     `bson:"dateOfBirth,omitempty"`
	PhoneNumber string     `bson:"phoneNumber,omitempty"`
	LastLoginAt *time.Time `bson:"lastLoginAt,omitempty"`
	TimeModel   `bson:",inline"`
}

func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
