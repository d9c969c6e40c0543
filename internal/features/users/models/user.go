package users_models

import (
	"time"
)

type User struct {
	ID             uint      `json:"id"             gorm:"column:id;primaryKey"`
	Username       string    `json:"username"       gorm:"column:username;uniqueIndex"`
	Email          string    `json:"email"          gorm:"column:email"`
	HashedPassword string    `json:"-"              gorm:"column:hashed_password"`
	DateOfBirth    time.Time `json:"dateOfBirth"    gorm:"column:date_of_birth"`
	CanBeContacted bool      `json:"canBeContacted" gorm:"column:can_be_contacted"`
	CanShareData   bool      `json:"canShareData"   gorm:"column:can_share_data"`
	CreatedAt      time.Time `json:"createdTime"    gorm:"column:created_time"`
}

func (User) TableName() string {
	return "users"
}

// AgeAt reports the user's age in full years at the given moment.
func (u *User) AgeAt(now time.Time) int {
	age := now.Year() - u.DateOfBirth.Year()

	birthdayThisYear := time.Date(
		now.Year(), u.DateOfBirth.Month(), u.DateOfBirth.Day(),
		0, 0, 0, 0, time.UTC,
	)
	if now.Before(birthdayThisYear) {
		age--
	}

	return age
}
