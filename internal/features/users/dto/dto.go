package users_dto

import (
	"time"
)

type SignUpRequestDTO struct {
	Username       string `json:"username"       binding:"required,min=1,max=150"`
	Email          string `json:"email"          binding:"required,email"`
	Password       string `json:"password"       binding:"required,min=8"`
	DateOfBirth    string `json:"dateOfBirth"    binding:"required"` // YYYY-MM-DD
	CanBeContacted bool   `json:"canBeContacted"`
	CanShareData   bool   `json:"canShareData"`
}

type SignInRequestDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SignInResponseDTO struct {
	UserID   uint   `json:"userId"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

type UpdateProfileRequestDTO struct {
	Email          *string `json:"email"          binding:"omitempty,email"`
	Password       *string `json:"password"       binding:"omitempty,min=8"`
	DateOfBirth    *string `json:"dateOfBirth"`
	CanBeContacted *bool   `json:"canBeContacted"`
	CanShareData   *bool   `json:"canShareData"`
}

type UserProfileResponseDTO struct {
	ID             uint      `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	DateOfBirth    time.Time `json:"dateOfBirth"`
	CanBeContacted bool      `json:"canBeContacted"`
	CanShareData   bool      `json:"canShareData"`
	CreatedAt      time.Time `json:"createdTime"`
}

type UserSummaryDTO struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}
