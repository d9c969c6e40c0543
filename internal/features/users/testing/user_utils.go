package users_testing

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	users_dto "trackdesk/internal/features/users/dto"
	users_models "trackdesk/internal/features/users/models"
	users_repositories "trackdesk/internal/features/users/repositories"
	users_services "trackdesk/internal/features/users/services"
)

func CreateTestUser() *users_dto.SignInResponseDTO {
	username := fmt.Sprintf("user-%s", uuid.NewString()[:8])

	user := &users_models.User{
		Username:       username,
		Email:          username + "@test.com",
		HashedPassword: "$2a$10$test",
		DateOfBirth:    time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		CanBeContacted: true,
		CanShareData:   false,
		CreatedAt:      time.Now().UTC(),
	}

	userRepository := &users_repositories.UserRepository{}
	if err := userRepository.CreateUser(user); err != nil {
		panic(err)
	}

	response, err := users_services.GetUserService().GenerateAccessToken(user)
	if err != nil {
		panic(err)
	}

	return response
}

func GetTestUser(userID uint) *users_models.User {
	userRepository := &users_repositories.UserRepository{}

	user, err := userRepository.GetUserByID(userID)
	if err != nil {
		panic(err)
	}

	return user
}
