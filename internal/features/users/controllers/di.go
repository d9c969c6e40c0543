package users_controllers

import (
	"golang.org/x/time/rate"

	users_services "trackdesk/internal/features/users/services"
)

var userController = &UserController{
	userService:   users_services.GetUserService(),
	signinLimiter: rate.NewLimiter(rate.Limit(3), 3), // 3 RPS with burst of 3
}

func GetUserController() *UserController {
	return userController
}
