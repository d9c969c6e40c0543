package users_services

import (
	users_repositories "trackdesk/internal/features/users/repositories"
)

var userRepository = &users_repositories.UserRepository{}
var secretKeyRepository = &users_repositories.SecretKeyRepository{}
var tokenDenylistRepository = &users_repositories.TokenDenylistRepository{}

var userService = &UserService{
	userRepository:          userRepository,
	secretKeyRepository:     secretKeyRepository,
	tokenDenylistRepository: tokenDenylistRepository,
}

func GetUserService() *UserService {
	return userService
}
