package users_services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"trackdesk/internal/features/access"
	users_dto "trackdesk/internal/features/users/dto"
	users_interfaces "trackdesk/internal/features/users/interfaces"
	users_models "trackdesk/internal/features/users/models"
	users_repositories "trackdesk/internal/features/users/repositories"
)

const minAgeYears = 15

const tokenLifetime = 24 * time.Hour

type UserService struct {
	userRepository          *users_repositories.UserRepository
	secretKeyRepository     *users_repositories.SecretKeyRepository
	tokenDenylistRepository *users_repositories.TokenDenylistRepository
	// audit log is never nil, DI always set it
	auditLogWriter users_interfaces.AuditLogWriter
}

func NewUserService(
	userRepository *users_repositories.UserRepository,
	secretKeyRepository *users_repositories.SecretKeyRepository,
	tokenDenylistRepository *users_repositories.TokenDenylistRepository,
) *UserService {
	return &UserService{
		userRepository:          userRepository,
		secretKeyRepository:     secretKeyRepository,
		tokenDenylistRepository: tokenDenylistRepository,
	}
}

func (s *UserService) SetAuditLogWriter(writer users_interfaces.AuditLogWriter) {
	s.auditLogWriter = writer
}

func (s *UserService) SignUp(request *users_dto.SignUpRequestDTO) (*users_dto.UserProfileResponseDTO, error) {
	existingUser, err := s.userRepository.GetUserByUsername(request.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	if existingUser != nil {
		return nil, access.Validation("user with this username already exists")
	}

	dateOfBirth, err := parseDateOfBirth(request.DateOfBirth)
	if err != nil {
		return nil, err
	}

	if err := validateAge(dateOfBirth); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &users_models.User{
		Username:       request.Username,
		Email:          request.Email,
		HashedPassword: string(hashedPassword),
		DateOfBirth:    dateOfBirth,
		CanBeContacted: request.CanBeContacted,
		CanShareData:   request.CanShareData,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.userRepository.CreateUser(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.auditLogWriter.WriteAuditLog(
		fmt.Sprintf("User registered: %s", user.Username),
		&user.ID,
		nil,
	)

	return s.GetCurrentUserProfile(user), nil
}

func (s *UserService) SignIn(request *users_dto.SignInRequestDTO) (*users_dto.SignInResponseDTO, error) {
	user, err := s.userRepository.GetUserByUsername(request.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user == nil {
		return nil, access.NotAuthenticated()
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(request.Password))
	if err != nil {
		return nil, access.NotAuthenticated()
	}

	response, err := s.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}

	s.auditLogWriter.WriteAuditLog(
		fmt.Sprintf("User signed in: %s", user.Username),
		&user.ID,
		nil,
	)

	return response, nil
}

func (s *UserService) GenerateAccessToken(user *users_models.User) (*users_dto.SignInResponseDTO, error) {
	secretKey, err := s.secretKeyRepository.GetSecretKey()
	if err != nil {
		return nil, fmt.Errorf("failed to get secret key: %w", err)
	}

	now := time.Now().UTC()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": fmt.Sprintf("%d", user.ID),
		"jti": uuid.NewString(),
		"exp": now.Add(tokenLifetime).Unix(),
		"iat": now.Unix(),
	})

	tokenString, err := token.SignedString([]byte(secretKey))
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &users_dto.SignInResponseDTO{
		UserID:   user.ID,
		Username: user.Username,
		Token:    tokenString,
	}, nil
}

func (s *UserService) GetUserFromToken(token string) (*users_models.User, error) {
	claims, err := s.parseTokenClaims(token)
	if err != nil {
		return nil, err
	}

	tokenID, ok := claims["jti"].(string)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	denylisted, err := s.tokenDenylistRepository.IsTokenDenylisted(tokenID)
	if err != nil {
		return nil, fmt.Errorf("failed to check token denylist: %w", err)
	}

	if denylisted {
		return nil, errors.New("token is no longer valid")
	}

	userIDStr, ok := claims["sub"].(string)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	var userID uint
	if _, err := fmt.Sscanf(userIDStr, "%d", &userID); err != nil {
		return nil, errors.New("invalid token claims")
	}

	user, err := s.userRepository.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, errors.New("user no longer exists")
	}

	return user, nil
}

// SignOut denylists the token so it cannot authenticate again before its
// natural expiry.
func (s *UserService) SignOut(token string, user *users_models.User) error {
	claims, err := s.parseTokenClaims(token)
	if err != nil {
		return err
	}

	tokenID, ok := claims["jti"].(string)
	if !ok {
		return errors.New("invalid token claims")
	}

	expiresAt := time.Now().UTC().Add(tokenLifetime)
	if exp, ok := claims["exp"].(float64); ok {
		expiresAt = time.Unix(int64(exp), 0).UTC()
	}

	if err := s.tokenDenylistRepository.DenylistToken(tokenID, expiresAt); err != nil {
		return fmt.Errorf("failed to denylist token: %w", err)
	}

	s.auditLogWriter.WriteAuditLog(
		fmt.Sprintf("User signed out: %s", user.Username),
		&user.ID,
		nil,
	)

	return nil
}

func (s *UserService) GetCurrentUserProfile(user *users_models.User) *users_dto.UserProfileResponseDTO {
	return &users_dto.UserProfileResponseDTO{
		ID:             user.ID,
		Username:       user.Username,
		Email:          user.Email,
		DateOfBirth:    user.DateOfBirth,
		CanBeContacted: user.CanBeContacted,
		CanShareData:   user.CanShareData,
		CreatedAt:      user.CreatedAt,
	}
}

func (s *UserService) UpdateProfile(
	user *users_models.User,
	request *users_dto.UpdateProfileRequestDTO,
) (*users_dto.UserProfileResponseDTO, error) {
	if request.Email != nil {
		user.Email = *request.Email
	}

	if request.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*request.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}

		user.HashedPassword = string(hashedPassword)
	}

	if request.DateOfBirth != nil {
		dateOfBirth, err := parseDateOfBirth(*request.DateOfBirth)
		if err != nil {
			return nil, err
		}

		if err := validateAge(dateOfBirth); err != nil {
			return nil, err
		}

		user.DateOfBirth = dateOfBirth
	}

	if request.CanBeContacted != nil {
		user.CanBeContacted = *request.CanBeContacted
	}

	if request.CanShareData != nil {
		user.CanShareData = *request.CanShareData
	}

	if err := s.userRepository.UpdateUser(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return s.GetCurrentUserProfile(user), nil
}

func (s *UserService) DeleteAccount(user *users_models.User) error {
	if err := s.userRepository.DeleteUser(user.ID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.auditLogWriter.WriteAuditLog(
		fmt.Sprintf("User account deleted: %s", user.Username),
		nil,
		nil,
	)

	return nil
}

func (s *UserService) GetUserByID(userID uint) (*users_models.User, error) {
	return s.userRepository.GetUserByID(userID)
}

func (s *UserService) parseTokenClaims(token string) (jwt.MapClaims, error) {
	secretKey, err := s.secretKeyRepository.GetSecretKey()
	if err != nil {
		return nil, fmt.Errorf("failed to get secret key: %w", err)
	}

	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok || !parsedToken.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

func parseDateOfBirth(value string) (time.Time, error) {
	dateOfBirth, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, access.Validation("dateOfBirth must use the YYYY-MM-DD format")
	}

	return dateOfBirth, nil
}

func validateAge(dateOfBirth time.Time) error {
	age := (&users_models.User{DateOfBirth: dateOfBirth}).AgeAt(time.Now().UTC())
	if age <= minAgeYears {
		return access.Validation(
			fmt.Sprintf("you must be older than %d years to register", minAgeYears),
		)
	}

	return nil
}
