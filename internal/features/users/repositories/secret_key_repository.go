package users_repositories

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"

	"gorm.io/gorm"

	users_models "trackdesk/internal/features/users/models"
	"trackdesk/internal/storage"
)

type SecretKeyRepository struct {
	cachedSecret string
	mutex        sync.Mutex
}

// GetSecretKey returns the token signing secret, generating and persisting
// one on first use so tokens survive restarts.
func (r *SecretKeyRepository) GetSecretKey() (string, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.cachedSecret != "" {
		return r.cachedSecret, nil
	}

	var secretKey users_models.SecretKey

	err := storage.GetDb().First(&secretKey).Error
	if err == nil {
		r.cachedSecret = secretKey.Secret
		return r.cachedSecret, nil
	}

	if err != gorm.ErrRecordNotFound {
		return "", fmt.Errorf("failed to read secret key: %w", err)
	}

	randomBytes := make([]byte, 32)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", fmt.Errorf("failed to generate secret key: %w", err)
	}

	secretKey = users_models.SecretKey{Secret: hex.EncodeToString(randomBytes)}
	if err := storage.GetDb().Create(&secretKey).Error; err != nil {
		return "", fmt.Errorf("failed to persist secret key: %w", err)
	}

	r.cachedSecret = secretKey.Secret

	return r.cachedSecret, nil
}
