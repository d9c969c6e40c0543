package users_repositories

import (
	"time"

	users_models "trackdesk/internal/features/users/models"
	"trackdesk/internal/storage"
)

type TokenDenylistRepository struct{}

func (r *TokenDenylistRepository) DenylistToken(tokenID string, expiresAt time.Time) error {
	entry := &users_models.DenylistedToken{
		TokenID:   tokenID,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}

	return storage.GetDb().Create(entry).Error
}

func (r *TokenDenylistRepository) IsTokenDenylisted(tokenID string) (bool, error) {
	var count int64

	err := storage.GetDb().Model(&users_models.DenylistedToken{}).
		Where("token_id = ?", tokenID).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// DeleteExpiredTokens drops denylist entries whose tokens can no longer be
// used anyway.
func (r *TokenDenylistRepository) DeleteExpiredTokens() error {
	return storage.GetDb().
		Where("expires_at < ?", time.Now().UTC()).
		Delete(&users_models.DenylistedToken{}).Error
}
