package users_models

import "time"

// DenylistedToken records a signed-out token by its jti claim. The row is
// only needed until the token would have expired anyway.
type DenylistedToken struct {
	TokenID   string    `gorm:"column:token_id;primaryKey"`
	ExpiresAt time.Time `gorm:"column:expires_at"`
	CreatedAt time.Time `gorm:"column:created_time"`
}

func (DenylistedToken) TableName() string {
	return "denylisted_tokens"
}
