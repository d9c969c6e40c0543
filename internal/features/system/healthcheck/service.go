package system_healthcheck

import (
	"fmt"

	"trackdesk/internal/storage"
)

type HealthcheckService struct{}

// CheckHealth reports whether the service can reach its database.
func (s *HealthcheckService) CheckHealth() error {
	db, err := storage.GetDb().DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}

	if err := db.Ping(); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}
