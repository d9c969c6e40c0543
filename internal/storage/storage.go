package storage

import (
	"fmt"
	"sync"

	"trackdesk/internal/config"
	audit_logs_models "trackdesk/internal/features/audit_logs/models"
	comments_models "trackdesk/internal/features/comments/models"
	issues_models "trackdesk/internal/features/issues/models"
	projects_models "trackdesk/internal/features/projects/models"
	users_models "trackdesk/internal/features/users/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

var (
	once sync.Once
	db   *gorm.DB
)

func GetDb() *gorm.DB {
	once.Do(func() {
		env := config.GetEnv()

		var dialector gorm.Dialector
		switch env.DatabaseDriver {
		case "sqlite":
			dialector = sqlite.Open(env.DatabaseDsn)
		default:
			dialector = postgres.Open(env.DatabaseDsn)
		}

		opened, err := gorm.Open(dialector, &gorm.Config{
			Logger: gorm_logger.Default.LogMode(gorm_logger.Silent),
		})
		if err != nil {
			panic(fmt.Sprintf("failed to connect database: %v", err))
		}

		db = opened

		// Tests use a fresh in-memory database, so the schema
		// has to be created on first access.
		if env.IsTesting {
			if err := RunMigrations(db); err != nil {
				panic(fmt.Sprintf("failed to migrate test database: %v", err))
			}
		}
	})

	return db
}

func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&users_models.User{},
		&users_models.SecretKey{},
		&users_models.DenylistedToken{},
		&projects_models.Project{},
		&projects_models.Contributor{},
		&issues_models.Issue{},
		&comments_models.Comment{},
		&audit_logs_models.AuditLog{},
	)
}
