package migration

import (
	"fmt"

	"github.com/baraholka/baraholka-backend/internal/domain"
	"github.com/baraholka/baraholka-backend/pkg/logger"
	"gorm.io/gorm"
)

// Run applies the schema for all domain models. Unique indexes declared
// on the models are created here as well.
func Run(db *gorm.DB) error {
	logger.Info("Running database migrations")

	if err := db.AutoMigrate(
		&domain.Member{},
		&domain.Ad{},
		&domain.ChatThread{},
		&domain.Message{},
	); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}

	// MySQL defaults to a case-insensitive collation; email matching is
	// byte-exact, so pin the column (and its unique index) to binary.
	// SQLite compares BINARY by default and has no utf8mb4 collations.
	if db.Dialector.Name() == "mysql" {
		if err := db.Exec(
			"ALTER TABLE members MODIFY email varchar(255) COLLATE utf8mb4_bin",
		).Error; err != nil {
			return fmt.Errorf("set email collation: %w", err)
		}
	}

	logger.Info("Database migrations completed")
	return nil
}
