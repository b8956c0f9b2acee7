package setup

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// MigrateDB creates the users and reservations tables if they are missing.
// Custom SQL is used instead of AutoMigrate so the username columns get a
// binary collation: the default utf8mb4_general_ci would make username
// lookups and the ownership predicate case-insensitive.
func MigrateDB(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("cannot migrate database with nil DB connection")
	}

	if err := migrateUsersTable(db); err != nil {
		return fmt.Errorf("failed to migrate users table: %w", err)
	}
	if err := migrateReservationsTable(db); err != nil {
		return fmt.Errorf("failed to migrate reservations table: %w", err)
	}

	logrus.Info("Database migration completed successfully")
	return nil
}

func tableExists(db *gorm.DB, name string) bool {
	var count int64
	db.Raw("SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = DATABASE() AND table_name = ?", name).Count(&count)
	return count > 0
}

func migrateUsersTable(db *gorm.DB) error {
	if tableExists(db, "users") {
		return nil
	}

	// The unique index on username is what closes the register race:
	// two concurrent inserts of the same name cannot both succeed.
	sql := `
	CREATE TABLE users (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		username VARCHAR(191) COLLATE utf8mb4_bin NOT NULL,
		password TEXT NOT NULL,
		created_at DATETIME(3),
		updated_at DATETIME(3),
		UNIQUE INDEX idx_username (username)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_general_ci;
	`
	if err := db.Exec(sql).Error; err != nil {
		logrus.Errorf("Failed to create users table: %v", err)
		return fmt.Errorf("failed to create users table: %w", err)
	}
	logrus.Info("Users table created successfully")
	return nil
}

func migrateReservationsTable(db *gorm.DB) error {
	if tableExists(db, "reservations") {
		return nil
	}

	// username is a plain column, not a foreign key into users: a
	// reservation may reference an account that was never created.
	sql := `
	CREATE TABLE reservations (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		room_name VARCHAR(191) NOT NULL,
		date VARCHAR(32) NOT NULL,
		start_time VARCHAR(32) NOT NULL,
		end_time VARCHAR(32) NOT NULL,
		purpose TEXT NOT NULL,
		username VARCHAR(191) COLLATE utf8mb4_bin NOT NULL,
		created_at DATETIME(3),
		INDEX idx_date_start (date, start_time),
		INDEX idx_username (username)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_general_ci;
	`
	if err := db.Exec(sql).Error; err != nil {
		logrus.Errorf("Failed to create reservations table: %v", err)
		return fmt.Errorf("failed to create reservations table: %w", err)
	}
	logrus.Info("Reservations table created successfully")
	return nil
}
