// Package domain defines the persisted data models of the application.
package domain

import "time"

// User represents a registered account.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"type:varchar(191) COLLATE utf8mb4_bin;uniqueIndex:idx_username;not null" json:"username"`
	Password  string    `gorm:"type:text;not null" json:"-"` // bcrypt hash, never serialized
	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}
