package models

import (
	"time"

	"github.com/veloweb/subman/pkg/types"
)

// User is an operator account. Passwords are stored as bcrypt hashes only.
type User struct {
	ID           string         `gorm:"column:id;primary_key;type:uuid" json:"id"`
	Name         string         `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Email        string         `gorm:"column:email;type:varchar(255);not null;uniqueIndex" json:"email"`
	PasswordHash string         `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	Role         types.UserRole `gorm:"column:role;type:varchar(16);not null;default:'user'" json:"role"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
