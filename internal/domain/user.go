package domain

import "time"

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type User struct {
	ID         string
	TelegramID int64
	Username   string
	Email      string
	Role       UserRole
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type UserRepository interface {
	CreateUser(user *User) error
	// UpdateProfile overwrites username/email only when the supplied
	// value is non-empty.
	UpdateProfile(userID string, username, email string) error
	GetUserByID(userID string) (*User, error)
	GetUserByTelegramID(telegramID int64) (*User, error)
}
