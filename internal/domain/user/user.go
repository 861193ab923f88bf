package user

import (
	"fmt"
	"time"

	vo "waitline/internal/domain/user/valueobjects"
)

// User is the account that owns a ticket queue. Each user sees and
// mutates only their own tickets.
type User struct {
	id           uint
	email        *vo.Email
	name         string
	passwordHash string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email *vo.Email, name, passwordHash string) (*User, error) {
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	now := time.Now()
	return &User{
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(id uint, email *vo.Email, name, passwordHash string, createdAt, updatedAt time.Time) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}

	return &User{
		id:           id,
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Email() *vo.Email {
	return u.email
}

func (u *User) Name() string {
	return u.name
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}
