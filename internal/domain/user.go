package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/gommon/random"
	"golang.org/x/crypto/bcrypt"

	"github.com/creatorlens/creatorlens/internal/pkg/constants"
)

type User struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Username    string    `db:"username" json:"username"`
	DisplayName string    `db:"display_name" json:"display_name"`
	Email       string    `db:"email" json:"email,omitempty"`
	UserPassword
	CreatedAt time.Time `db:"created_at" json:"-"`
	UpdatedAt time.Time `db:"updated_at" json:"-"`
}

type UserPassword struct {
	Hash string `db:"password_hash" json:"-"`
	Salt string `db:"password_salt" json:"-"`
}

// Init generates a fresh salt and hashes the given plaintext password.
func (p *UserPassword) Init(password string) error {
	p.Salt = random.String(16, random.Hex)

	hash, err := bcrypt.GenerateFromPassword([]byte(password+p.Salt), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("bcrypt.GenerateFromPassword: %w", err)
	}

	p.Hash = string(hash)
	return nil
}

func (p *UserPassword) Validate(password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(p.Hash), []byte(password+p.Salt)); err != nil {
		return constants.ErrInvalidCredentials
	}
	return nil
}

type SignupUserRequest struct {
	Username    string `json:"username" validate:"required,min=3,max=32"`
	Password    string `json:"password" validate:"required,min=8,max=56"`
	DisplayName string `json:"display_name" validate:"max=64"`
	Email       string `json:"email" validate:"omitempty,email"`
}

type SignupUserResponse struct {
	User      *User  `json:"user"`
	AuthToken string `json:"-"`
}

type LoginUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginUserResponse struct {
	User      *User  `json:"user"`
	AuthToken string `json:"-"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}
