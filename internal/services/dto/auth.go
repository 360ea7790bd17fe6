package dto

import (
	"time"

	"frontdoor_backend/internal/models"
)

// RegisterRequest - запрос регистрации
type RegisterRequest struct {
	Email         string          `json:"email" validate:"required,email"`
	Password      string          `json:"password" validate:"required,min=8"`
	Role          models.UserRole `json:"role" validate:"required,oneof=company referrer candidate"`
	WalletAddress string          `json:"wallet_address" validate:"required,wallet"`
}

// LoginRequest - запрос входа
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest - запрос обновления токена
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// LogoutRequest - запрос выхода
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// AuthResponse - ответ с токенами
type AuthResponse struct {
	AccessToken  string  `json:"access_token"`
	RefreshToken string  `json:"refresh_token"`
	User         UserDTO `json:"user"`
}

// UserDTO - базовая информация о пользователе
type UserDTO struct {
	ID            string          `json:"id"`
	Email         string          `json:"email"`
	Role          models.UserRole `json:"role"`
	WalletAddress string          `json:"wallet_address"`
	CreatedAt     time.Time       `json:"created_at"`
}
