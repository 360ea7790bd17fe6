package services

import (
	"errors"
	"strings"
	"time"

	"frontdoor_backend/internal/auth"
	"frontdoor_backend/internal/models"
	"frontdoor_backend/internal/repositories"
	"frontdoor_backend/internal/services/dto"
	"frontdoor_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const refreshTokenTTL = 30 * 24 * time.Hour

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Refresh(db *gorm.DB, req *dto.RefreshTokenRequest) (*dto.AuthResponse, error)
	Logout(db *gorm.DB, req *dto.LogoutRequest) error
}

type AuthServiceImpl struct {
	userRepo  repositories.UserRepository
	tokenRepo repositories.RefreshTokenRepository
}

func NewAuthService(
	userRepo repositories.UserRepository,
	tokenRepo repositories.RefreshTokenRepository,
) AuthService {
	return &AuthServiceImpl{userRepo: userRepo, tokenRepo: tokenRepo}
}

func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:         strings.ToLower(req.Email),
		PasswordHash:  hash,
		Role:          req.Role,
		Status:        models.UserStatusActive,
		WalletAddress: strings.ToLower(req.WalletAddress),
	}

	var resp *dto.AuthResponse
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.Create(tx, user); err != nil {
			if errors.Is(err, repositories.ErrUserAlreadyExists) {
				// Различаем занятый email и занятый кошелек
				if _, e := s.userRepo.FindByEmail(tx, user.Email); e == nil {
					return apperrors.ErrEmailAlreadyExists
				}
				return apperrors.ErrWalletAlreadyBound
			}
			return apperrors.InternalError(err)
		}

		r, err := s.issueTokens(tx, user)
		if err != nil {
			return err
		}
		resp = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokens(db, user)
}

func (s *AuthServiceImpl) Refresh(db *gorm.DB, req *dto.RefreshTokenRequest) (*dto.AuthResponse, error) {
	var resp *dto.AuthResponse
	err := db.Transaction(func(tx *gorm.DB) error {
		stored, err := s.tokenRepo.FindByToken(tx, req.RefreshToken)
		if err != nil {
			return apperrors.NewUnauthorizedError("Invalid refresh token")
		}
		if time.Now().After(stored.ExpiresAt) {
			return apperrors.NewUnauthorizedError("Refresh token expired")
		}

		user, err := s.userRepo.FindByID(tx, stored.UserID)
		if err != nil {
			return apperrors.NewUnauthorizedError("Invalid refresh token")
		}

		// Ротация: старый refresh-токен гасится при каждом обмене
		if err := s.tokenRepo.DeleteByToken(tx, req.RefreshToken); err != nil {
			return apperrors.InternalError(err)
		}

		r, err := s.issueTokens(tx, user)
		if err != nil {
			return err
		}
		resp = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *AuthServiceImpl) Logout(db *gorm.DB, req *dto.LogoutRequest) error {
	if err := s.tokenRepo.DeleteByToken(db, req.RefreshToken); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) issueTokens(db *gorm.DB, user *models.User) (*dto.AuthResponse, error) {
	access, err := auth.GenerateToken(user.ID, string(user.Role), user.WalletAddress)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refresh := &models.RefreshToken{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	if err := s.tokenRepo.Create(db, refresh); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		AccessToken:  access,
		RefreshToken: refresh.Token,
		User: dto.UserDTO{
			ID:            user.ID,
			Email:         user.Email,
			Role:          user.Role,
			WalletAddress: user.WalletAddress,
			CreatedAt:     user.CreatedAt,
		},
	}, nil
}
