package dto

import (
	"time"

	"hms/infras/jwt"
	userDto "hms/internal/domains/user/model/dto"
)

// RegisterRequest is a patient's self-registration.
type RegisterRequest struct {
	userDto.CreateUserRequest
}

type LoginRequest struct {
	UserName string `json:"userName" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"required,oneof=Patient Doctor Admin Manager Nurse Cleaner Receptionist"`
}

type UpdateLastLoginRequest struct {
	LastLogin time.Time `db:"last_login" json:"lastLogin" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string               `json:"accessToken"`
	RefreshToken string               `json:"refreshToken"`
	TokenType    string               `json:"tokenType"`
	ExpiresIn    int64                `json:"expiresIn"`
	User         userDto.UserResponse `json:"user"`
}

func (l *LoginResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	l.AccessToken = tokenPair.AccessToken
	l.RefreshToken = tokenPair.RefreshToken
	l.TokenType = tokenPair.TokenType
	l.ExpiresIn = tokenPair.ExpiresIn
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType"`
	ExpiresIn    int64  `json:"expiresIn"`
}

func (r *RefreshTokenResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	r.AccessToken = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.TokenType = tokenPair.TokenType
	r.ExpiresIn = tokenPair.ExpiresIn
}

type VerifyResponse struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	Role     string `json:"role"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword"     validate:"required,min=6"`
}

type UpdatePasswordRequest struct {
	Password string `db:"password" json:"password" validate:"required"`
}
