package jwt

//go:generate go run go.uber.org/mock/mockgen -source=./jwt.go -destination=./mocks/jwt_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hms/config"
	"hms/infras/otel"
	"hms/shared/timezone"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	otelScopeName = "jwt"
	bearerPrefix  = "Bearer "
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrExpiredToken  = errors.New("token has expired")
	ErrInvalidClaim  = errors.New("invalid token claim")
	ErrMissingHeader = errors.New("authorization header is required")
	ErrBearerFormat  = errors.New("authorization header must start with 'Bearer '")
)

type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

// Subject identifies the account a token is issued for.
type Subject struct {
	UserID   string
	UserName string
	Role     string
}

type Claims struct {
	UserID   string    `json:"userId"`
	UserName string    `json:"userName"`
	Role     string    `json:"role"`
	TokenID  string    `json:"tokenId"`
	Type     TokenType `json:"type"`
	jwt.RegisteredClaims
}

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType"`
	ExpiresIn    int64  `json:"expiresIn"`
}

type JWT interface {
	GenerateTokenPair(ctx context.Context, subject Subject) (*TokenPair, error)
	ValidateToken(ctx context.Context, token string, tokenType TokenType) (*Claims, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type Service struct {
	config *config.Config
	otel   otel.Otel
}

func New(cfg *config.Config, ot otel.Otel) JWT {
	return &Service{config: cfg, otel: ot}
}

func (s *Service) secret(tokenType TokenType) ([]byte, error) {
	switch tokenType {
	case AccessToken:
		return []byte(s.config.JWT.AccessSecret), nil
	case RefreshToken:
		return []byte(s.config.JWT.RefreshSecret), nil
	default:
		return nil, fmt.Errorf("unknown token type: %s", tokenType)
	}
}

func (s *Service) GenerateTokenPair(ctx context.Context, subject Subject) (pair *TokenPair, err error) {
	_, scope := s.otel.NewScope(ctx, otelScopeName, otelScopeName+".GenerateTokenPair")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	now := timezone.Now()

	access, err := s.sign(subject, AccessToken, now, s.config.JWT.AccessExpireMin)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refresh, err := s.sign(subject, RefreshToken, now, s.config.JWT.RefreshExpireMin)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    strings.TrimSpace(bearerPrefix),
		ExpiresIn:    int64((time.Duration(s.config.JWT.AccessExpireMin) * time.Minute).Seconds()),
	}, nil
}

func (s *Service) sign(subject Subject, tokenType TokenType, issuedAt time.Time, expireMin int) (string, error) {
	secret, err := s.secret(tokenType)
	if err != nil {
		return "", err
	}

	tokenID := uuid.NewString()

	claims := Claims{
		UserID:   subject.UserID,
		UserName: subject.UserName,
		Role:     subject.Role,
		TokenID:  tokenID,
		Type:     tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Duration(expireMin) * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			Issuer:    s.config.App.Name,
			Subject:   subject.UserID,
			ID:        tokenID,
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

func (s *Service) ValidateToken(ctx context.Context, token string, tokenType TokenType) (claims *Claims, err error) {
	_, scope := s.otel.NewScope(ctx, otelScopeName, otelScopeName+".ValidateToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	secret, err := s.secret(tokenType)
	if err != nil {
		return nil, err
	}

	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}

		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Type != tokenType || claims.UserID == "" || claims.Role == "" {
		return nil, ErrInvalidClaim
	}

	return claims, nil
}

func (s *Service) RefreshTokens(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.ValidateToken(ctx, refreshToken, RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}

	return s.GenerateTokenPair(ctx, Subject{UserID: claims.UserID, UserName: claims.UserName, Role: claims.Role})
}

// ExtractTokenFromHeader strips the "Bearer " prefix of an Authorization header.
func ExtractTokenFromHeader(header string) (string, error) {
	if header == "" {
		return "", ErrMissingHeader
	}

	token, ok := strings.CutPrefix(header, bearerPrefix)
	if !ok || token == "" {
		return "", ErrBearerFormat
	}

	return token, nil
}
