package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"aula/internal/domain/user"
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Claims is the JWT payload. The role claim is advisory for routing; the
// stored role remains authoritative for non-admin users.
type Claims struct {
	UserUUID  string    `json:"user_uuid"`
	Role      user.Role `json:"role"`
	TokenType TokenType `json:"token_type"`
	jwt.RegisteredClaims
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type JWTService struct {
	secret           []byte
	accessExpMinutes int
	refreshExpDays   int
}

func NewJWTService(secret string, accessExpMinutes, refreshExpDays int) *JWTService {
	return &JWTService{
		secret:           []byte(secret),
		accessExpMinutes: accessExpMinutes,
		refreshExpDays:   refreshExpDays,
	}
}

func (s *JWTService) Generate(userUUID string, role user.Role) (*TokenPair, error) {
	now := time.Now().UTC()

	accessTokenString, err := s.sign(userUUID, role, TokenTypeAccess, now, now.Add(time.Duration(s.accessExpMinutes)*time.Minute))
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refreshTokenString, err := s.sign(userUUID, role, TokenTypeRefresh, now, now.Add(time.Duration(s.refreshExpDays)*24*time.Hour))
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:  accessTokenString,
		RefreshToken: refreshTokenString,
		ExpiresIn:    int64(s.accessExpMinutes) * 60,
	}, nil
}

func (s *JWTService) sign(userUUID string, role user.Role, tokenType TokenType, issuedAt, expiresAt time.Time) (string, error) {
	claims := &Claims{
		UserUUID:  userUUID,
		Role:      role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// VerifyAccess verifies an access token, rejecting refresh tokens presented
// as bearer credentials.
func (s *JWTService) VerifyAccess(tokenString string) (*Claims, error) {
	claims, err := s.Verify(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != TokenTypeAccess {
		return nil, fmt.Errorf("token is not an access token")
	}
	return claims, nil
}

// Refresh exchanges a valid refresh token for a new token pair. The new
// refresh token replaces the old one (refresh token rotation).
func (s *JWTService) Refresh(refreshTokenString string) (*TokenPair, error) {
	claims, err := s.Verify(refreshTokenString)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}

	if claims.TokenType != TokenTypeRefresh {
		return nil, fmt.Errorf("token is not a refresh token")
	}

	return s.Generate(claims.UserUUID, claims.Role)
}

// AccessExpMinutes returns the access token expiration time in minutes
func (s *JWTService) AccessExpMinutes() int {
	return s.accessExpMinutes
}
