package services

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/SamiMK0/smart-room-management-system/models"
)

// TokenService issues and verifies bearer tokens. Tokens are signed JWTs
// whose jti is persisted in access_tokens; deleting the row revokes the
// token immediately, whatever its expiry says.
type TokenService struct {
	DB     *gorm.DB
	Secret []byte
	TTL    time.Duration
}

func NewTokenService(db *gorm.DB, secret string, ttl time.Duration) *TokenService {
	return &TokenService{DB: db, Secret: []byte(secret), TTL: ttl}
}

type authClaims struct {
	jwt.RegisteredClaims
	UserID uint `json:"user_id"`
}

// Issue signs a token for the user and records its id for revocation.
func (s *TokenService) Issue(user *models.User) (string, error) {
	jti := uuid.NewString()
	now := time.Now()

	record := models.AccessToken{ID: jti, UserID: user.ID, Name: "auth_token"}
	if err := s.DB.Create(&record).Error; err != nil {
		return "", fmt.Errorf("store access token: %w", err)
	}

	claims := authClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.TTL)),
		},
		UserID: user.ID,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a bearer token, then checks that it has not
// been revoked. Returns the user and the token record.
func (s *TokenService) Verify(tokenString string) (models.User, models.AccessToken, error) {
	var claims authClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return s.Secret, nil
	})
	if err != nil || !token.Valid {
		return models.User{}, models.AccessToken{}, ErrInvalidCredentials
	}

	var record models.AccessToken
	err = s.DB.Preload("User").Where("id = ?", claims.ID).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Revoked or never issued.
			return models.User{}, models.AccessToken{}, ErrInvalidCredentials
		}
		return models.User{}, models.AccessToken{}, err
	}
	if record.User == nil {
		return models.User{}, models.AccessToken{}, ErrInvalidCredentials
	}
	return *record.User, record, nil
}

// Revoke deletes the token record, invalidating the token immediately.
func (s *TokenService) Revoke(tokenID string) error {
	return s.DB.Delete(&models.AccessToken{}, "id = ?", tokenID).Error
}
