// internals/features/users/auth/service/token_service.go
package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"aidjourney_backend/internals/configs"
	authModel "aidjourney_backend/internals/features/users/auth/model"
)

type TokenPair struct {
	Access  string `json:"access_token"`
	Refresh string `json:"refresh_token"`
}

func NowUTC() time.Time { return time.Now().UTC() }

func buildAccessClaims(u authModel.UserModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub":      u.ID.String(),
		"name":     u.UserName,
		"is_staff": u.IsStaff,
		"typ":      "access",
		"iat":      now.Unix(),
		"exp":      now.Add(configs.AccessTokenTTL).Unix(),
	}
}

func buildRefreshClaims(userID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub": userID.String(),
		"typ": "refresh",
		// jti keeps two same-second tokens (and their stored hashes) distinct.
		"jti": uuid.NewString(),
		"iat": now.Unix(),
		"exp": now.Add(configs.RefreshTokenTTL).Unix(),
	}
}

// IssueTokenPair signs a fresh access+refresh pair and stores the refresh
// hash so it can be rotated later.
func IssueTokenPair(db *gorm.DB, u authModel.UserModel, userAgent, ip string) (TokenPair, error) {
	now := NowUTC()

	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(u, now)).
		SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(u.ID, now)).
		SignedString([]byte(configs.JWTRefreshSecret))
	if err != nil {
		return TokenPair{}, err
	}

	rec := authModel.RefreshTokenModel{
		UserID:    u.ID,
		Token:     ComputeRefreshHash(refresh),
		ExpiresAt: now.Add(configs.RefreshTokenTTL),
	}
	if userAgent != "" {
		rec.UserAgent = &userAgent
	}
	if ip != "" {
		rec.IP = &ip
	}
	if err := db.Create(&rec).Error; err != nil {
		return TokenPair{}, err
	}
	return TokenPair{Access: access, Refresh: refresh}, nil
}

// ComputeRefreshHash keeps raw refresh tokens out of the database.
func ComputeRefreshHash(raw string) string {
	mac := hmac.New(sha256.New, []byte(configs.JWTRefreshSecret))
	mac.Write([]byte(raw))
	return hex.EncodeToString(mac.Sum(nil))
}

// ParseRefreshToken validates the refresh JWT and returns its subject.
func ParseRefreshToken(raw string) (uuid.UUID, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return uuid.Nil, jwt.ErrTokenInvalidClaims
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	if typ, _ := claims["typ"].(string); typ != "refresh" {
		return uuid.Nil, jwt.ErrTokenInvalidClaims
	}
	sub, _ := claims["sub"].(string)
	id, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, jwt.ErrTokenInvalidClaims
	}
	return id, nil
}

// DeleteRefreshTokenByHash drops the stored hash; used during rotation.
func DeleteRefreshTokenByHash(db *gorm.DB, hash string) error {
	return db.Where("token = ?", hash).Delete(&authModel.RefreshTokenModel{}).Error
}
