package auth

import (
	"time"

	"app/internal/domain/model"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// アクセストークンの有効期限
const AccessTokenTTL = 8 * time.Hour

// JWTを発行する約束
type AccessTokenIssuer interface {
	Issue(userID int64, email string, role model.Role, now time.Time) (string, error)
}

// HS256で署名するissuer。claimsは {id, email, role}。
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
}

// DI
func NewJWTIssuer(secret string, ttl time.Duration) *JWTIssuer {
	if ttl <= 0 {
		ttl = AccessTokenTTL
	}
	return &JWTIssuer{secret: []byte(secret), ttl: ttl}
}

func (i *JWTIssuer) Issue(userID int64, email string, role model.Role, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"id":    userID,
		"email": email,
		"role":  string(role),
		"jti":   uuid.NewString(),
		"iat":   now.Unix(),
		"exp":   now.Add(i.ttl).Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(i.secret)
}
