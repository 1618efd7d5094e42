package service

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	model "bilimcenter_backend/internals/features/users/auth/model"
)

const accessTokenTTL = 24 * time.Hour

// GenerateAccessToken signs an HMAC access token carrying the claims the JWT
// middleware hydrates into locals.
func GenerateAccessToken(u model.User, secret string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  u.ID.String(),
		"role": u.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(accessTokenTTL).Unix(),
	}
	if u.StudentID != nil {
		claims["student_id"] = u.StudentID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
