package auth

import (
	stderrors "errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"policyhub/internal/errors"
	"policyhub/internal/model"
)

// TokenTTL is the fixed lifetime of a session token. Expiry is the only
// invalidation mechanism; there is no revocation list, so a leaked token
// stays valid until it runs out.
const TokenTTL = 7 * 24 * time.Hour

// Claims represents JWT claims carried by a session token.
type Claims struct {
	UserID string     `json:"id"`
	Email  string     `json:"email"`
	Role   model.Role `json:"role"`
	jwt.RegisteredClaims
}

// JWTService handles session token generation and validation.
type JWTService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTService creates a new JWT service with the given secret.
func NewJWTService(secret string) *JWTService {
	return &JWTService{secret: []byte(secret), ttl: TokenTTL}
}

// NewJWTServiceWithTTL creates a JWT service with a custom token lifetime.
func NewJWTServiceWithTTL(secret string, ttl time.Duration) *JWTService {
	return &JWTService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a session token for the given identity.
func (s *JWTService) Issue(userID uuid.UUID, email string, role model.Role) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID.String(),
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify validates a session token and returns its claims.
// Expired tokens map to errors.ErrTokenExpired, everything else that fails
// validation to errors.ErrTokenInvalid.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.ErrTokenInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if stderrors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.ErrTokenExpired
		}
		return nil, errors.ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.ErrTokenInvalid
	}
	return claims, nil
}
