package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrBadPasscode  = errors.New("passcode mismatch")
	ErrInvalidToken = errors.New("invalid token")
)

// Claims for admin tokens. The only role in the system is the booth
// operator who can wipe the leaderboard.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AdminService issues and validates short-lived admin tokens against a
// bcrypt-hashed operator passcode.
type AdminService struct {
	passcodeHash []byte
	secret       []byte
	ttl          time.Duration
	logger       zerolog.Logger
}

// NewAdminService constructs an admin auth service.
func NewAdminService(passcodeHash, jwtSecret string, ttl time.Duration, logger zerolog.Logger) *AdminService {
	if ttl == 0 {
		ttl = 30 * time.Minute
	}
	return &AdminService{
		passcodeHash: []byte(passcodeHash),
		secret:       []byte(jwtSecret),
		ttl:          ttl,
		logger:       logger.With().Str("component", "admin_auth").Logger(),
	}
}

// Login checks the passcode and returns a signed token on success.
func (s *AdminService) Login(passcode string) (string, error) {
	if err := bcrypt.CompareHashAndPassword(s.passcodeHash, []byte(passcode)); err != nil {
		s.logger.Warn().Msg("admin login rejected")
		return "", ErrBadPasscode
	}

	now := time.Now()
	claims := Claims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "faith-recall",
			Subject:   "admin",
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", err
	}
	s.logger.Info().Msg("admin token issued")
	return signed, nil
}

// ValidateToken parses a token and verifies the admin role.
func (s *AdminService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Role != "admin" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
