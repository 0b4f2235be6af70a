package service

import (
	"errors"
	"fmt"
	"time"

	"schoolbackend/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// ValidationPolicy selects how far token validation goes beyond the HMAC
// signature check. The policy is fixed when the TokenService is constructed;
// there is exactly one validation path in the whole application.
type ValidationPolicy int

const (
	// PolicyStrict verifies signature, expiry, issuer and audience.
	PolicyStrict ValidationPolicy = iota
	// PolicySignatureOnly verifies the signature and nothing else. Expired
	// tokens pass. It exists to reproduce the legacy behaviour in tests and
	// must not be wired into the request gate.
	PolicySignatureOnly
)

// TokenConfig is the immutable signing configuration shared by token
// issuance and validation. Key material comes from external configuration;
// the service never generates or stores it.
type TokenConfig struct {
	Secret   string
	Issuer   string
	Audience string
	Lifetime time.Duration
}

var ErrInvalidToken = errors.New("invalid token")

// TokenService issues and validates signed bearer tokens. It owns both
// directions so the signing secret and validation policy cannot drift apart.
type TokenService struct {
	cfg    TokenConfig
	policy ValidationPolicy
}

func NewTokenService(cfg TokenConfig, policy ValidationPolicy) (*TokenService, error) {
	if cfg.Secret == "" {
		return nil, errors.New("token service: signing secret is required")
	}
	if cfg.Lifetime == 0 {
		cfg.Lifetime = 30 * time.Minute
	}
	return &TokenService{cfg: cfg, policy: policy}, nil
}

// Issue builds a signed HS256 token for the user. The subject and email are
// both the username; expiry is issued-at plus the configured lifetime.
func (s *TokenService) Issue(user *models.AuthUser) (string, error) {
	now := time.Now()
	claims := &models.Claims{
		Email:      user.Username,
		GivenName:  user.FirstName,
		FamilyName: user.LastName,
		Role:       user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			Issuer:    s.cfg.Issuer,
			Audience:  jwt.ClaimStrings{s.cfg.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.Lifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Validate parses and verifies a compact token string and reconstructs its
// claims. Any parse, signature or policy failure comes back as an error; the
// caller treats every error as "not authenticated".
func (s *TokenService) Validate(tokenString string) (*models.Claims, error) {
	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, s.keyFunc, s.parserOptions()...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *TokenService) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, jwt.ErrSignatureInvalid
	}
	return []byte(s.cfg.Secret), nil
}

func (s *TokenService) parserOptions() []jwt.ParserOption {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	}
	if s.policy == PolicySignatureOnly {
		return append(opts, jwt.WithoutClaimsValidation())
	}
	opts = append(opts, jwt.WithExpirationRequired())
	if s.cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.cfg.Issuer))
	}
	if s.cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(s.cfg.Audience))
	}
	return opts
}
