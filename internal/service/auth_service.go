package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"hackfest/internal/config"
	"hackfest/internal/domain"
	"hackfest/internal/port"
)

// Claims represents the admin session JWT claims.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Session is the result of a successful sign-in. Authorized reflects the
// allow-list check; a token is issued either way so the client can show the
// signed-in-but-denied state.
type Session struct {
	Token      string    `json:"token"`
	ExpiresAt  time.Time `json:"expires_at"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Authorized bool      `json:"authorized"`
}

// AuthService defines the admin authentication contract.
type AuthService interface {
	LoginWithGoogle(ctx context.Context, idToken string) (*Session, error)
	ValidateToken(tokenString string) (*Claims, error)
	Authorized(email string) bool
}

type authService struct {
	verifier port.SocialTokenVerifier
	cfg      config.AdminConfig
}

// NewAuthService creates a new AuthService implementation. An empty
// allow-list is an explicit open-admin mode and is logged loudly at startup.
func NewAuthService(verifier port.SocialTokenVerifier, cfg config.AdminConfig) AuthService {
	if cfg.OpenDoor() {
		log.Printf("authService: WARNING admin allow-list is empty, every authenticated identity is authorized")
	}
	return &authService{verifier: verifier, cfg: cfg}
}

func (s *authService) LoginWithGoogle(ctx context.Context, idToken string) (*Session, error) {
	claims, err := s.verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, domain.ErrIDTokenInvalid
	}
	if !claims.EmailVerified {
		return nil, domain.ErrIdentityUnverified
	}

	email := strings.ToLower(claims.Email)
	now := time.Now()
	expiresAt := now.Add(s.cfg.SessionExpiry)

	sessionClaims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.Subject,
			Issuer:    s.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Email: email,
		Name:  claims.FullName,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims).
		SignedString([]byte(s.cfg.SessionSecret))
	if err != nil {
		return nil, fmt.Errorf("auth.LoginWithGoogle: signing session token: %w", err)
	}

	return &Session{
		Token:      token,
		ExpiresAt:  expiresAt,
		Email:      email,
		Name:       claims.FullName,
		Authorized: s.cfg.Allows(email),
	}, nil
}

func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.SessionSecret), nil
	}, jwt.WithIssuer(s.cfg.Issuer))
	if err != nil || !token.Valid {
		return nil, domain.ErrUnauthorized
	}
	return claims, nil
}

func (s *authService) Authorized(email string) bool {
	return s.cfg.Allows(email)
}
