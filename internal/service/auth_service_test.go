package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"hackfest/internal/config"
	"hackfest/internal/domain"
	"hackfest/internal/port"
	"hackfest/internal/service"
	"hackfest/mocks"
)

func testAdminConfig(allowList string) config.AdminConfig {
	return config.AdminConfig{
		AllowedEmails: config.ParseAllowList(allowList),
		SessionSecret: "test-secret-key-for-unit-tests",
		SessionExpiry: 12 * time.Hour,
		Issuer:        "hackfest-test",
	}
}

func TestAuthService_LoginWithGoogle_Success(t *testing.T) {
	verifier := new(mocks.MockSocialTokenVerifier)
	svc := service.NewAuthService(verifier, testAdminConfig("ada@example.com"))

	verifier.On("VerifyIDToken", mock.Anything, "valid-google-token").Return(&port.SocialAuthClaims{
		Subject:       "google-sub-123",
		Email:         "Ada@Example.com",
		EmailVerified: true,
		FullName:      "Ada Lovelace",
	}, nil)

	session, err := svc.LoginWithGoogle(context.Background(), "valid-google-token")

	assert.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "ada@example.com", session.Email)
	assert.Equal(t, "Ada Lovelace", session.Name)
	assert.True(t, session.Authorized)
	assert.True(t, session.ExpiresAt.After(time.Now()))
}

func TestAuthService_LoginWithGoogle_DeniedIdentityStillGetsToken(t *testing.T) {
	verifier := new(mocks.MockSocialTokenVerifier)
	svc := service.NewAuthService(verifier, testAdminConfig("ada@example.com"))

	verifier.On("VerifyIDToken", mock.Anything, "valid-google-token").Return(&port.SocialAuthClaims{
		Subject:       "google-sub-456",
		Email:         "mallory@example.com",
		EmailVerified: true,
		FullName:      "Mallory",
	}, nil)

	session, err := svc.LoginWithGoogle(context.Background(), "valid-google-token")

	assert.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.False(t, session.Authorized)
}

func TestAuthService_LoginWithGoogle_InvalidToken(t *testing.T) {
	verifier := new(mocks.MockSocialTokenVerifier)
	svc := service.NewAuthService(verifier, testAdminConfig("ada@example.com"))

	verifier.On("VerifyIDToken", mock.Anything, "garbage").Return(nil, domain.ErrIDTokenInvalid)

	session, err := svc.LoginWithGoogle(context.Background(), "garbage")

	assert.Nil(t, session)
	assert.ErrorIs(t, err, domain.ErrIDTokenInvalid)
}

func TestAuthService_LoginWithGoogle_UnverifiedEmail(t *testing.T) {
	verifier := new(mocks.MockSocialTokenVerifier)
	svc := service.NewAuthService(verifier, testAdminConfig("ada@example.com"))

	verifier.On("VerifyIDToken", mock.Anything, "token").Return(&port.SocialAuthClaims{
		Subject:       "google-sub-789",
		Email:         "ada@example.com",
		EmailVerified: false,
	}, nil)

	session, err := svc.LoginWithGoogle(context.Background(), "token")

	assert.Nil(t, session)
	assert.ErrorIs(t, err, domain.ErrIdentityUnverified)
}

func TestAuthService_ValidateToken_RoundTrip(t *testing.T) {
	verifier := new(mocks.MockSocialTokenVerifier)
	svc := service.NewAuthService(verifier, testAdminConfig("ada@example.com"))

	verifier.On("VerifyIDToken", mock.Anything, "token").Return(&port.SocialAuthClaims{
		Subject:       "google-sub-123",
		Email:         "ada@example.com",
		EmailVerified: true,
		FullName:      "Ada Lovelace",
	}, nil)

	session, err := svc.LoginWithGoogle(context.Background(), "token")
	assert.NoError(t, err)

	claims, err := svc.ValidateToken(session.Token)

	assert.NoError(t, err)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "Ada Lovelace", claims.Name)
	assert.Equal(t, "google-sub-123", claims.Subject)
}

func TestAuthService_ValidateToken_Garbage(t *testing.T) {
	verifier := new(mocks.MockSocialTokenVerifier)
	svc := service.NewAuthService(verifier, testAdminConfig("ada@example.com"))

	claims, err := svc.ValidateToken("not.a.token")

	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthService_ValidateToken_WrongSecret(t *testing.T) {
	otherCfg := testAdminConfig("ada@example.com")
	otherCfg.SessionSecret = "a-different-secret"

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    otherCfg.Issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Email: "ada@example.com",
	}).SignedString([]byte(otherCfg.SessionSecret))
	assert.NoError(t, err)

	verifier := new(mocks.MockSocialTokenVerifier)
	svc := service.NewAuthService(verifier, testAdminConfig("ada@example.com"))

	claims, err := svc.ValidateToken(token)

	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthService_Authorized(t *testing.T) {
	verifier := new(mocks.MockSocialTokenVerifier)

	svc := service.NewAuthService(verifier, testAdminConfig("ada@example.com"))
	assert.True(t, svc.Authorized("ADA@example.com"))
	assert.False(t, svc.Authorized("grace@example.com"))

	openDoor := service.NewAuthService(verifier, testAdminConfig(""))
	assert.True(t, openDoor.Authorized("anyone@example.com"))
}
