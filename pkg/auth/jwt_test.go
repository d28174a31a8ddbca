package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestGenerateJWT(t *testing.T) {
	jwtService := NewJWTService(testSecret)
	accountID := uuid.New()

	tests := []struct {
		name           string
		admin          bool
		expirationTime time.Time
	}{
		{
			name:           "User token",
			expirationTime: time.Now().Add(time.Hour),
		},
		{
			name:           "Admin token",
			admin:          true,
			expirationTime: time.Now().Add(15 * time.Minute),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwtService.GenerateJWT(accountID, tt.admin, tt.expirationTime)
			require.NoError(t, err)
			require.NotEmpty(t, token)

			claims, err := jwtService.ValidateToken(token)
			require.NoError(t, err)
			assert.Equal(t, accountID, claims.AccountID)
			assert.Equal(t, tt.admin, claims.Admin)
			assert.NotEmpty(t, claims.Id)
			assert.Equal(t, tt.expirationTime.Unix(), claims.ExpiresAt)
		})
	}
}

func TestGenerateJWT_UniqueIDs(t *testing.T) {
	jwtService := NewJWTService(testSecret)
	accountID := uuid.New()
	exp := time.Now().Add(time.Hour)

	first, err := jwtService.GenerateJWT(accountID, false, exp)
	require.NoError(t, err)
	second, err := jwtService.GenerateJWT(accountID, false, exp)
	require.NoError(t, err)

	c1, err := jwtService.ValidateToken(first)
	require.NoError(t, err)
	c2, err := jwtService.ValidateToken(second)
	require.NoError(t, err)
	assert.NotEqual(t, c1.Id, c2.Id)
}

func TestValidateToken(t *testing.T) {
	jwtService := NewJWTService(testSecret)

	tests := []struct {
		name        string
		tokenString string
		setup       func() string
		expectError bool
	}{
		{
			name: "Valid Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(uuid.New(), false, time.Now().Add(time.Hour))
				return token
			},
			expectError: false,
		},
		{
			name:        "Invalid Token",
			tokenString: "invalid.token.string",
			expectError: true,
		},
		{
			name: "Expired Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(uuid.New(), false, time.Now().Add(-time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Foreign Secret",
			setup: func() string {
				token, _ := NewJWTService("other-secret").GenerateJWT(uuid.New(), true, time.Now().Add(time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Invalid Claims Type",
			setup: func() string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
					ExpiresAt: time.Now().Add(time.Hour).Unix(),
					Issuer:    issuer,
				})
				signedToken, _ := token.SignedString([]byte(testSecret))
				return signedToken
			},
			expectError: true,
		},
		{
			name: "Wrong Issuer",
			setup: func() string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
					AccountID: uuid.New(),
					StandardClaims: jwt.StandardClaims{
						Id:        uuid.NewString(),
						ExpiresAt: time.Now().Add(time.Hour).Unix(),
						Issuer:    "another-service",
					},
				})
				signedToken, _ := token.SignedString([]byte(testSecret))
				return signedToken
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tokenString string
			if tt.setup != nil {
				tokenString = tt.setup()
			} else {
				tokenString = tt.tokenString
			}

			claims, err := jwtService.ValidateToken(tokenString)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, claims)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, claims)
			}
		})
	}
}
