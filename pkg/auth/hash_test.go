package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewHashService(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewHashService(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewHashService(bcrypt.MaxCost+1).cost)
	assert.Equal(t, bcrypt.MinCost, NewHashService(bcrypt.MinCost).cost)
}

func TestHashPassword(t *testing.T) {
	hashService := NewHashService(bcrypt.MinCost)

	tests := []struct {
		name        string
		password    string
		expectedErr error
	}{
		{
			name:     "Valid password",
			password: "bamboo-forest",
		},
		{
			name:     "Exactly 72 bytes",
			password: strings.Repeat("p", MaxPasswordBytes),
		},
		{
			name:        "Empty password",
			password:    "",
			expectedErr: ErrEmptyPassword,
		},
		{
			name:        "Longer than bcrypt accepts",
			password:    strings.Repeat("p", MaxPasswordBytes+1),
			expectedErr: ErrPasswordTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hashedPassword, err := hashService.HashPassword(tt.password)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, hashedPassword)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, tt.password, hashedPassword)
			cost, err := bcrypt.Cost([]byte(hashedPassword))
			require.NoError(t, err)
			assert.Equal(t, bcrypt.MinCost, cost)
		})
	}
}

func TestComparePassword(t *testing.T) {
	hashService := NewHashService(bcrypt.MinCost)
	hashedPassword, err := hashService.HashPassword("bamboo-forest")
	require.NoError(t, err)

	tests := []struct {
		name           string
		password       string
		hashedPassword string
		expectMatch    bool
	}{
		{
			name:           "Matching password",
			password:       "bamboo-forest",
			hashedPassword: hashedPassword,
			expectMatch:    true,
		},
		{
			name:           "Non-matching password",
			password:       "wrongpassword",
			hashedPassword: hashedPassword,
		},
		{
			name:           "Malformed hash",
			password:       "bamboo-forest",
			hashedPassword: "not-a-bcrypt-hash",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectMatch, hashService.ComparePassword(tt.hashedPassword, tt.password))
		})
	}
}
