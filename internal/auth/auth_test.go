package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordComplexity(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid password", "hunter42pass", false},
		{"exactly eight", "abcdef12", false},
		{"too short", "ab1", true},
		{"no digits", "abcdefgh", true},
		{"no letters", "12345678", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrComplexity)
				return
			}
			require.NoError(t, err)
			// Hex-encoded sha256 digest.
			assert.Len(t, hash, 64)
		})
	}
}

func TestHashPasswordIsDeterministic(t *testing.T) {
	a, err := HashPassword("hunter42pass")
	require.NoError(t, err)
	b, err := HashPassword("hunter42pass")
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := HashPassword("hunter43pass")
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

type mapHashStore map[int64]string

func (m mapHashStore) PasswordHash(_ context.Context, playerID int64) (string, error) {
	hash, ok := m[playerID]
	if !ok {
		return "", errors.New("no hash on record")
	}
	return hash, nil
}

func TestValidate(t *testing.T) {
	ctx := context.Background()
	hash, err := HashPassword("hunter42pass")
	require.NoError(t, err)

	v := NewValidator(mapHashStore{7: hash})

	assert.NoError(t, v.Validate(ctx, 7, "hunter42pass"))
	assert.ErrorIs(t, v.Validate(ctx, 7, "wrong42pass"), ErrInvalidPassword)
	assert.Error(t, v.Validate(ctx, 99, "hunter42pass"))
}
