//go:build unit

package password_test

import (
	"testing"

	"residencial-admin/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := password.HashPasswordWithCost("admin123", password.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", hash)

	assert.NoError(t, password.ComparePassword(hash, "admin123"))
	assert.ErrorIs(t, password.ComparePassword(hash, "admin124"), password.ErrComparisonFailed)
	assert.ErrorIs(t, password.ComparePassword("", "admin123"), password.ErrInvalidPassword)

	_, err = password.HashPassword("")
	assert.ErrorIs(t, err, password.ErrInvalidPassword)
}
