package utils

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cardbin/cardbin-api/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func TestReserveUsernameDerivesBase(t *testing.T) {
	db := newTestDB(t)

	username, err := ReserveUsername(db, "John Doe")
	require.NoError(t, err)
	assert.Equal(t, "johndoe", username)
}

func TestReserveUsernameSuffixesTakenNames(t *testing.T) {
	db := newTestDB(t)

	first, err := ReserveUsername(db, "John Doe")
	require.NoError(t, err)
	second, err := ReserveUsername(db, "john! doe!")
	require.NoError(t, err)
	third, err := ReserveUsername(db, "JOHN DOE")
	require.NoError(t, err)

	assert.Equal(t, "johndoe", first)
	assert.Equal(t, "johndoe1", second)
	assert.Equal(t, "johndoe2", third)
}

func TestReserveUsernameEmptyDisplayName(t *testing.T) {
	db := newTestDB(t)

	username, err := ReserveUsername(db, "!!!")
	require.NoError(t, err)
	assert.Equal(t, "user", username)
}
