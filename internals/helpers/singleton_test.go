package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type settingsRow struct {
	ID    uint   `gorm:"primaryKey"`
	Email string `gorm:"type:varchar(254)"`
}

func TestFetchOrInitialize(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:singleton_test?mode=memory&cache=shared"),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&settingsRow{}))

	first, err := FetchOrInitialize(db, &settingsRow{ID: SingletonID})
	require.NoError(t, err)
	assert.Equal(t, SingletonID, first.ID)

	first.Email = "hello@example.org"
	require.NoError(t, db.Save(first).Error)

	// Repeat access must return the same row, not reset it.
	again, err := FetchOrInitialize(db, &settingsRow{ID: SingletonID})
	require.NoError(t, err)
	assert.Equal(t, "hello@example.org", again.Email)

	var count int64
	require.NoError(t, db.Model(&settingsRow{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
