package repositories

import (
	"context"
	"testing"

	"gymdesk/internal/adapters/persistence/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryMarkSent_FirstInsertSucceeds(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReminderLogRepository(db)

	ok, err := repo.TryMarkSent(context.Background(), 1, 42, "DUE_TODAY", "2025-06-10")
	require.NoError(t, err)
	assert.True(t, ok)

	var count int64
	db.Model(&models.ReminderLog{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestTryMarkSent_DuplicateIsSilentlySkipped(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReminderLogRepository(db)
	ctx := context.Background()

	ok, err := repo.TryMarkSent(ctx, 1, 42, "DUE_TODAY", "2025-06-10")
	require.NoError(t, err)
	require.True(t, ok)

	// Same member, kind and day: the unique index rejects the insert and
	// the repository reports "already sent" without an error
	ok, err = repo.TryMarkSent(ctx, 1, 42, "DUE_TODAY", "2025-06-10")
	require.NoError(t, err)
	assert.False(t, ok)

	var count int64
	db.Model(&models.ReminderLog{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestTryMarkSent_DifferentKindOrDayStillInserts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReminderLogRepository(db)
	ctx := context.Background()

	ok, err := repo.TryMarkSent(ctx, 1, 42, "REMINDER_2D", "2025-06-08")
	require.NoError(t, err)
	require.True(t, ok)

	// Different kind, same day
	ok, err = repo.TryMarkSent(ctx, 1, 42, "DUE_TODAY", "2025-06-08")
	require.NoError(t, err)
	assert.True(t, ok)

	// Same kind, next day
	ok, err = repo.TryMarkSent(ctx, 1, 42, "REMINDER_2D", "2025-06-09")
	require.NoError(t, err)
	assert.True(t, ok)

	// Different member entirely
	ok, err = repo.TryMarkSent(ctx, 1, 43, "REMINDER_2D", "2025-06-08")
	require.NoError(t, err)
	assert.True(t, ok)

	var count int64
	db.Model(&models.ReminderLog{}).Count(&count)
	assert.Equal(t, int64(4), count)
}
