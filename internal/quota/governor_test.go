package quota

import (
	"context"
	"testing"
	"time"

	"github.com/shenikar/fire_reporting_system/internal/credentials"
	"github.com/shenikar/fire_reporting_system/internal/storage"
	"github.com/shenikar/fire_reporting_system/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestGovernor собирает Governor поверх хранилища в памяти
// с фиксированными часами.
func newTestGovernor(t *testing.T, budget int, now time.Time) (*Governor, *credentials.Store, *storage.MemoryKeyValue) {
	t.Helper()
	kv := storage.NewMemoryKeyValue()
	creds := credentials.NewStore(kv, "built-in-key")
	governor := NewGovernor(kv, creds, budget, logger.NewSilent()).
		WithClock(func() time.Time { return now })
	return governor, creds, kv
}

func TestRemaining_FreshClient(t *testing.T) {
	// Подготовка
	governor, _, _ := newTestGovernor(t, 5, time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC))
	ctx := context.Background()

	// Действие
	remaining, unlimited, err := governor.Remaining(ctx, "client-1")

	// Проверки
	require.NoError(t, err)
	assert.False(t, unlimited)
	assert.Equal(t, 5, remaining)
}

func TestRecordCall_DecrementsRemaining(t *testing.T) {
	// Подготовка
	governor, _, _ := newTestGovernor(t, 5, time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC))
	ctx := context.Background()

	// Действие
	require.NoError(t, governor.RecordCall(ctx, "client-1"))
	require.NoError(t, governor.RecordCall(ctx, "client-1"))
	remaining, unlimited, err := governor.Remaining(ctx, "client-1")

	// Проверки
	require.NoError(t, err)
	assert.False(t, unlimited)
	assert.Equal(t, 3, remaining)
}

func TestExhausted_AfterBudgetSpent(t *testing.T) {
	// Подготовка
	governor, _, _ := newTestGovernor(t, 2, time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC))
	ctx := context.Background()

	// Действие
	require.NoError(t, governor.RecordCall(ctx, "client-1"))
	require.NoError(t, governor.RecordCall(ctx, "client-1"))
	exhausted, err := governor.Exhausted(ctx, "client-1")

	// Проверки
	require.NoError(t, err)
	assert.True(t, exhausted)
}

func TestRemaining_ResetsOnNewDay(t *testing.T) {
	// Подготовка
	day := time.Date(2026, 3, 14, 23, 0, 0, 0, time.UTC)
	governor, _, _ := newTestGovernor(t, 5, day)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, governor.RecordCall(ctx, "client-1"))
	}
	exhausted, err := governor.Exhausted(ctx, "client-1")
	require.NoError(t, err)
	require.True(t, exhausted)

	// Действие
	// Наступили новые сутки: счетчик обязан сброситься лениво при чтении
	governor.WithClock(func() time.Time { return day.Add(2 * time.Hour) })
	remaining, unlimited, err := governor.Remaining(ctx, "client-1")

	// Проверки
	require.NoError(t, err)
	assert.False(t, unlimited)
	assert.Equal(t, 5, remaining)
}

func TestRemaining_UnlimitedWithOverride(t *testing.T) {
	// Подготовка
	governor, creds, _ := newTestGovernor(t, 5, time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC))
	ctx := context.Background()
	require.NoError(t, creds.SetOverride(ctx, "client-1", "user-key"))

	// Действие
	remaining, unlimited, err := governor.Remaining(ctx, "client-1")

	// Проверки
	require.NoError(t, err)
	assert.True(t, unlimited)
	assert.Equal(t, 0, remaining)

	exhausted, err := governor.Exhausted(ctx, "client-1")
	require.NoError(t, err)
	assert.False(t, exhausted)
}

func TestRecordCall_NoopWithOverride(t *testing.T) {
	// Подготовка
	governor, creds, kv := newTestGovernor(t, 5, time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC))
	ctx := context.Background()
	require.NoError(t, creds.SetOverride(ctx, "client-1", "user-key"))

	// Действие
	require.NoError(t, governor.RecordCall(ctx, "client-1"))

	// Проверки
	stored, err := kv.Get(ctx, usageCountKeyPrefix+"client-1")
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestRemaining_MalformedCounterTreatedAsZero(t *testing.T) {
	// Подготовка
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	governor, _, kv := newTestGovernor(t, 5, now)
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, usageDateKeyPrefix+"client-1", now.Format(dateLayout)))
	require.NoError(t, kv.Set(ctx, usageCountKeyPrefix+"client-1", "not-a-number"))

	// Действие
	remaining, unlimited, err := governor.Remaining(ctx, "client-1")

	// Проверки
	require.NoError(t, err)
	assert.False(t, unlimited)
	assert.Equal(t, 5, remaining)
}

func TestRemaining_IndependentPerClient(t *testing.T) {
	// Подготовка
	governor, _, _ := newTestGovernor(t, 5, time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC))
	ctx := context.Background()

	// Действие
	require.NoError(t, governor.RecordCall(ctx, "client-1"))
	remainingOther, _, err := governor.Remaining(ctx, "client-2")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 5, remainingOther)
}
