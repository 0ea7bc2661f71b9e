package booking

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisStore(client, "bookings", testLogger{}), mr
}

func TestRedisStore_SaveAndLoadRoundTrip(t *testing.T) {
	store, _ := newTestRedisStore(t)
	ctx := context.Background()

	want := []*domain.BookingRecord{
		sampleRecord("100", "2026-09-07", "10:00", "jan@example.com"),
		sampleRecord("200", "2026-09-08", "11:00", "anna@example.com"),
	}
	require.NoError(t, store.SaveAll(ctx, want))

	got, err := store.LoadAll(ctx)
	require.NoError(t, err)
	// LoadAll сортирует по id
	assert.Equal(t, want, got)
}

func TestRedisStore_SaveAllReplacesCollection(t *testing.T) {
	store, _ := newTestRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveAll(ctx, []*domain.BookingRecord{
		sampleRecord("100", "2026-09-07", "10:00", "jan@example.com"),
	}))
	require.NoError(t, store.SaveAll(ctx, []*domain.BookingRecord{
		sampleRecord("200", "2026-09-08", "11:00", "anna@example.com"),
	}))

	got, err := store.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "200", got[0].ID)
}

func TestRedisStore_DropsCorruptedFields(t *testing.T) {
	store, mr := newTestRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveAll(ctx, []*domain.BookingRecord{
		sampleRecord("100", "2026-09-07", "10:00", "jan@example.com"),
	}))
	mr.HSet("bookings", "999", "{broken json")

	got, err := store.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "100", got[0].ID)

	// поврежденное поле удалено из хранилища
	assert.False(t, hashHasField(t, mr, "bookings", "999"))
}

func hashHasField(t *testing.T, mr *miniredis.Miniredis, key, field string) bool {
	t.Helper()
	fields, err := mr.HKeys(key)
	require.NoError(t, err)
	for _, f := range fields {
		if f == field {
			return true
		}
	}
	return false
}

func TestRedisStore_BackfillsMissingDateAndPersists(t *testing.T) {
	store, mr := newTestRedisStore(t)
	ctx := context.Background()

	legacy := `{"id":"100","timeSlot":"10:00","name":"Jan","email":"jan@example.com",` +
		`"gender":"male","age":30,"timestamp":"2026-09-07T08:30:00Z"}`
	mr.HSet("bookings", "100", legacy)

	got, err := store.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2026-09-07", got[0].Date)

	// self-heal записан обратно в redis
	raw := mr.HGet("bookings", "100")
	assert.Contains(t, raw, `"date":"2026-09-07"`)
}

func TestRedisStore_EmptyKeyLoadsEmptyCollection(t *testing.T) {
	store, _ := newTestRedisStore(t)

	got, err := store.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}
