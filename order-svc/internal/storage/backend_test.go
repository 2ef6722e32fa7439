package storage

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStoreRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisStore(client, time.Hour)

	ctx := context.Background()

	_, err := store.Read(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Write(ctx, "restaurant_orders", []byte(`[{"id":"ORD-1"}]`)))

	got, err := store.Read(ctx, "restaurant_orders")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"ORD-1"}]`, string(got))

	require.NoError(t, store.Delete(ctx, "restaurant_orders"))
	_, err = store.Read(ctx, "restaurant_orders")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStoreExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisStore(client, time.Minute)

	ctx := context.Background()
	require.NoError(t, store.Write(ctx, "restaurant_order_history", []byte(`[]`)))

	mr.FastForward(2 * time.Minute)

	_, err := store.Read(ctx, "restaurant_order_history")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisPopularityTopItems(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	ctx := context.Background()
	key := PopularityKey(1)
	require.NoError(t, client.ZIncrBy(ctx, key, 7, "butter-chicken").Err())
	require.NoError(t, client.ZIncrBy(ctx, key, 3, "garlic-naan").Err())
	require.NoError(t, client.ZIncrBy(ctx, key, 5, "dal-makhani").Err())

	top, err := NewRedisPopularity(client).TopItems(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "butter-chicken", top[0].ItemID)
	assert.Equal(t, 7.0, top[0].Score)
	assert.Equal(t, "dal-makhani", top[1].ItemID)
}

func TestPostgresStoreRead(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewPostgresStore(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT value FROM kv_store").
		WithArgs("restaurant_orders").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte(`[]`)))

	got, err := store.Read(ctx, "restaurant_orders")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), got)

	mock.ExpectQuery("SELECT value FROM kv_store").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	_, err = store.Read(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreWriteUpserts(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewPostgresStore(db)

	mock.ExpectExec("INSERT INTO kv_store").
		WithArgs("restaurant_availability", []byte(`{}`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.Write(context.Background(), "restaurant_availability", []byte(`{}`)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreEnsureSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS kv_store").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, NewPostgresStore(db).EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
