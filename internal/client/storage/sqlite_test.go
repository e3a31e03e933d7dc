package storage

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE kvstore (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func TestSQLiteRepository_GetAbsentKeyIsNil(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))

	v, err := repo.Get(context.Background(), KeyToken)
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestSQLiteRepository_SetGetRoundTrip(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, KeyToken, []byte("abc123")))

	v, err := repo.Get(ctx, KeyToken)
	require.NoError(t, err)
	require.Equal(t, []byte("abc123"), v)
}

func TestSQLiteRepository_SetOverwrites(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, KeyUser, []byte("first")))
	require.NoError(t, repo.Set(ctx, KeyUser, []byte("second")))

	v, err := repo.Get(ctx, KeyUser)
	require.NoError(t, err)
	require.Equal(t, []byte("second"), v)
}

func TestSQLiteRepository_DeleteAndClear(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, KeyToken, []byte("t")))
	require.NoError(t, repo.Set(ctx, KeyUser, []byte("u")))

	require.NoError(t, repo.Delete(ctx, KeyToken))
	v, err := repo.Get(ctx, KeyToken)
	require.NoError(t, err)
	require.Nil(t, v)

	require.NoError(t, repo.Clear(ctx))
	v, err = repo.Get(ctx, KeyUser)
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestRepositoryTokenSource(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()
	ts := NewRepositoryTokenSource(repo)

	// absent token is not an error
	token, err := ts.Token(ctx)
	require.NoError(t, err)
	require.Empty(t, token)

	require.NoError(t, repo.Set(ctx, KeyToken, []byte("bearer-me")))
	token, err = ts.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, "bearer-me", token)
}
