package boltkv

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPutGetDelete(t *testing.T) {
	require := require.New(t)

	db, err := OpenDB(filepath.Join(t.TempDir(), "bolt.db"))
	require.NoError(err)
	defer db.Close()

	require.NoError(db.Put([]byte("key"), []byte("value")))
	v, err := db.Get([]byte("key"))
	require.NoError(err)
	require.Equal([]byte("value"), v)

	require.NoError(db.Delete([]byte("key")))
	_, err = db.Get([]byte("key"))
	require.ErrorIs(err, db.ErrNotFound())
}

func TestBatchSurvivesReopen(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "bolt.db")
	db, err := OpenDB(path)
	require.NoError(err)

	wb := db.NewBatch()
	wb.Put([]byte("k1"), []byte("v1"))
	wb.Put([]byte("k2"), []byte("v2"))
	wb.Delete([]byte("k1"))
	require.NoError(db.Write(wb))
	require.NoError(db.Close())

	db, err = OpenDB(path)
	require.NoError(err)
	defer db.Close()

	_, err = db.Get([]byte("k1"))
	require.ErrorIs(err, ErrNotFound)
	v, err := db.Get([]byte("k2"))
	require.NoError(err)
	require.Equal([]byte("v2"), v)

	wb.Reset()
	require.NoError(db.Write(wb))
}
