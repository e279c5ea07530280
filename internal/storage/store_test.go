package storage

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T, dir string, opts Options) *Store {
	t.Helper()
	s, err := Open(dir, opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_PutGet(t *testing.T) {
	s := openStore(t, t.TempDir(), Options{NoSync: true})

	_, ok, err := s.Get([]byte("k"))
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.Put([]byte("k"), []byte("v1")))
	require.NoError(t, s.Put([]byte("k"), []byte("v2")))

	v, ok, err := s.Get([]byte("k"))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte("v2"), v)
	require.Equal(t, 1, s.Len())
	require.Equal(t, uint64(2), s.Records())
}

func TestStore_ValuesAreCopied(t *testing.T) {
	s := openStore(t, t.TempDir(), Options{NoSync: true})

	value := []byte("abc")
	require.NoError(t, s.Put([]byte("k"), value))
	value[0] = 'x'

	v, _, err := s.Get([]byte("k"))
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), v)

	v[1] = 'y'
	again, _, err := s.Get([]byte("k"))
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), again)
}

func TestStore_ReplayOnOpen(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir, Options{})
	require.NoError(t, err)
	require.NoError(t, s.Put([]byte("a"), []byte("1")))
	require.NoError(t, s.Put([]byte("b"), []byte{0x00, 0xff}))
	require.NoError(t, s.Put([]byte("a"), []byte("2")))
	require.NoError(t, s.Close())

	s = openStore(t, dir, Options{})
	require.Equal(t, 2, s.Len())
	require.Equal(t, uint64(3), s.Records())

	v, ok, err := s.Get([]byte("a"))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte("2"), v)

	v, ok, err = s.Get([]byte("b"))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte{0x00, 0xff}, v)
}

func TestStore_AutoCompaction(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir, Options{NoSync: true, CompactThreshold: 4})
	require.NoError(t, err)

	for i := range 10 {
		require.NoError(t, s.Put([]byte("k"), []byte(fmt.Sprintf("v%d", i))))
	}
	require.Equal(t, uint64(2), s.Records())
	require.NoError(t, s.Close())

	s = openStore(t, dir, Options{NoSync: true, CompactThreshold: 4})
	require.Equal(t, uint64(2), s.Records())

	v, ok, err := s.Get([]byte("k"))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte("v9"), v)
}

func TestStore_CompactKeepsEveryKey(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir, Options{NoSync: true})
	require.NoError(t, err)
	for round := range 3 {
		for i := range 5 {
			key := []byte(fmt.Sprintf("k%d", i))
			require.NoError(t, s.Put(key, []byte(fmt.Sprintf("r%d", round))))
		}
	}
	require.Equal(t, uint64(15), s.Records())

	require.NoError(t, s.Compact())
	require.Equal(t, uint64(5), s.Records())
	require.NoError(t, s.Close())

	s = openStore(t, dir, Options{NoSync: true})
	require.Equal(t, 5, s.Len())
	for i := range 5 {
		v, ok, err := s.Get([]byte(fmt.Sprintf("k%d", i)))
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, []byte("r2"), v)
	}
}

func TestStore_Closed(t *testing.T) {
	s, err := Open(t.TempDir(), Options{NoSync: true})
	require.NoError(t, err)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	_, _, err = s.Get([]byte("k"))
	require.ErrorIs(t, err, ErrClosed)
	require.ErrorIs(t, s.Put([]byte("k"), []byte("v")), ErrClosed)
	require.ErrorIs(t, s.Compact(), ErrClosed)
}

func TestService_PutGet(t *testing.T) {
	svc, err := NewService(t.TempDir(), Options{NoSync: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Close() })

	require.NoError(t, svc.Put([]byte("k"), []byte("v")))

	v, ok, err := svc.Get([]byte("k"))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte("v"), v)
	require.Equal(t, 1, svc.Len())
}
