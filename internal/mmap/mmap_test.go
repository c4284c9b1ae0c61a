package mmap

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_WriteFlushReadBack(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "mmap_test")
	require.NoError(t, err)

	size := 64
	_, err = f.Write(make([]byte, size))
	require.NoError(t, err)

	m, err := Map(f.Fd(), size)
	require.NoError(t, err)

	assert.Equal(t, size, m.Size())
	assert.Len(t, m.Bytes(), size)

	m.Bytes()[0] = 0xab
	m.Bytes()[size-1] = 0xcd

	require.NoError(t, m.Flush())
	require.NoError(t, m.Close())
	require.NoError(t, f.Close())

	// The stores must have reached the file.
	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Equal(t, byte(0xab), data[0])
	assert.Equal(t, byte(0xcd), data[size-1])
}

func TestMapAnon(t *testing.T) {
	m, err := MapAnon(128)
	require.NoError(t, err)
	defer m.Close()

	// Zero-initialized by the platform.
	for _, b := range m.Bytes() {
		require.Equal(t, byte(0), b)
	}

	m.Bytes()[42] = 0xff
	assert.Equal(t, byte(0xff), m.Bytes()[42])

	// Nothing durable behind it, but Flush must still be safe.
	assert.NoError(t, m.Flush())
}

func TestMap_InvalidSize(t *testing.T) {
	_, err := MapAnon(-1)
	assert.Equal(t, ErrInvalidSize, err)

	_, err = Map(0, -1)
	assert.Equal(t, ErrInvalidSize, err)
}

func TestMap_ZeroSize(t *testing.T) {
	m, err := MapAnon(0)
	require.NoError(t, err)

	assert.Equal(t, 0, m.Size())
	assert.Nil(t, m.Bytes())
	assert.NoError(t, m.Flush())
	assert.NoError(t, m.Close())
}

func TestOpen_ReadOnly(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "mmap_ro")
	require.NoError(t, err)

	content := []byte("hello, mapping")
	_, err = f.Write(content)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	m, err := Open(f.Name())
	require.NoError(t, err)
	defer m.Close()

	assert.Equal(t, len(content), m.Size())
	assert.Equal(t, content, m.Bytes())
}

func TestMapping_CloseIdempotent(t *testing.T) {
	m, err := MapAnon(16)
	require.NoError(t, err)

	require.NoError(t, m.Close())
	require.NoError(t, m.Close())

	assert.Nil(t, m.Bytes())
	assert.Equal(t, ErrClosed, m.Flush())
}
