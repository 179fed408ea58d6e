package xor

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadWrite(t *testing.T) {
	data := "A string with some text"
	key := []byte{0xde, 0xad, 0xbe, 0xef}
	var output strings.Builder

	in, err := NewReader(strings.NewReader(data), key)
	require.NoError(t, err)

	out, err := NewWriter(&output, key)
	require.NoError(t, err)

	n, err := io.Copy(out, in)
	assert.NoError(t, err)
	assert.Equal(t, int64(len(data)), n)
	assert.Equal(t, data, output.String())
}

func TestWriter_MatchesRepeatingKey(t *testing.T) {
	var (
		buf  bytes.Buffer
		data = []byte("some longer payload spanning several key cycles")
		key  = []byte("key")
	)
	orig := append([]byte(nil), data...)
	w, err := NewWriter(&buf, key)
	require.NoError(t, err)

	// Split writes must continue the key where the previous write left off.
	_, err = w.Write(data[:5])
	require.NoError(t, err)
	_, err = w.Write(data[5:])
	require.NoError(t, err)

	expected, err := RepeatingKey(data, key)
	require.NoError(t, err)
	assert.Equal(t, expected, buf.Bytes())
	assert.Equal(t, orig, data)
}

func TestWriter_Reset(t *testing.T) {
	var (
		outA bytes.Buffer
		outB bytes.Buffer
		in   = []byte{0x0, 0x1}
		key  = []byte{0x0, 0x1, 0x1, 0x2}
	)
	w, err := NewWriter(&outA, key, 1)
	require.NoError(t, err)
	n, err := w.Write(in)
	assert.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []byte{0x1, 0x0}, outA.Bytes())

	w.Reset(&outB)
	n, err = w.Write(in)
	assert.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []byte{0x1, 0x0}, outB.Bytes())
}

func TestReader_Reset(t *testing.T) {
	var (
		outA = make([]byte, 2)
		outB = make([]byte, 2)
		in   = []byte{0x0, 0x1}
		key  = []byte{0x0, 0x1, 0x1, 0x2}
	)
	r, err := NewReader(bytes.NewReader(in), key, 1)
	require.NoError(t, err)
	n, err := r.Read(outA)
	assert.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []byte{0x1, 0x0}, outA)

	r.Reset(bytes.NewReader(in))
	n, err = r.Read(outB)
	assert.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []byte{0x1, 0x0}, outB)
}

func TestNewReaderWriter_Neg(t *testing.T) {
	_, err := NewReader(strings.NewReader(""), nil)
	assert.ErrorIs(t, err, ErrEmptyKey)
	_, err = NewWriter(io.Discard, []byte{1}, 3)
	assert.Error(t, err)
}
