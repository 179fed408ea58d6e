package xor

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepeatingKey(t *testing.T) {
	plain := "Burning 'em, if you ain't quick and nimble\nI go crazy when I hear a cymbal"
	expected := "0b3637272a2b2e63622c2e69692a23693a2a3c6324202d623d63343c2a26226324272765272" +
		"a282b2f20430a652e2c652a3124333a653e2b2027630c692b20283165286326302e27282f"

	got, err := RepeatingKey([]byte(plain), []byte("ICE"))
	require.NoError(t, err)
	assert.Equal(t, expected, hex.EncodeToString(got))

	back, err := RepeatingKey(got, []byte("ICE"))
	require.NoError(t, err)
	assert.Equal(t, plain, string(back))
}

func TestRepeatingKey_Neg(t *testing.T) {
	_, err := RepeatingKey([]byte("data"), nil)
	assert.ErrorIs(t, err, ErrEmptyKey)
}

func TestNewKeyRing_Neg(t *testing.T) {
	_, err := newKeyRing(nil)
	assert.ErrorIs(t, err, ErrEmptyKey)
	_, err = newKeyRing([]byte{0}, -1)
	assert.Error(t, err)
	_, err = newKeyRing([]byte{0}, 1)
	assert.Error(t, err)
	_, err = newKeyRing([]byte{0}, 2)
	assert.Error(t, err)
}

func TestKeyRing_Offset(t *testing.T) {
	ring, err := newKeyRing([]byte{1, 2, 3}, 2)
	require.NoError(t, err)

	out := make([]byte, 4)
	ring.apply(out, make([]byte, 4))
	assert.Equal(t, []byte{3, 1, 2, 3}, out)

	ring.rewind()
	ring.apply(out[:1], []byte{0})
	assert.Equal(t, byte(3), out[0])
}
