package hashing

import (
	"errors"
	"fmt"
	"hash"
	"testing"

	"github.com/OneOfOne/xxhash"
	commonErrors "github.com/amp-labs/floatord/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeebo/xxh3"
)

func TestKnownVectors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fn       HashFunc
		input    Hashable
		expected string
	}{
		{
			name:     "sha256 empty string",
			fn:       Sha256,
			input:    HashableString(""),
			expected: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:     "sha256 simple bytes",
			fn:       Sha256,
			input:    HashableBytes([]byte("hello")),
			expected: "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		},
		{
			name:     "md5 simple string",
			fn:       Md5,
			input:    HashableString("hello"),
			expected: "5d41402abc4b2a76b9719d911017c592",
		},
		{
			name:     "sha1 string with spaces",
			fn:       Sha1,
			input:    HashableString("hello world"),
			expected: "2aae6c35c94fcfb415dbe95f408b9ce91ee846ed",
		},
		{
			name:  "sha512 simple string",
			fn:    Sha512,
			input: HashableString("hello"),
			expected: "9b71d224bd62f3785d96d46ad3ea3d73319bfbc2890caadae2dff72519673ca7" +
				"2323c3d99ba5c11d7c7acc6e14b8c5da0c4663475c2e5c3adef46f73bcdec043",
		},
		{
			name:     "xxh3 empty string",
			fn:       Xxh3,
			input:    HashableString(""),
			expected: "2d06800538d394c2",
		},
		{
			name:     "xxhash64 empty bytes",
			fn:       Xxhash64,
			input:    HashableBytes(nil),
			expected: "ef46db3751d8e999",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := tt.fn(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestXxh3_MatchesOneShot(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"a", "hello world", "the quick brown fox jumps over the lazy dog"} {
		result, err := Xxh3(HashableString(input))
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("%016x", xxh3.HashString(input)), result)

		result, err = Xxhash64(HashableString(input))
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("%016x", xxhash.ChecksumString64(input)), result)
	}
}

// mockHashable is a test implementation of Hashable that can return errors.
type mockHashable struct {
	err error
}

func (m mockHashable) UpdateHash(h hash.Hash) error {
	if m.err != nil {
		return m.err
	}

	_, err := h.Write([]byte("test"))

	return err
}

var errHashTest = errors.New("hash error")

func TestHashFunctions_Error(t *testing.T) {
	t.Parallel()

	mock := mockHashable{err: errHashTest}

	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			fn, err := ByName(name)
			require.NoError(t, err)

			result, err := fn(mock)
			require.ErrorIs(t, err, errHashTest)
			assert.Empty(t, result)
		})
	}
}

func TestByName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"md5", "sha1", "sha256", "sha512", "xxh3", "xxhash64"}, Names())

	fn, err := ByName("sha256")
	require.NoError(t, err)

	viaName, err := fn(HashableString("test"))
	require.NoError(t, err)

	direct, err := Sha256(HashableString("test"))
	require.NoError(t, err)
	assert.Equal(t, direct, viaName)

	_, err = ByName("crc32")
	require.ErrorIs(t, err, commonErrors.ErrUnknownHash)
	assert.Contains(t, err.Error(), `"crc32"`)
}

// mockHash is a test implementation of hash.Hash for testing UpdateHash methods.
type mockHash struct {
	data []byte
}

func (m *mockHash) Write(p []byte) (n int, err error) {
	m.data = append(m.data, p...)

	return len(p), nil
}

func (m *mockHash) Sum(b []byte) []byte {
	return append(b, m.data...)
}

func (m *mockHash) Reset() {
	m.data = nil
}

func (m *mockHash) Size() int {
	return len(m.data)
}

func (m *mockHash) BlockSize() int {
	return 64
}

func TestHashable_UpdateHash(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    Hashable
		expected []byte
	}{
		{name: "string", input: HashableString("hello"), expected: []byte("hello")},
		{name: "bytes", input: HashableBytes([]byte{1, 2}), expected: []byte{1, 2}},
		{name: "uint32", input: HashableUint32(0x80000001), expected: []byte{0x80, 0, 0, 1}},
		{name: "uint64", input: HashableUint64(0x0102030405060708), expected: []byte{1, 2, 3, 4, 5, 6, 7, 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := &mockHash{}

			require.NoError(t, tt.input.UpdateHash(h))
			assert.Equal(t, tt.expected, h.data)
		})
	}
}

func TestHashable_Equals(t *testing.T) {
	t.Parallel()

	assert.True(t, HashableString("hello").Equals("hello"))
	assert.False(t, HashableString("hello").Equals("world"))
	assert.Equal(t, "hello", HashableString("hello").String())
	assert.True(t, HashableBytes(nil).Equals(HashableBytes{}))
	assert.False(t, HashableBytes{1}.Equals(HashableBytes{2}))
	assert.True(t, HashableUint32(7).Equals(7))
	assert.False(t, HashableUint64(7).Equals(8))
}

func TestDifferentInputsProduceDifferentHashes(t *testing.T) {
	t.Parallel()

	hash1, err := Xxh3(HashableUint64(1))
	require.NoError(t, err)

	hash2, err := Xxh3(HashableUint64(2))
	require.NoError(t, err)

	again, err := Xxh3(HashableUint64(1))
	require.NoError(t, err)

	assert.NotEqual(t, hash1, hash2)
	assert.Equal(t, hash1, again)
}
