package hashing

import (
	"crypto/md5"  //nolint:gosec
	"crypto/sha1" //nolint:gosec
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"hash"
	"sort"

	"github.com/OneOfOne/xxhash"
	"github.com/amp-labs/floatord/errors"
	"github.com/zeebo/xxh3"
)

// HashFunc is a function that takes a Hashable object
// and returns a string representation of its hashing.
// As an example, the Sha256 function is a HashFunc.
// This lets us talk about hashing functions in a generic way.
type HashFunc func(hashable Hashable) (string, error)

// Hashable is an interface that allows an object to update
// a hash.Hash with its contents. This is useful for hashing
// objects so that they can be easily compared.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

// Sha256 returns the SHA256 hashing of the given Hashable
// as a hex-encoded string. If the Hashable fails to
// update the hashing, an error is returned.
func Sha256(hashable Hashable) (string, error) {
	return sum(sha256.New(), hashable)
}

// Sha512 returns the SHA512 hashing of the given Hashable as a hex-encoded string.
func Sha512(hashable Hashable) (string, error) {
	return sum(sha512.New(), hashable)
}

// Sha1 returns the SHA1 hashing of the given Hashable as a hex-encoded string.
func Sha1(hashable Hashable) (string, error) {
	return sum(sha1.New(), hashable) //nolint:gosec
}

// Md5 returns the MD5 hashing of the given Hashable as a hex-encoded string.
func Md5(hashable Hashable) (string, error) {
	return sum(md5.New(), hashable) //nolint:gosec
}

// Xxh3 returns the 64-bit XXH3 hashing of the given Hashable as a
// 16 character hex string. It is much faster than the cryptographic
// functions and is the better choice for in-memory sets.
func Xxh3(hashable Hashable) (string, error) {
	h := xxh3.New()

	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return fmt.Sprintf("%016x", h.Sum64()), nil
}

// Xxhash64 returns the 64-bit XXH64 hashing of the given Hashable as a
// 16 character hex string.
func Xxhash64(hashable Hashable) (string, error) {
	h := xxhash.New64()

	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return fmt.Sprintf("%016x", h.Sum64()), nil
}

func sum(h hash.Hash, hashable Hashable) (string, error) {
	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

var registry = map[string]HashFunc{ //nolint:gochecknoglobals
	"md5":      Md5,
	"sha1":     Sha1,
	"sha256":   Sha256,
	"sha512":   Sha512,
	"xxh3":     Xxh3,
	"xxhash64": Xxhash64,
}

// ByName returns the HashFunc registered under name.
func ByName(name string) (HashFunc, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownHash, name)
	}

	return fn, nil
}

// Names returns the registered hash function names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

type HashableString string

func (s HashableString) String() string {
	return string(s)
}

func (s HashableString) UpdateHash(h hash.Hash) error {
	_, err := h.Write([]byte(s))
	if err != nil {
		return err
	}

	return nil
}

func (s HashableString) Equals(other HashableString) bool {
	return s == other
}

type HashableBytes []byte

func (b HashableBytes) UpdateHash(h hash.Hash) error {
	_, err := h.Write(b)

	return err
}

func (b HashableBytes) Equals(other HashableBytes) bool {
	return string(b) == string(other)
}

// HashableUint32 hashes as its 4 big-endian bytes.
type HashableUint32 uint32

func (u HashableUint32) UpdateHash(h hash.Hash) error {
	var buf [4]byte

	binary.BigEndian.PutUint32(buf[:], uint32(u))

	_, err := h.Write(buf[:])

	return err
}

func (u HashableUint32) Equals(other HashableUint32) bool {
	return u == other
}

// HashableUint64 hashes as its 8 big-endian bytes.
type HashableUint64 uint64

func (u HashableUint64) UpdateHash(h hash.Hash) error {
	var buf [8]byte

	binary.BigEndian.PutUint64(buf[:], uint64(u))

	_, err := h.Write(buf[:])

	return err
}

func (u HashableUint64) Equals(other HashableUint64) bool {
	return u == other
}
