package random

import (
	"crypto/rand"
	"encoding/hex"
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// ID returns a random alphanumeric identifier of length[0] characters
// (default 16). Randomness comes from crypto/rand; the draw is unbiased
// over the 62-character alphabet.
//
// ID panics if the system entropy source fails, which on supported
// platforms does not happen.
func ID(length ...int) string {
	n := 16
	if len(length) > 0 && length[0] > 0 {
		n = length[0]
	}
	out := make([]byte, 0, n)
	buf := make([]byte, n)
	for len(out) < n {
		if _, err := io.ReadFull(rand.Reader, buf); err != nil {
			panic("random: entropy source unavailable: " + err.Error())
		}
		for _, b := range buf {
			// rejection sampling: accept only [0, 248) so b%62 is uniform
			if b >= 248 {
				continue
			}
			out = append(out, alphanumeric[int(b)%62])
			if len(out) == n {
				break
			}
		}
	}
	return string(out)
}

// Hex returns n random bytes hex-encoded (2n characters). Panics on
// entropy failure, like [ID].
func Hex(n int) string {
	buf := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		panic("random: entropy source unavailable: " + err.Error())
	}
	return hex.EncodeToString(buf)
}

// UUID returns a random RFC 4122 version-4 UUID string.
func UUID() string {
	return uuid.New().String()
}

// Fingerprint returns a fast, stable 64-bit hash of s. It is NOT
// cryptographic; use it for derived map keys, sharding, and duplicate
// detection over values that are cheap to stringify.
func Fingerprint(s string) uint64 {
	return xxhash.Sum64String(s)
}
