package daily

import (
	"encoding/binary"
	"time"

	"golang.org/x/crypto/blake2b"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Seed returns a deterministic puzzle seed for the date using keyed
// BLAKE2b-256(salt, YYYY-MM-DD). Everyone asking on the same UTC day with the
// same salt gets the same puzzle.
func Seed(date time.Time, salt string) uint64 {
	key := []byte(salt)
	if len(key) > blake2b.Size {
		sum := blake2b.Sum256(key)
		key = sum[:]
	}
	h, err := blake2b.New256(key)
	if err != nil {
		// unreachable: key is at most blake2b.Size bytes
		panic(err)
	}
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// take first 8 bytes to uint64
	return binary.BigEndian.Uint64(sum[:8])
}
