// Package daily derives the deterministic seed behind the "word of the
// day": every session that asks for a daily round of a tier on the same
// UTC date gets the same word.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Seed returns HMAC(salt, "YYYY-MM-DD|tier") folded into a uint64.
func Seed(date time.Time, salt, tier string) uint64 {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date) + "|" + tier))
	sum := h.Sum(nil)
	// first 8 bytes are enough for a modulus over a small pool
	return binary.BigEndian.Uint64(sum[:8])
}
