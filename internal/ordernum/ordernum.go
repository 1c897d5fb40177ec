package ordernum

import (
	"crypto/rand"
	"fmt"
	"time"
)

const (
	prefix       = "ORD"
	alphabet     = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	suffixLength = 6
)

// Generate produces a human-readable order number of the form
// ORD-YYYYMMDD-XXXXXX where the suffix comes from crypto/rand. The
// 36^6 space per day makes collisions negligible; the orders table
// still carries a unique constraint as a backstop.
func Generate(now time.Time) string {
	buf := make([]byte, suffixLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the platform RNG is broken.
		panic(fmt.Sprintf("ordernum: rand.Read: %v", err))
	}
	for i := range buf {
		buf[i] = alphabet[int(buf[i])%len(alphabet)]
	}
	return fmt.Sprintf("%s-%s-%s", prefix, now.Format("20060102"), buf)
}
