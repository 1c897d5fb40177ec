package ordernum

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var format = regexp.MustCompile(`^ORD-\d{8}-[A-Z0-9]{6}$`)

func TestGenerateFormat(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	n := Generate(now)
	require.Regexp(t, format, n)
	require.Equal(t, "ORD-20260314-", n[:13])
}

func TestGenerateUniqueness(t *testing.T) {
	now := time.Now()
	seen := make(map[string]struct{}, 10000)
	dups := 0
	for i := 0; i < 10000; i++ {
		n := Generate(now)
		if _, ok := seen[n]; ok {
			dups++
		}
		seen[n] = struct{}{}
	}
	// Birthday bound over a 36^6 space: expected collisions for 10k
	// draws is ~0.02, so more than one duplicate means a broken source.
	require.LessOrEqual(t, dups, 1)
}
