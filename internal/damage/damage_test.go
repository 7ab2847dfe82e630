package damage

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRollIsDeterministic(t *testing.T) {
	roller := New()
	sig := []byte("the same signature bytes every time")

	first := roller.Roll(sig, DefaultCap)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, roller.Roll(sig, DefaultCap))
	}
}

func TestRollStaysInRange(t *testing.T) {
	roller := New()

	for i := 0; i < 1000; i++ {
		sig := make([]byte, 64)
		_, err := rand.Read(sig)
		require.NoError(t, err)

		roll := roller.Roll(sig, DefaultCap)
		assert.GreaterOrEqual(t, roll, 1)
		assert.LessOrEqual(t, roll, DefaultCap)
	}
}

func TestRollVariesAcrossSignatures(t *testing.T) {
	roller := New()

	seen := make(map[int]bool)
	for i := 0; i < 256; i++ {
		sig := []byte{byte(i)}
		seen[roller.Roll(sig, DefaultCap)] = true
	}

	// 256 one-byte signatures over a 40-value range should hit most of it
	assert.Greater(t, len(seen), 30)
}

func TestRollEmptySignature(t *testing.T) {
	roller := New()

	// sha256 of empty input is well defined; the roll must still be bounded
	roll := roller.Roll(nil, DefaultCap)
	assert.GreaterOrEqual(t, roll, 1)
	assert.LessOrEqual(t, roll, DefaultCap)
}

func TestRollSmallCap(t *testing.T) {
	roller := New()

	// cap 1 always rolls exactly 1
	for i := 0; i < 32; i++ {
		assert.Equal(t, 1, roller.Roll([]byte{byte(i)}, 1))
	}
}
