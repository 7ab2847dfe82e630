package damage

import (
	"crypto/sha256"
	"encoding/binary"
	"math/bits"
)

// DefaultCap yields damage rolls in [1, 40].
const DefaultCap = 40

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/solapet/petduel/internal/damage Roller

// Roller derives bounded damage values from signature entropy
type Roller interface {
	// Roll returns a value in [1, cap] derived deterministically from
	// the signature bytes
	Roll(sig []byte, cap uint64) int
}

// SHA256Roller implements Roller by hashing the signature and folding
// the digest into a bounded integer
type SHA256Roller struct{}

// New creates a new SHA256-based damage roller
func New() *SHA256Roller {
	return &SHA256Roller{}
}

// Roll hashes the signature, splits the digest into two little-endian
// 128-bit halves, sums them with wraparound and reduces modulo cap.
// The result is in [1, cap] and is the same for the same signature and
// cap every time.
func (r *SHA256Roller) Roll(sig []byte, cap uint64) int {
	digest := sha256.Sum256(sig)

	aLo := binary.LittleEndian.Uint64(digest[0:8])
	aHi := binary.LittleEndian.Uint64(digest[8:16])
	bLo := binary.LittleEndian.Uint64(digest[16:24])
	bHi := binary.LittleEndian.Uint64(digest[24:32])

	lo, carry := bits.Add64(aLo, bLo, 0)
	hi, _ := bits.Add64(aHi, bHi, carry)

	return int(bits.Rem64(hi, lo, cap)) + 1
}
