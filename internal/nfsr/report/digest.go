package report

import (
	"encoding/binary"
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/keystream/nfsr-cycles/internal/nfsr/cycles"
)

// Fingerprint computes a SHA3-256 digest of the cycle structure so two runs
// can be compared at a glance. The digest is taken over a canonical form —
// each cycle rotated to start at its smallest state, cycles ordered by the
// discovery order of the decomposition — so it is stable across processes
// but changes whenever the structure changes.
func Fingerprint(res *cycles.Result) string {
	h := sha3.New256()

	var buf [8]byte
	writeU64 := func(v uint64) {
		binary.BigEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}

	writeU64(uint64(res.Length))
	writeU64(res.TotalStates)
	for _, c := range res.Cycles {
		writeU64(uint64(len(c)))
		for _, s := range c.Canonical() {
			writeU64(s)
		}
	}

	return hex.EncodeToString(h.Sum(nil))
}
