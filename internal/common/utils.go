package common

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"time"
)

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// idSuffixLen is the number of random base-36 characters appended to the
// millisecond timestamp in NewID.
const idSuffixLen = 9

// NewID returns an identifier made of the decimal Unix-millisecond timestamp
// of now followed by a random base-36 suffix, e.g. "1718460000000k3j9x0a1b".
//
// Collisions are possible in principle (same millisecond and same suffix)
// but are treated as negligible.
func NewID(now time.Time) string {
	suffix := make([]byte, idSuffixLen)
	base := big.NewInt(int64(len(idAlphabet)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, base)
		if err != nil {
			// crypto/rand does not fail on supported platforms; fall back to
			// the clock so the id is still usable.
			n = big.NewInt(now.UnixNano() % int64(len(idAlphabet)))
		}
		suffix[i] = idAlphabet[n.Int64()]
	}
	return strconv.FormatInt(now.UnixMilli(), 10) + string(suffix)
}

// WipeByteArray overwrites the contents of the provided byte slice with zeros.
// Used for password buffers read from the terminal.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
