package orders

import (
	"crypto/rand"
	"math/big"
)

const (
	referencePrefix   = "ELX-"
	referenceLength   = 9
	referenceAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// NewReference builds a customer-facing order reference like "ELX-K3F9A01QZ".
func NewReference() string {
	buf := make([]byte, referenceLength)
	max := big.NewInt(int64(len(referenceAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand failing means the process is in far deeper
			// trouble than order numbering.
			panic(err)
		}
		buf[i] = referenceAlphabet[n.Int64()]
	}
	return referencePrefix + string(buf)
}
