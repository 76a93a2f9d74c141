package encode

import (
	"encoding/hex"

	"github.com/signadot/sfmt/ir"

	"github.com/zeebo/blake3"
)

// Digest is a 32-byte BLAKE3 digest of the canonical encoding of a tree.
type Digest [32]byte

// digestKey separates sfmt digests from other BLAKE3 uses of the same
// bytes. Changing it changes every digest.
var digestKey = [32]byte{
	's', 'f', 'm', 't', '.', 'c', 'a', 'n', 'o', 'n', 'i', 'c', 'a', 'l',
}

// Sum returns the keyed BLAKE3 digest of the compact encoding of node.
// Equal trees have equal digests however they were built.
func Sum(node *ir.Node) Digest {
	es := newEncState(nil)
	es.encode(node)
	hasher, err := blake3.NewKeyed(digestKey[:])
	if err != nil {
		panic("encode: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(es.buf)
	var res Digest
	copy(res[:], hasher.Sum(nil))
	return res
}

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}
