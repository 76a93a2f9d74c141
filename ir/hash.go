package ir

import (
	"encoding/binary"
	"hash/maphash"
)

var seed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the node, stable for the life of the
// process. Equal nodes have equal hashes.
// It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("ir: Hash called on nil node")
	}
	var h maphash.Hash
	h.SetSeed(seed)
	h.WriteByte(byte(n.kind))

	var b [8]byte
	switch n.kind {
	case ScalarKind:
		h.WriteString(n.text)
	case ListKind:
		binary.LittleEndian.PutUint64(b[:], uint64(len(n.items)))
		h.Write(b[:])
		for _, v := range n.items {
			binary.LittleEndian.PutUint64(b[:], v.Hash())
			h.Write(b[:])
		}
	case TableKind:
		binary.LittleEndian.PutUint64(b[:], uint64(len(n.kvs)))
		h.Write(b[:])
		for _, kv := range n.kvs {
			binary.LittleEndian.PutUint64(b[:], uint64(len(kv.Key)))
			h.Write(b[:])
			h.WriteString(kv.Key)
			binary.LittleEndian.PutUint64(b[:], kv.Val.Hash())
			h.Write(b[:])
		}
	}
	return h.Sum64()
}
