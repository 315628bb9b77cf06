package topic

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"hash"
)

// Digest returns a SHA-256 content hash of topics, used to detect whether a
// newly delivered list differs from the previous one. Order matters: the
// layouts process topics in list order. Fields are hashed as raw,
// length-prefixed bytes, so lists differing only in invalid UTF-8 still
// produce different digests.
func Digest(topics []Topic) string {
	d := digester{h: sha256.New()}
	d.count(len(topics))
	for _, t := range topics {
		d.field(t.ID)
		d.field(t.Label)
		d.field(t.Summary)
		d.count(len(t.Keyphrases))
		for _, k := range t.Keyphrases {
			d.field(k)
		}
		d.count(len(t.Points))
		for _, p := range t.Points {
			d.field(p.Text)
		}
	}
	return hex.EncodeToString(d.h.Sum(nil))
}

type digester struct {
	h   hash.Hash
	buf []byte
}

func (d *digester) count(n int) {
	d.buf = binary.AppendUvarint(d.buf[:0], uint64(n))
	d.h.Write(d.buf)
}

func (d *digester) field(s string) {
	d.count(len(s))
	d.h.Write([]byte(s))
}
