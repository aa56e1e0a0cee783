package project

import (
	"crypto/sha256"
)

// Digest is a fixed 256-bit hash, layout-compatible with source.File.Hash.
type Digest [32]byte

// Combine mixes a content digest with extra digests: H( content || d1 || d2 ... ).
// Callers must pass the extras in a deterministic order; the scan cache
// keys entries on Combine(fileHash, optionsFingerprint).
func Combine(content Digest, extra ...Digest) Digest {
	h := sha256.New()
	_, _ = h.Write(content[:])
	for _, d := range extra {
		_, _ = h.Write(d[:])
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}
