package scramble

import (
	"crypto/sha256"
	"encoding/binary"
)

// Password is a human-readable string used to derive KeyMaterial.
type Password = string

// KeyMaterial holds the values derived from a password that both the encrypt
// and decrypt paths depend on. It is immutable once derived.
type KeyMaterial struct {
	// XorKey is the constant mask applied to every byte by the XOR transform.
	XorKey byte
	// PermSeed seeds the deterministic permutation used by the shuffle transform.
	PermSeed uint64
}

// DeriveKey computes KeyMaterial from a password.
// The password is hashed with SHA-256; the first digest byte becomes XorKey
// and the first 8 digest bytes, read big-endian, become PermSeed.
// The remainder of the digest is discarded. That's intentionally thin key
// material, in keeping with the obfuscation-only goal of this package.
//
// DeriveKey is a pure function: the same password always yields the same
// KeyMaterial, in any process, on any platform.
func DeriveKey(password Password) KeyMaterial {
	sum := sha256.Sum256([]byte(password))
	return KeyMaterial{
		XorKey:   sum[0],
		PermSeed: binary.BigEndian.Uint64(sum[:8]),
	}
}
