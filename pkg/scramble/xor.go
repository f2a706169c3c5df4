package scramble

// XorBytes returns a new buffer with every byte of data masked by key.
// The input is never mutated. Applying XorBytes twice with the same key
// returns the original bytes, so the transform is its own inverse.
// A zero-length buffer is returned as a new zero-length buffer.
func XorBytes(data []byte, key byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ key
	}
	return out
}
