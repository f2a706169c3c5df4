package scramble

// Shuffle reorders data by the permutation derived from (len(data), seed):
// out[i] = data[perm[i]]. A new buffer is returned; the input is untouched.
// The caller is responsible for remembering the buffer's original shape;
// the shuffle only ever sees the flat byte sequence.
func Shuffle(data []byte, seed uint64, engine PermutationEngine) []byte {
	perm := engine.Permutation(len(data), seed)
	out, err := applyPermutation(data, perm)
	if err != nil {
		// The engine produced a permutation of the wrong length, which
		// violates its contract. Nothing sane can be returned.
		panic(err)
	}
	return out
}

// Unshuffle exactly reverses Shuffle for the same seed and engine. The
// forward permutation is recomputed from the seed and inverted; there is no
// "reverse seed".
func Unshuffle(data []byte, seed uint64, engine PermutationEngine) []byte {
	perm := engine.Permutation(len(data), seed)
	out, err := applyPermutation(data, InvertPermutation(perm))
	if err != nil {
		panic(err)
	}
	return out
}
