package scramble

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestParseTransformSet(t *testing.T) {
	set, err := ParseTransformSet("xor")
	assert.NoError(t, err)
	assert.Equal(t, SetXOR, set)

	set, err = ParseTransformSet("shuffle")
	assert.NoError(t, err)
	assert.Equal(t, SetShuffle, set)

	set, err = ParseTransformSet("both")
	assert.NoError(t, err)
	assert.Equal(t, SetBoth, set)

	_, err = ParseTransformSet("rot13")
	assert.ErrorIs(t, err, ErrUnknownTransformSet)
	_, err = ParseTransformSet("")
	assert.ErrorIs(t, err, ErrUnknownTransformSet)
}

func TestPipeline_RoundTripAllSets(t *testing.T) {
	buffers := [][]byte{
		{},
		{0x5a},
		{10, 20, 30, 40},
		randomBuffer(1024),
	}
	for _, set := range []TransformSet{SetXOR, SetShuffle, SetBoth} {
		for _, data := range buffers {
			enc, err := Apply(data, "a test password", set, Encrypt)
			assert.NoError(t, err)
			assert.Len(t, enc, len(data))

			dec, err := Apply(enc, "a test password", set, Decrypt)
			assert.NoError(t, err)
			assert.Equal(t, data, dec, "round trip failed for set %s, len %d", set, len(data))
		}
	}
}

// The encrypt path must be XOR first, shuffle second. Rebuilding that order
// by hand from the primitives has to match the pipeline output exactly.
func TestPipeline_EncryptOrdering(t *testing.T) {
	data := []byte{10, 20, 30, 40}
	km := DeriveKey("abc")

	want := Shuffle(XorBytes(data, km.XorKey), km.PermSeed, DefaultEngine())
	got, err := Apply(data, "abc", SetBoth, Encrypt)
	assert.NoError(t, err)
	assert.Equal(t, want, got)

	dec, err := Apply(got, "abc", SetBoth, Decrypt)
	assert.NoError(t, err)
	assert.Equal(t, data, dec)
}

func TestPipeline_WrongPassword(t *testing.T) {
	data := randomBuffer(128)
	enc, err := Apply(data, "right", SetBoth, Encrypt)
	assert.NoError(t, err)
	dec, err := Apply(enc, "wrong", SetBoth, Decrypt)
	assert.NoError(t, err)
	assert.NotEqual(t, data, dec)
}

func TestPipeline_InvalidArguments(t *testing.T) {
	data := []byte{1, 2, 3}

	_, err := Apply(data, "pw", TransformSet(99), Encrypt)
	assert.ErrorIs(t, err, ErrUnknownTransformSet)

	_, err = Apply(data, "pw", 0, Encrypt)
	assert.ErrorIs(t, err, ErrUnknownTransformSet)

	_, err = Apply(data, "pw", SetBoth, Direction(99))
	assert.ErrorIs(t, err, ErrUnknownDirection)

	_, err = Apply(data, "pw", SetBoth, 0)
	assert.ErrorIs(t, err, ErrUnknownDirection)
}

func TestPipeline_FreshBuffer(t *testing.T) {
	data := []byte{1, 2, 3, 4}
	out, err := Apply(data, "pw", SetXOR, Encrypt)
	assert.NoError(t, err)
	out[0] = 0xee
	assert.Equal(t, []byte{1, 2, 3, 4}, data)
}

type identityEngine struct{}

func (identityEngine) Permutation(n int, _ uint64) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	return perm
}

// A custom engine slots in without any change to ordering logic. With an
// identity permutation the shuffle is a no-op and SetBoth degenerates to XOR.
func TestPipeline_CustomEngine(t *testing.T) {
	data := []byte{10, 20, 30, 40}
	km := DeriveKey("abc")

	p := NewPipeline(identityEngine{})
	enc, err := p.Run(data, "abc", SetBoth, Encrypt)
	assert.NoError(t, err)
	assert.Equal(t, XorBytes(data, km.XorKey), enc)

	dec, err := p.Run(enc, "abc", SetBoth, Decrypt)
	assert.NoError(t, err)
	assert.Equal(t, data, dec)
}

func TestTransformSet_String(t *testing.T) {
	assert.Equal(t, "xor", SetXOR.String())
	assert.Equal(t, "shuffle", SetShuffle.String())
	assert.Equal(t, "both", SetBoth.String())
	assert.Equal(t, "encrypt", Encrypt.String())
	assert.Equal(t, "decrypt", Decrypt.String())
}
