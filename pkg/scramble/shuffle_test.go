package scramble

import (
	"github.com/stretchr/testify/assert"
	"math/rand/v2"
	"sort"
	"testing"
)

func randomBuffer(n int) []byte {
	rng := rand.New(rand.NewPCG(uint64(n), 7))
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte(rng.UintN(256))
	}
	return buf
}

func TestShuffle_RoundTrip(t *testing.T) {
	engine := DefaultEngine()
	for _, n := range []int{0, 1, 2, 5, 64, 4096} {
		data := randomBuffer(n)
		shuffled := Shuffle(data, 0xc0ffee, engine)
		assert.Len(t, shuffled, n)
		assert.Equal(t, data, Unshuffle(shuffled, 0xc0ffee, engine))
	}
}

func TestShuffle_PreservesBytes(t *testing.T) {
	engine := DefaultEngine()
	data := randomBuffer(512)
	shuffled := Shuffle(data, 42, engine)

	want := append([]byte(nil), data...)
	got := append([]byte(nil), shuffled...)
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })
	sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
	assert.Equal(t, want, got)
}

func TestShuffle_DoesNotMutateInput(t *testing.T) {
	data := []byte{10, 20, 30, 40, 50}
	orig := append([]byte(nil), data...)
	_ = Shuffle(data, 9, DefaultEngine())
	assert.Equal(t, orig, data)
}

func TestUnshuffle_WrongSeedGarbles(t *testing.T) {
	engine := DefaultEngine()
	data := randomBuffer(256)
	shuffled := Shuffle(data, 100, engine)
	assert.NotEqual(t, data, Unshuffle(shuffled, 101, engine))
}
