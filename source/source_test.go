package source

import (
	"errors"
	"sync"
	"testing"

	"github.com/fernandosanchezjr/gosampling/config"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mathext/prng"
)

func allAlgorithms() []Algorithm {
	var algs []Algorithm
	for alg := Algorithm(0); alg < Last; alg++ {
		algs = append(algs, alg)
	}
	return algs
}

func TestNew_Deterministic(t *testing.T) {
	for _, alg := range allAlgorithms() {
		t.Run(alg.String(), func(t *testing.T) {
			a, err := New(alg, 1234)
			require.NoError(t, err)
			b, err := New(alg, 1234)
			require.NoError(t, err)
			for i := 0; i < 256; i++ {
				require.Equal(t, a.Uint64(), b.Uint64())
				require.Equal(t, a.Uint32(), b.Uint32())
			}
		})
	}
}

func TestSeeded_Reseed(t *testing.T) {
	for _, alg := range allAlgorithms() {
		t.Run(alg.String(), func(t *testing.T) {
			s, err := New(alg, 99)
			require.NoError(t, err)
			var first [16]uint64
			for i := range first {
				first[i] = s.Uint64()
			}
			s.Reseed(99)
			assert.Equal(t, uint64(99), s.Seed())
			for i := range first {
				assert.Equal(t, first[i], s.Uint64())
			}
		})
	}
}

func TestSeeded_DifferentSeeds(t *testing.T) {
	a, err := New(Xoshiro256StarStar, 1)
	require.NoError(t, err)
	b, err := New(Xoshiro256StarStar, 2)
	require.NoError(t, err)
	var same int
	for i := 0; i < 64; i++ {
		if a.Uint64() == b.Uint64() {
			same += 1
		}
	}
	assert.Less(t, same, 2)
}

func TestSeeded_WordConstruction(t *testing.T) {
	s, err := New(MT19937, 5489)
	require.NoError(t, err)
	mt := prng.NewMT19937()
	mt.Seed(5489)
	for i := 0; i < 32; i++ {
		hi := uint64(mt.Uint32())
		lo := uint64(mt.Uint32())
		require.Equal(t, hi<<32|lo, s.Uint64())
	}

	x, err := New(Xoshiro256StarStar, 77)
	require.NoError(t, err)
	ref := prng.NewXoshiro256starstar(77)
	for i := 0; i < 32; i++ {
		require.Equal(t, uint32(ref.Uint64()>>32), x.Uint32())
	}
}

func TestParseAlgorithm(t *testing.T) {
	for _, alg := range allAlgorithms() {
		parsed, err := ParseAlgorithm(alg.String())
		require.NoError(t, err)
		assert.Equal(t, alg, parsed)
	}
	parsed, err := ParseAlgorithm("  MT19937-64 ")
	require.NoError(t, err)
	assert.Equal(t, MT19937_64, parsed)

	_, err = ParseAlgorithm("lcg")
	assert.True(t, errors.Is(err, ErrUnknownAlgorithm))
	_, err = New(Last, 1)
	assert.True(t, errors.Is(err, ErrUnknownAlgorithm))
	assert.Equal(t, "Algorithm(42)", Algorithm(42).String())
	assert.True(t, MT19937.Native32())
	assert.False(t, MT19937_64.Native32())
}

func TestFromConfig(t *testing.T) {
	seed := uint64(42)
	s, err := FromConfig(config.Source{Algorithm: "pcg", Seed: &seed})
	require.NoError(t, err)
	assert.Equal(t, PCG, s.Algorithm())
	assert.Equal(t, seed, s.Seed())

	ref, err := New(PCG, seed)
	require.NoError(t, err)
	assert.Equal(t, ref.Uint64(), s.Uint64())

	random, err := FromConfig(config.Source{Algorithm: "splitmix64"})
	require.NoError(t, err)
	log.WithField("seed", random.Seed()).Debug("Random seed")
	assert.Equal(t, SplitMix64, random.Algorithm())

	_, err = FromConfig(config.Source{Algorithm: "unknown"})
	assert.Error(t, err)
}

func TestCounting(t *testing.T) {
	c := NewCounting(NewSequence(1, 2, 3))
	assert.Equal(t, uint32(1), c.Uint32())
	assert.Equal(t, uint64(2), c.Uint64())
	assert.Equal(t, uint64(3), c.Uint64())
	draws32, draws64 := c.Draws()
	assert.Equal(t, uint64(1), draws32)
	assert.Equal(t, uint64(2), draws64)
	assert.Equal(t, uint64(3), c.Total())
	assert.Equal(t, "3 draws (1 32-bit, 2 64-bit)", c.String())
	c.Reset()
	assert.Equal(t, uint64(0), c.Total())
}

func TestLocked(t *testing.T) {
	seeded, err := New(SplitMix64, 3)
	require.NoError(t, err)
	counting := NewCounting(seeded)
	locked := NewLocked(counting)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				locked.Uint32()
				locked.Uint64()
			}
		}()
	}
	wg.Wait()
	draws32, draws64 := counting.Draws()
	assert.Equal(t, uint64(8000), draws32)
	assert.Equal(t, uint64(8000), draws64)
}

func TestSequence(t *testing.T) {
	s := NewSequence(0x1_0000_0002, 7)
	assert.Equal(t, uint32(2), s.Uint32())
	assert.Equal(t, 1, s.Pos())
	assert.Equal(t, uint64(7), s.Uint64())
	assert.Equal(t, 0, s.Pos())
	assert.Equal(t, uint64(0x1_0000_0002), s.Uint64())
	s.Rewind()
	assert.Equal(t, 0, s.Pos())
	assert.Panics(t, func() { NewSequence() })
}

func BenchmarkSeeded_Uint64(b *testing.B) {
	s, err := NewRandom(Xoshiro256StarStar)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	var result uint64
	for i := 0; i < b.N; i++ {
		result = s.Uint64()
	}
	b.StopTimer()
	log.WithField("result", result).Debug("Final result")
}
