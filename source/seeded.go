package source

import (
	"fmt"
	"math/rand/v2"

	"github.com/fernandosanchezjr/gosampling/config"
	"github.com/fernandosanchezjr/gosampling/utils"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mathext/prng"
)

type wide interface {
	Seed(seed uint64)
	Uint64() uint64
}

type narrow interface {
	Seed(seed uint64)
	Uint32() uint32
}

type pcgSource struct {
	*rand.PCG
}

func (p pcgSource) Seed(seed uint64) {
	p.PCG.Seed(seed, prng.NewSplitMix64(seed).Uint64())
}

type chaCha8Source struct {
	*rand.ChaCha8
}

func chaCha8Key(seed uint64) (key [32]byte) {
	var sm = prng.NewSplitMix64(seed)
	for i := 0; i < len(key); i += 8 {
		word := sm.Uint64()
		for j := 0; j < 8; j++ {
			key[i+j] = byte(word >> (8 * j))
		}
	}
	return key
}

func (c chaCha8Source) Seed(seed uint64) {
	*c.ChaCha8 = *rand.NewChaCha8(chaCha8Key(seed))
}

// Seeded is a deterministic bit source backed by one of the Algorithm
// generators. The same algorithm and seed always replay the same words.
type Seeded struct {
	alg  Algorithm
	seed uint64
	w    wide
	n    narrow
}

func New(alg Algorithm, seed uint64) (*Seeded, error) {
	s := &Seeded{alg: alg, seed: seed}
	switch alg {
	case Xoshiro256StarStar:
		s.w = prng.NewXoshiro256starstar(seed)
	case Xoshiro256Plus:
		s.w = prng.NewXoshiro256plus(seed)
	case Xoshiro256PlusPlus:
		s.w = prng.NewXoshiro256plusplus(seed)
	case SplitMix64:
		s.w = prng.NewSplitMix64(seed)
	case MT19937:
		mt := prng.NewMT19937()
		mt.Seed(seed)
		s.n = mt
	case MT19937_64:
		mt := prng.NewMT19937_64()
		mt.Seed(seed)
		s.w = mt
	case PCG:
		p := pcgSource{PCG: &rand.PCG{}}
		p.Seed(seed)
		s.w = p
	case ChaCha8:
		s.w = chaCha8Source{ChaCha8: rand.NewChaCha8(chaCha8Key(seed))}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
	}
	log.WithFields(log.Fields{
		"algorithm": alg,
		"seed":      seed,
	}).Debug("Bit source created")
	return s, nil
}

// NewRandom seeds alg from the operating system's CSPRNG.
func NewRandom(alg Algorithm) (*Seeded, error) {
	return New(alg, utils.RandomUint64())
}

func FromConfig(cfg config.Source) (*Seeded, error) {
	alg, err := ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		return nil, err
	}
	if cfg.Seed == nil {
		return NewRandom(alg)
	}
	return New(alg, *cfg.Seed)
}

func (s *Seeded) Algorithm() Algorithm {
	return s.alg
}

func (s *Seeded) Seed() uint64 {
	return s.seed
}

// Reseed restarts the generator as if freshly built with seed.
func (s *Seeded) Reseed(seed uint64) {
	s.seed = seed
	if s.alg.Native32() {
		s.n.Seed(seed)
	} else {
		s.w.Seed(seed)
	}
}

// Uint32 takes the upper half of a 64-bit word on 64-bit generators.
func (s *Seeded) Uint32() uint32 {
	if s.n != nil {
		return s.n.Uint32()
	}
	return uint32(s.w.Uint64() >> 32)
}

// Uint64 concatenates two 32-bit draws, high word first, on 32-bit generators.
func (s *Seeded) Uint64() uint64 {
	if s.n != nil {
		hi := uint64(s.n.Uint32())
		return hi<<32 | uint64(s.n.Uint32())
	}
	return s.w.Uint64()
}
