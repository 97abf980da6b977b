package source

import (
	"errors"
	"fmt"
	"strings"
)

type Algorithm int

const (
	Xoshiro256StarStar Algorithm = iota
	Xoshiro256Plus
	Xoshiro256PlusPlus
	SplitMix64
	MT19937
	MT19937_64
	PCG
	ChaCha8
	Last
)

var ErrUnknownAlgorithm = errors.New("unknown bit source algorithm")

var algorithmNames = [...]string{
	Xoshiro256StarStar: "xoshiro256**",
	Xoshiro256Plus:     "xoshiro256+",
	Xoshiro256PlusPlus: "xoshiro256++",
	SplitMix64:         "splitmix64",
	MT19937:            "mt19937",
	MT19937_64:         "mt19937-64",
	PCG:                "pcg",
	ChaCha8:            "chacha8",
}

func (a Algorithm) String() string {
	if a < 0 || a >= Last {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// Native32 reports whether the generator produces 32-bit words natively.
func (a Algorithm) Native32() bool {
	return a == MT19937
}

func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for alg, algName := range algorithmNames {
		if algName == name {
			return Algorithm(alg), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}
