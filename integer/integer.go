// Package integer draws unbiased integers from half-open and closed
// intervals. Power-of-two spans keep the top bits of a single raw word;
// every other span uses threshold rejection so that only whole multiples of
// the span are ever reduced.
package integer

import (
	"math"
	"math/bits"
	"unsafe"

	"github.com/fernandosanchezjr/gosampling/bounds"
	"github.com/fernandosanchezjr/gosampling/source"
)

type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Width is the raw word size a type draws from.
type Width int

const (
	Width32  Width = 32
	Width64  Width = 64
	Width128 Width = 128
)

func WidthOf[T Integer]() Width {
	var zero T
	if unsafe.Sizeof(zero) <= 4 {
		return Width32
	}
	return Width64
}

// Next returns a value uniformly distributed over [min, max).
func Next[T Integer](src source.Source, min, max T) (T, error) {
	if err := bounds.Check(min, max); err != nil {
		return min, err
	}
	// modular distance, correct for signed types thanks to sign extension
	span := uint64(max) - uint64(min)
	if WidthOf[T]() == Width32 {
		return min + T(next32(src, uint32(span), min == 0)), nil
	}
	return min + T(next64(src, span)), nil
}

// NextInclusive returns a value uniformly distributed over [min, max].
func NextInclusive[T Integer](src source.Source, min, max T) (T, error) {
	if err := bounds.CheckInclusive(min, max); err != nil {
		return min, err
	}
	span := uint64(max) - uint64(min)
	if WidthOf[T]() == Width32 {
		if uint32(span) == math.MaxUint32 {
			return min + T(src.Uint32()), nil
		}
		return min + T(next32(src, uint32(span)+1, min == 0)), nil
	}
	if span == math.MaxUint64 {
		return min + T(src.Uint64()), nil
	}
	return min + T(next64(src, span+1)), nil
}

func next32(src source.Source, span uint32, fromZero bool) uint32 {
	if span&(span-1) == 0 {
		return src.Uint32() >> (32 - bits.TrailingZeros32(span))
	}
	if fromZero && span == math.MaxInt32 {
		for {
			if sample := src.Uint32() >> 1; sample != math.MaxInt32 {
				return sample
			}
		}
	}
	threshold := math.MaxUint32 - math.MaxUint32%span
	for {
		if sample := src.Uint32(); sample < threshold {
			return sample % span
		}
	}
}

func next64(src source.Source, span uint64) uint64 {
	if span&(span-1) == 0 {
		return src.Uint64() >> (64 - bits.TrailingZeros64(span))
	}
	threshold := math.MaxUint64 - math.MaxUint64%span
	for {
		if sample := src.Uint64(); sample < threshold {
			return sample % span
		}
	}
}
