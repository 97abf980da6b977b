// Package floating draws real numbers from the unit interval at the full
// precision of the target format, and maps them onto caller bounds.
//
// A draw keeps the top precision bits of one raw word and scales the
// integer by 1/2^p, or by 1/(2^p-1) when IncludeMax is set so that the
// largest sample lands exactly on 1.
package floating

import (
	"unsafe"

	"github.com/fernandosanchezjr/gosampling/bounds"
	"github.com/fernandosanchezjr/gosampling/integer"
	"github.com/fernandosanchezjr/gosampling/source"
)

// Precision counts significand bits including the implicit leading one.
type Precision uint

const (
	Half   Precision = 11
	Single Precision = 24
	Double Precision = 53
)

const (
	singleScale          = 1.0 / (1 << Single)
	singleScaleInclusive = 1.0 / ((1 << Single) - 1)
	doubleScale          = 1.0 / (1 << Double)
	doubleScaleInclusive = 1.0 / ((1 << Double) - 1)
)

// Real covers float32, float64 and any named type built on them. Types no
// wider than four bytes take the single precision path.
type Real interface {
	~float32 | ~float64
}

func PrecisionOf[T Real]() Precision {
	var zero T
	if unsafe.Sizeof(zero) <= 4 {
		return Single
	}
	return Double
}

// Next returns a value in [0, 1), adjusted by opts.
func Next[T Real](src source.Source, opts Options) T {
	if PrecisionOf[T]() == Single {
		return T(nextSingle(src, opts))
	}
	return T(nextDouble(src, opts))
}

// NextUniform maps a unit draw onto [min, max) as min*(1-u) + max*u, which
// keeps both ends exact. IncludeMax closes the upper end and ExcludeMin
// opens the lower one.
func NextUniform[T Real](src source.Source, min, max T, opts Options) (T, error) {
	if err := bounds.Check(min, max); err != nil {
		return min, err
	}
	u := Next[T](src, opts)
	return min*(1-u) + max*u, nil
}

func sample(src source.Source, p Precision, opts Options) uint64 {
	for {
		value := integer.Bits(src, uint(p))
		if value != 0 || !opts.Has(ExcludeMin) {
			return value
		}
	}
}

func nextSingle(src source.Source, opts Options) float32 {
	value := float32(sample(src, Single, opts))
	if opts.Has(IncludeMax) {
		return value * singleScaleInclusive
	}
	return value * singleScale
}

func nextDouble(src source.Source, opts Options) float64 {
	value := float64(sample(src, Double, opts))
	if opts.Has(IncludeMax) {
		return value * doubleScaleInclusive
	}
	return value * doubleScale
}
