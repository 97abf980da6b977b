package floating

import (
	"github.com/fernandosanchezjr/gosampling/bounds"
	"github.com/fernandosanchezjr/gosampling/source"
	"github.com/x448/float16"
)

const (
	halfScale          = 1.0 / (1 << Half)
	halfScaleInclusive = 1.0 / ((1 << Half) - 1)
)

// NextHalf draws an IEEE 754 binary16 value from a 32-bit word. Every
// sample is representable in half precision, so the float32 intermediate
// does not round except under IncludeMax.
func NextHalf(src source.Source, opts Options) float16.Float16 {
	value := float32(sample(src, Half, opts))
	if opts.Has(IncludeMax) {
		return float16.Fromfloat32(value * halfScaleInclusive)
	}
	return float16.Fromfloat32(value * halfScale)
}

func NextUniformHalf(src source.Source, min, max float16.Float16, opts Options) (float16.Float16, error) {
	low, high := min.Float32(), max.Float32()
	if err := bounds.Check(low, high); err != nil {
		return min, err
	}
	u := NextHalf(src, opts).Float32()
	return float16.Fromfloat32(low*(1-u) + high*u), nil
}
