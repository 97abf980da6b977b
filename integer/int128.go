package integer

import (
	"math/big"

	"github.com/fernandosanchezjr/gosampling/bounds"
	"github.com/fernandosanchezjr/gosampling/source"
	"lukechampine.com/uint128"
)

const signBit = 1 << 63

// Int128 is a two's complement 128-bit signed integer.
type Int128 struct {
	Hi int64
	Lo uint64
}

func Int128From64(v int64) Int128 {
	var hi int64
	if v < 0 {
		hi = -1
	}
	return Int128{Hi: hi, Lo: uint64(v)}
}

// biased flips the sign bit, mapping signed order onto unsigned order.
func (i Int128) biased() uint128.Uint128 {
	return uint128.New(i.Lo, uint64(i.Hi)^signBit)
}

func unbiased(u uint128.Uint128) Int128 {
	return Int128{Hi: int64(u.Hi ^ signBit), Lo: u.Lo}
}

func (i Int128) Cmp(other Int128) int {
	return i.biased().Cmp(other.biased())
}

func (i Int128) Big() *big.Int {
	b := big.NewInt(i.Hi)
	b.Lsh(b, 64)
	return b.Add(b, new(big.Int).SetUint64(i.Lo))
}

func (i Int128) String() string {
	return i.Big().String()
}

// NextUint128 returns a value uniformly distributed over [min, max).
func NextUint128(src source.Source, min, max uint128.Uint128) (uint128.Uint128, error) {
	if err := bounds.CheckCmp(min, max); err != nil {
		return min, err
	}
	return min.Add(next128(src, max.Sub(min))), nil
}

// NextInt128 returns a value uniformly distributed over [min, max).
func NextInt128(src source.Source, min, max Int128) (Int128, error) {
	if err := bounds.CheckCmp(min, max); err != nil {
		return min, err
	}
	lo := min.biased()
	return unbiased(lo.Add(next128(src, max.biased().Sub(lo)))), nil
}

func next128(src source.Source, span uint128.Uint128) uint128.Uint128 {
	if span.OnesCount() == 1 {
		return draw128(src).Rsh(uint(128 - span.TrailingZeros()))
	}
	threshold := uint128.Max.Sub(uint128.Max.Mod(span))
	for {
		if sample := draw128(src); sample.Cmp(threshold) < 0 {
			return sample.Mod(span)
		}
	}
}
