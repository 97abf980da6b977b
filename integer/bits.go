package integer

import (
	"fmt"

	"github.com/fernandosanchezjr/gosampling/source"
	"lukechampine.com/uint128"
)

// Bits returns the k most significant bits of the narrowest raw word that
// holds k bits. k must not exceed 64.
func Bits(src source.Source, k uint) uint64 {
	switch {
	case k <= 32:
		return uint64(src.Uint32() >> (32 - k))
	case k <= 64:
		return src.Uint64() >> (64 - k)
	default:
		panic(fmt.Sprintf("integer: cannot draw %d bits into 64", k))
	}
}

// Bits128 is Bits for k up to 128. Wider draws concatenate two 64-bit
// words, the first forming the high half.
func Bits128(src source.Source, k uint) uint128.Uint128 {
	switch {
	case k <= 64:
		return uint128.From64(Bits(src, k))
	case k <= 128:
		return draw128(src).Rsh(128 - k)
	default:
		panic(fmt.Sprintf("integer: cannot draw %d bits into 128", k))
	}
}

func draw128(src source.Source) uint128.Uint128 {
	hi := src.Uint64()
	lo := src.Uint64()
	return uint128.New(lo, hi)
}
