package floating

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/fernandosanchezjr/gosampling/bounds"
	"github.com/fernandosanchezjr/gosampling/source"
)

// MaxScale is the largest number of fractional digits a Decimal carries.
const MaxScale = 28

var ErrDecimalOverflow = errors.New("decimal overflow")

// Decimal is a base-10 fixed point value: a 96-bit unsigned mantissa split
// into three words, a sign, and a scale of 0..MaxScale fractional digits.
type Decimal struct {
	Lo, Mid, Hi uint32
	Scale       uint8
	Neg         bool
}

var (
	// MaxDecimal is the largest mantissa at the largest scale,
	// 7.9228162514264337593543950335.
	MaxDecimal = Decimal{Lo: 0xffffffff, Mid: 0xffffffff, Hi: 0xffffffff, Scale: MaxScale}
	One        = Decimal{Lo: 1}

	maxMantissa = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 96), big.NewInt(1))
	ten         = big.NewInt(10)
)

func NewDecimal(lo, mid, hi uint32, scale uint8, neg bool) Decimal {
	if scale > MaxScale {
		panic(fmt.Sprintf("floating: decimal scale %d exceeds %d", scale, MaxScale))
	}
	return Decimal{Lo: lo, Mid: mid, Hi: hi, Scale: scale, Neg: neg}
}

func decimalFromMantissa(m *big.Int, scale uint8, neg bool) Decimal {
	var words [3]uint32
	rest := new(big.Int).Set(m)
	mask := big.NewInt(0xffffffff)
	for i := range words {
		words[i] = uint32(new(big.Int).And(rest, mask).Uint64())
		rest.Rsh(rest, 32)
	}
	d := Decimal{Lo: words[0], Mid: words[1], Hi: words[2], Scale: scale}
	d.Neg = neg && !d.IsZero()
	return d
}

// DecimalFromRat rounds r half to even at the largest scale whose mantissa
// still fits in 96 bits, then drops trailing fractional zeros.
func DecimalFromRat(r *big.Rat) (Decimal, error) {
	num := new(big.Int).Abs(r.Num())
	den := r.Denom()
	for scale := MaxScale; scale >= 0; scale-- {
		scaled := new(big.Int).Mul(num, new(big.Int).Exp(ten, big.NewInt(int64(scale)), nil))
		m := roundHalfEven(scaled, den)
		if m.Cmp(maxMantissa) > 0 {
			continue
		}
		s := uint8(scale)
		mod := new(big.Int)
		for s > 0 {
			quo, rem := new(big.Int).QuoRem(m, ten, mod)
			if rem.Sign() != 0 {
				break
			}
			m = quo
			s--
		}
		return decimalFromMantissa(m, s, r.Sign() < 0), nil
	}
	return Decimal{}, fmt.Errorf("%w: %s", ErrDecimalOverflow, r.RatString())
}

// quantize rounds r half to even at exactly scale digits.
func quantize(r *big.Rat, scale uint8) Decimal {
	scaled := new(big.Int).Mul(new(big.Int).Abs(r.Num()),
		new(big.Int).Exp(ten, big.NewInt(int64(scale)), nil))
	return decimalFromMantissa(roundHalfEven(scaled, r.Denom()), scale, r.Sign() < 0)
}

// roundHalfEven returns n/d rounded to the nearest integer, ties to even.
// Both operands must be non-negative.
func roundHalfEven(n, d *big.Int) *big.Int {
	q, r := new(big.Int).QuoRem(n, d, new(big.Int))
	switch new(big.Int).Lsh(r, 1).Cmp(d) {
	case 1:
		q.Add(q, big.NewInt(1))
	case 0:
		if q.Bit(0) == 1 {
			q.Add(q, big.NewInt(1))
		}
	}
	return q
}

func (d Decimal) Mantissa() *big.Int {
	m := new(big.Int).SetUint64(uint64(d.Hi))
	m.Lsh(m, 32).Or(m, new(big.Int).SetUint64(uint64(d.Mid)))
	m.Lsh(m, 32).Or(m, new(big.Int).SetUint64(uint64(d.Lo)))
	return m
}

func (d Decimal) IsZero() bool {
	return d.Lo|d.Mid|d.Hi == 0
}

func (d Decimal) Rat() *big.Rat {
	m := d.Mantissa()
	if d.Neg {
		m.Neg(m)
	}
	return new(big.Rat).SetFrac(m, new(big.Int).Exp(ten, big.NewInt(int64(d.Scale)), nil))
}

func (d Decimal) Float64() float64 {
	f, _ := d.Rat().Float64()
	return f
}

// Cmp orders by value, so 0.5 and 0.50 compare equal.
func (d Decimal) Cmp(other Decimal) int {
	return d.Rat().Cmp(other.Rat())
}

func (d Decimal) String() string {
	digits := d.Mantissa().String()
	if d.Scale > 0 {
		if pad := int(d.Scale) + 1 - len(digits); pad > 0 {
			digits = strings.Repeat("0", pad) + digits
		}
		point := len(digits) - int(d.Scale)
		digits = digits[:point] + "." + digits[point:]
	}
	if d.Neg && !d.IsZero() {
		return "-" + digits
	}
	return digits
}

// NextDecimal draws a 96-bit mantissa from three 32-bit words, low word
// first, and divides it by the largest mantissa. The quotient is rounded half
// to even at MaxScale digits. ExcludeMin redraws samples that are or round to
// zero; without IncludeMax samples that are or round to one are redrawn.
func NextDecimal(src source.Source, opts Options) Decimal {
	for {
		lo, mid, hi := src.Uint32(), src.Uint32(), src.Uint32()
		raw := Decimal{Lo: lo, Mid: mid, Hi: hi, Scale: MaxScale}
		if opts.Has(ExcludeMin) && raw.IsZero() {
			continue
		}
		if !opts.Has(IncludeMax) && raw == MaxDecimal {
			continue
		}
		value := quantize(new(big.Rat).SetFrac(raw.Mantissa(), maxMantissa), MaxScale)
		if opts.Has(ExcludeMin) && value.IsZero() {
			continue
		}
		if !opts.Has(IncludeMax) && value.Cmp(One) >= 0 {
			continue
		}
		return value
	}
}

// NextUniformDecimal maps a unit draw onto [min, max) with exact rational
// arithmetic and rounds the result back into a Decimal.
func NextUniformDecimal(src source.Source, min, max Decimal, opts Options) (Decimal, error) {
	if err := bounds.CheckCmp(min, max); err != nil {
		return min, err
	}
	u := NextDecimal(src, opts).Rat()
	low := new(big.Rat).Mul(min.Rat(), new(big.Rat).Sub(big.NewRat(1, 1), u))
	high := new(big.Rat).Mul(max.Rat(), u)
	return DecimalFromRat(low.Add(low, high))
}
