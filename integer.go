package bikdecimal

import (
	"fmt"
	"math/big"
	"sync"
)

// bint (Big INTeger) is a wrapper around big.Int.
// Coefficients stored in a [Decimal] are never modified after construction,
// so a single *bint may be shared by several decimals.
type bint big.Int

// bpow10 is a cache of powers of 10, where bpow10[x] = 10^x.
var bpow10 = func() [100]*bint {
	var cache [100]*bint
	x := big.NewInt(1)
	for i := range cache {
		cache[i] = (*bint)(new(big.Int).Set(x))
		x.Mul(x, big.NewInt(10))
	}
	return cache
}()

var (
	bone    = mustParseBint("1")
	bfive   = mustParseBint("5")
	bmask64 = mustParseBint("18446744073709551615") // 2^64 - 1
)

// mustParseBint converts a string to *big.Int, panicking on error.
// Use only for package variable initialization and test code!
func mustParseBint(s string) *bint {
	z, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic(fmt.Errorf("mustParseBint(%q) failed: parsing error", s))
	}
	if z.Sign() < 0 {
		panic(fmt.Errorf("mustParseBint(%q) failed: negative number", s))
	}
	return (*bint)(z)
}

func (z *bint) sign() int {
	return (*big.Int)(z).Sign()
}

func (z *bint) cmp(x *bint) int {
	return (*big.Int)(z).Cmp((*big.Int)(x))
}

// cmpAbs compares |z| and |x|.
func (z *bint) cmpAbs(x *bint) int {
	return (*big.Int)(z).CmpAbs((*big.Int)(x))
}

func (z *bint) string() string {
	return (*big.Int)(z).String()
}

func (z *bint) bytes() []byte {
	return (*big.Int)(z).Bytes()
}

func (z *bint) setBint(x *bint) {
	(*big.Int)(z).Set((*big.Int)(x))
}

func (z *bint) setInt64(x int64) {
	(*big.Int)(z).SetInt64(x)
}

// setString sets z to the value of the decimal digits in s.
func (z *bint) setString(s string) bool {
	_, ok := (*big.Int)(z).SetString(s, 10)
	return ok
}

// uint64 returns the low 64 bits of |z|.
func (z *bint) uint64() uint64 {
	x := getBint()
	defer putBint(x)
	(*big.Int)(x).Abs((*big.Int)(z))
	(*big.Int)(x).And((*big.Int)(x), (*big.Int)(bmask64))
	return (*big.Int)(x).Uint64()
}

// abs calculates z = |x|.
func (z *bint) abs(x *bint) {
	(*big.Int)(z).Abs((*big.Int)(x))
}

// neg calculates z = -x.
func (z *bint) neg(x *bint) {
	(*big.Int)(z).Neg((*big.Int)(x))
}

// add calculates z = x + y.
func (z *bint) add(x, y *bint) {
	(*big.Int)(z).Add((*big.Int)(x), (*big.Int)(y))
}

// inc calculates z = x + 1.
func (z *bint) inc(x *bint) {
	z.add(x, bone)
}

// dbl (Double) calculates z = x * 2.
func (z *bint) dbl(x *bint) {
	(*big.Int)(z).Lsh((*big.Int)(x), 1)
}

// mul calculates z = x * y.
func (z *bint) mul(x, y *bint) {
	(*big.Int)(z).Mul((*big.Int)(x), (*big.Int)(y))
}

// exp calculates z = x^y.
// If y is negative, the result is unpredictable.
func (z *bint) exp(x, y *bint) {
	(*big.Int)(z).Exp((*big.Int)(x), (*big.Int)(y), nil)
}

// pow10 calculates z = 10^power.
// If power is negative, the result is unpredictable.
func (z *bint) pow10(power int) {
	if power < len(bpow10) {
		z.setBint(bpow10[power])
		return
	}
	x := getBint()
	defer putBint(x)
	x.setInt64(10)
	y := getBint()
	defer putBint(y)
	y.setInt64(int64(power))
	z.exp(x, y)
}

// quoRem calculates z = ⌊x / y⌋, r = x - y * z.
func (z *bint) quoRem(x, y, r *bint) {
	(*big.Int)(z).QuoRem((*big.Int)(x), (*big.Int)(y), (*big.Int)(r))
}

// gcd calculates z = gcd(x, y) for positive x and y.
func (z *bint) gcd(x, y *bint) {
	(*big.Int)(z).GCD(nil, nil, (*big.Int)(x), (*big.Int)(y))
}

// lsh2 (Binary Left Shift) calculates z = x * 2^shift.
func (z *bint) lsh2(x *bint, shift int) {
	(*big.Int)(z).Lsh((*big.Int)(x), uint(shift))
}

// rsh2 (Binary Right Shift) calculates z = ⌊x / 2^shift⌋.
func (z *bint) rsh2(x *bint, shift int) {
	(*big.Int)(z).Rsh((*big.Int)(x), uint(shift))
}

// tzeros2 returns number of trailing zero bits in x.
func (z *bint) tzeros2() int {
	return int((*big.Int)(z).TrailingZeroBits())
}

func (z *bint) isOdd() bool {
	return (*big.Int)(z).Bit(0) != 0
}

func (z *bint) isOne() bool {
	return z.cmp(bone) == 0
}

// lsh (Left Shift) calculates z = x * 10^shift.
func (z *bint) lsh(x *bint, shift int) {
	var y *bint
	if shift < len(bpow10) {
		y = bpow10[shift]
	} else {
		y = getBint()
		defer putBint(y)
		y.pow10(shift)
	}
	z.mul(x, y)
}

// mul5 calculates z = x * 5^power.
func (z *bint) mul5(x *bint, power int) {
	if power <= 0 {
		z.setBint(x)
		return
	}
	y := getBint()
	defer putBint(y)
	p := getBint()
	defer putBint(p)
	p.setInt64(int64(power))
	y.exp(bfive, p)
	z.mul(x, y)
}

// rem5 divides z by 5 as many times as possible and returns the number of
// divisions performed.
func (z *bint) rem5() int {
	q := getBint()
	defer putBint(q)
	r := getBint()
	defer putBint(r)
	n := 0
	for z.sign() != 0 {
		q.quoRem(z, bfive, r)
		if r.sign() != 0 {
			break
		}
		z.setBint(q)
		n++
	}
	return n
}

// quoMode calculates z = x / y for non-negative x and positive y and rounds
// the result using the given rounding mode.
// The neg argument is the sign of the exact quotient, which is required by
// the directed rounding modes.
// y must not share memory with z.
func (z *bint) quoMode(x, y *bint, mode RoundingMode, neg bool) error {
	// Special case: quotient is zero and the remainder is x itself
	if x.cmp(y) < 0 {
		frac := fracOf(x, y)
		up, err := mode.increment(neg, false, frac)
		if err != nil {
			return err
		}
		if up {
			z.setBint(bone)
		} else {
			z.setInt64(0)
		}
		return nil
	}
	// General case
	r := getBint()
	defer putBint(r)
	z.quoRem(x, y, r)
	up, err := mode.increment(neg, z.isOdd(), fracOf(r, y))
	if err != nil {
		return err
	}
	if up {
		z.inc(z)
	}
	return nil
}

// fracOf classifies the remainder r of a division by y.
func fracOf(r, y *bint) fraction {
	if r.sign() == 0 {
		return fracZero
	}
	h := getBint()
	defer putBint(h)
	h.dbl(r)
	switch h.cmp(y) {
	case -1:
		return fracBelowHalf
	case 0:
		return fracHalf
	default:
		return fracAboveHalf
	}
}

// rshMode (Right Shift) calculates z = x / 10^shift and rounds result using
// the given rounding mode.
func (z *bint) rshMode(x *bint, shift int, mode RoundingMode, neg bool) error {
	// Special cases
	switch {
	case x.sign() == 0:
		z.setInt64(0)
		return nil
	case shift <= 0:
		z.setBint(x)
		return nil
	case shift > x.prec():
		// x < 10^(shift-1), which is less than half of 10^shift.
		up, err := mode.increment(neg, false, fracBelowHalf)
		if err != nil {
			return err
		}
		if up {
			z.setBint(bone)
		} else {
			z.setInt64(0)
		}
		return nil
	}
	// General case
	y := getBint()
	defer putBint(y)
	y.pow10(shift)
	return z.quoMode(x, y, mode, neg)
}

// rshDown (Right Shift) calculates z = ⌊x / 10^shift⌋ and rounds
// result towards zero.
func (z *bint) rshDown(x *bint, shift int) {
	_ = z.rshMode(x, shift, RoundDown, false) // rounding down never fails
}

// prec returns length of z in decimal digits.
// prec assumes that 0 has no digits.
// If z is negative, the result is unpredictable.
//
// z.prec() is significantly faster than len(z.string()),
// if z has less than len(bpow10) digits.
func (z *bint) prec() int {
	// Special case
	if z.cmp(bpow10[len(bpow10)-1]) > 0 {
		return len(z.string())
	}
	// General case
	left, right := 0, len(bpow10)
	for left < right {
		mid := (left + right) / 2
		if z.cmp(bpow10[mid]) < 0 {
			right = mid
		} else {
			left = mid + 1
		}
	}
	return left
}

// tzeros returns number of trailing decimal zeros in z.
// tzeros assumes that 0 has no trailing zeros.
func (z *bint) tzeros() int {
	if z.sign() == 0 {
		return 0
	}
	// Every factor of 10 contributes a factor of 2.
	limit := z.tzeros2()
	if limit == 0 {
		return 0
	}
	x := getBint()
	defer putBint(x)
	q := getBint()
	defer putBint(q)
	r := getBint()
	defer putBint(r)
	x.setBint(z)
	n := 0
	for n < limit {
		q.quoRem(x, bpow10[1], r)
		if r.sign() != 0 {
			break
		}
		x.setBint(q)
		n++
	}
	return n
}

// bpool is a cache of reusable *big.Int instances.
var bpool = sync.Pool{
	New: func() any {
		return (*bint)(new(big.Int))
	},
}

// getBint obtains a *big.Int from the pool.
func getBint() *bint {
	return bpool.Get().(*bint)
}

// putBint returns the *big.Int into the pool.
func putBint(b *bint) {
	bpool.Put(b)
}
