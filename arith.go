package bitnum

import (
	"github.com/bits-and-blooms/bitset"
)

// addDigits is a ripple-carry adder over the low w digits of a and b.
// Missing digits read as 0.
func addDigits(a, b *bitset.BitSet, w uint) (sum *bitset.BitSet, carry bool) {
	sum = bitset.New(w + 1)
	for i := uint(0); i < w; i++ {
		x, y := a.Test(i), b.Test(i)
		if (x != y) != carry {
			sum.Set(i)
		}
		carry = (x && y) || (x && carry) || (y && carry)
	}
	return sum, carry
}

// Add sets u to u + v and returns u.
//
// The result is always one digit longer than the longer operand; the extra
// leading digit holds the final carry even when it is 0, so repeated
// addition keeps growing the length. Add never overflows.
func (u *UInt) Add(v *UInt) *UInt {
	w := max(u.n, v.n)
	sum, carry := addDigits(&u.bits, &v.bits, w)
	sum.SetTo(w, carry)
	u.bits = *sum
	u.n = w + 1
	return u
}

// Add returns a + b without modifying either.
func Add(a, b *UInt) *UInt { return a.Clone().Add(b) }

// addMod sets u to u + v modulo 2^Len(u), dropping the carry.
func (u *UInt) addMod(v *UInt) *UInt {
	sum, _ := addDigits(&u.bits, &v.bits, u.n)
	u.bits = *sum
	return u
}

// Negate sets u to its two's complement and returns u: every digit is
// inverted, then 1 is added with Add. If the result is longer than one digit
// and its leading digit is 0, that single leading zero is dropped, so the
// length grows by at most one digit and only when the carry is set.
func (u *UInt) Negate() *UInt {
	if u.n > 0 {
		u.bits.FlipRange(0, u.n)
	}

	var one UInt
	one.setUint64(1)
	u.Add(&one)

	if u.n > 1 && !u.msb() {
		u.n--
	}
	return u
}

// Negate returns the two's complement of a without modifying it.
func Negate(a *UInt) *UInt { return a.Clone().Negate() }
