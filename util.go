package bitnum

type RandSource interface {
	Uint64() uint64
}

// RandUInt generates a random value of up to n significant digits from an
// external source, encoded as UIntFromInt64 would.
func RandUInt(source RandSource, n uint) *UInt {
	u := new(UInt)
	var word uint64
	for i := uint(0); i < n; i++ {
		if i%64 == 0 {
			word = source.Uint64()
		}
		if word&1 == 1 {
			u.bits.Set(i)
		}
		word >>= 1
	}
	u.n = n
	return u.canonical()
}

// Difference subtracts the smaller of a and b from the larger, digit by
// digit.
func Difference(a, b *UInt) *UInt {
	if a.Cmp(b) < 0 {
		a, b = b, a
	}
	return Ripple{}.Subtract(a, b)
}

// Larger returns whichever of a and b holds the larger value, preferring a
// when they are equal.
func Larger(a, b *UInt) *UInt {
	if b.Cmp(a) > 0 {
		return b
	}
	return a
}

// Smaller returns whichever of a and b holds the smaller value, preferring
// a when they are equal.
func Smaller(a, b *UInt) *UInt {
	if b.Cmp(a) < 0 {
		return b
	}
	return a
}
