package bitnum

// And sets u to u AND v, aligned on the least significant digit, and
// returns u. Digits of u beyond the length of v become 0; the length of u is
// unchanged.
func (u *UInt) And(v *UInt) *UInt {
	u.bits.InPlaceIntersection(&v.bits)
	u.clip()
	return u
}

// Or sets u to u OR v over the digits the two have in common and returns u.
// Digits of u beyond the length of v keep their value; digits of v beyond
// the length of u are ignored.
func (u *UInt) Or(v *UInt) *UInt {
	u.bits.InPlaceUnion(&v.bits)
	u.clip()
	return u
}

// Xor sets u to u XOR v over the digits the two have in common and returns
// u. Like Or, digits outside the overlap are left alone.
func (u *UInt) Xor(v *UInt) *UInt {
	u.bits.InPlaceSymmetricDifference(&v.bits)
	u.clip()
	return u
}

// And returns a AND b without modifying either.
func And(a, b *UInt) *UInt { return a.Clone().And(b) }

// Or returns a OR b without modifying either.
func Or(a, b *UInt) *UInt { return a.Clone().Or(b) }

// Xor returns a XOR b without modifying either.
func Xor(a, b *UInt) *UInt { return a.Clone().Xor(b) }
