package bitnum

// Subtractor computes a - b, saturating at zero. Implementations must not
// modify a or b.
type Subtractor interface {
	Subtract(a, b *UInt) *UInt
}

// Multiplier computes a * b. Implementations must not modify a or b.
type Multiplier interface {
	Multiply(a, b *UInt) *UInt
}

var (
	_ Subtractor = NativeBridge{}
	_ Multiplier = NativeBridge{}
	_ Subtractor = Ripple{}
	_ Multiplier = Booth{}
)

// NativeBridge decodes both operands to int64, does the arithmetic in
// native words and encodes the result again as UIntFromInt64 would.
//
// It is bounded by the range of int64, not by the width of the operands.
// Operands that do not satisfy IsInt64, or products that do not fit, give
// incorrect results without any error: int64 arithmetic wraps, and a
// negative native result is encoded as zero.
type NativeBridge struct{}

func (NativeBridge) Subtract(a, b *UInt) *UInt {
	return new(UInt).setInt64(a.Int64() - b.Int64())
}

func (NativeBridge) Multiply(a, b *UInt) *UInt {
	return new(UInt).setInt64(a.Int64() * b.Int64())
}

// Ripple subtracts digit by digit: b is negated at a common width and added
// to a. It is exact at any width and saturates at zero like NativeBridge.
// Results use the same encoding as UIntFromInt64.
type Ripple struct{}

func (Ripple) Subtract(a, b *UInt) *UInt {
	if a.Cmp(b) <= 0 {
		return new(UInt)
	}

	w := max(a.n, b.n) + 1
	neg := b.Clone().resize(w).Negate().resize(w)
	return a.Clone().resize(w).addMod(neg).canonical()
}

// canonical strips every leading zero and re-applies the padding rule of
// UIntFromInt64.
func (u *UInt) canonical() *UInt {
	n := u.n
	for n > 0 && !u.bits.Test(n-1) {
		n--
	}
	u.n = padded(n)
	return u
}

// Sub sets u to u - v using NativeBridge and returns u. A negative
// difference saturates to zero.
func (u *UInt) Sub(v *UInt) *UInt { return u.SubUsing(NativeBridge{}, v) }

// SubUsing sets u to u - v computed by s and returns u.
func (u *UInt) SubUsing(s Subtractor, v *UInt) *UInt { return u.Set(s.Subtract(u, v)) }

// Sub returns a - b using NativeBridge without modifying either.
func Sub(a, b *UInt) *UInt { return SubUsing(NativeBridge{}, a, b) }

// SubUsing returns a - b computed by s without modifying either.
func SubUsing(s Subtractor, a, b *UInt) *UInt { return a.Clone().SubUsing(s, b) }

// Mul sets u to u * v using NativeBridge and returns u. Use MulUsing with
// Booth for a product that is exact at any width.
func (u *UInt) Mul(v *UInt) *UInt { return u.MulUsing(NativeBridge{}, v) }

// MulUsing sets u to u * v computed by m and returns u.
func (u *UInt) MulUsing(m Multiplier, v *UInt) *UInt { return u.Set(m.Multiply(u, v)) }

// Mul returns a * b using NativeBridge without modifying either.
func Mul(a, b *UInt) *UInt { return MulUsing(NativeBridge{}, a, b) }

// MulUsing returns a * b computed by m without modifying either.
func MulUsing(m Multiplier, a, b *UInt) *UInt { return a.Clone().MulUsing(m, b) }
