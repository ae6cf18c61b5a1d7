package bitnum

// BoothAction is what a single step of Booth's algorithm did to the
// accumulator.
type BoothAction int

const (
	BoothNone BoothAction = iota // digit pair 00 or 11
	BoothSub                     // digit pair 10: added the negated multiplicand
	BoothAdd                     // digit pair 01: added the multiplicand
)

func (a BoothAction) String() string {
	switch a {
	case BoothNone:
		return "none"
	case BoothSub:
		return "sub"
	case BoothAdd:
		return "add"
	default:
		return "unknown"
	}
}

// BoothStep describes one iteration of Booth.Multiply. Acc and Multiplier
// are copies of the two registers after the shift.
type BoothStep struct {
	Index      int
	Current    uint
	Previous   uint
	Action     BoothAction
	Acc        *UInt
	Multiplier *UInt
}

// Booth multiplies with Booth's recoding of the multiplier digits. It works
// on digits only and is exact at any width, unlike NativeBridge.
//
// Both operands are first given a zero leading digit if they lack one (an
// operand with no digits becomes 0b0). The accumulator is Len(a)+Len(b)
// digits wide. For each multiplier digit, least significant first, the
// pair (current, previous) picks an action: 10 adds the negated
// multiplicand, 01 adds the multiplicand, 00 and 11 add nothing. The
// accumulator is then shifted right arithmetically and the digit it drops
// enters the top of the multiplier register. The product is the accumulator
// followed by the multiplier register, with leading zeros removed down to a
// single digit.
type Booth struct {
	// Trace, if set, is called after every step.
	Trace func(step BoothStep)
}

func (bm Booth) Multiply(a, b *UInt) *UInt {
	m, q := a.Clone().signSafe(), b.Clone().signSafe()
	k := q.n
	w := m.n + k

	pos := m.resize(w)
	neg := pos.Clone().Negate().resize(w)
	acc := new(UInt).resize(w)

	var prev bool
	for i := uint(0); i < k; i++ {
		cur := q.bits.Test(0)

		action := BoothNone
		switch {
		case cur && !prev:
			acc.addMod(neg)
			action = BoothSub
		case !cur && prev:
			acc.addMod(pos)
			action = BoothAdd
		}

		q.shr(acc.shr(acc.msb()))

		if bm.Trace != nil {
			bm.Trace(BoothStep{
				Index:      int(i),
				Current:    digit(cur),
				Previous:   digit(prev),
				Action:     action,
				Acc:        acc.Clone(),
				Multiplier: q.Clone(),
			})
		}
		prev = cur
	}

	product := q.resize(w + k)
	for i := uint(0); i < w; i++ {
		product.bits.SetTo(k+i, acc.bits.Test(i))
	}
	return product.trim()
}

// signSafe prepends a zero digit unless u already leads with one.
func (u *UInt) signSafe() *UInt {
	if u.n == 0 || u.msb() {
		u.n++
	}
	return u
}

// shr shifts every digit one place towards the least significant end,
// writes fill into the vacated leading digit and returns the dropped digit.
func (u *UInt) shr(fill bool) (low bool) {
	if u.n == 0 {
		return false
	}
	low = u.bits.Test(0)
	for i := uint(0); i+1 < u.n; i++ {
		u.bits.SetTo(i, u.bits.Test(i+1))
	}
	u.bits.SetTo(u.n-1, fill)
	return low
}

// trim removes leading zero digits, keeping at least one digit.
func (u *UInt) trim() *UInt {
	for u.n > 1 && !u.msb() {
		u.n--
	}
	return u
}

func digit(b bool) uint {
	if b {
		return 1
	}
	return 0
}
