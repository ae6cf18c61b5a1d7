package bitnum

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"math/bits"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// UInt is an unsigned integer stored as an explicit sequence of binary
// digits. The length is tracked separately from the storage, so a UInt can
// carry leading zero digits and the degenerate zero has no digits at all.
//
// The zero value is the degenerate zero and is ready to use. Copying a UInt
// by value shares its storage; use Clone instead.
type UInt struct {
	n    uint          // number of digits
	bits bitset.BitSet // index 0 is the least significant digit
}

// UIntFromInt64 creates a UInt from a non-negative int64. Negative input
// fails with an ErrInvalidArgument error.
//
// The result is the minimal encoding of i with one leading zero prepended
// whenever that encoding is longer than a single digit, so every such value
// carries a zero sign position. Zero yields a UInt with no digits.
func UIntFromInt64(i int64) (*UInt, error) {
	if i < 0 {
		return nil, ErrInvalidArgument.New("unsigned integer cannot be negative: %d", i)
	}
	return new(UInt).setUint64(uint64(i)), nil
}

// UIntFromInt is UIntFromInt64 for the platform int.
func UIntFromInt(i int) (*UInt, error) { return UIntFromInt64(int64(i)) }

// UIntFrom64 creates a UInt from a uint64, using the same encoding as
// UIntFromInt64.
func UIntFrom64(v uint64) *UInt { return new(UInt).setUint64(v) }

// UIntFromBigInt creates a UInt from a big.Int using the same encoding as
// UIntFromInt64. There is no upper bound.
func UIntFromBigInt(b *big.Int) (*UInt, error) {
	if b.Sign() < 0 {
		return nil, ErrInvalidArgument.New("unsigned integer cannot be negative: %s", b)
	}

	u := new(UInt)
	n := uint(b.BitLen())
	for i := uint(0); i < n; i++ {
		if b.Bit(int(i)) == 1 {
			u.bits.Set(i)
		}
	}
	u.n = padded(n)
	return u, nil
}

// UIntFromString parses the form produced by String: "0b" followed by zero
// or more '0' and '1' digits. Leading zero digits are kept as they are.
func UIntFromString(s string) (*UInt, error) {
	if !strings.HasPrefix(s, "0b") {
		return nil, ErrInvalidArgument.New("uint string %q missing 0b prefix", s)
	}
	digits := s[2:]
	n := uint(len(digits))

	u := &UInt{n: n}
	for i, c := range digits {
		switch c {
		case '1':
			u.bits.Set(n - 1 - uint(i))
		case '0':
		default:
			return nil, ErrInvalidArgument.New("uint string %q invalid at offset %d", s, i+2)
		}
	}
	return u, nil
}

// padded returns the stored length for a minimal encoding of n digits.
func padded(n uint) uint {
	// The leading digit of a minimal encoding is always 1.
	if n > 1 {
		return n + 1
	}
	return n
}

func (u *UInt) setUint64(v uint64) *UInt {
	u.bits.ClearAll()
	n := uint(bits.Len64(v))
	for i := uint(0); i < n; i++ {
		if v&(1<<i) != 0 {
			u.bits.Set(i)
		}
	}
	u.n = padded(n)
	return u
}

// setInt64 re-encodes u from a native result. Negative values are coerced
// to zero.
func (u *UInt) setInt64(v int64) *UInt {
	if v < 0 {
		v = 0
	}
	return u.setUint64(uint64(v))
}

// Set makes u an independent copy of v and returns u.
func (u *UInt) Set(v *UInt) *UInt {
	if u == v {
		return u
	}
	u.n = v.n
	v.bits.CopyFull(&u.bits)
	return u
}

// Clone returns an independent copy of u. Mutating either one never
// affects the other.
func (u *UInt) Clone() *UInt {
	return new(UInt).Set(u)
}

// Clone returns an independent copy of u.
func Clone(u *UInt) *UInt { return u.Clone() }

// Len returns the number of stored digits, including leading zeros.
func (u *UInt) Len() int { return int(u.n) }

// Bit returns the digit at position i, counting from the least significant
// digit. Positions beyond Len are 0.
func (u *UInt) Bit(i int) uint {
	if i < 0 {
		panic("bitnum: negative bit index")
	}
	if u.bits.Test(uint(i)) {
		return 1
	}
	return 0
}

// IsZero reports whether every digit is 0. It is true for the degenerate
// zero and for any all-zero digit sequence.
func (u *UInt) IsZero() bool { return u.bits.None() }

// resize sets the number of digits to w. Growing prepends zero digits,
// shrinking drops the most significant ones.
func (u *UInt) resize(w uint) *UInt {
	u.n = w
	u.clip()
	return u
}

// clip clears any storage at or beyond the current length.
func (u *UInt) clip() {
	if u.n == 0 {
		u.bits.ClearAll()
		return
	}
	u.bits.Shrink(u.n - 1)
}

// msb reports the leading digit. The degenerate zero has none.
func (u *UInt) msb() bool {
	return u.n > 0 && u.bits.Test(u.n-1)
}

// Int64 decodes u by reading its digits as a big-endian binary number.
// A UInt with no digits decodes to 0.
//
// Values that need more than 63 bits over/underflow silently. See IsInt64
// if you want to check before you convert.
func (u *UInt) Int64() int64 {
	var t int64
	for i := u.n; i > 0; i-- {
		t <<= 1
		if u.bits.Test(i - 1) {
			t |= 1
		}
	}
	return t
}

// AsInt64 returns u.Int64().
func AsInt64(u *UInt) int64 { return u.Int64() }

// IsInt64 reports whether u can be represented as an int64.
func (u *UInt) IsInt64() bool {
	for i := uint(63); i < u.n; i++ {
		if u.bits.Test(i) {
			return false
		}
	}
	return true
}

// AsBigInt decodes u exactly, regardless of its width.
func (u *UInt) AsBigInt() *big.Int {
	words := u.bits.Bytes()
	buf := make([]byte, 8*len(words))
	for idx, word := range words {
		end := len(buf) - 8*idx
		binary.BigEndian.PutUint64(buf[end-8:end], word)
	}
	return new(big.Int).SetBytes(buf)
}

// String renders u as a "0b"-prefixed literal of its stored digits, most
// significant first, leading zeros included. The degenerate zero renders
// as "0b".
func (u *UInt) String() string {
	var sb strings.Builder
	sb.Grow(2 + int(u.n))
	sb.WriteString("0b")
	u.writeDigits(&sb)
	return sb.String()
}

func (u *UInt) writeDigits(sb *strings.Builder) {
	for i := u.n; i > 0; i-- {
		if u.bits.Test(i - 1) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
}

// Format implements fmt.Formatter. %s and %v print String(); %b prints the
// stored digits (with the 0b prefix if the '#' flag is set); the remaining
// integer verbs print the value via big.Int.
func (u *UInt) Format(s fmt.State, c rune) {
	switch c {
	case 's', 'v':
		fmt.Fprint(s, u.String())
	case 'b':
		var sb strings.Builder
		if s.Flag('#') {
			sb.WriteString("0b")
		}
		u.writeDigits(&sb)
		fmt.Fprint(s, sb.String())
	default:
		u.AsBigInt().Format(s, c)
	}
}

// Cmp compares u and v by value, aligning them on their least significant
// digit. Leading zeros never affect the result.
func (u *UInt) Cmp(v *UInt) int {
	m := u.n
	if v.n > m {
		m = v.n
	}
	for i := m; i > 0; i-- {
		a, b := u.bits.Test(i-1), v.bits.Test(i-1)
		if a != b {
			if a {
				return 1
			}
			return -1
		}
	}
	return 0
}

// Equal reports whether u and v hold the same value. 0b0011 equals 0b11.
func (u *UInt) Equal(v *UInt) bool { return u.Cmp(v) == 0 }

func (u *UInt) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *UInt) UnmarshalText(bts []byte) (err error) {
	v, err := UIntFromString(string(bts))
	if err != nil {
		return err
	}
	u.Set(v)
	return nil
}

func (u *UInt) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

func (u *UInt) UnmarshalJSON(bts []byte) (err error) {
	defer Error.WrapP(&err)

	ln := len(bts)
	if ln < 2 || bts[0] != '"' || bts[ln-1] != '"' {
		return Error.New("uint invalid JSON %q", string(bts))
	}
	return u.UnmarshalText(bts[1 : ln-1])
}
