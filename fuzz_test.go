package bitnum

import (
	"fmt"
	"math/big"
	"math/rand"
	"strings"
	"testing"
)

type fuzzOp string

// This is the equivalent of passing -bitnum.fuzziter=2000 to 'go test':
const fuzzDefaultIterations = 2000

// Operands wider than this are only used by ops that are exact at any
// width.
const fuzzMaxBits = 160

// These ops are all enabled by default. You can instead pass them explicitly
// on the command line like so: '-bitnum.fuzzop=add -bitnum.fuzzop=sub', or
// you can use the short form '-bitnum.fuzzop=add,sub,mul'.
//
// If you add a new op, search for the string 'NEWOP' in this file for all the
// places you need to update.
const (
	fuzzAdd       fuzzOp = "add"
	fuzzAnd       fuzzOp = "and"
	fuzzBooth     fuzzOp = "booth"
	fuzzCmp       fuzzOp = "cmp"
	fuzzInt64     fuzzOp = "int64"
	fuzzMul       fuzzOp = "mul"
	fuzzNeg       fuzzOp = "neg"
	fuzzOr        fuzzOp = "or"
	fuzzRippleSub fuzzOp = "ripplesub"
	fuzzString    fuzzOp = "string"
	fuzzSub       fuzzOp = "sub"
	fuzzXor       fuzzOp = "xor"
)

// allFuzzOps are active by default.
//
// NEWOP: Update this list if a NEW op is added otherwise it won't be
// enabled by default.
//
// Please keep this list alphabetised.
var allFuzzOps = []fuzzOp{
	fuzzAdd,
	fuzzAnd,
	fuzzBooth,
	fuzzCmp,
	fuzzInt64,
	fuzzMul,
	fuzzNeg,
	fuzzOr,
	fuzzRippleSub,
	fuzzString,
	fuzzSub,
	fuzzXor,
}

// NEWOP: update this interface if a new op is added.
type fuzzOps interface {
	Name() string // Not an op

	Add() error
	And() error
	Booth() error
	Cmp() error
	Int64() error
	Mul() error
	Neg() error
	Or() error
	RippleSub() error
	String() error
	Sub() error
	Xor() error
}

// classic rando!
type rando struct {
	operands []*big.Int
	rng      *rand.Rand
}

func (r *rando) Operands() []*big.Int { return r.operands }

func (r *rando) Clear() {
	for i := range r.operands {
		r.operands[i] = nil
	}
	r.operands = r.operands[:0]
}

// samesies returns the number of arguments up to n - 1 that should be the same
// for this request. Only used for randos that are 'x2', 'x3', etc.
func (r *rando) samesies(n int) int {
	const samesiesChance = 0.03
	if r.rng.Float64() < samesiesChance {
		return r.rng.Intn(n)
	}
	return 0
}

// BigUInt returns a value with an evenly distributed bit length between 0
// and maxBits.
func (r *rando) BigUInt(maxBits int) *big.Int {
	var v = new(big.Int)
	bits := r.rng.Intn(maxBits+1) - 1 // +1 for "0 bits"
	if bits >= 0 {
		v.Rand(r.rng, new(big.Int).Lsh(big1, uint(bits)))
		v.SetBit(v, bits, 1)
	}
	r.operands = append(r.operands, v)
	return v
}

func (r *rando) BigUIntx2(maxBits int) (b1, b2 *big.Int) {
	b1 = r.BigUInt(maxBits)
	if r.samesies(2) > 0 {
		b2 = new(big.Int).Set(b1)
		r.operands = append(r.operands, b2)
	} else {
		b2 = r.BigUInt(maxBits)
	}
	return b1, b2
}

func checkEqualInt(u int, b int) error {
	if u != b {
		return fmt.Errorf("uint(%v) != big(%v)", u, b)
	}
	return nil
}

func checkEqualUInt(u *UInt, b *big.Int) error {
	if ub := u.AsBigInt(); ub.Cmp(b) != 0 {
		return fmt.Errorf("uint(%s = %s) != big(%s)", u, ub, b)
	}
	return nil
}

func checkLen(u *UInt, n int) error {
	if u.Len() != n {
		return fmt.Errorf("uint(%s) length %d != %d", u, u.Len(), n)
	}
	return nil
}

func TestFuzz(t *testing.T) {
	// fuzzOpsActive comes from the -bitnum.fuzzop flag, in TestMain:
	var runFuzzOps = fuzzOpsActive

	var source = &rando{rng: globalRNG} // Classic rando!
	var totalFailures int

	fuzzImpl := fuzzOps(&fuzzUInt{source: source})

	var failures = make([]int, len(runFuzzOps))

	for opIdx, op := range runFuzzOps {
		for i := 0; i < fuzzIterations; i++ {
			source.Clear()

			var err error

			// NEWOP: add a new branch here in alphabetical order if a new
			// op is added.
			switch op {
			case fuzzAdd:
				err = fuzzImpl.Add()
			case fuzzAnd:
				err = fuzzImpl.And()
			case fuzzBooth:
				err = fuzzImpl.Booth()
			case fuzzCmp:
				err = fuzzImpl.Cmp()
			case fuzzInt64:
				err = fuzzImpl.Int64()
			case fuzzMul:
				err = fuzzImpl.Mul()
			case fuzzNeg:
				err = fuzzImpl.Neg()
			case fuzzOr:
				err = fuzzImpl.Or()
			case fuzzRippleSub:
				err = fuzzImpl.RippleSub()
			case fuzzString:
				err = fuzzImpl.String()
			case fuzzSub:
				err = fuzzImpl.Sub()
			case fuzzXor:
				err = fuzzImpl.Xor()
			default:
				panic(fmt.Errorf("unsupported op %q", op))
			}

			if err != nil {
				failures[opIdx]++
				t.Logf("%s: %s\n", op.Print(source.Operands()...), err)
			}
		}
	}

	for opIdx, cnt := range failures {
		if cnt > 0 {
			totalFailures += cnt
			t.Logf("impl %s, op %s: %d/%d failed", fuzzImpl.Name(), string(runFuzzOps[opIdx]), cnt, fuzzIterations)
		}
	}

	if totalFailures > 0 {
		t.Fail()
	}
}

func (op fuzzOp) Print(operands ...*big.Int) string {
	// NEWOP: please add a human-readale format for your op here; this is used
	// for reporting errors and should show the operation, i.e. "2 + 2".
	switch op {
	case fuzzInt64, fuzzString:
		s := strings.TrimRight(op.String(), "()")
		return fmt.Sprintf("%s(%d)", s, operands[0])

	case fuzzNeg:
		return fmt.Sprintf("%s%d", op.String(), operands[0])

	case fuzzAdd,
		fuzzAnd,
		fuzzBooth,
		fuzzCmp,
		fuzzMul,
		fuzzOr,
		fuzzRippleSub,
		fuzzSub,
		fuzzXor:

		// simple binary case:
		return fmt.Sprintf("%d %s %d", operands[0], op.String(), operands[1])

	default:
		return string(op)
	}
}

func (op fuzzOp) String() string {
	// NEWOP: please add a short string representation of this op, as if
	// the operands were in a sum (if that's possible)
	switch op {
	case fuzzAdd:
		return "+"
	case fuzzAnd:
		return "&"
	case fuzzBooth:
		return "*booth"
	case fuzzCmp:
		return "<=>"
	case fuzzInt64:
		return "int64()"
	case fuzzMul:
		return "*"
	case fuzzNeg:
		return "-"
	case fuzzOr:
		return "|"
	case fuzzRippleSub:
		return "-ripple"
	case fuzzString:
		return "string()"
	case fuzzSub:
		return "-"
	case fuzzXor:
		return "^"
	default:
		return string(op)
	}
}

type fuzzUInt struct {
	source *rando
}

func (f fuzzUInt) Name() string { return "uint" }

func (f fuzzUInt) Add() error {
	b1, b2 := f.source.BigUIntx2(fuzzMaxBits)
	u1, u2 := accUIntFromBigInt(b1), accUIntFromBigInt(b2)
	rb := new(big.Int).Add(b1, b2)
	ru := Add(u1, u2)
	if err := checkLen(ru, max(u1.Len(), u2.Len())+1); err != nil {
		return err
	}
	return checkEqualUInt(ru, rb)
}

func (f fuzzUInt) And() error {
	b1, b2 := f.source.BigUIntx2(fuzzMaxBits)
	u1, u2 := accUIntFromBigInt(b1), accUIntFromBigInt(b2)
	rb := new(big.Int).And(b1, b2)
	ru := And(u1, u2)
	if err := checkLen(ru, u1.Len()); err != nil {
		return err
	}
	return checkEqualUInt(ru, rb)
}

// Or and Xor only touch the digits the operands share, so the big.Int
// result is built from the second operand clipped to the first one's length.
func (f fuzzUInt) Or() error {
	b1, b2 := f.source.BigUIntx2(fuzzMaxBits)
	u1, u2 := accUIntFromBigInt(b1), accUIntFromBigInt(b2)
	clipped := new(big.Int).And(b2, lowMask(u1.Len()))
	rb := new(big.Int).Or(b1, clipped)
	ru := Or(u1, u2)
	if err := checkLen(ru, u1.Len()); err != nil {
		return err
	}
	return checkEqualUInt(ru, rb)
}

func (f fuzzUInt) Xor() error {
	b1, b2 := f.source.BigUIntx2(fuzzMaxBits)
	u1, u2 := accUIntFromBigInt(b1), accUIntFromBigInt(b2)
	clipped := new(big.Int).And(b2, lowMask(u1.Len()))
	rb := new(big.Int).Xor(b1, clipped)
	ru := Xor(u1, u2)
	if err := checkLen(ru, u1.Len()); err != nil {
		return err
	}
	return checkEqualUInt(ru, rb)
}

// Neg checks the two's complement modulo 2^Len of the operand.
func (f fuzzUInt) Neg() error {
	b1 := f.source.BigUInt(fuzzMaxBits)
	u1 := accUIntFromBigInt(b1)
	wrap := new(big.Int).Lsh(big1, uint(u1.Len()))

	rb := new(big.Int).Sub(wrap, b1)
	rb.Mod(rb, wrap)

	ru := Negate(u1).AsBigInt()
	ru.Mod(ru, wrap)
	if ru.Cmp(rb) != 0 {
		return fmt.Errorf("uint(%s) mod 2^%d != big(%s)", ru, u1.Len(), rb)
	}
	return nil
}

func (f fuzzUInt) Sub() error {
	b1, b2 := f.source.BigUIntx2(62)
	u1, u2 := accUIntFromBigInt(b1), accUIntFromBigInt(b2)
	rb := new(big.Int).Sub(b1, b2)
	if rb.Sign() < 0 {
		rb.SetInt64(0) // saturate
	}
	ru := Sub(u1, u2)
	return checkEqualUInt(ru, rb)
}

func (f fuzzUInt) RippleSub() error {
	b1, b2 := f.source.BigUIntx2(fuzzMaxBits)
	u1, u2 := accUIntFromBigInt(b1), accUIntFromBigInt(b2)
	rb := new(big.Int).Sub(b1, b2)
	if rb.Sign() < 0 {
		rb.SetInt64(0) // saturate
	}
	ru := SubUsing(Ripple{}, u1, u2)
	return checkEqualUInt(ru, rb)
}

func (f fuzzUInt) Mul() error {
	b1, b2 := f.source.BigUIntx2(31)
	u1, u2 := accUIntFromBigInt(b1), accUIntFromBigInt(b2)
	rb := new(big.Int).Mul(b1, b2)
	ru := Mul(u1, u2)
	return checkEqualUInt(ru, rb)
}

func (f fuzzUInt) Booth() error {
	b1, b2 := f.source.BigUIntx2(fuzzMaxBits)
	u1, u2 := accUIntFromBigInt(b1), accUIntFromBigInt(b2)
	rb := new(big.Int).Mul(b1, b2)
	ru := MulUsing(Booth{}, u1, u2)
	return checkEqualUInt(ru, rb)
}

func (f fuzzUInt) Cmp() error {
	b1, b2 := f.source.BigUIntx2(fuzzMaxBits)
	u1, u2 := accUIntFromBigInt(b1), accUIntFromBigInt(b2)
	return checkEqualInt(u1.Cmp(u2), b1.Cmp(b2))
}

func (f fuzzUInt) Int64() error {
	b1 := f.source.BigUInt(63)
	u1 := accUIntFromBigInt(b1)
	if !u1.IsInt64() {
		return fmt.Errorf("uint(%s) reports it does not fit in an int64", u1)
	}
	if u1.Int64() != b1.Int64() {
		return fmt.Errorf("uint(%d) != big(%d)", u1.Int64(), b1.Int64())
	}
	return nil
}

func (f fuzzUInt) String() error {
	b1 := f.source.BigUInt(fuzzMaxBits)
	u1 := accUIntFromBigInt(b1)
	s := u1.String()
	if s != "0b"+b1.Text(2) && s != "0b0"+b1.Text(2) && !(s == "0b" && b1.Sign() == 0) {
		return fmt.Errorf("uint(%s) != big(%b)", s, b1)
	}
	parsed, err := UIntFromString(s)
	if err != nil {
		return err
	}
	if parsed.String() != s {
		return fmt.Errorf("uint(%s) reparsed as %s", s, parsed)
	}
	return nil
}
