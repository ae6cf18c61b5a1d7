/*
Package bitnum provides UInt, an unsigned integer of any width stored as an
explicit sequence of binary digits.

Every operation comes in two forms. Methods on *UInt modify the receiver and
return it, so they chain; package functions of the same name clone their
first operand and leave both inputs untouched:

	a, _ := UIntFromInt64(3)
	b, _ := UIntFromInt64(5)
	fmt.Println(Add(a, b))
	// Output: 0b01000
	fmt.Println(a.Add(b).Add(b))
	// Output: 0b001101

UInts can be created from:

	UIntFromInt64(i int64) (*UInt, error)
	UIntFromInt(i int) (*UInt, error)
	UIntFrom64(v uint64) *UInt
	UIntFromBigInt(b *big.Int) (*UInt, error)
	UIntFromString(s string) (*UInt, error)

Addition, negation and the bitwise operations work digit by digit and have
no upper bound. Subtraction and multiplication go through a Subtractor or
Multiplier. Sub and Mul use NativeBridge, which does the arithmetic in int64
and is only correct while the operands and result fit in one. Ripple and
Booth do the same work on the digits themselves:

	p := MulUsing(Booth{}, a, b)

UInt supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

*/
package bitnum
