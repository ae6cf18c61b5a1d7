package bitnum

import (
	"math/big"
)

const (
	maxInt64  = 1<<63 - 1
	maxUint64 = 1<<64 - 1
)

var (
	big0 = new(big.Int).SetInt64(0)
	big1 = new(big.Int).SetInt64(1)

	maxBigInt64  = new(big.Int).SetUint64(maxInt64)
	maxBigUint64 = new(big.Int).SetUint64(maxUint64)
)
