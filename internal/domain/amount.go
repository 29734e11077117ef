package domain

import "math/big"

// StorageByteCost is the price of one byte of contract storage in yocto.
var StorageByteCost = mustBig("10000000000000000000")

// OneYocto is the minimal non-zero attached payment, used as a confirmation
// signal on mutating operations.
var OneYocto = big.NewInt(1)

func mustBig(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("invalid big integer literal: " + s)
	}
	return v
}

// ParseAmount parses a non-negative decimal yocto amount
func ParseAmount(s string) (*big.Int, error) {
	if s == "" {
		return nil, ErrInvalidBalance
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 {
		return nil, ErrInvalidBalance
	}
	return v, nil
}

// IsOneYocto reports whether the deposit is exactly 1 yocto
func IsOneYocto(deposit *big.Int) bool {
	return deposit != nil && deposit.Cmp(OneYocto) == 0
}

// IsAtLeastOneYocto reports whether the deposit is 1 yocto or more
func IsAtLeastOneYocto(deposit *big.Int) bool {
	return deposit != nil && deposit.Cmp(OneYocto) >= 0
}
