package utils

import (
	"fmt"
	"math"

	sdk "github.com/cosmos/cosmos-sdk/types"
	ethmath "github.com/ethereum/go-ethereum/common/math"
)

const (
	ArithmeticCodespace sdk.CodespaceType = 13

	CodeArithmeticOverflow  sdk.CodeType = 1
	CodeArithmeticUnderflow sdk.CodeType = 2
	CodeDivisionByZero      sdk.CodeType = 3
)

func ErrArithmeticOverflow(msg string) sdk.Error {
	return sdk.NewError(ArithmeticCodespace, CodeArithmeticOverflow, fmt.Sprintf("Arithmetic overflow: %s", msg))
}

func ErrArithmeticUnderflow(msg string) sdk.Error {
	return sdk.NewError(ArithmeticCodespace, CodeArithmeticUnderflow, fmt.Sprintf("Arithmetic underflow: %s", msg))
}

func ErrDivisionByZero(msg string) sdk.Error {
	return sdk.NewError(ArithmeticCodespace, CodeDivisionByZero, fmt.Sprintf("Division by zero: %s", msg))
}

// SafeAdd returns a+b, or an overflow error instead of wrapping.
func SafeAdd(a, b uint64) (uint64, sdk.Error) {
	sum, overflow := ethmath.SafeAdd(a, b)
	if overflow {
		return 0, ErrArithmeticOverflow(fmt.Sprintf("%d + %d", a, b))
	}
	return sum, nil
}

// SafeSub returns a-b, or an underflow error when b > a.
func SafeSub(a, b uint64) (uint64, sdk.Error) {
	diff, underflow := ethmath.SafeSub(a, b)
	if underflow {
		return 0, ErrArithmeticUnderflow(fmt.Sprintf("%d - %d", a, b))
	}
	return diff, nil
}

// SafeMul returns a*b, or an overflow error instead of wrapping.
func SafeMul(a, b uint64) (uint64, sdk.Error) {
	product, overflow := ethmath.SafeMul(a, b)
	if overflow {
		return 0, ErrArithmeticOverflow(fmt.Sprintf("%d * %d", a, b))
	}
	return product, nil
}

// SafeDiv returns floor(a/b).
func SafeDiv(a, b uint64) (uint64, sdk.Error) {
	if b == 0 {
		return 0, ErrDivisionByZero(fmt.Sprintf("%d / 0", a))
	}
	return a / b, nil
}

// MulDiv returns floor(a*b/c) with the intermediate product checked.
func MulDiv(a, b, c uint64) (uint64, sdk.Error) {
	product, err := SafeMul(a, b)
	if err != nil {
		return 0, err
	}
	return SafeDiv(product, c)
}

// ToCoinAmount converts a ledger figure into the int64 amount carried by sdk.Coin.
func ToCoinAmount(amount uint64) (int64, sdk.Error) {
	if amount > math.MaxInt64 {
		return 0, ErrArithmeticOverflow(fmt.Sprintf("%d exceeds max coin amount", amount))
	}
	return int64(amount), nil
}

// FromCoinAmount converts a coin amount into a ledger figure. Negative amounts read as zero.
func FromCoinAmount(amount int64) uint64 {
	if amount < 0 {
		return 0
	}
	return uint64(amount)
}
