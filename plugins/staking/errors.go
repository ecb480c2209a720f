package staking

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	DefaultCodespace sdk.CodespaceType = 12

	CodePoolPaused           sdk.CodeType = 1
	CodeInvalidAmount        sdk.CodeType = 2
	CodeInsufficientStake    sdk.CodeType = 3
	CodeInvalidLockupPeriod  sdk.CodeType = 4
	CodePoolNotFound         sdk.CodeType = 5
	CodePoolExists           sdk.CodeType = 6
	CodeStakeNotFound        sdk.CodeType = 7
	CodeUnauthorized         sdk.CodeType = 8
	CodeInvalidPoolAuthority sdk.CodeType = 9
	CodeInvalidTokenMint     sdk.CodeType = 10
)

func ErrPoolPaused(mint string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodePoolPaused, fmt.Sprintf("Staking pool of %s is paused", mint))
}

func ErrInvalidAmount(msg string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeInvalidAmount, msg)
}

func ErrInsufficientStake(staked, requested uint64) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeInsufficientStake,
		fmt.Sprintf("Insufficient stake, staked %d < requested %d", staked, requested))
}

func ErrInvalidLockupPeriod(days uint16) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeInvalidLockupPeriod,
		fmt.Sprintf("Invalid lockup period %d, should be one of %d, %d or %d days", days,
			FlexLockupDays, StandardLockupDays, PremiumLockupDays))
}

func ErrPoolNotFound(mint string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodePoolNotFound, fmt.Sprintf("No staking pool for token %s", mint))
}

func ErrPoolExists(mint string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodePoolExists, fmt.Sprintf("Staking pool for token %s already exists", mint))
}

func ErrStakeNotFound(mint string, owner sdk.AccAddress) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeStakeNotFound, fmt.Sprintf("%s has no stake in pool %s", owner.String(), mint))
}

func ErrUnauthorized(msg string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeUnauthorized, msg)
}

func ErrInvalidPoolAuthority(mint string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeInvalidPoolAuthority,
		fmt.Sprintf("Vault of pool %s is not controlled by the pool authority", mint))
}

func ErrInvalidTokenMint(msg string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeInvalidTokenMint, fmt.Sprintf("Invalid token mint: %s", msg))
}
