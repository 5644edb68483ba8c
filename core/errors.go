package core

import (
	"fmt"
	"strconv"

	"github.com/holiman/uint256"
)

// ErrorCode int
type ErrorCode int

const (
	// ErrUnknown unknown
	ErrUnknown ErrorCode = 100000
	// ErrReentrantCall a mutating entry point was re-entered while another call was in flight
	ErrReentrantCall ErrorCode = 100001

	// ErrLengthMismatch assets and price feeds differ in length at construction
	ErrLengthMismatch ErrorCode = 100100
	// ErrInvalidAsset empty or duplicated asset descriptor at construction
	ErrInvalidAsset ErrorCode = 100101

	// ErrInvalidAmount amount must be positive
	ErrInvalidAmount ErrorCode = 100200
	// ErrAssetNotApproved asset is not registered as collateral
	ErrAssetNotApproved ErrorCode = 100201
	// ErrInsufficientBalance balance or debt smaller than the requested amount
	ErrInsufficientBalance ErrorCode = 100202

	// ErrHealthFactorBroken the account's health factor fell below the floor
	ErrHealthFactorBroken ErrorCode = 100300
	// ErrHealthFactorNotImproved liquidation did not improve the target's solvency
	ErrHealthFactorNotImproved ErrorCode = 100301
	// ErrHealthFactorOk liquidation target is not liquidatable
	ErrHealthFactorOk ErrorCode = 100302

	// ErrTransferFailed an external token transfer reported failure
	ErrTransferFailed ErrorCode = 100400
	// ErrMintFailed the debt token gate refused to mint
	ErrMintFailed ErrorCode = 100401
	// ErrStalePrice price feed older than the max price age
	ErrStalePrice ErrorCode = 100402
	// ErrOracleUnreachable the underlying price source errored
	ErrOracleUnreachable ErrorCode = 100403
	// ErrInvalidPrice price feed returned a zero price
	ErrInvalidPrice ErrorCode = 100404
)

func (e ErrorCode) String() string {
	return strconv.Itoa(int(e))
}

func (e ErrorCode) Error() string {
	return e.String()
}

// HealthFactorBrokenError carries the offending health factor.
// errors.Is matches ErrHealthFactorBroken.
type HealthFactorBrokenError struct {
	HealthFactor *uint256.Int
}

func (e *HealthFactorBrokenError) Error() string {
	return fmt.Sprintf("health factor broken: %s", e.HealthFactor.Dec())
}

func (e *HealthFactorBrokenError) Unwrap() error {
	return ErrHealthFactorBroken
}

// HealthFactorOkError liquidation rejected, target is solvent.
type HealthFactorOkError struct {
	HealthFactor *uint256.Int
}

func (e *HealthFactorOkError) Error() string {
	return fmt.Sprintf("health factor ok: %s", e.HealthFactor.Dec())
}

func (e *HealthFactorOkError) Unwrap() error {
	return ErrHealthFactorOk
}

// HealthFactorNotImprovedError liquidation seized collateral without improving solvency.
type HealthFactorNotImprovedError struct {
	Before *uint256.Int
	After  *uint256.Int
}

func (e *HealthFactorNotImprovedError) Error() string {
	return fmt.Sprintf("health factor not improved: %s -> %s", e.Before.Dec(), e.After.Dec())
}

func (e *HealthFactorNotImprovedError) Unwrap() error {
	return ErrHealthFactorNotImproved
}
