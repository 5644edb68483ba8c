package engine

import (
	"context"

	"anchor/core"
	"anchor/pkg/fixed"

	"github.com/fox-one/pkg/logger"
	"github.com/holiman/uint256"
)

// Liquidate repay debtToCover of the target's debt in exchange for the
// equivalent collateral plus a 10% bonus. Only permitted while the target
// is below the solvency floor, and only if the seizure leaves the target
// no worse off than before.
func (s *engineService) Liquidate(ctx context.Context, callerID, assetID, targetID string, debtToCover *uint256.Int) error {
	if err := s.enter(); err != nil {
		return err
	}
	defer s.leave()

	log := logger.FromContext(ctx).WithField("event", "liquidation")

	if debtToCover == nil || debtToCover.IsZero() {
		return core.ErrInvalidAmount
	}

	asset, err := s.approvedAsset(assetID)
	if err != nil {
		return err
	}

	startHF, err := s.healthFactorOf(ctx, targetID)
	if err != nil {
		return err
	}

	if !startHF.Lt(core.MinHealthFactor()) {
		return &core.HealthFactorOkError{HealthFactor: startHF}
	}

	base, err := s.tokenAmountOf(ctx, asset, debtToCover)
	if err != nil {
		return err
	}

	bonus, err := fixed.MulDiv(base, uint256.NewInt(core.LiquidationBonus), uint256.NewInt(core.LiquidationPrecision))
	if err != nil {
		return err
	}

	seize := new(uint256.Int).Add(base, bonus)

	// effects
	if err := s.ledger.SubCollateral(ctx, targetID, assetID, seize); err != nil {
		return err
	}

	if err := s.ledger.SubDebt(ctx, targetID, debtToCover); err != nil {
		s.ledger.AddCollateral(ctx, targetID, assetID, seize)
		return err
	}

	rollback := func() {
		s.ledger.AddCollateral(ctx, targetID, assetID, seize)
		s.ledger.AddDebt(ctx, targetID, debtToCover)
	}

	// checks: both health factors depend only on ledger state and live
	// prices, so verifying here is equivalent to verifying after the
	// transfers and a failed check never has to claw an external
	// transfer back
	endHF, err := s.healthFactorOf(ctx, targetID)
	if err != nil {
		rollback()
		return err
	}

	if endHF.Lt(startHF) {
		rollback()
		return &core.HealthFactorNotImprovedError{Before: startHF, After: endHF}
	}

	callerHF, err := s.healthFactorOf(ctx, callerID)
	if err != nil {
		rollback()
		return err
	}

	if callerHF.Lt(core.MinHealthFactor()) {
		rollback()
		return &core.HealthFactorBrokenError{HealthFactor: callerHF}
	}

	// interactions: pull the repayment first so a failed pay-out only
	// has to return tokens the engine already holds
	ok, err := s.debt.TransferFrom(ctx, callerID, s.id, debtToCover)
	if err != nil || !ok {
		rollback()
		return transferFailed(err)
	}

	ok, err = s.bank.TransferOut(ctx, assetID, callerID, seize)
	if err != nil || !ok {
		if _, e := s.debt.TransferFrom(ctx, s.id, callerID, debtToCover); e != nil {
			log.WithError(e).Errorln("liquidation compensation")
		}
		rollback()
		return transferFailed(err)
	}

	if err := s.debt.Burn(ctx, debtToCover); err != nil {
		if _, e := s.bank.TransferIn(ctx, assetID, callerID, seize); e != nil {
			log.WithError(e).Errorln("liquidation compensation")
		}
		if _, e := s.debt.TransferFrom(ctx, s.id, callerID, debtToCover); e != nil {
			log.WithError(e).Errorln("liquidation compensation")
		}
		rollback()
		return transferFailed(err)
	}

	log.WithField("target", targetID).
		WithField("asset", asset.Symbol).
		Infoln("seized", seize.Dec(), "for", debtToCover.Dec())

	s.record(ctx, core.OperationLiquidate, callerID, assetID, debtToCover, targetID)
	return nil
}
