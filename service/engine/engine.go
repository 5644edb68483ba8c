package engine

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"anchor/core"
	"anchor/pkg/id"

	"github.com/fox-one/pkg/logger"
	"github.com/holiman/uint256"
)

// Config engine config
type Config struct {
	// ID identity under which the engine holds pooled collateral and
	// pulls debt tokens back for burning
	ID string
}

type engineService struct {
	id       string
	registry *core.Registry
	ledger   core.ILedgerStore
	oracle   core.IPriceOracleService
	bank     core.ICollateralBank
	debt     core.IDebtToken
	journal  core.IJournalStore

	busy int32
}

// New new engine service
func New(
	cfg Config,
	registry *core.Registry,
	ledger core.ILedgerStore,
	oracle core.IPriceOracleService,
	bank core.ICollateralBank,
	debtToken core.IDebtToken,
	journal core.IJournalStore,
) core.IEngineService {
	return &engineService{
		id:       cfg.ID,
		registry: registry,
		ledger:   ledger,
		oracle:   oracle,
		bank:     bank,
		debt:     debtToken,
		journal:  journal,
	}
}

// enter acquire the reentry guard. While one mutating call is in flight,
// any nested call into a mutating entry point is rejected rather than
// interleaved; checks-effects-interactions ordering alone does not stop
// a fully reentrant second call.
func (s *engineService) enter() error {
	if !atomic.CompareAndSwapInt32(&s.busy, 0, 1) {
		return core.ErrReentrantCall
	}

	return nil
}

func (s *engineService) leave() {
	atomic.StoreInt32(&s.busy, 0)
}

func (s *engineService) DepositCollateral(ctx context.Context, userID, assetID string, amount *uint256.Int) error {
	if err := s.enter(); err != nil {
		return err
	}
	defer s.leave()

	return s.deposit(ctx, userID, assetID, amount)
}

func (s *engineService) MintDebt(ctx context.Context, userID string, amount *uint256.Int) error {
	if err := s.enter(); err != nil {
		return err
	}
	defer s.leave()

	return s.mint(ctx, userID, amount)
}

// DepositAndMint deposit collateral and mint debt in one guarded session
func (s *engineService) DepositAndMint(ctx context.Context, userID, assetID string, depositAmount, mintAmount *uint256.Int) error {
	if err := s.enter(); err != nil {
		return err
	}
	defer s.leave()

	if err := s.deposit(ctx, userID, assetID, depositAmount); err != nil {
		return err
	}

	return s.mint(ctx, userID, mintAmount)
}

func (s *engineService) RedeemCollateral(ctx context.Context, userID, assetID string, amount *uint256.Int) error {
	if err := s.enter(); err != nil {
		return err
	}
	defer s.leave()

	return s.redeem(ctx, userID, assetID, amount)
}

func (s *engineService) BurnDebt(ctx context.Context, userID string, amount *uint256.Int) error {
	if err := s.enter(); err != nil {
		return err
	}
	defer s.leave()

	return s.burn(ctx, userID, amount)
}

// RedeemForBurn burn debt first so the redemption is judged against the
// reduced debt
func (s *engineService) RedeemForBurn(ctx context.Context, userID, assetID string, redeemAmount, burnAmount *uint256.Int) error {
	if err := s.enter(); err != nil {
		return err
	}
	defer s.leave()

	if err := s.burn(ctx, userID, burnAmount); err != nil {
		return err
	}

	return s.redeem(ctx, userID, assetID, redeemAmount)
}

func (s *engineService) deposit(ctx context.Context, userID, assetID string, amount *uint256.Int) error {
	if amount == nil || amount.IsZero() {
		return core.ErrInvalidAmount
	}

	if !s.registry.IsApproved(assetID) {
		return core.ErrAssetNotApproved
	}

	s.ledger.AddCollateral(ctx, userID, assetID, amount)

	ok, err := s.bank.TransferIn(ctx, assetID, userID, amount)
	if err != nil || !ok {
		if e := s.ledger.SubCollateral(ctx, userID, assetID, amount); e != nil {
			logger.FromContext(ctx).WithError(e).Errorln("deposit rollback")
		}
		return transferFailed(err)
	}

	s.record(ctx, core.OperationDeposit, userID, assetID, amount, "")
	return nil
}

func (s *engineService) mint(ctx context.Context, userID string, amount *uint256.Int) error {
	if amount == nil || amount.IsZero() {
		return core.ErrInvalidAmount
	}

	s.ledger.AddDebt(ctx, userID, amount)

	rollback := func() {
		if e := s.ledger.SubDebt(ctx, userID, amount); e != nil {
			logger.FromContext(ctx).WithError(e).Errorln("mint rollback")
		}
	}

	hf, err := s.healthFactorOf(ctx, userID)
	if err != nil {
		rollback()
		return err
	}

	if hf.Lt(core.MinHealthFactor()) {
		rollback()
		return &core.HealthFactorBrokenError{HealthFactor: hf}
	}

	ok, err := s.debt.Mint(ctx, userID, amount)
	if err != nil || !ok {
		rollback()
		if err != nil {
			return fmt.Errorf("%w: %v", core.ErrMintFailed, err)
		}
		return core.ErrMintFailed
	}

	s.record(ctx, core.OperationMint, userID, "", amount, "")
	return nil
}

func (s *engineService) redeem(ctx context.Context, userID, assetID string, amount *uint256.Int) error {
	if amount == nil || amount.IsZero() {
		return core.ErrInvalidAmount
	}

	if !s.registry.IsApproved(assetID) {
		return core.ErrAssetNotApproved
	}

	if err := s.ledger.SubCollateral(ctx, userID, assetID, amount); err != nil {
		return err
	}

	rollback := func() {
		s.ledger.AddCollateral(ctx, userID, assetID, amount)
	}

	hf, err := s.healthFactorOf(ctx, userID)
	if err != nil {
		rollback()
		return err
	}

	if hf.Lt(core.MinHealthFactor()) {
		rollback()
		return &core.HealthFactorBrokenError{HealthFactor: hf}
	}

	ok, err := s.bank.TransferOut(ctx, assetID, userID, amount)
	if err != nil || !ok {
		rollback()
		return transferFailed(err)
	}

	s.record(ctx, core.OperationRedeem, userID, assetID, amount, "")
	return nil
}

func (s *engineService) burn(ctx context.Context, userID string, amount *uint256.Int) error {
	if amount == nil || amount.IsZero() {
		return core.ErrInvalidAmount
	}

	if err := s.ledger.SubDebt(ctx, userID, amount); err != nil {
		return err
	}

	rollback := func() {
		s.ledger.AddDebt(ctx, userID, amount)
	}

	// burning can only improve solvency; the check still runs so a
	// stalled feed fails the operation closed before any token moves
	if hf, err := s.healthFactorOf(ctx, userID); err != nil {
		rollback()
		return err
	} else if hf.Lt(core.MinHealthFactor()) {
		rollback()
		return &core.HealthFactorBrokenError{HealthFactor: hf}
	}

	ok, err := s.debt.TransferFrom(ctx, userID, s.id, amount)
	if err != nil || !ok {
		rollback()
		return transferFailed(err)
	}

	if err := s.debt.Burn(ctx, amount); err != nil {
		if _, e := s.debt.TransferFrom(ctx, s.id, userID, amount); e != nil {
			logger.FromContext(ctx).WithError(e).Errorln("burn compensation")
		}
		rollback()
		return transferFailed(err)
	}

	s.record(ctx, core.OperationBurn, userID, "", amount, "")
	return nil
}

func (s *engineService) record(ctx context.Context, typ core.OperationType, userID, assetID string, amount *uint256.Int, counterparty string) {
	if s.journal == nil {
		return
	}

	entry := &core.JournalEntry{
		TraceID:        id.GenTraceID(),
		Type:           typ,
		UserID:         userID,
		AssetID:        assetID,
		Amount:         amount.Dec(),
		CounterpartyID: counterparty,
		CreatedAt:      time.Now(),
	}

	// the operation is already committed; a journal fault must not undo it
	if err := s.journal.Record(ctx, entry); err != nil {
		logger.FromContext(ctx).WithError(err).Errorln("journal.Record")
	}
}

func transferFailed(err error) error {
	if err != nil {
		return fmt.Errorf("%w: %v", core.ErrTransferFailed, err)
	}

	return core.ErrTransferFailed
}
