package workflows

import (
	"context"

	"go.uber.org/zap"

	"github.com/feral-file/nft-ledger/internal/ledger"
	"github.com/feral-file/nft-ledger/internal/logger"
	"github.com/feral-file/nft-ledger/internal/receiver"
	"github.com/feral-file/nft-ledger/internal/store"
)

// Executor defines the interface for executing activities
//
//go:generate mockgen -source=executor.go -destination=../mocks/executor_core.go -package=mocks -mock_names=Executor=MockCoreExecutor
type Executor interface {
	// CallOnTransfer invokes the receiver's transfer hook and reports its
	// verdict. A missing hook registration, an inactive hook or a failed call
	// all come back as a failed outcome; this activity never errors so the
	// saga always reaches settlement.
	CallOnTransfer(ctx context.Context, input ResolveTransferInput) (HookOutcome, error)

	// FinishResolveTransfer settles the pending transfer from the hook
	// outcome and reports whether the transfer stuck
	FinishResolveTransfer(ctx context.Context, input ResolveTransferInput, outcome HookOutcome) (bool, error)
}

// executor is the concrete implementation of Executor
type executor struct {
	store  store.Store
	ledger ledger.Ledger
	hooks  receiver.Client
}

// NewExecutor creates a new executor instance
func NewExecutor(st store.Store, ldg ledger.Ledger, hooks receiver.Client) Executor {
	return &executor{
		store:  st,
		ledger: ldg,
		hooks:  hooks,
	}
}

// CallOnTransfer invokes the receiver's transfer hook
func (e *executor) CallOnTransfer(ctx context.Context, input ResolveTransferInput) (HookOutcome, error) {
	res := input.Resolution

	hook, err := e.store.GetReceiverHook(ctx, res.ReceiverID)
	if err != nil {
		logger.ErrorCtx(ctx, err,
			zap.String("receiver", res.ReceiverID.String()),
			zap.String("token", res.TokenID.String()),
		)
		return HookOutcome{Failed: true}, nil
	}
	if hook == nil || !hook.IsActive {
		// transferring with a call to an account that implements no hook
		// behaves like a failed cross-contract call
		logger.WarnCtx(ctx, "receiver has no active transfer hook",
			zap.String("receiver", res.ReceiverID.String()),
			zap.String("token", res.TokenID.String()),
		)
		return HookOutcome{Failed: true}, nil
	}

	result, err := e.hooks.OnTransfer(ctx, hook, receiver.OnTransferRequest{
		SenderID:        input.SenderID,
		PreviousOwnerID: res.OwnerID,
		TokenID:         res.TokenID,
		Msg:             input.Msg,
	})
	if err != nil {
		logger.WarnCtx(ctx, "transfer hook call failed",
			zap.String("receiver", res.ReceiverID.String()),
			zap.String("token", res.TokenID.String()),
			zap.Error(err),
		)
		return HookOutcome{Failed: true}, nil
	}

	return HookOutcome{Result: result}, nil
}

// FinishResolveTransfer settles the pending transfer
func (e *executor) FinishResolveTransfer(ctx context.Context, input ResolveTransferInput, outcome HookOutcome) (bool, error) {
	return e.ledger.ResolveTransfer(ctx, input.Resolution, outcome.Result, outcome.Failed)
}
