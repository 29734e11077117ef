package workflows

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"

	"github.com/feral-file/nft-ledger/internal/logger"
)

// ResolveTransfer is the settlement saga of one committed transfer-call:
// 1. Calls the receiver's transfer hook and captures its verdict
// 2. Confirms or reverts the optimistic transfer from that verdict
// The two steps are separate activities so a crash between them replays only
// settlement, never a second hook call with a fresh verdict.
func (w *workerCore) ResolveTransfer(ctx workflow.Context, input ResolveTransferInput) (bool, error) {
	logger.InfoWf(ctx, "Starting transfer-call resolution",
		zap.String("token", input.Resolution.TokenID.String()),
		zap.String("owner", input.Resolution.OwnerID.String()),
		zap.String("receiver", input.Resolution.ReceiverID.String()))

	// The hook call is a single attempt from the saga's point of view; the
	// HTTP client retries transport errors internally and an exhausted call
	// comes back as a failed outcome rather than an activity error.
	hookOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 2 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 1,
		},
	}
	hookCtx := workflow.WithActivityOptions(ctx, hookOptions)

	var outcome HookOutcome
	if err := workflow.ExecuteActivity(hookCtx, w.executor.CallOnTransfer, input).Get(hookCtx, &outcome); err != nil {
		// Should not happen; treat as a failed hook so the token reverts
		logger.WarnWf(ctx, "Transfer hook activity errored, treating as failed call",
			zap.String("token", input.Resolution.TokenID.String()),
			zap.Error(err))
		outcome = HookOutcome{Failed: true}
	}

	// Settlement must land; retry until the database accepts it
	settleOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 5,
			InitialInterval: time.Second,
		},
	}
	settleCtx := workflow.WithActivityOptions(ctx, settleOptions)

	var stuck bool
	if err := workflow.ExecuteActivity(settleCtx, w.executor.FinishResolveTransfer, input, outcome).Get(settleCtx, &stuck); err != nil {
		logger.ErrorWf(ctx, err,
			zap.String("token", input.Resolution.TokenID.String()))
		return false, err
	}

	logger.InfoWf(ctx, "Transfer-call resolved",
		zap.String("token", input.Resolution.TokenID.String()),
		zap.Bool("transferStuck", stuck))

	return stuck, nil
}
