package workflows

import (
	"go.temporal.io/sdk/workflow"

	"github.com/feral-file/nft-ledger/internal/domain"
)

// TaskQueue is the Temporal task queue the resolve worker listens on
const TaskQueue = "nft-ledger-resolve"

// ResolveTransferWorkflowName is the registered name of the resolve saga; the
// API gateway starts it by name so it never links against worker code
const ResolveTransferWorkflowName = "ResolveTransfer"

// ResolveTransferInput is the full argument set of one resolve saga: the
// pending-resolution snapshot captured at commit time plus the hook call
// parameters. Everything rides in workflow arguments so a worker restart
// replays the saga from history alone.
type ResolveTransferInput struct {
	Resolution domain.TransferResolution `json:"resolution"`
	// SenderID is the account that initiated the transfer-call
	SenderID domain.AccountID `json:"sender_id"`
	// Msg is the caller-supplied message forwarded to the receiver hook
	Msg string `json:"msg"`
}

// HookOutcome is the verdict of one receiver hook invocation
type HookOutcome struct {
	// Result is the raw hook result string; meaningful only when Failed is false
	Result string `json:"result"`
	// Failed is set when the hook could not be called or did not complete
	Failed bool `json:"failed"`
}

// WorkerCore defines the interface for settling pending transfer-calls
//
//go:generate mockgen -source=worker.go -destination=../mocks/worker_core.go -package=mocks -mock_names=WorkerCore=MockCoreWorker
type WorkerCore interface {
	// ResolveTransfer runs the resolve saga for one committed transfer-call
	// and reports whether the transfer stuck
	ResolveTransfer(ctx workflow.Context, input ResolveTransferInput) (bool, error)
}

// workerCore is the concrete implementation of WorkerCore
type workerCore struct {
	executor Executor
}

// NewWorkerCore creates a new worker core instance
func NewWorkerCore(executor Executor) WorkerCore {
	return &workerCore{executor: executor}
}
