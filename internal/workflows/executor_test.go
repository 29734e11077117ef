package workflows_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/nft-ledger/internal/domain"
	"github.com/feral-file/nft-ledger/internal/logger"
	"github.com/feral-file/nft-ledger/internal/mocks"
	"github.com/feral-file/nft-ledger/internal/receiver"
	"github.com/feral-file/nft-ledger/internal/store/schema"
	"github.com/feral-file/nft-ledger/internal/workflows"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

// testExecutorMocks contains all the mocks needed for testing the executor
type testExecutorMocks struct {
	ctrl     *gomock.Controller
	store    *mocks.MockStore
	ledger   *mocks.MockLedger
	hooks    *mocks.MockReceiverClient
	executor workflows.Executor
}

func setupTestExecutor(t *testing.T) *testExecutorMocks {
	ctrl := gomock.NewController(t)

	tm := &testExecutorMocks{
		ctrl:   ctrl,
		store:  mocks.NewMockStore(ctrl),
		ledger: mocks.NewMockLedger(ctrl),
		hooks:  mocks.NewMockReceiverClient(ctrl),
	}
	tm.executor = workflows.NewExecutor(tm.store, tm.ledger, tm.hooks)

	return tm
}

func TestExecutor_CallOnTransfer(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	input := resolveInput()
	hook := &schema.ReceiverHook{
		AccountID:   "market.near",
		TransferURL: "https://market.example/on-transfer",
		Secret:      "s3cret",
		IsActive:    true,
	}

	tm.store.EXPECT().GetReceiverHook(gomock.Any(), domain.AccountID("market.near")).Return(hook, nil)
	tm.hooks.EXPECT().OnTransfer(gomock.Any(), hook, receiver.OnTransferRequest{
		SenderID:        "alice.near",
		PreviousOwnerID: "alice.near",
		TokenID:         "token-1",
		Msg:             "buy",
	}).Return("false", nil)

	outcome, err := tm.executor.CallOnTransfer(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, workflows.HookOutcome{Result: "false"}, outcome)
}

func TestExecutor_CallOnTransfer_NoHookRegistered(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	tm.store.EXPECT().GetReceiverHook(gomock.Any(), domain.AccountID("market.near")).Return(nil, nil)

	outcome, err := tm.executor.CallOnTransfer(context.Background(), resolveInput())
	require.NoError(t, err)
	assert.True(t, outcome.Failed)
}

func TestExecutor_CallOnTransfer_InactiveHook(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	hook := &schema.ReceiverHook{AccountID: "market.near", IsActive: false}
	tm.store.EXPECT().GetReceiverHook(gomock.Any(), domain.AccountID("market.near")).Return(hook, nil)

	outcome, err := tm.executor.CallOnTransfer(context.Background(), resolveInput())
	require.NoError(t, err)
	assert.True(t, outcome.Failed)
}

func TestExecutor_CallOnTransfer_LookupError(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	tm.store.EXPECT().GetReceiverHook(gomock.Any(), domain.AccountID("market.near")).Return(nil, errors.New("connection refused"))

	// lookup failures never error the activity; the saga settles as failed
	outcome, err := tm.executor.CallOnTransfer(context.Background(), resolveInput())
	require.NoError(t, err)
	assert.True(t, outcome.Failed)
}

func TestExecutor_CallOnTransfer_HookCallFails(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	hook := &schema.ReceiverHook{
		AccountID:   "market.near",
		TransferURL: "https://market.example/on-transfer",
		Secret:      "s3cret",
		IsActive:    true,
	}
	tm.store.EXPECT().GetReceiverHook(gomock.Any(), domain.AccountID("market.near")).Return(hook, nil)
	tm.hooks.EXPECT().OnTransfer(gomock.Any(), hook, gomock.Any()).Return("", errors.New("timeout"))

	outcome, err := tm.executor.CallOnTransfer(context.Background(), resolveInput())
	require.NoError(t, err)
	assert.True(t, outcome.Failed)
}

func TestExecutor_FinishResolveTransfer(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	input := resolveInput()
	outcome := workflows.HookOutcome{Result: "true"}

	tm.ledger.EXPECT().ResolveTransfer(gomock.Any(), input.Resolution, "true", false).Return(false, nil)

	stuck, err := tm.executor.FinishResolveTransfer(context.Background(), input, outcome)
	require.NoError(t, err)
	assert.False(t, stuck)
}

func TestExecutor_FinishResolveTransfer_Error(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	input := resolveInput()
	outcome := workflows.HookOutcome{Failed: true}

	tm.ledger.EXPECT().ResolveTransfer(gomock.Any(), input.Resolution, "", true).Return(false, errors.New("deadlock"))

	_, err := tm.executor.FinishResolveTransfer(context.Background(), input, outcome)
	assert.Error(t, err)
}
