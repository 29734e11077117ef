package receiver_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/nft-ledger/internal/adapter"
	"github.com/feral-file/nft-ledger/internal/logger"
	"github.com/feral-file/nft-ledger/internal/receiver"
	"github.com/feral-file/nft-ledger/internal/store/schema"
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

func newTestClient() receiver.Client {
	return receiver.NewClient(receiver.Config{
		Timeout:    2 * time.Second,
		MaxRetries: 1,
	}, adapter.NewClock())
}

func activeHook(transferURL, approveURL string) *schema.ReceiverHook {
	return &schema.ReceiverHook{
		AccountID:   "market.near",
		TransferURL: transferURL,
		ApproveURL:  approveURL,
		Secret:      "test-secret",
		IsActive:    true,
	}
}

func TestClient_OnTransfer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		// the request carries a verifiable signature
		timestamp, err := strconv.ParseInt(r.Header.Get("X-Ledger-Timestamp"), 10, 64)
		require.NoError(t, err)
		assert.True(t, receiver.VerifySignature("test-secret", payload, r.Header.Get("X-Ledger-Signature"), timestamp))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		_, _ = w.Write([]byte("false\n"))
	}))
	defer server.Close()

	client := newTestClient()
	defer client.Close()

	result, err := client.OnTransfer(context.Background(), activeHook(server.URL, ""), receiver.OnTransferRequest{
		SenderID:        "alice.near",
		PreviousOwnerID: "alice.near",
		TokenID:         "token-1",
		Msg:             "buy",
	})
	require.NoError(t, err)
	assert.Equal(t, "false", result)
}

func TestClient_OnTransfer_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte("true"))
	}))
	defer server.Close()

	client := newTestClient()
	defer client.Close()

	result, err := client.OnTransfer(context.Background(), activeHook(server.URL, ""), receiver.OnTransferRequest{
		SenderID: "alice.near",
		TokenID:  "token-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "true", result)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_OnTransfer_FailsAfterRetriesExhausted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestClient()
	defer client.Close()

	_, err := client.OnTransfer(context.Background(), activeHook(server.URL, ""), receiver.OnTransferRequest{
		SenderID: "alice.near",
		TokenID:  "token-1",
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, "status 502")
}

func TestClient_OnTransfer_RejectsInactiveHook(t *testing.T) {
	client := newTestClient()
	defer client.Close()

	ctx := context.Background()
	req := receiver.OnTransferRequest{SenderID: "alice.near", TokenID: "token-1"}

	_, err := client.OnTransfer(ctx, nil, req)
	assert.Error(t, err)

	inactive := activeHook("https://market.example/hook", "")
	inactive.IsActive = false
	_, err = client.OnTransfer(ctx, inactive, req)
	assert.Error(t, err)

	_, err = client.OnTransfer(ctx, activeHook("", ""), req)
	assert.Error(t, err)
}

func TestClient_OnApprove(t *testing.T) {
	received := make(chan receiver.OnApproveRequest, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		timestamp, err := strconv.ParseInt(r.Header.Get("X-Ledger-Timestamp"), 10, 64)
		require.NoError(t, err)
		assert.True(t, receiver.VerifySignature("test-secret", payload, r.Header.Get("X-Ledger-Signature"), timestamp))

		received <- receiver.OnApproveRequest{}
	}))
	defer server.Close()

	client := newTestClient()
	client.OnApprove(activeHook("", server.URL), receiver.OnApproveRequest{
		TokenID:    "token-1",
		OwnerID:    "alice.near",
		ApprovalID: 3,
		Msg:        "list it",
	})

	// Close waits for the in-flight notification
	client.Close()

	select {
	case <-received:
	default:
		t.Fatal("approval notification never delivered")
	}
}

func TestClient_OnApprove_MissingHookIsNoOp(t *testing.T) {
	client := newTestClient()
	defer client.Close()

	client.OnApprove(nil, receiver.OnApproveRequest{TokenID: "token-1"})
	client.OnApprove(activeHook("https://market.example/hook", ""), receiver.OnApproveRequest{TokenID: "token-1"})
}
