package dto

// MintResponse reports a freshly minted token
type MintResponse struct {
	Token *Token `json:"token"`
}

// ApproveResponse reports the approval id assigned by an approve call
type ApproveResponse struct {
	ApprovalID uint64 `json:"approval_id"`
}

// IsApprovedResponse reports whether an account holds a live approval
type IsApprovedResponse struct {
	Approved bool `json:"approved"`
}

// SupplyResponse carries a token count as a decimal string
type SupplyResponse struct {
	Supply string `json:"supply"`
}

// TransferCallResponse reports the saga started for a transfer-call. The
// final verdict arrives asynchronously; the workflow id lets callers track it.
type TransferCallResponse struct {
	WorkflowID string `json:"workflow_id"`
	RunID      string `json:"run_id"`
}

// TokensResponse is a page of tokens in mint order
type TokensResponse struct {
	Tokens []*Token `json:"tokens"`
}
