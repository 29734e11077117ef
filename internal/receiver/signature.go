package receiver

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// SignedPayload generates a signed hook payload with an HMAC-SHA256 signature
// over the given unix timestamp and the marshaled body. Returns the JSON
// payload and the signature header value.
func SignedPayload(secret string, body interface{}, timestamp int64) (payload []byte, signature string, err error) {
	payload, err = json.Marshal(body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal hook payload: %w", err)
	}

	// Signature payload: {timestamp}.{json_body}. The timestamp lets
	// receivers reject replays; the body is covered in full.
	signaturePayload := fmt.Sprintf("%d.%s", timestamp, string(payload))

	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(signaturePayload))
	signature = "sha256=" + hex.EncodeToString(h.Sum(nil))

	return payload, signature, nil
}

// VerifySignature checks a hook signature against the payload it covers.
// Intended for receiver implementations and tests.
func VerifySignature(secret string, payload []byte, signature string, timestamp int64) bool {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(fmt.Sprintf("%d.%s", timestamp, string(payload))))
	expected := "sha256=" + hex.EncodeToString(h.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
