// Package webhook verifies signed webhook deliveries from the identity
// provider. The provider signs each delivery with HMAC-SHA256 over
// "{message id}.{timestamp}.{body}" using a shared secret; the signature
// header carries one or more space-separated "v1,<base64>" candidates so the
// provider can rotate secrets without dropping deliveries.
package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Header names of the provider's signature triplet
const (
	HeaderID        = "X-Webhook-Id"
	HeaderTimestamp = "X-Webhook-Timestamp"
	HeaderSignature = "X-Webhook-Signature"
)

const secretPrefix = "whsec_"

// DefaultTolerance bounds how far a delivery's timestamp may drift from the
// local clock before it is rejected as a replay
const DefaultTolerance = 5 * time.Minute

// Verifier validates webhook signatures with a pre-shared secret
type Verifier struct {
	secret    []byte
	tolerance time.Duration
	now       func() time.Time
}

// NewVerifier creates a verifier from the provider's shared secret. The
// secret may carry the provider's "whsec_" prefix and is base64 encoded.
func NewVerifier(secret string) (*Verifier, error) {
	if secret == "" {
		return nil, fmt.Errorf("webhook secret is required")
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(secret, secretPrefix))
	if err != nil {
		return nil, fmt.Errorf("webhook secret is not valid base64: %w", err)
	}

	return &Verifier{
		secret:    raw,
		tolerance: DefaultTolerance,
		now:       time.Now,
	}, nil
}

// Verify checks the signature triplet against the raw request body. All
// three header values must be non-empty; callers reject missing headers
// before calling Verify.
func (v *Verifier) Verify(msgID, timestamp, signature string, body []byte) error {
	if msgID == "" || timestamp == "" || signature == "" {
		return fmt.Errorf("missing webhook headers")
	}

	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid webhook timestamp %q: %w", timestamp, err)
	}

	sent := time.Unix(ts, 0)
	if drift := v.now().Sub(sent); drift > v.tolerance || drift < -v.tolerance {
		return fmt.Errorf("webhook timestamp outside tolerance: %s", sent.UTC().Format(time.RFC3339))
	}

	expected := v.sign(msgID, timestamp, body)

	// The header may carry several versioned candidates
	for _, candidate := range strings.Fields(signature) {
		version, sig, found := strings.Cut(candidate, ",")
		if !found || version != "v1" {
			continue
		}
		decoded, err := base64.StdEncoding.DecodeString(sig)
		if err != nil {
			continue
		}
		if hmac.Equal(decoded, expected) {
			return nil
		}
	}

	return fmt.Errorf("no signature matched")
}

func (v *Verifier) sign(msgID, timestamp string, body []byte) []byte {
	mac := hmac.New(sha256.New, v.secret)
	fmt.Fprintf(mac, "%s.%s.", msgID, timestamp)
	mac.Write(body)
	return mac.Sum(nil)
}
