package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "whsec_dGhpcy1pcy1hLXRlc3Qtc2VjcmV0LWtleQ=="

func signPayload(t *testing.T, msgID, timestamp string, body []byte) string {
	t.Helper()

	raw, err := base64.StdEncoding.DecodeString("dGhpcy1pcy1hLXRlc3Qtc2VjcmV0LWtleQ==")
	require.NoError(t, err)

	mac := hmac.New(sha256.New, raw)
	fmt.Fprintf(mac, "%s.%s.", msgID, timestamp)
	mac.Write(body)
	return "v1," + base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func TestNewVerifier(t *testing.T) {
	tests := []struct {
		name      string
		secret    string
		expectErr bool
	}{
		{name: "prefixed secret", secret: testSecret},
		{name: "bare base64 secret", secret: "dGhpcy1pcy1hLXRlc3Qtc2VjcmV0LWtleQ=="},
		{name: "empty secret", secret: "", expectErr: true},
		{name: "not base64", secret: "whsec_!!!", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := NewVerifier(tt.secret)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, v)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, v)
		})
	}
}

func TestVerifier_Verify(t *testing.T) {
	body := []byte(`{"type":"user.created","data":{"id":"user_1"}}`)
	msgID := "msg_2f9d"
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)

	v, err := NewVerifier(testSecret)
	require.NoError(t, err)

	t.Run("valid signature", func(t *testing.T) {
		sig := signPayload(t, msgID, timestamp, body)
		assert.NoError(t, v.Verify(msgID, timestamp, sig, body))
	})

	t.Run("multiple candidates with one match", func(t *testing.T) {
		sig := "v1,Zm9yZ2VkCg== " + signPayload(t, msgID, timestamp, body)
		assert.NoError(t, v.Verify(msgID, timestamp, sig, body))
	})

	t.Run("tampered body", func(t *testing.T) {
		sig := signPayload(t, msgID, timestamp, body)
		assert.Error(t, v.Verify(msgID, timestamp, sig, []byte(`{"type":"user.created","data":{"id":"user_2"}}`)))
	})

	t.Run("wrong message id", func(t *testing.T) {
		sig := signPayload(t, msgID, timestamp, body)
		assert.Error(t, v.Verify("msg_other", timestamp, sig, body))
	})

	t.Run("unknown signature version", func(t *testing.T) {
		sig := signPayload(t, msgID, timestamp, body)
		assert.Error(t, v.Verify(msgID, timestamp, "v2,"+sig[3:], body))
	})

	t.Run("missing parts", func(t *testing.T) {
		sig := signPayload(t, msgID, timestamp, body)
		assert.Error(t, v.Verify("", timestamp, sig, body))
		assert.Error(t, v.Verify(msgID, "", sig, body))
		assert.Error(t, v.Verify(msgID, timestamp, "", body))
	})

	t.Run("garbage timestamp", func(t *testing.T) {
		sig := signPayload(t, msgID, "yesterday", body)
		assert.Error(t, v.Verify(msgID, "yesterday", sig, body))
	})
}

func TestVerifier_Verify_Tolerance(t *testing.T) {
	body := []byte(`{}`)
	msgID := "msg_old"

	v, err := NewVerifier(testSecret)
	require.NoError(t, err)
	v.now = func() time.Time { return time.Unix(1_700_000_000, 0) }

	t.Run("too old", func(t *testing.T) {
		ts := strconv.FormatInt(1_700_000_000-int64(DefaultTolerance.Seconds())-1, 10)
		sig := signPayload(t, msgID, ts, body)
		assert.Error(t, v.Verify(msgID, ts, sig, body))
	})

	t.Run("too far in the future", func(t *testing.T) {
		ts := strconv.FormatInt(1_700_000_000+int64(DefaultTolerance.Seconds())+1, 10)
		sig := signPayload(t, msgID, ts, body)
		assert.Error(t, v.Verify(msgID, ts, sig, body))
	})

	t.Run("inside window", func(t *testing.T) {
		ts := strconv.FormatInt(1_700_000_000-60, 10)
		sig := signPayload(t, msgID, ts, body)
		assert.NoError(t, v.Verify(msgID, ts, sig, body))
	})
}
