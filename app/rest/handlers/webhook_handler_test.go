package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"growhub/app/domain"
	"growhub/app/mocks"
	apperrors "growhub/app/utils/errors"
	"growhub/app/utils/logger"
	"growhub/app/utils/webhook"
)

var testWebhookKey = []byte("0123456789abcdef0123456789abcdef")

func testWebhookSecret() string {
	return "whsec_" + base64.StdEncoding.EncodeToString(testWebhookKey)
}

func signTestPayload(msgID, timestamp string, body []byte) string {
	mac := hmac.New(sha256.New, testWebhookKey)
	fmt.Fprintf(mac, "%s.%s.", msgID, timestamp)
	mac.Write(body)
	return "v1," + base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func newTestWebhookHandler(t *testing.T) (*WebhookHandler, *mocks.MockIdentitySyncUsecase) {
	t.Helper()

	ctrl := gomock.NewController(t)
	sync := mocks.NewMockIdentitySyncUsecase(ctrl)

	verifier, err := webhook.NewVerifier(testWebhookSecret())
	require.NoError(t, err)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	return NewWebhookHandler(sync, verifier, testLogger), sync
}

func deliverWebhook(t *testing.T, h *WebhookHandler, headers map[string]string, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/identity", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.HandleIdentityEvent(c))
	return rec
}

func signedHeaders(msgID string, body string) map[string]string {
	ts := strconv.FormatInt(time.Now().Unix(), 10)
	return map[string]string{
		webhook.HeaderID:        msgID,
		webhook.HeaderTimestamp: ts,
		webhook.HeaderSignature: signTestPayload(msgID, ts, []byte(body)),
	}
}

func TestHandleIdentityEvent_ValidDelivery(t *testing.T) {
	h, sync := newTestWebhookHandler(t)

	body := `{"type":"user.created","data":{"id":"user_1"}}`

	sync.EXPECT().ProcessEvent(gomock.Any(), "msg_1", gomock.Any()).
		DoAndReturn(func(_ interface{}, _ string, event *domain.WebhookEvent) error {
			assert.Equal(t, domain.EventUserCreated, event.Type)
			return nil
		})

	rec := deliverWebhook(t, h, signedHeaders("msg_1", body), body)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Webhook received")
}

func TestHandleIdentityEvent_MissingHeaders(t *testing.T) {
	h, _ := newTestWebhookHandler(t)

	body := `{"type":"user.created","data":{}}`
	headers := signedHeaders("msg_1", body)

	for _, dropped := range []string{webhook.HeaderID, webhook.HeaderTimestamp, webhook.HeaderSignature} {
		t.Run("without "+dropped, func(t *testing.T) {
			partial := make(map[string]string, len(headers)-1)
			for k, v := range headers {
				if k != dropped {
					partial[k] = v
				}
			}

			rec := deliverWebhook(t, h, partial, body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), string(apperrors.ErrCodeMissingWebhookHeaders))
		})
	}
}

func TestHandleIdentityEvent_TamperedBody(t *testing.T) {
	h, _ := newTestWebhookHandler(t)

	signed := `{"type":"user.created","data":{"id":"user_1"}}`
	headers := signedHeaders("msg_1", signed)

	tampered := `{"type":"user.created","data":{"id":"user_evil"}}`
	rec := deliverWebhook(t, h, headers, tampered)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), string(apperrors.ErrCodeInvalidSignature))
}

func TestHandleIdentityEvent_StaleTimestamp(t *testing.T) {
	h, _ := newTestWebhookHandler(t)

	body := `{"type":"user.created","data":{}}`
	ts := strconv.FormatInt(time.Now().Add(-time.Hour).Unix(), 10)
	headers := map[string]string{
		webhook.HeaderID:        "msg_1",
		webhook.HeaderTimestamp: ts,
		webhook.HeaderSignature: signTestPayload("msg_1", ts, []byte(body)),
	}

	rec := deliverWebhook(t, h, headers, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleIdentityEvent_MalformedPayload(t *testing.T) {
	h, _ := newTestWebhookHandler(t)

	// Correctly signed, but the body is not a valid event envelope.
	body := `{"type":`
	rec := deliverWebhook(t, h, signedHeaders("msg_1", body), body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), string(apperrors.ErrCodeMalformedEvent))
}

func TestHandleIdentityEvent_ProcessingFailure(t *testing.T) {
	h, sync := newTestWebhookHandler(t)

	body := `{"type":"user.created","data":{"id":"user_1"}}`

	sync.EXPECT().ProcessEvent(gomock.Any(), "msg_1", gomock.Any()).
		Return(apperrors.NewDatabaseError(assert.AnError))

	rec := deliverWebhook(t, h, signedHeaders("msg_1", body), body)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
