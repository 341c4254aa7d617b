package gateway

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stpnv0/PitchBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

const testSecret = "sk_test_secret"

func newTestPaystack(t *testing.T, handler http.HandlerFunc) *Paystack {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewPaystack(PaystackConfig{BaseURL: srv.URL, SecretKey: testSecret, Timeout: time.Second}, log)
}

func TestPaystack_InitializeCharge(t *testing.T) {
	p := newTestPaystack(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/transaction/initialize", r.URL.Path)
		assert.Equal(t, "Bearer "+testSecret, r.Header.Get("Authorization"))

		var body initializeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, int64(25000), body.Amount)
		assert.Equal(t, "b1", body.Reference)
		assert.Equal(t, "tunde@example.com", body.Email)
		assert.Equal(t, "b1", body.Metadata["booking_id"])

		_, _ = w.Write([]byte(`{"status":true,"message":"ok","data":{"authorization_url":"https://checkout.paystack.com/abc","access_code":"abc","reference":"b1"}}`))
	})

	charge, err := p.InitializeCharge(context.Background(), domain.ChargeRequest{
		Amount:    25000,
		Currency:  "NGN",
		Reference: "b1",
		Email:     "tunde@example.com",
		BookingID: "b1",
	})

	require.NoError(t, err)
	assert.Equal(t, "b1", charge.Reference)
	assert.Equal(t, "https://checkout.paystack.com/abc", charge.PaymentLink)
}

func TestPaystack_InitializeCharge_Rejected(t *testing.T) {
	p := newTestPaystack(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":false,"message":"Duplicate Transaction Reference"}`))
	})

	_, err := p.InitializeCharge(context.Background(), domain.ChargeRequest{Amount: 1, Reference: "b1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrGateway)
	assert.Contains(t, err.Error(), "Duplicate Transaction Reference")
}

func TestPaystack_InitializeCharge_ServerError(t *testing.T) {
	p := newTestPaystack(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := p.InitializeCharge(context.Background(), domain.ChargeRequest{Amount: 1, Reference: "b1"})

	assert.ErrorIs(t, err, domain.ErrGateway)
}

func TestPaystack_Verify(t *testing.T) {
	p := newTestPaystack(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/transaction/verify/b1", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":true,"message":"ok","data":{"reference":"b1","status":"success","amount":25000,"currency":"NGN","channel":"card"}}`))
	})

	v, err := p.Verify(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentSuccess, v.Status)
	assert.Equal(t, int64(25000), v.Amount)
	assert.Equal(t, "card", v.Method)
}

func TestPaystack_ParseWebhook(t *testing.T) {
	p := NewPaystack(PaystackConfig{SecretKey: testSecret}, nil)
	payload := []byte(`{"event":"charge.success","data":{"reference":"b1","status":"success","amount":25000,"currency":"NGN"}}`)

	tests := []struct {
		name      string
		signature string
		wantErr   error
	}{
		{"valid", hex.EncodeToString(Sign(testSecret, payload)), nil},
		{"wrong secret", hex.EncodeToString(Sign("other", payload)), domain.ErrWebhookSignatureInvalid},
		{"not hex", "zz", domain.ErrWebhookSignatureInvalid},
		{"missing", "", domain.ErrWebhookSignatureInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, err := p.ParseWebhook(payload, tt.signature)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "charge.success", ev.Event)
			assert.Equal(t, "b1", ev.Reference)
			assert.Equal(t, domain.PaymentSuccess, ev.Status)
			assert.Equal(t, int64(25000), ev.Amount)
		})
	}
}

func TestPaystack_ParseWebhook_TamperedBody(t *testing.T) {
	p := NewPaystack(PaystackConfig{SecretKey: testSecret}, nil)
	original := []byte(`{"event":"charge.success","data":{"reference":"b1","amount":25000}}`)
	tampered := []byte(`{"event":"charge.success","data":{"reference":"b1","amount":1}}`)

	_, err := p.ParseWebhook(tampered, hex.EncodeToString(Sign(testSecret, original)))

	assert.ErrorIs(t, err, domain.ErrWebhookSignatureInvalid)
}
