package gateway

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/stpnv0/PitchBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// SignatureHeader carries the hex HMAC-SHA512 of the raw webhook body.
const SignatureHeader = "x-paystack-signature"

type PaystackConfig struct {
	BaseURL   string
	SecretKey string
	Timeout   time.Duration
}

type Paystack struct {
	baseURL   string
	secretKey string
	client    *http.Client
	logger    logger.Logger
}

func NewPaystack(cfg PaystackConfig, log logger.Logger) *Paystack {
	return &Paystack{
		baseURL:   cfg.BaseURL,
		secretKey: cfg.SecretKey,
		client:    &http.Client{Timeout: cfg.Timeout},
		logger:    log,
	}
}

type envelope[T any] struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func (e *envelope[T]) rejection() string {
	if e.Status {
		return ""
	}
	if e.Message == "" {
		return "request rejected"
	}
	return e.Message
}

type initializeRequest struct {
	Email       string            `json:"email"`
	Amount      int64             `json:"amount"`
	Currency    string            `json:"currency,omitempty"`
	Reference   string            `json:"reference"`
	CallbackURL string            `json:"callback_url,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

type initializeData struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

type transactionData struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Channel   string `json:"channel"`
}

type webhookBody struct {
	Event string          `json:"event"`
	Data  transactionData `json:"data"`
}

func (p *Paystack) InitializeCharge(ctx context.Context, req domain.ChargeRequest) (*domain.Charge, error) {
	body := initializeRequest{
		Email:       req.Email,
		Amount:      req.Amount,
		Currency:    req.Currency,
		Reference:   req.Reference,
		CallbackURL: req.RedirectURL,
		Metadata:    map[string]string{"booking_id": req.BookingID},
	}

	var out envelope[initializeData]
	if err := p.do(ctx, http.MethodPost, "/transaction/initialize", body, &out); err != nil {
		return nil, err
	}
	if out.Data.AuthorizationURL == "" {
		return nil, fmt.Errorf("%w: empty authorization url", domain.ErrGateway)
	}

	ref := out.Data.Reference
	if ref == "" {
		ref = req.Reference
	}

	return &domain.Charge{Reference: ref, PaymentLink: out.Data.AuthorizationURL}, nil
}

func (p *Paystack) Verify(ctx context.Context, reference string) (*domain.PaymentVerification, error) {
	var out envelope[transactionData]
	if err := p.do(ctx, http.MethodGet, "/transaction/verify/"+url.PathEscape(reference), nil, &out); err != nil {
		return nil, err
	}

	return &domain.PaymentVerification{
		Reference: out.Data.Reference,
		Status:    paymentStatus(out.Data.Status),
		Amount:    out.Data.Amount,
		Currency:  out.Data.Currency,
		Method:    out.Data.Channel,
	}, nil
}

// ParseWebhook checks the signature before looking at the payload at all.
func (p *Paystack) ParseWebhook(payload []byte, signature string) (*domain.PaymentEvent, error) {
	if !p.validSignature(payload, signature) {
		return nil, domain.ErrWebhookSignatureInvalid
	}

	var body webhookBody
	if err := json.Unmarshal(payload, &body); err != nil {
		return nil, fmt.Errorf("decode webhook: %w", err)
	}

	return &domain.PaymentEvent{
		Event:     body.Event,
		Reference: body.Data.Reference,
		Status:    paymentStatus(body.Data.Status),
		Amount:    body.Data.Amount,
		Currency:  body.Data.Currency,
	}, nil
}

func (p *Paystack) validSignature(payload []byte, signature string) bool {
	got, err := hex.DecodeString(signature)
	if err != nil || len(got) == 0 {
		return false
	}
	return hmac.Equal(got, Sign(p.secretKey, payload))
}

// Sign returns the raw HMAC-SHA512 of payload under secret.
func Sign(secret string, payload []byte) []byte {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(payload)
	return mac.Sum(nil)
}

func (p *Paystack) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, p.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.secretKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", domain.ErrGateway, method, path, err)
	}
	defer resp.Body.Close()

	p.logger.Debug("paystack call",
		logger.String("method", method),
		logger.String("path", path),
		logger.Int("status", resp.StatusCode),
		logger.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode >= http.StatusMultipleChoices {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: %s %s: %s: %s", domain.ErrGateway, method, path, resp.Status, bytes.TrimSpace(msg))
	}

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", domain.ErrGateway, err)
	}

	if r, ok := out.(interface{ rejection() string }); ok {
		if msg := r.rejection(); msg != "" {
			return fmt.Errorf("%w: %s %s: %s", domain.ErrGateway, method, path, msg)
		}
	}

	return nil
}

func paymentStatus(s string) domain.PaymentStatus {
	switch s {
	case "success":
		return domain.PaymentSuccess
	case "abandoned":
		return domain.PaymentAbandoned
	case "failed", "reversed":
		return domain.PaymentFailed
	default:
		return domain.PaymentPending
	}
}
