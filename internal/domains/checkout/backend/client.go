package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	cartmodel "storefront-backend/internal/domains/cart/model"

	"github.com/shopspring/decimal"
)

// Client is the port to the authoritative commerce backend. Pricing,
// order creation and payment processing all happen there; this service
// only forwards the shopper's session cookie and relays results.
type Client interface {
	// InitiatePayment asks the backend for a gateway payment session.
	// Cart lines are advisory; the backend reprices from its catalog.
	InitiatePayment(ctx context.Context, sessionToken string, lines []cartmodel.CartLine) (*InitiateResult, error)

	// CheckStatus queries the payment state for a transaction reference.
	CheckStatus(ctx context.Context, sessionToken, transactionRef string, amount decimal.Decimal) (*StatusResult, error)

	// ConfirmPayment asks the backend to create the order for a
	// completed payment. Idempotent on the backend side.
	ConfirmPayment(ctx context.Context, sessionToken, transactionRef string) (*ConfirmResult, error)
}

// InitiateResult carries the gateway redirect URL and the transaction
// reference the backend minted for it.
type InitiateResult struct {
	PaymentURL     string `json:"url"`
	TransactionRef string `json:"transaction_ref"`
}

type StatusResult struct {
	Status string `json:"status"`
	RefID  string `json:"ref_id"`
}

// ConfirmResult holds whatever order document the backend returns.
type ConfirmResult struct {
	Order json.RawMessage `json:"order"`
}

const (
	sessionCookieName = "user_token"

	initiatePath = "/api/v1/payment-service/initiate-payment"
	statusPath   = "/api/v1/payment-service/check-status"
	confirmPath  = "/api/v1/payment-service/process-successful-payment"
)

// HTTPClient talks to the backend over HTTP.
type HTTPClient struct {
	baseURL     string
	productCode string
	httpClient  *http.Client
}

func NewHTTPClient(baseURL, productCode string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL:     baseURL,
		productCode: productCode,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type initiateRequest struct {
	CartItems []initiateItem `json:"cartItems"`
}

type initiateItem struct {
	ProductID string          `json:"product_id"`
	SellerID  string          `json:"seller_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

func (c *HTTPClient) InitiatePayment(ctx context.Context, sessionToken string, lines []cartmodel.CartLine) (*InitiateResult, error) {
	req := initiateRequest{CartItems: make([]initiateItem, len(lines))}
	for i, l := range lines {
		req.CartItems[i] = initiateItem{
			ProductID: l.ProductID,
			SellerID:  l.SellerID,
			Quantity:  l.Quantity,
			UnitPrice: l.EffectiveUnitPrice(),
		}
	}

	var result struct {
		Success        bool   `json:"success"`
		URL            string `json:"url"`
		TransactionRef string `json:"transaction_ref"`
		Message        string `json:"message"`
	}
	if err := c.do(ctx, http.MethodPost, initiatePath, sessionToken, req, &result); err != nil {
		return nil, err
	}
	if !result.Success || result.URL == "" {
		return nil, fmt.Errorf("backend rejected payment initiation: %s", result.Message)
	}

	return &InitiateResult{
		PaymentURL:     result.URL,
		TransactionRef: result.TransactionRef,
	}, nil
}

func (c *HTTPClient) CheckStatus(ctx context.Context, sessionToken, transactionRef string, amount decimal.Decimal) (*StatusResult, error) {
	q := url.Values{}
	q.Set("transaction_uuid", transactionRef)
	q.Set("product_code", c.productCode)
	q.Set("total_amount", amount.String())

	var env envelope
	if err := c.do(ctx, http.MethodGet, statusPath+"?"+q.Encode(), sessionToken, nil, &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, fmt.Errorf("backend status check failed: %s", env.Message)
	}

	var result StatusResult
	if err := json.Unmarshal(env.Data, &result); err != nil {
		return nil, fmt.Errorf("decode status response: %w", err)
	}
	return &result, nil
}

func (c *HTTPClient) ConfirmPayment(ctx context.Context, sessionToken, transactionRef string) (*ConfirmResult, error) {
	req := map[string]string{"transaction_uuid": transactionRef}

	var result struct {
		Success bool            `json:"success"`
		Message string          `json:"message"`
		Order   json.RawMessage `json:"order"`
	}
	if err := c.do(ctx, http.MethodPost, confirmPath, sessionToken, req, &result); err != nil {
		return nil, err
	}
	if !result.Success {
		return nil, fmt.Errorf("backend refused order creation: %s", result.Message)
	}

	return &ConfirmResult{Order: result.Order}, nil
}

// do performs one request against the backend, forwarding the session
// cookie, and decodes the JSON response into out.
func (c *HTTPClient) do(ctx context.Context, method, path, sessionToken string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build backend request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sessionToken != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: sessionToken})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("backend request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read backend response: %w", err)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("backend returned %d: %s", resp.StatusCode, string(data))
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode backend response (%d): %w", resp.StatusCode, err)
	}
	return nil
}
