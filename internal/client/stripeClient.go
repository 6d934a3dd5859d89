package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"food-delivery-payments/internal/config"
)

type StripeClient interface {
	CreatePaymentIntent(ctx context.Context, req *CreateIntentRequest) (*PaymentIntent, error)
	RetrievePaymentIntent(ctx context.Context, intentID string) (*PaymentIntent, error)
}

type CreateIntentRequest struct {
	Amount      int64 // minor currency units
	Currency    string
	Description string
	Metadata    map[string]string
}

type Card struct {
	Brand string `json:"brand"`
	Last4 string `json:"last4"`
}

type PaymentMethodDetails struct {
	Card *Card `json:"card"`
}

type Charge struct {
	ID                   string               `json:"id"`
	Status               string               `json:"status"`
	PaymentMethodDetails PaymentMethodDetails `json:"payment_method_details"`
}

type Charges struct {
	Data []Charge `json:"data"`
}

type PaymentIntent struct {
	ID           string  `json:"id"`
	ClientSecret string  `json:"client_secret"`
	Status       string  `json:"status"`
	Amount       int64   `json:"amount"`
	Currency     string  `json:"currency"`
	Charges      Charges `json:"charges"`
}

type stripeClientImpl struct {
	httpClient      *http.Client
	baseApiURL      string
	stripeSecretKey string
}

func NewStripeClient(stripeCfg *config.Stripe) StripeClient {
	return &stripeClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseApiURL:      stripeCfg.BaseApiURL,
		stripeSecretKey: stripeCfg.SecretKey,
	}
}

func (c *stripeClientImpl) CreatePaymentIntent(ctx context.Context, req *CreateIntentRequest) (*PaymentIntent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(req.Amount, 10))
	form.Set("currency", req.Currency)
	if req.Description != "" {
		form.Set("description", req.Description)
	}
	for key, value := range req.Metadata {
		form.Set(fmt.Sprintf("metadata[%s]", key), value)
	}

	return c.doIntentRequest(ctx, http.MethodPost, "/v1/payment_intents", form)
}

func (c *stripeClientImpl) RetrievePaymentIntent(ctx context.Context, intentID string) (*PaymentIntent, error) {
	if intentID == "" {
		return nil, fmt.Errorf("missing payment intent id")
	}

	path := "/v1/payment_intents/" + url.PathEscape(intentID)
	return c.doIntentRequest(ctx, http.MethodGet, path, nil)
}

func (c *stripeClientImpl) doIntentRequest(ctx context.Context, method, path string, form url.Values) (*PaymentIntent, error) {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseApiURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.stripeSecretKey)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("stripe request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("stripe error %d: %s", resp.StatusCode, string(b))
	}

	var intent PaymentIntent
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return nil, fmt.Errorf("decode stripe response: %w", err)
	}

	return &intent, nil
}
