package yookassa

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jaevor/go-nanoid"
	"github.com/oplata-app/escrow-service/internal/config"
	"github.com/oplata-app/escrow-service/internal/domain"
)

// Client talks to the YooKassa v3 payments API. Without credentials it runs
// in mock mode: payments are fabricated locally so the rest of the system can
// be exercised with no external connectivity.
type Client struct {
	shopID     string
	secretKey  string
	apiURL     string
	currency   string
	httpClient *http.Client
	newSuffix  func() string
}

func NewClient(cfg config.YooKassa, currency string) (*Client, error) {
	suffixGenerator, err := nanoid.Standard(8)
	if err != nil {
		return nil, err
	}
	return &Client{
		shopID:     cfg.ShopID,
		secretKey:  cfg.SecretKey,
		apiURL:     strings.TrimRight(cfg.APIURL, "/"),
		currency:   currency,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		newSuffix:  suffixGenerator,
	}, nil
}

func (c *Client) mockMode() bool {
	return c.shopID == "" || c.secretKey == ""
}

type paymentAmount struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

type paymentConfirmation struct {
	Type            string `json:"type"`
	ReturnURL       string `json:"return_url,omitempty"`
	ConfirmationURL string `json:"confirmation_url,omitempty"`
}

type paymentMetadata struct {
	OrderID string `json:"order_id"`
}

type paymentResponse struct {
	ID           string              `json:"id"`
	Status       string              `json:"status"`
	Amount       paymentAmount       `json:"amount"`
	Confirmation paymentConfirmation `json:"confirmation"`
	Metadata     paymentMetadata     `json:"metadata"`
}

type createPaymentRequest struct {
	Amount       paymentAmount       `json:"amount"`
	Confirmation paymentConfirmation `json:"confirmation"`
	Capture      bool                `json:"capture"`
	Description  string              `json:"description"`
	Metadata     paymentMetadata     `json:"metadata"`
}

func (c *Client) CreatePayment(ctx context.Context, input domain.CreatePaymentInput) (*domain.Payment, error) {
	if c.mockMode() {
		return c.mockCreate(input)
	}

	requestBodyBytes, err := json.Marshal(createPaymentRequest{
		Amount: paymentAmount{
			Value:    fmt.Sprintf("%.2f", input.Amount),
			Currency: c.currency,
		},
		Confirmation: paymentConfirmation{
			Type:      "redirect",
			ReturnURL: input.ReturnURL,
		},
		Capture:     true,
		Description: input.Description,
		Metadata:    paymentMetadata{OrderID: input.OrderID},
	})
	if err != nil {
		return nil, err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/payments", bytes.NewBuffer(requestBodyBytes))
	if err != nil {
		return nil, err
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Idempotence-Key", fmt.Sprintf("%s_%d", input.OrderID, time.Now().UnixMilli()))
	request.Header.Set("Authorization", c.basicAuth())

	return c.do(request)
}

func (c *Client) GetPayment(ctx context.Context, paymentID string) (*domain.Payment, error) {
	if c.mockMode() {
		return c.mockGet(paymentID)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"/payments/"+paymentID, nil)
	if err != nil {
		return nil, err
	}
	request.Header.Set("Authorization", c.basicAuth())

	return c.do(request)
}

func (c *Client) do(request *http.Request) (*domain.Payment, error) {
	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGateway, err)
	}
	defer response.Body.Close()
	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: YooKassa API error: %s", domain.ErrGateway, response.Status)
	}

	var payment paymentResponse
	if err := json.Unmarshal(responseBodyBytes, &payment); err != nil {
		return nil, err
	}
	return toDomainPayment(&payment, responseBodyBytes), nil
}

func (c *Client) basicAuth() string {
	credentials := base64.StdEncoding.EncodeToString([]byte(c.shopID + ":" + c.secretKey))
	return "Basic " + credentials
}

func toDomainPayment(payment *paymentResponse, raw []byte) *domain.Payment {
	amount, _ := strconv.ParseFloat(payment.Amount.Value, 64)
	return &domain.Payment{
		ID:              payment.ID,
		Status:          domain.PaymentStatus(payment.Status),
		Amount:          amount,
		Currency:        payment.Amount.Currency,
		ConfirmationURL: payment.Confirmation.ConfirmationURL,
		OrderID:         payment.Metadata.OrderID,
		RawResponse:     string(raw),
	}
}

// Mock payment ids carry the order id so a later status poll can link the
// payment back to its order.
func (c *Client) mockCreate(input domain.CreatePaymentInput) (*domain.Payment, error) {
	mockID := fmt.Sprintf("mock_%s_%s", input.OrderID, c.newSuffix())
	payment := paymentResponse{
		ID:     mockID,
		Status: string(domain.PaymentPending),
		Amount: paymentAmount{
			Value:    fmt.Sprintf("%.2f", input.Amount),
			Currency: c.currency,
		},
		Confirmation: paymentConfirmation{
			Type:            "redirect",
			ConfirmationURL: fmt.Sprintf("%s?payment_id=%s&status=mock", input.ReturnURL, mockID),
		},
		Metadata: paymentMetadata{OrderID: input.OrderID},
	}
	raw, err := json.Marshal(payment)
	if err != nil {
		return nil, err
	}
	return toDomainPayment(&payment, raw), nil
}

// Every mock status poll reports succeeded, deterministically.
func (c *Client) mockGet(paymentID string) (*domain.Payment, error) {
	payment := paymentResponse{
		ID:       paymentID,
		Status:   string(domain.PaymentSucceeded),
		Amount:   paymentAmount{Value: "0.00", Currency: c.currency},
		Metadata: paymentMetadata{OrderID: mockOrderID(paymentID)},
	}
	raw, err := json.Marshal(payment)
	if err != nil {
		return nil, err
	}
	return toDomainPayment(&payment, raw), nil
}

func mockOrderID(paymentID string) string {
	parts := strings.Split(paymentID, "_")
	if len(parts) < 3 || parts[0] != "mock" {
		return ""
	}
	return strings.Join(parts[1:len(parts)-1], "_")
}
