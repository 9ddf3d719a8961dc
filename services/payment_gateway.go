package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"homestay/errors"
)

// Trạng thái phiên checkout từ cổng thanh toán
const (
	SessionStatusPaid   = "paid"
	SessionStatusUnpaid = "unpaid"
)

// CheckoutSession phiên checkout tại cổng thanh toán
type CheckoutSession struct {
	ID            string            `json:"id"`
	URL           string            `json:"url"`
	PaymentStatus string            `json:"paymentStatus"`
	AmountTotal   float64           `json:"amountTotal"`
	Metadata      map[string]string `json:"metadata"`
}

type createSessionRequest struct {
	Amount     float64           `json:"amount"`
	Currency   string            `json:"currency"`
	SuccessURL string            `json:"successUrl"`
	CancelURL  string            `json:"cancelUrl"`
	Metadata   map[string]string `json:"metadata"`
}

// GatewayClient client gọi cổng thanh toán hosted checkout
type GatewayClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewGatewayClientFromEnv tạo client từ biến môi trường
func NewGatewayClientFromEnv() *GatewayClient {
	return &GatewayClient{
		baseURL: os.Getenv("CHECKOUT_API_URL"),
		apiKey:  os.Getenv("CHECKOUT_API_KEY"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// CreateSession tạo phiên checkout mới, trả về id và url thanh toán
func (g *GatewayClient) CreateSession(amount float64, currency string, metadata map[string]string) (*CheckoutSession, error) {
	if g.baseURL == "" || g.apiKey == "" {
		return nil, errors.NewAppError(errors.ErrCodeUpstream, "Chưa cấu hình cổng thanh toán", nil)
	}

	body := createSessionRequest{
		Amount:     amount,
		Currency:   currency,
		SuccessURL: os.Getenv("CHECKOUT_SUCCESS_URL"),
		CancelURL:  os.Getenv("CHECKOUT_CANCEL_URL"),
		Metadata:   metadata,
	}
	requestBody, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest("POST", g.baseURL+"/v1/checkout/sessions", bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeUpstream, "Không kết nối được cổng thanh toán", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, errors.NewAppError(errors.ErrCodeUpstream,
			fmt.Sprintf("Cổng thanh toán trả về status %d", resp.StatusCode), nil)
	}

	var session CheckoutSession
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeUpstream, "Không đọc được phản hồi cổng thanh toán", err)
	}
	return &session, nil
}

// RetrieveSession lấy trạng thái phiên checkout theo id
func (g *GatewayClient) RetrieveSession(sessionID string) (*CheckoutSession, error) {
	if g.baseURL == "" || g.apiKey == "" {
		return nil, errors.NewAppError(errors.ErrCodeUpstream, "Chưa cấu hình cổng thanh toán", nil)
	}

	req, err := http.NewRequest("GET", g.baseURL+"/v1/checkout/sessions/"+url.PathEscape(sessionID), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeUpstream, "Không kết nối được cổng thanh toán", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewAppError(errors.ErrCodeUpstream,
			fmt.Sprintf("Cổng thanh toán trả về status %d", resp.StatusCode), nil)
	}

	var session CheckoutSession
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeUpstream, "Không đọc được phản hồi cổng thanh toán", err)
	}
	return &session, nil
}
