package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(baseURL string) *GatewayClient {
	return &GatewayClient{
		baseURL:    baseURL,
		apiKey:     "test-key",
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func TestCreateSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/v1/checkout/sessions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var request createSessionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		assert.Equal(t, 1500000.0, request.Amount)
		assert.Equal(t, "VND", request.Currency)
		assert.Equal(t, "3", request.Metadata["roomId"])

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CheckoutSession{
			ID:            "cs_test_123",
			URL:           "https://pay.example.com/cs_test_123",
			PaymentStatus: SessionStatusUnpaid,
			AmountTotal:   request.Amount,
			Metadata:      request.Metadata,
		})
	}))
	defer server.Close()

	gateway := newTestGateway(server.URL)
	session, err := gateway.CreateSession(1500000, "VND", map[string]string{"roomId": "3"})
	require.NoError(t, err)
	assert.Equal(t, "cs_test_123", session.ID)
	assert.Equal(t, "https://pay.example.com/cs_test_123", session.URL)
	assert.Equal(t, SessionStatusUnpaid, session.PaymentStatus)
}

func TestRetrieveSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/v1/checkout/sessions/cs_test_123", r.URL.Path)

		json.NewEncoder(w).Encode(CheckoutSession{
			ID:            "cs_test_123",
			PaymentStatus: SessionStatusPaid,
			AmountTotal:   1500000,
			Metadata:      map[string]string{"roomId": "3"},
		})
	}))
	defer server.Close()

	gateway := newTestGateway(server.URL)
	session, err := gateway.RetrieveSession("cs_test_123")
	require.NoError(t, err)
	assert.Equal(t, SessionStatusPaid, session.PaymentStatus)
	assert.Equal(t, 1500000.0, session.AmountTotal)
}

func TestGatewayErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	gateway := newTestGateway(server.URL)

	_, err := gateway.CreateSession(1000, "VND", nil)
	assert.Error(t, err)

	_, err = gateway.RetrieveSession("cs_test_123")
	assert.Error(t, err)

	// chưa cấu hình thì báo lỗi ngay, không gọi ra ngoài
	unconfigured := &GatewayClient{httpClient: &http.Client{}}
	_, err = unconfigured.CreateSession(1000, "VND", nil)
	assert.Error(t, err)
}
