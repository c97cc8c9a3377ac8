package payment

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Aswin-004/restaurant-ordering-platform/internal/logger"

	"go.uber.org/zap"
)

const razorpayBaseURL = "https://api.razorpay.com"

type razorpayGateway struct {
	keyID      string
	keySecret  string
	baseURL    string
	httpClient *http.Client
}

func NewRazorpayGateway(keyID, keySecret string) Gateway {
	if keyID == "" || keySecret == "" {
		logger.L().Warn("Razorpay credentials not configured, payment endpoints will be unavailable")
	}

	return &razorpayGateway{
		keyID:     keyID,
		keySecret: keySecret,
		baseURL:   razorpayBaseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (g *razorpayGateway) Configured() bool {
	return g.keyID != "" && g.keySecret != ""
}

func (g *razorpayGateway) KeyID() string {
	return g.keyID
}

func (g *razorpayGateway) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (string, error) {
	if !g.Configured() {
		return "", ErrGatewayUnavailable
	}

	log := logger.FromCtx(ctx).With(
		zap.String("receipt", receipt),
		zap.Int64("amount", amount),
		zap.String("currency", currency),
	)

	body := map[string]interface{}{
		"amount":          amount,
		"currency":        currency,
		"receipt":         receipt,
		"payment_capture": 1,
	}
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return "", &GatewayError{Op: "create order", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/orders", bytes.NewBuffer(jsonBody))
	if err != nil {
		log.Error("failed building gateway request", zap.Error(err))
		return "", &GatewayError{Op: "create order", Err: err}
	}
	req.SetBasicAuth(g.keyID, g.keySecret)
	req.Header.Set("Content-Type", "application/json")

	log.Info("creating gateway order")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Error("gateway request failed", zap.Error(err))
		return "", &GatewayError{Op: "create order", Err: err}
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &GatewayError{Op: "create order", Err: err}
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Error("gateway returned non-success status",
			zap.Int("status", resp.StatusCode),
		)
		return "", &GatewayError{
			Op:  "create order",
			Err: fmt.Errorf("status %d: %s", resp.StatusCode, string(bodyBytes)),
		}
	}

	var res struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(bodyBytes, &res); err != nil {
		log.Error("failed decoding gateway response", zap.Error(err))
		return "", &GatewayError{Op: "create order", Err: err}
	}
	if res.ID == "" {
		return "", &GatewayError{Op: "create order", Err: fmt.Errorf("response missing order id")}
	}

	log.Info("gateway order created", zap.String("gateway_order_id", res.ID))
	return res.ID, nil
}

func (g *razorpayGateway) VerifySignature(gatewayOrderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(g.keySecret))
	mac.Write([]byte(gatewayOrderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return expected == signature
}
