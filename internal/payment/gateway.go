package payment

import "context"

// Gateway abstracts the remote payment provider.
type Gateway interface {
	Configured() bool
	KeyID() string
	// CreateOrder registers a gateway-side order and returns its opaque id.
	// Amount is in the currency's smallest unit (paise).
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (string, error)
	// VerifySignature reports whether the provided signature matches the
	// HMAC-SHA256 of "<gatewayOrderID>|<paymentID>" under the shared secret.
	// A mismatch is a normal outcome, not an error.
	VerifySignature(gatewayOrderID, paymentID, signature string) bool
}
