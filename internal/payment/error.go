package payment

import (
	"errors"
	"fmt"
)

var (
	// ErrGatewayUnavailable means the payment gateway has no credentials
	// configured at all.
	ErrGatewayUnavailable = errors.New("payment gateway not configured")

	ErrInvalidSignature = errors.New("invalid payment signature")
)

// GatewayError wraps any remote gateway failure.
type GatewayError struct {
	Op  string
	Err error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway %s failed: %v", e.Op, e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}
