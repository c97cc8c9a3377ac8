package payment

import (
	"context"
	"errors"
	"testing"

	"github.com/Aswin-004/restaurant-ordering-platform/internal/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- Mocks ---

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Insert(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id string) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByNumber(ctx context.Context, orderNumber string) (*order.Order, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context, status order.Status, limit, skip int64) ([]*order.Order, error) {
	args := m.Called(ctx, status, limit, skip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id string, status order.Status) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) AttachGatewayOrder(ctx context.Context, id, gatewayOrderID string) error {
	args := m.Called(ctx, id, gatewayOrderID)
	return args.Error(0)
}

func (m *MockOrderRepository) MarkPaid(ctx context.Context, orderNumber, gatewayPaymentID string) error {
	args := m.Called(ctx, orderNumber, gatewayPaymentID)
	return args.Error(0)
}

func (m *MockOrderRepository) MarkPaymentFailed(ctx context.Context, orderNumber string) error {
	args := m.Called(ctx, orderNumber)
	return args.Error(0)
}

func (m *MockOrderRepository) CountOrders(ctx context.Context, status order.Status) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) CompletedRevenue(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) Configured() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockGateway) KeyID() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockGateway) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (string, error) {
	args := m.Called(ctx, amount, currency, receipt)
	return args.String(0), args.Error(1)
}

func (m *MockGateway) VerifySignature(gatewayOrderID, paymentID, signature string) bool {
	args := m.Called(gatewayOrderID, paymentID, signature)
	return args.Bool(0)
}

func checkoutRequest() order.CreateRequest {
	return order.CreateRequest{
		CustomerName: "Asha Kumar",
		Phone:        "9876543210",
		Address:      "12 College Road, Potheri",
		OrderType:    "delivery",
		DeliveryArea: "SRM Phase 2",
		CartItems: []order.CartItemInput{
			{ItemName: "Paneer Tikka", Quantity: 2, Price: 120},
		},
	}
}

// --- Tests ---

func TestService_Checkout(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		mockGw := new(MockGateway)
		svc := NewService(mockRepo, mockGw)

		var persisted *order.Order
		mockGw.On("Configured").Return(true)
		mockGw.On("KeyID").Return("rzp_test_key")
		mockRepo.On("Insert", ctx, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) {
				persisted = args.Get(1).(*order.Order)
			}).
			Return(nil)
		mockGw.On("CreateOrder", ctx, int64(26000), "INR", mock.AnythingOfType("string")).
			Return("order_gw_1", nil)
		mockRepo.On("AttachGatewayOrder", ctx, mock.AnythingOfType("string"), "order_gw_1").Return(nil)

		resp, err := svc.Checkout(ctx, checkoutRequest())

		assert.NoError(t, err)
		assert.Equal(t, "order_gw_1", resp.GatewayOrderID)
		assert.Equal(t, 260.0, resp.Amount)
		assert.Equal(t, "INR", resp.Currency)
		assert.Equal(t, "rzp_test_key", resp.KeyID)
		assert.Equal(t, persisted.OrderNumber, resp.OrderNumber)

		// order was persisted pending before the gateway call
		assert.Equal(t, order.PaymentPending, persisted.PaymentStatus)
		assert.Equal(t, "razorpay", persisted.PaymentMethod)
		assert.Equal(t, persisted.Total, persisted.Subtotal+persisted.DeliveryCharge)
		mockRepo.AssertExpectations(t)
		mockGw.AssertExpectations(t)
	})

	t.Run("Unconfigured", func(t *testing.T) {
		mockGw := new(MockGateway)
		svc := NewService(new(MockOrderRepository), mockGw)
		mockGw.On("Configured").Return(false)

		_, err := svc.Checkout(ctx, checkoutRequest())
		assert.ErrorIs(t, err, ErrGatewayUnavailable)
	})

	t.Run("ValidationFailure", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		mockGw := new(MockGateway)
		svc := NewService(mockRepo, mockGw)
		mockGw.On("Configured").Return(true)

		req := checkoutRequest()
		req.DeliveryArea = "Unknown Town"

		_, err := svc.Checkout(ctx, req)
		var verr *order.ValidationError
		assert.ErrorAs(t, err, &verr)
		mockRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("GatewayFailureMarksPaymentFailed", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		mockGw := new(MockGateway)
		svc := NewService(mockRepo, mockGw)

		mockGw.On("Configured").Return(true)
		mockRepo.On("Insert", ctx, mock.Anything).Return(nil)
		mockGw.On("CreateOrder", ctx, mock.Anything, "INR", mock.Anything).
			Return("", &GatewayError{Op: "create order", Err: errors.New("remote down")})
		mockRepo.On("MarkPaymentFailed", ctx, mock.AnythingOfType("string")).Return(nil)

		_, err := svc.Checkout(ctx, checkoutRequest())

		var gerr *GatewayError
		assert.ErrorAs(t, err, &gerr)
		mockRepo.AssertCalled(t, "MarkPaymentFailed", ctx, mock.AnythingOfType("string"))
	})
}

func TestService_Verify(t *testing.T) {
	ctx := context.Background()
	req := VerifyRequest{
		GatewayOrderID: "order_gw_1",
		PaymentID:      "pay_1",
		Signature:      "sig",
		OrderNumber:    "ORD-20260828-ABC123",
	}

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		mockGw := new(MockGateway)
		svc := NewService(mockRepo, mockGw)

		mockGw.On("Configured").Return(true)
		mockGw.On("VerifySignature", "order_gw_1", "pay_1", "sig").Return(true)
		mockRepo.On("MarkPaid", ctx, "ORD-20260828-ABC123", "pay_1").Return(nil)

		assert.NoError(t, svc.Verify(ctx, req))
		mockRepo.AssertExpectations(t)
	})

	t.Run("MismatchMarksFailed", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		mockGw := new(MockGateway)
		svc := NewService(mockRepo, mockGw)

		mockGw.On("Configured").Return(true)
		mockGw.On("VerifySignature", "order_gw_1", "pay_1", "sig").Return(false)
		mockRepo.On("MarkPaymentFailed", ctx, "ORD-20260828-ABC123").Return(nil)

		err := svc.Verify(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidSignature)
		// payment_status must not stay pending after a verification attempt
		mockRepo.AssertCalled(t, "MarkPaymentFailed", ctx, "ORD-20260828-ABC123")
	})

	t.Run("UnknownOrder", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		mockGw := new(MockGateway)
		svc := NewService(mockRepo, mockGw)

		mockGw.On("Configured").Return(true)
		mockGw.On("VerifySignature", "order_gw_1", "pay_1", "sig").Return(true)
		mockRepo.On("MarkPaid", ctx, "ORD-20260828-ABC123", "pay_1").Return(order.ErrOrderNotFound)

		err := svc.Verify(ctx, req)
		assert.ErrorIs(t, err, order.ErrOrderNotFound)
	})

	t.Run("Unconfigured", func(t *testing.T) {
		mockGw := new(MockGateway)
		svc := NewService(new(MockOrderRepository), mockGw)
		mockGw.On("Configured").Return(false)

		err := svc.Verify(ctx, req)
		assert.ErrorIs(t, err, ErrGatewayUnavailable)
	})
}
