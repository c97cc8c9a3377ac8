package order

import (
	"context"
	"errors"
	"time"

	"github.com/Aswin-004/restaurant-ordering-platform/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type Repository interface {
	Insert(ctx context.Context, o *Order) error
	// FindByID returns (nil, nil) when no order exists.
	FindByID(ctx context.Context, id string) (*Order, error)
	FindByNumber(ctx context.Context, orderNumber string) (*Order, error)
	List(ctx context.Context, status Status, limit, skip int64) ([]*Order, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	Delete(ctx context.Context, id string) error

	// AttachGatewayOrder links an already-persisted order to the remote
	// payment-gateway order created for it.
	AttachGatewayOrder(ctx context.Context, id, gatewayOrderID string) error
	MarkPaid(ctx context.Context, orderNumber, gatewayPaymentID string) error
	MarkPaymentFailed(ctx context.Context, orderNumber string) error

	CountOrders(ctx context.Context, status Status) (int64, error)
	CompletedRevenue(ctx context.Context) (float64, error)
}

type repository struct {
	col *mongo.Collection
}

func NewRepository(db *mongo.Database) Repository {
	return &repository{col: db.Collection("orders")}
}

func (r *repository) Insert(ctx context.Context, o *Order) error {
	_, err := r.col.InsertOne(ctx, o)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to insert order",
			zap.String("order_number", o.OrderNumber),
			zap.Error(err),
		)
	}
	return err
}

func (r *repository) findOne(ctx context.Context, filter bson.M) (*Order, error) {
	var o Order
	err := r.col.FindOne(ctx, filter).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to find order", zap.Error(err))
		return nil, err
	}
	return &o, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*Order, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *repository) FindByNumber(ctx context.Context, orderNumber string) (*Order, error) {
	return r.findOne(ctx, bson.M{"order_number": orderNumber})
}

func (r *repository) List(ctx context.Context, status Status, limit, skip int64) ([]*Order, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit).
		SetSkip(skip)

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to list orders", zap.Error(err))
		return nil, err
	}
	defer cur.Close(ctx)

	orders := []*Order{}
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id string, status Status) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{
			"status":     status,
			"updated_at": time.Now().UTC(),
		}},
	)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to update order status",
			zap.String("order_id", id),
			zap.Error(err),
		)
		return err
	}
	if res.MatchedCount == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to delete order",
			zap.String("order_id", id),
			zap.Error(err),
		)
		return err
	}
	if res.DeletedCount == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *repository) AttachGatewayOrder(ctx context.Context, id, gatewayOrderID string) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{
			"razorpay_order_id": gatewayOrderID,
			"updated_at":        time.Now().UTC(),
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *repository) MarkPaid(ctx context.Context, orderNumber, gatewayPaymentID string) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"order_number": orderNumber},
		bson.M{"$set": bson.M{
			"payment_status":      PaymentPaid,
			"razorpay_payment_id": gatewayPaymentID,
			"status":              StatusPending,
			"updated_at":          time.Now().UTC(),
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *repository) MarkPaymentFailed(ctx context.Context, orderNumber string) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"order_number": orderNumber},
		bson.M{"$set": bson.M{
			"payment_status": PaymentFailed,
			"updated_at":     time.Now().UTC(),
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *repository) CountOrders(ctx context.Context, status Status) (int64, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	return r.col.CountDocuments(ctx, filter)
}

func (r *repository) CompletedRevenue(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": StatusCompleted}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$total"},
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		logger.FromCtx(ctx).Error("db: revenue aggregation failed", zap.Error(err))
		return 0, err
	}
	defer cur.Close(ctx)

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cur.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}
