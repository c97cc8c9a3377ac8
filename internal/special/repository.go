package special

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
	List(ctx context.Context, activeOnly bool) ([]*Special, error)
	// FindByID returns (nil, nil) when no special exists.
	FindByID(ctx context.Context, id string) (*Special, error)
	Insert(ctx context.Context, s *Special) error
	// Replace overwrites the mutable fields of an existing special.
	Replace(ctx context.Context, s *Special) error
	SetActive(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	col *mongo.Collection
}

func NewRepository(db *mongo.Database) Repository {
	return &repository{col: db.Collection("specials")}
}

func (r *repository) List(ctx context.Context, activeOnly bool) ([]*Special, error) {
	filter := bson.M{}
	if activeOnly {
		filter["is_active"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to list specials", zap.Error(err))
		return nil, err
	}
	defer cur.Close(ctx)

	specials := []*Special{}
	if err := cur.All(ctx, &specials); err != nil {
		return nil, err
	}
	return specials, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*Special, error) {
	var s Special
	err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to find special",
			zap.String("special_id", id),
			zap.Error(err),
		)
		return nil, err
	}
	return &s, nil
}

func (r *repository) Insert(ctx context.Context, s *Special) error {
	_, err := r.col.InsertOne(ctx, s)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to insert special",
			zap.String("name", s.Name),
			zap.Error(err),
		)
	}
	return err
}

func (r *repository) Replace(ctx context.Context, s *Special) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"id": s.ID},
		bson.M{"$set": bson.M{
			"name":             s.Name,
			"description":      s.Description,
			"original_price":   s.OriginalPrice,
			"special_price":    s.SpecialPrice,
			"discount_percent": s.DiscountPercent,
			"image":            s.Image,
			"is_active":        s.IsActive,
			"badge":            s.Badge,
			"updated_at":       s.UpdatedAt,
		}},
	)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to update special",
			zap.String("special_id", s.ID),
			zap.Error(err),
		)
		return err
	}
	if res.MatchedCount == 0 {
		return ErrSpecialNotFound
	}
	return nil
}

func (r *repository) SetActive(ctx context.Context, id string, active bool) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{
			"is_active":  active,
			"updated_at": time.Now().UTC(),
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrSpecialNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to delete special",
			zap.String("special_id", id),
			zap.Error(err),
		)
		return err
	}
	if res.DeletedCount == 0 {
		return ErrSpecialNotFound
	}
	return nil
}
