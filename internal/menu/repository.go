package menu

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
	List(ctx context.Context, category string, availableOnly bool) ([]*MenuItem, error)
	Categories(ctx context.Context) ([]string, error)
	// FindByID returns (nil, nil) when no item exists.
	FindByID(ctx context.Context, id string) (*MenuItem, error)
	Insert(ctx context.Context, item *MenuItem) error
	Update(ctx context.Context, id string, update UpdateRequest) error
	Delete(ctx context.Context, id string) error
	CountItems(ctx context.Context, available *bool) (int64, error)
}

type repository struct {
	col *mongo.Collection
}

func NewRepository(db *mongo.Database) Repository {
	return &repository{col: db.Collection("menu")}
}

func (r *repository) List(ctx context.Context, category string, availableOnly bool) ([]*MenuItem, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	if availableOnly {
		filter["available"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "category", Value: 1}})

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to list menu items", zap.Error(err))
		return nil, err
	}
	defer cur.Close(ctx)

	items := []*MenuItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) Categories(ctx context.Context) ([]string, error) {
	raw, err := r.col.Distinct(ctx, "category", bson.M{})
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to list categories", zap.Error(err))
		return nil, err
	}

	categories := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			categories = append(categories, s)
		}
	}
	return categories, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*MenuItem, error) {
	var item MenuItem
	err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to find menu item",
			zap.String("item_id", id),
			zap.Error(err),
		)
		return nil, err
	}
	return &item, nil
}

func (r *repository) Insert(ctx context.Context, item *MenuItem) error {
	_, err := r.col.InsertOne(ctx, item)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to insert menu item",
			zap.String("name", item.Name),
			zap.Error(err),
		)
	}
	return err
}

func (r *repository) Update(ctx context.Context, id string, update UpdateRequest) error {
	set := bson.M{"updated_at": time.Now().UTC()}
	if update.Category != nil {
		set["category"] = *update.Category
	}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Price != nil {
		set["price"] = *update.Price
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Image != nil {
		set["image"] = *update.Image
	}
	if update.Available != nil {
		set["available"] = *update.Available
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to update menu item",
			zap.String("item_id", id),
			zap.Error(err),
		)
		return err
	}
	if res.MatchedCount == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to delete menu item",
			zap.String("item_id", id),
			zap.Error(err),
		)
		return err
	}
	if res.DeletedCount == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *repository) CountItems(ctx context.Context, available *bool) (int64, error) {
	filter := bson.M{}
	if available != nil {
		filter["available"] = *available
	}
	return r.col.CountDocuments(ctx, filter)
}
