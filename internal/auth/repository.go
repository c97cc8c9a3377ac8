package auth

import (
	"context"
	"errors"
	"time"

	"github.com/Aswin-004/restaurant-ordering-platform/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Repository interface {
	// FindByUsername returns (nil, nil) when no credential exists.
	FindByUsername(ctx context.Context, username string) (*Credential, error)
	Create(ctx context.Context, cred *Credential) error
	// RotatePassword swaps the hash and updated_at and bumps the token epoch
	// in a single document update.
	RotatePassword(ctx context.Context, username, newHash string) error
}

type repository struct {
	col *mongo.Collection
}

func NewRepository(db *mongo.Database) Repository {
	return &repository{col: db.Collection("admins")}
}

func (r *repository) FindByUsername(ctx context.Context, username string) (*Credential, error) {
	var cred Credential
	err := r.col.FindOne(ctx, bson.M{"username": username}).Decode(&cred)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to find credential",
			zap.String("username", username),
			zap.Error(err),
		)
		return nil, err
	}
	return &cred, nil
}

func (r *repository) Create(ctx context.Context, cred *Credential) error {
	_, err := r.col.InsertOne(ctx, cred)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to insert credential",
			zap.String("username", cred.Username),
			zap.Error(err),
		)
	}
	return err
}

func (r *repository) RotatePassword(ctx context.Context, username, newHash string) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"username": username},
		bson.M{
			"$set": bson.M{
				"password_hash": newHash,
				"updated_at":    time.Now().UTC(),
			},
			"$inc": bson.M{"token_epoch": 1},
		},
	)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to rotate password",
			zap.String("username", username),
			zap.Error(err),
		)
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("credential not found")
	}
	return nil
}
