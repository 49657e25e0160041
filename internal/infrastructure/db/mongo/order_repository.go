package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/QaissAA/web-assignment3/internal/core/domain"
)

const ordersCollection = "orders"

// OrderRepository implements ports.OrderRepository using MongoDB.
type OrderRepository struct {
	coll *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{coll: db.Collection(ordersCollection)}
}

type mongoOrder struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty"`
	UserID     primitive.ObjectID   `bson:"user_id"`
	ProductIDs []primitive.ObjectID `bson:"product_ids"`
	Status     string               `bson:"order_status"`
	Timestamp  time.Time            `bson:"timestamp"`
}

func (r *OrderRepository) Insert(ctx context.Context, o *domain.Order) (string, error) {
	userID, err := primitive.ObjectIDFromHex(o.UserID)
	if err != nil {
		return "", fmt.Errorf("%w: user %q", domain.ErrInvalidID, o.UserID)
	}

	productIDs := make([]primitive.ObjectID, len(o.ProductIDs))
	for i, pid := range o.ProductIDs {
		oid, err := primitive.ObjectIDFromHex(pid)
		if err != nil {
			return "", fmt.Errorf("%w: product %q", domain.ErrInvalidID, pid)
		}
		productIDs[i] = oid
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoOrder{
		UserID:     userID,
		ProductIDs: productIDs,
		Status:     o.Status,
		Timestamp:  o.Timestamp.UTC(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert order: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert order: unexpected id type %T", res.InsertedID)
	}
	return id.Hex(), nil
}

func (r *OrderRepository) FindByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: user %q", domain.ErrInvalidID, userID)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"user_id": oid})
	if err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoOrder
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}

	orders := make([]domain.Order, len(docs))
	for i, d := range docs {
		productIDs := make([]string, len(d.ProductIDs))
		for j, pid := range d.ProductIDs {
			productIDs[j] = pid.Hex()
		}
		orders[i] = domain.Order{
			ID:         d.ID.Hex(),
			UserID:     d.UserID.Hex(),
			ProductIDs: productIDs,
			Status:     d.Status,
			Timestamp:  d.Timestamp.UTC(),
		}
	}
	return orders, nil
}

// UpdateStatus sets the order_status field only, leaving the rest of the
// document untouched. Returns the matched count; 0 means the id is unknown.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id, status string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidID, id)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"order_status": status}})
	if err != nil {
		return 0, fmt.Errorf("update order: %w", err)
	}
	return res.MatchedCount, nil
}

// EnsureIndexes creates the owner index used when listing a user's orders.
func (r *OrderRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	})
	return err
}
