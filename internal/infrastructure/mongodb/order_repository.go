package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"food-delivery-service/internal/domain/entities"
)

type OrderRepositoryMongo struct {
	collection *mongo.Collection
}

func NewOrderRepository(store *Store) *OrderRepositoryMongo {
	return &OrderRepositoryMongo{
		collection: store.collection(orderCollection),
	}
}

func (r *OrderRepositoryMongo) Create(ctx context.Context, order *entities.Order) (string, error) {
	res, err := r.collection.InsertOne(ctx, toOrderDocument(order))
	if err != nil {
		return "", fmt.Errorf("failed to insert order: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *OrderRepositoryMongo) List(ctx context.Context, limit int64) ([]entities.Order, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []OrderDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}

	orders := make([]entities.Order, len(docs))
	for i := range docs {
		orders[i] = *toOrderEntity(&docs[i])
	}
	return orders, nil
}
