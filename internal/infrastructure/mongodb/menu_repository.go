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

type MenuItemRepositoryMongo struct {
	collection *mongo.Collection
}

func NewMenuItemRepository(store *Store) *MenuItemRepositoryMongo {
	return &MenuItemRepositoryMongo{
		collection: store.collection(menuItemCollection),
	}
}

func (r *MenuItemRepositoryMongo) Create(ctx context.Context, item *entities.MenuItem) (string, error) {
	res, err := r.collection.InsertOne(ctx, toMenuItemDocument(item))
	if err != nil {
		return "", fmt.Errorf("failed to insert menu item: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

// ListByRestaurant matches restaurant_id as a stored string. An id that
// does not resolve to anything simply returns no rows.
func (r *MenuItemRepositoryMongo) ListByRestaurant(ctx context.Context, restaurantID string, limit int64) ([]entities.MenuItem, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"restaurant_id": restaurantID}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to find menu items: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []MenuItemDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode menu items: %w", err)
	}

	items := make([]entities.MenuItem, len(docs))
	for i := range docs {
		items[i] = *toMenuItemEntity(&docs[i])
	}
	return items, nil
}
