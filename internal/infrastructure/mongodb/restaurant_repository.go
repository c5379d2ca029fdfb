package mongodb

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"food-delivery-service/internal/domain/entities"
	"food-delivery-service/internal/domain/repositories"
)

type RestaurantRepositoryMongo struct {
	collection *mongo.Collection
}

func NewRestaurantRepository(store *Store) *RestaurantRepositoryMongo {
	return &RestaurantRepositoryMongo{
		collection: store.collection(restaurantCollection),
	}
}

func (r *RestaurantRepositoryMongo) Create(ctx context.Context, restaurant *entities.Restaurant) (string, error) {
	res, err := r.collection.InsertOne(ctx, toRestaurantDocument(restaurant))
	if err != nil {
		return "", fmt.Errorf("failed to insert restaurant: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *RestaurantRepositoryMongo) List(ctx context.Context, filter repositories.RestaurantFilter, limit int64) ([]entities.Restaurant, error) {
	query := bson.M{}
	if filter.Name != "" {
		query["name"] = bson.M{"$regex": regexp.QuoteMeta(filter.Name), "$options": "i"}
	}
	if filter.Cuisine != "" {
		query["cuisine"] = bson.M{"$elemMatch": bson.M{"$regex": regexp.QuoteMeta(filter.Cuisine), "$options": "i"}}
	}

	cursor, err := r.collection.Find(ctx, query, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to find restaurants: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []RestaurantDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode restaurants: %w", err)
	}

	restaurants := make([]entities.Restaurant, len(docs))
	for i := range docs {
		restaurants[i] = *toRestaurantEntity(&docs[i])
	}
	return restaurants, nil
}

func (r *RestaurantRepositoryMongo) GetByID(ctx context.Context, id string) (*entities.Restaurant, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repositories.ErrMalformedID
	}

	var doc RestaurantDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, repositories.ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("failed to find restaurant: %w", err)
	}

	return toRestaurantEntity(&doc), nil
}

func (r *RestaurantRepositoryMongo) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count restaurants: %w", err)
	}
	return count, nil
}
