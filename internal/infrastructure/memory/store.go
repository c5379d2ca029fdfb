// Package memory provides in-memory twins of the MongoDB repositories.
// They generate ObjectID-format identifiers so id validation behaves the
// same as against the real store. Used as test fixtures and for running
// the service without a database.
package memory

import (
	"context"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"food-delivery-service/internal/domain/entities"
	"food-delivery-service/internal/domain/repositories"
)

type RestaurantRepositoryMemory struct {
	mu          sync.RWMutex
	restaurants map[string]*entities.Restaurant
	order       []string
}

func NewRestaurantRepository() *RestaurantRepositoryMemory {
	return &RestaurantRepositoryMemory{
		restaurants: make(map[string]*entities.Restaurant),
	}
}

func (r *RestaurantRepositoryMemory) Create(ctx context.Context, restaurant *entities.Restaurant) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := primitive.NewObjectID().Hex()
	stored := *restaurant
	stored.ID = id
	r.restaurants[id] = &stored
	r.order = append(r.order, id)
	return id, nil
}

func (r *RestaurantRepositoryMemory) List(ctx context.Context, filter repositories.RestaurantFilter, limit int64) ([]entities.Restaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []entities.Restaurant
	for _, id := range r.order {
		if limit > 0 && int64(len(result)) >= limit {
			break
		}
		restaurant := r.restaurants[id]
		if filter.Name != "" && !containsFold(restaurant.Name, filter.Name) {
			continue
		}
		if filter.Cuisine != "" && !anyContainsFold(restaurant.Cuisine, filter.Cuisine) {
			continue
		}
		result = append(result, *restaurant)
	}
	return result, nil
}

func (r *RestaurantRepositoryMemory) GetByID(ctx context.Context, id string) (*entities.Restaurant, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repositories.ErrMalformedID
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	restaurant, exists := r.restaurants[id]
	if !exists {
		return nil, repositories.ErrRestaurantNotFound
	}

	restaurantCopy := *restaurant
	return &restaurantCopy, nil
}

func (r *RestaurantRepositoryMemory) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.restaurants)), nil
}

type MenuItemRepositoryMemory struct {
	mu    sync.RWMutex
	items []*entities.MenuItem
}

func NewMenuItemRepository() *MenuItemRepositoryMemory {
	return &MenuItemRepositoryMemory{}
}

func (r *MenuItemRepositoryMemory) Create(ctx context.Context, item *entities.MenuItem) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := primitive.NewObjectID().Hex()
	stored := *item
	stored.ID = id
	r.items = append(r.items, &stored)
	return id, nil
}

func (r *MenuItemRepositoryMemory) ListByRestaurant(ctx context.Context, restaurantID string, limit int64) ([]entities.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []entities.MenuItem
	for _, item := range r.items {
		if limit > 0 && int64(len(result)) >= limit {
			break
		}
		if item.RestaurantID != restaurantID {
			continue
		}
		result = append(result, *item)
	}
	return result, nil
}

type OrderRepositoryMemory struct {
	mu     sync.RWMutex
	orders []*entities.Order
}

func NewOrderRepository() *OrderRepositoryMemory {
	return &OrderRepositoryMemory{}
}

func (r *OrderRepositoryMemory) Create(ctx context.Context, order *entities.Order) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := primitive.NewObjectID().Hex()
	stored := *order
	stored.ID = id
	r.orders = append(r.orders, &stored)
	return id, nil
}

func (r *OrderRepositoryMemory) List(ctx context.Context, limit int64) ([]entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []entities.Order
	for _, order := range r.orders {
		if limit > 0 && int64(len(result)) >= limit {
			break
		}
		result = append(result, *order)
	}
	return result, nil
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func anyContainsFold(values []string, substr string) bool {
	for _, v := range values {
		if containsFold(v, substr) {
			return true
		}
	}
	return false
}
