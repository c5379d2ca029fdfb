package repositories

import (
	"context"

	"food-delivery-service/internal/domain/entities"
)

// RestaurantFilter narrows a restaurant listing. Both fields are
// case-insensitive substring matches; Cuisine matches any element of the
// stored cuisine array. Empty fields match everything.
type RestaurantFilter struct {
	Name    string
	Cuisine string
}

type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *entities.Restaurant) (string, error)
	List(ctx context.Context, filter RestaurantFilter, limit int64) ([]entities.Restaurant, error)
	// GetByID returns ErrMalformedID when id is not a well-formed store
	// identifier and ErrRestaurantNotFound when no record matches.
	GetByID(ctx context.Context, id string) (*entities.Restaurant, error)
	Count(ctx context.Context) (int64, error)
}

type MenuItemRepository interface {
	Create(ctx context.Context, item *entities.MenuItem) (string, error)
	// ListByRestaurant matches restaurant_id by plain string equality. A
	// malformed id yields an empty result, not an error.
	ListByRestaurant(ctx context.Context, restaurantID string, limit int64) ([]entities.MenuItem, error)
}

type OrderRepository interface {
	Create(ctx context.Context, order *entities.Order) (string, error)
	List(ctx context.Context, limit int64) ([]entities.Order, error)
}

var (
	ErrMalformedID        = &RepositoryError{"malformed id"}
	ErrRestaurantNotFound = &RepositoryError{"restaurant not found"}
)

type RepositoryError struct {
	message string
}

func (e *RepositoryError) Error() string {
	return e.message
}
