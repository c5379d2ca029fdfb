package usecase

import (
	"context"
	"errors"
	"fmt"

	"food-delivery-service/internal/domain/entities"
	"food-delivery-service/internal/domain/repositories"
)

const (
	restaurantListLimit = 50
	menuListLimit       = 200
)

// MenuCache is an optional read cache for restaurant menus. Implementations
// must never fail a request: a broken cache behaves like a miss.
type MenuCache interface {
	Get(ctx context.Context, restaurantID string) ([]entities.MenuItem, bool)
	Set(ctx context.Context, restaurantID string, items []entities.MenuItem)
	Invalidate(ctx context.Context, restaurantID string)
}

type CatalogUseCase struct {
	restaurantRepo repositories.RestaurantRepository
	menuRepo       repositories.MenuItemRepository
	menuCache      MenuCache
}

func NewCatalogUseCase(restaurantRepo repositories.RestaurantRepository, menuRepo repositories.MenuItemRepository, menuCache MenuCache) *CatalogUseCase {
	return &CatalogUseCase{
		restaurantRepo: restaurantRepo,
		menuRepo:       menuRepo,
		menuCache:      menuCache,
	}
}

func (uc *CatalogUseCase) CreateRestaurant(ctx context.Context, restaurant *entities.Restaurant) (string, error) {
	if restaurant.Name == "" {
		return "", ErrMissingRestaurantName
	}
	if restaurant.Rating < 0 || restaurant.Rating > 5 {
		return "", ErrInvalidRating
	}
	if restaurant.DeliveryTimeMins < 5 || restaurant.DeliveryTimeMins > 120 {
		return "", ErrInvalidDeliveryTime
	}

	id, err := uc.restaurantRepo.Create(ctx, restaurant)
	if err != nil {
		return "", fmt.Errorf("failed to create restaurant: %w", err)
	}
	return id, nil
}

func (uc *CatalogUseCase) ListRestaurants(ctx context.Context, nameQuery, cuisineQuery string) ([]entities.Restaurant, error) {
	filter := repositories.RestaurantFilter{
		Name:    nameQuery,
		Cuisine: cuisineQuery,
	}

	restaurants, err := uc.restaurantRepo.List(ctx, filter, restaurantListLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}
	return restaurants, nil
}

// CreateMenuItem requires the referenced restaurant to exist. This is the
// only place the menu-to-restaurant reference is enforced; it is never
// re-checked afterwards.
func (uc *CatalogUseCase) CreateMenuItem(ctx context.Context, item *entities.MenuItem) (string, error) {
	if item.Name == "" {
		return "", ErrMissingItemName
	}
	if item.Price < 0 {
		return "", ErrNegativePrice
	}

	if _, err := uc.restaurantRepo.GetByID(ctx, item.RestaurantID); err != nil {
		if errors.Is(err, repositories.ErrMalformedID) || errors.Is(err, repositories.ErrRestaurantNotFound) {
			return "", err
		}
		return "", fmt.Errorf("failed to resolve restaurant: %w", err)
	}

	id, err := uc.menuRepo.Create(ctx, item)
	if err != nil {
		return "", fmt.Errorf("failed to create menu item: %w", err)
	}

	uc.menuCache.Invalidate(ctx, item.RestaurantID)
	return id, nil
}

func (uc *CatalogUseCase) ListMenu(ctx context.Context, restaurantID string) ([]entities.MenuItem, error) {
	if items, ok := uc.menuCache.Get(ctx, restaurantID); ok {
		return items, nil
	}

	items, err := uc.menuRepo.ListByRestaurant(ctx, restaurantID, menuListLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu: %w", err)
	}

	uc.menuCache.Set(ctx, restaurantID, items)
	return items, nil
}

var (
	ErrMissingRestaurantName = errors.New("restaurant name is required")
	ErrInvalidRating         = errors.New("rating must be between 0 and 5")
	ErrInvalidDeliveryTime   = errors.New("delivery time must be between 5 and 120 minutes")
	ErrMissingItemName       = errors.New("menu item name is required")
	ErrNegativePrice         = errors.New("price cannot be negative")
)
