package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"food-delivery-service/internal/domain/entities"
	"food-delivery-service/internal/domain/repositories"
	"food-delivery-service/internal/infrastructure/memory"
)

type nopCache struct{}

func (nopCache) Get(ctx context.Context, restaurantID string) ([]entities.MenuItem, bool) {
	return nil, false
}
func (nopCache) Set(ctx context.Context, restaurantID string, items []entities.MenuItem) {}
func (nopCache) Invalidate(ctx context.Context, restaurantID string)                     {}

// recordingCache tracks cache traffic so tests can assert the read path
// and invalidation wiring.
type recordingCache struct {
	entries     map[string][]entities.MenuItem
	invalidated []string
}

func newRecordingCache() *recordingCache {
	return &recordingCache{entries: make(map[string][]entities.MenuItem)}
}

func (c *recordingCache) Get(ctx context.Context, restaurantID string) ([]entities.MenuItem, bool) {
	items, ok := c.entries[restaurantID]
	return items, ok
}

func (c *recordingCache) Set(ctx context.Context, restaurantID string, items []entities.MenuItem) {
	c.entries[restaurantID] = items
}

func (c *recordingCache) Invalidate(ctx context.Context, restaurantID string) {
	delete(c.entries, restaurantID)
	c.invalidated = append(c.invalidated, restaurantID)
}

func newCatalogFixture(cache MenuCache) (*CatalogUseCase, *memory.RestaurantRepositoryMemory, *memory.MenuItemRepositoryMemory) {
	restaurantRepo := memory.NewRestaurantRepository()
	menuRepo := memory.NewMenuItemRepository()
	return NewCatalogUseCase(restaurantRepo, menuRepo, cache), restaurantRepo, menuRepo
}

func TestCatalogUseCase_CreateAndListRestaurants(t *testing.T) {
	catalog, _, _ := newCatalogFixture(nopCache{})
	ctx := context.Background()

	id, err := catalog.CreateRestaurant(ctx, &entities.Restaurant{
		Name:             "Burger Hub",
		Cuisine:          []string{"American", "Fast Food"},
		Rating:           4.3,
		DeliveryTimeMins: 25,
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	restaurants, err := catalog.ListRestaurants(ctx, "", "")
	require.NoError(t, err)
	require.Len(t, restaurants, 1)
	assert.Equal(t, id, restaurants[0].ID)
	assert.Equal(t, "Burger Hub", restaurants[0].Name)
}

func TestCatalogUseCase_ListRestaurants_Filters(t *testing.T) {
	catalog, _, _ := newCatalogFixture(nopCache{})
	ctx := context.Background()

	_, err := catalog.CreateRestaurant(ctx, &entities.Restaurant{
		Name: "Burger Hub", Cuisine: []string{"American", "Fast Food"}, Rating: 4.3, DeliveryTimeMins: 25,
	})
	require.NoError(t, err)
	_, err = catalog.CreateRestaurant(ctx, &entities.Restaurant{
		Name: "Curry Palace", Cuisine: []string{"Indian", "Curry"}, Rating: 4.6, DeliveryTimeMins: 35,
	})
	require.NoError(t, err)

	byName, err := catalog.ListRestaurants(ctx, "burger", "")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Burger Hub", byName[0].Name)

	byCuisine, err := catalog.ListRestaurants(ctx, "", "indian")
	require.NoError(t, err)
	require.Len(t, byCuisine, 1)
	assert.Equal(t, "Curry Palace", byCuisine[0].Name)

	none, err := catalog.ListRestaurants(ctx, "pizza", "")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCatalogUseCase_CreateRestaurant_Invalid(t *testing.T) {
	catalog, _, _ := newCatalogFixture(nopCache{})
	ctx := context.Background()

	tests := []struct {
		name       string
		restaurant entities.Restaurant
		wantErr    error
	}{
		{"missing name", entities.Restaurant{Rating: 4, DeliveryTimeMins: 30}, ErrMissingRestaurantName},
		{"rating too high", entities.Restaurant{Name: "X", Rating: 5.5, DeliveryTimeMins: 30}, ErrInvalidRating},
		{"delivery too fast", entities.Restaurant{Name: "X", Rating: 4, DeliveryTimeMins: 2}, ErrInvalidDeliveryTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.CreateRestaurant(ctx, &tt.restaurant)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCatalogUseCase_CreateMenuItem(t *testing.T) {
	catalog, _, _ := newCatalogFixture(nopCache{})
	ctx := context.Background()

	restaurantID, err := catalog.CreateRestaurant(ctx, &entities.Restaurant{
		Name: "Burger Hub", Rating: 4.3, DeliveryTimeMins: 25,
	})
	require.NoError(t, err)

	itemID, err := catalog.CreateMenuItem(ctx, &entities.MenuItem{
		RestaurantID: restaurantID, Name: "Classic Burger", Price: 8.99,
	})
	require.NoError(t, err)

	items, err := catalog.ListMenu(ctx, restaurantID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, itemID, items[0].ID)
}

func TestCatalogUseCase_CreateMenuItem_RestaurantMissing(t *testing.T) {
	catalog, _, _ := newCatalogFixture(nopCache{})
	ctx := context.Background()

	// well-formed id that resolves to nothing
	_, err := catalog.CreateMenuItem(ctx, &entities.MenuItem{
		RestaurantID: primitive.NewObjectID().Hex(), Name: "Orphan", Price: 1.00,
	})
	assert.ErrorIs(t, err, repositories.ErrRestaurantNotFound)

	_, err = catalog.CreateMenuItem(ctx, &entities.MenuItem{
		RestaurantID: "garbage", Name: "Orphan", Price: 1.00,
	})
	assert.ErrorIs(t, err, repositories.ErrMalformedID)
}

func TestCatalogUseCase_ListMenu_CacheRoundTrip(t *testing.T) {
	cache := newRecordingCache()
	catalog, _, menuRepo := newCatalogFixture(cache)
	ctx := context.Background()

	restaurantID, err := catalog.CreateRestaurant(ctx, &entities.Restaurant{
		Name: "Burger Hub", Rating: 4.3, DeliveryTimeMins: 25,
	})
	require.NoError(t, err)

	_, err = catalog.CreateMenuItem(ctx, &entities.MenuItem{
		RestaurantID: restaurantID, Name: "Fries", Price: 3.49,
	})
	require.NoError(t, err)
	assert.Contains(t, cache.invalidated, restaurantID)

	// first read populates the cache
	items, err := catalog.ListMenu(ctx, restaurantID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Contains(t, cache.entries, restaurantID)

	// second read is served from the cache even if the store changes
	// underneath; the order workflow never takes this path
	_, err = menuRepo.Create(ctx, &entities.MenuItem{RestaurantID: restaurantID, Name: "Shake", Price: 4.99})
	require.NoError(t, err)

	cached, err := catalog.ListMenu(ctx, restaurantID)
	require.NoError(t, err)
	assert.Len(t, cached, 1)
}

func TestCatalogUseCase_Seed_Idempotent(t *testing.T) {
	catalog, restaurantRepo, menuRepo := newCatalogFixture(nopCache{})
	ctx := context.Background()

	first, err := catalog.Seed(ctx)
	require.NoError(t, err)
	assert.False(t, first.AlreadySeeded)
	assert.Equal(t, 2, first.Restaurants)
	assert.Equal(t, 6, first.MenuItems)

	second, err := catalog.Seed(ctx)
	require.NoError(t, err)
	assert.True(t, second.AlreadySeeded)

	count, err := restaurantRepo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	restaurants, err := restaurantRepo.List(ctx, repositories.RestaurantFilter{}, 50)
	require.NoError(t, err)
	totalItems := 0
	for _, r := range restaurants {
		items, err := menuRepo.ListByRestaurant(ctx, r.ID, 200)
		require.NoError(t, err)
		totalItems += len(items)
	}
	assert.Equal(t, 6, totalItems)
}

func TestCatalogUseCase_SeededMenuPricesDriveOrders(t *testing.T) {
	catalog, restaurantRepo, menuRepo := newCatalogFixture(nopCache{})
	orderRepo := memory.NewOrderRepository()
	orders := NewOrderUseCase(restaurantRepo, menuRepo, orderRepo, nil)
	ctx := context.Background()

	_, err := catalog.Seed(ctx)
	require.NoError(t, err)

	restaurants, err := catalog.ListRestaurants(ctx, "burger", "")
	require.NoError(t, err)
	require.Len(t, restaurants, 1)

	menu, err := catalog.ListMenu(ctx, restaurants[0].ID)
	require.NoError(t, err)

	var burger entities.MenuItem
	for _, item := range menu {
		if item.Name == "Classic Burger" {
			burger = item
		}
	}
	require.NotEmpty(t, burger.ID)

	result, err := orders.PlaceOrder(ctx, PlaceOrderInput{
		RestaurantID:    restaurants[0].ID,
		CustomerName:    "Alice",
		CustomerPhone:   "555-0101",
		CustomerAddress: "1 Main St",
		Items: []entities.OrderItem{
			{ItemID: burger.ID, Name: "whatever", Price: 0.01, Quantity: 2},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 17.98, result.Total)

	stored, err := orderRepo.List(ctx, 50)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "Burger Hub", stored[0].RestaurantName)
}
