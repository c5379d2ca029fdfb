package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"food-delivery-service/internal/domain/entities"
	"food-delivery-service/internal/infrastructure/logger"
	"food-delivery-service/internal/infrastructure/memory"
	"food-delivery-service/internal/usecase"
)

type nopCache struct{}

func (nopCache) Get(ctx context.Context, restaurantID string) ([]entities.MenuItem, bool) {
	return nil, false
}
func (nopCache) Set(ctx context.Context, restaurantID string, items []entities.MenuItem) {}
func (nopCache) Invalidate(ctx context.Context, restaurantID string)                     {}

type fixture struct {
	router    *gin.Engine
	catalog   *usecase.CatalogUseCase
	orderRepo *memory.OrderRepositoryMemory
}

func newFixture() *fixture {
	gin.SetMode(gin.TestMode)

	restaurantRepo := memory.NewRestaurantRepository()
	menuRepo := memory.NewMenuItemRepository()
	orderRepo := memory.NewOrderRepository()

	catalog := usecase.NewCatalogUseCase(restaurantRepo, menuRepo, nopCache{})
	orders := usecase.NewOrderUseCase(restaurantRepo, menuRepo, orderRepo, nil)

	h := NewHandler(catalog, orders, nil, logger.NewLogger())
	return &fixture{
		router:    NewRouter(h),
		catalog:   catalog,
		orderRepo: orderRepo,
	}
}

func (f *fixture) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func TestRoot(t *testing.T) {
	f := newFixture()

	w := f.do(t, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	decode(t, w, &resp)
	assert.Equal(t, "Food Delivery API", resp["service"])
	assert.Equal(t, "ok", resp["status"])
}

func TestCreateRestaurant(t *testing.T) {
	f := newFixture()

	w := f.do(t, http.MethodPost, "/restaurants", `{
		"name": "Burger Hub",
		"cuisine": ["American"],
		"rating": 4.3,
		"delivery_time_mins": 25
	}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	decode(t, w, &resp)
	assert.NotEmpty(t, resp["id"])

	list := f.do(t, http.MethodGet, "/restaurants", "")
	require.Equal(t, http.StatusOK, list.Code)

	var restaurants []entities.Restaurant
	decode(t, list, &restaurants)
	require.Len(t, restaurants, 1)
	assert.Equal(t, resp["id"], restaurants[0].ID)
}

func TestCreateRestaurant_Defaults(t *testing.T) {
	f := newFixture()

	w := f.do(t, http.MethodPost, "/restaurants", `{"name": "Minimal Diner"}`)
	require.Equal(t, http.StatusOK, w.Code)

	list := f.do(t, http.MethodGet, "/restaurants", "")
	var restaurants []entities.Restaurant
	decode(t, list, &restaurants)
	require.Len(t, restaurants, 1)
	assert.Equal(t, entities.DefaultRating, restaurants[0].Rating)
	assert.Equal(t, entities.DefaultDeliveryTimeMins, restaurants[0].DeliveryTimeMins)
}

func TestCreateRestaurant_ValidationFailure(t *testing.T) {
	f := newFixture()

	w := f.do(t, http.MethodPost, "/restaurants", `{"name": "Bad Rating", "rating": 6}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(t, http.MethodPost, "/restaurants", `{"rating": 4}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateMenuItem_RestaurantMissing(t *testing.T) {
	f := newFixture()

	body := fmt.Sprintf(`{"restaurant_id": %q, "name": "Orphan", "price": 1.0}`, primitive.NewObjectID().Hex())
	w := f.do(t, http.MethodPost, "/menu", body)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = f.do(t, http.MethodPost, "/menu", `{"restaurant_id": "garbage", "name": "Orphan", "price": 1.0}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlaceOrder_ServerPriceWins(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	restaurantID, err := f.catalog.CreateRestaurant(ctx, &entities.Restaurant{
		Name: "Burger Hub", Rating: 4.3, DeliveryTimeMins: 25,
	})
	require.NoError(t, err)
	itemID, err := f.catalog.CreateMenuItem(ctx, &entities.MenuItem{
		RestaurantID: restaurantID, Name: "Classic Burger", Price: 8.99,
	})
	require.NoError(t, err)

	body := fmt.Sprintf(`{
		"restaurant_id": %q,
		"customer_name": "Alice",
		"customer_phone": "555-0101",
		"customer_address": "1 Main St",
		"items": [{"item_id": %q, "name": "cheap", "price": 0.01, "quantity": 2}]
	}`, restaurantID, itemID)

	w := f.do(t, http.MethodPost, "/orders", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		ID     string  `json:"id"`
		Total  float64 `json:"total"`
		Status string  `json:"status"`
	}
	decode(t, w, &resp)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, 17.98, resp.Total)
	assert.Equal(t, "placed", resp.Status)

	orders, err := f.orderRepo.List(ctx, 50)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "Classic Burger", orders[0].Items[0].Name)
}

func TestPlaceOrder_QuantityDefaultsToOne(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	restaurantID, err := f.catalog.CreateRestaurant(ctx, &entities.Restaurant{
		Name: "Burger Hub", Rating: 4.3, DeliveryTimeMins: 25,
	})
	require.NoError(t, err)

	body := fmt.Sprintf(`{
		"restaurant_id": %q,
		"customer_name": "Alice",
		"customer_phone": "555-0101",
		"customer_address": "1 Main St",
		"items": [{"item_id": %q, "name": "Mystery Item", "price": 5.0}]
	}`, restaurantID, primitive.NewObjectID().Hex())

	w := f.do(t, http.MethodPost, "/orders", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Total float64 `json:"total"`
	}
	decode(t, w, &resp)
	assert.Equal(t, 5.0, resp.Total)
}

func TestPlaceOrder_MalformedRestaurantID(t *testing.T) {
	f := newFixture()

	body := fmt.Sprintf(`{
		"restaurant_id": "not-an-id",
		"customer_name": "Alice",
		"customer_phone": "555-0101",
		"customer_address": "1 Main St",
		"items": [{"item_id": %q, "name": "Fries", "price": 3.49, "quantity": 1}]
	}`, primitive.NewObjectID().Hex())

	w := f.do(t, http.MethodPost, "/orders", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	orders, err := f.orderRepo.List(context.Background(), 50)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestPlaceOrder_UnresolvedRestaurantStillPlaced(t *testing.T) {
	f := newFixture()

	body := fmt.Sprintf(`{
		"restaurant_id": %q,
		"customer_name": "Alice",
		"customer_phone": "555-0101",
		"customer_address": "1 Main St",
		"items": [{"item_id": %q, "name": "Mystery Item", "price": 5.0, "quantity": 1}]
	}`, primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex())

	w := f.do(t, http.MethodPost, "/orders", body)
	require.Equal(t, http.StatusOK, w.Code)

	orders, err := f.orderRepo.List(context.Background(), 50)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, entities.PlaceholderRestaurantName, orders[0].RestaurantName)
}

func TestPlaceOrder_ValidationFailure(t *testing.T) {
	f := newFixture()

	// empty items list rejected at binding
	w := f.do(t, http.MethodPost, "/orders", `{
		"restaurant_id": "abc",
		"customer_name": "Alice",
		"customer_phone": "555-0101",
		"customer_address": "1 Main St",
		"items": []
	}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListOrders(t *testing.T) {
	f := newFixture()

	w := f.do(t, http.MethodGet, "/orders", "")
	require.Equal(t, http.StatusOK, w.Code)

	var orders []entities.Order
	decode(t, w, &orders)
	assert.Empty(t, orders)

	w = f.do(t, http.MethodGet, "/orders?limit=abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSeed_Idempotent(t *testing.T) {
	f := newFixture()

	first := f.do(t, http.MethodPost, "/seed", "")
	require.Equal(t, http.StatusOK, first.Code)

	var firstResp map[string]interface{}
	decode(t, first, &firstResp)
	assert.Equal(t, float64(2), firstResp["restaurants"])
	assert.Equal(t, float64(6), firstResp["items"])

	second := f.do(t, http.MethodPost, "/seed", "")
	require.Equal(t, http.StatusOK, second.Code)

	var secondResp map[string]interface{}
	decode(t, second, &secondResp)
	assert.Equal(t, "Data already seeded", secondResp["message"])

	list := f.do(t, http.MethodGet, "/restaurants", "")
	var restaurants []entities.Restaurant
	decode(t, list, &restaurants)
	assert.Len(t, restaurants, 2)
}

func TestTestEndpoint_NoStore(t *testing.T) {
	f := newFixture()

	w := f.do(t, http.MethodGet, "/test", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	decode(t, w, &resp)
	assert.Equal(t, "running", resp["backend"])
	assert.Equal(t, "not connected", resp["connection_status"])
}
