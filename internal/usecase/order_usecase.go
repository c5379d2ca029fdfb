package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"food-delivery-service/internal/domain/entities"
	"food-delivery-service/internal/domain/repositories"
	"food-delivery-service/internal/infrastructure/metrics"
)

const (
	defaultOrderListLimit = 50
	maxOrderListLimit     = 200
)

type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, order *entities.Order) error
	Close()
}

type OrderUseCase struct {
	restaurantRepo repositories.RestaurantRepository
	menuRepo       repositories.MenuItemRepository
	orderRepo      repositories.OrderRepository
	publisher      EventPublisher
}

func NewOrderUseCase(restaurantRepo repositories.RestaurantRepository, menuRepo repositories.MenuItemRepository, orderRepo repositories.OrderRepository, publisher EventPublisher) *OrderUseCase {
	return &OrderUseCase{
		restaurantRepo: restaurantRepo,
		menuRepo:       menuRepo,
		orderRepo:      orderRepo,
		publisher:      publisher,
	}
}

type PlaceOrderInput struct {
	RestaurantID    string
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	Items           []entities.OrderItem
}

type PlaceOrderResult struct {
	ID     string  `json:"id"`
	Total  float64 `json:"total"`
	Status string  `json:"status"`
}

// PlaceOrder turns a cart submission into a priced order record.
//
// The stored menu is authoritative: for every line whose item id resolves
// against the restaurant's current menu, the stored name and price replace
// whatever the client sent. Lines that do not resolve keep the submitted
// name and price verbatim. An unresolvable restaurant id does not fail the
// order either; the name snapshot falls back to a placeholder. Only a
// malformed restaurant id aborts before anything is written.
func (uc *OrderUseCase) PlaceOrder(ctx context.Context, in PlaceOrderInput) (*PlaceOrderResult, error) {
	if in.CustomerName == "" || in.CustomerPhone == "" || in.CustomerAddress == "" {
		return nil, ErrMissingCustomer
	}
	if len(in.Items) == 0 {
		return nil, ErrEmptyItems
	}
	for i, item := range in.Items {
		if item.Quantity < 1 {
			return nil, fmt.Errorf("%w: item %d has invalid quantity", ErrInvalidItem, i)
		}
		if item.Price < 0 {
			return nil, fmt.Errorf("%w: item %d has invalid price", ErrInvalidItem, i)
		}
	}

	// One bulk read of the live menu; the cache is deliberately bypassed
	// so reconciliation always sees current prices.
	menu, err := uc.menuRepo.ListByRestaurant(ctx, in.RestaurantID, menuListLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load menu: %w", err)
	}
	menuByID := make(map[string]entities.MenuItem, len(menu))
	for _, m := range menu {
		menuByID[m.ID] = m
	}

	lines := make([]entities.OrderItem, len(in.Items))
	total := 0.0
	for i, submitted := range in.Items {
		line := submitted
		if stored, ok := menuByID[submitted.ItemID]; ok {
			line.Name = stored.Name
			line.Price = stored.Price
		}
		total += line.Price * float64(line.Quantity)
		lines[i] = line
	}

	restaurantName := entities.PlaceholderRestaurantName
	restaurant, err := uc.restaurantRepo.GetByID(ctx, in.RestaurantID)
	switch {
	case err == nil:
		restaurantName = restaurant.Name
	case errors.Is(err, repositories.ErrRestaurantNotFound):
		// soft-fail: the order is still placed under the placeholder name
	default:
		return nil, err
	}

	order := &entities.Order{
		RestaurantID:    in.RestaurantID,
		RestaurantName:  restaurantName,
		CustomerName:    in.CustomerName,
		CustomerPhone:   in.CustomerPhone,
		CustomerAddress: in.CustomerAddress,
		Items:           lines,
		Total:           math.Round(total*100) / 100,
		Status:          entities.StatusPlaced,
		CreatedAt:       time.Now(),
	}

	id, err := uc.orderRepo.Create(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	order.ID = id

	metrics.OrdersPlaced.Inc()

	if uc.publisher != nil {
		go func() {
			pubCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := uc.publisher.PublishOrderPlaced(pubCtx, order); err != nil {
				fmt.Printf("Warning: Failed to publish order.placed event: %v\n", err)
			}
		}()
	}

	return &PlaceOrderResult{
		ID:     id,
		Total:  order.Total,
		Status: order.Status,
	}, nil
}

func (uc *OrderUseCase) ListOrders(ctx context.Context, limit int64) ([]entities.Order, error) {
	if limit <= 0 {
		limit = defaultOrderListLimit
	}
	if limit > maxOrderListLimit {
		limit = maxOrderListLimit
	}

	orders, err := uc.orderRepo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

var (
	ErrMissingCustomer = errors.New("customer name, phone and address are required")
	ErrEmptyItems      = errors.New("items list cannot be empty")
	ErrInvalidItem     = errors.New("invalid item")
)
