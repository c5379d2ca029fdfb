package usecase

import (
	"context"
	"fmt"

	"food-delivery-service/internal/domain/entities"
)

type SeedResult struct {
	AlreadySeeded bool
	Restaurants   int
	MenuItems     int
}

// Seed loads the demo catalog, but only into an empty store. Calling it
// again is a no-op that reports the data as already present.
func (uc *CatalogUseCase) Seed(ctx context.Context) (*SeedResult, error) {
	count, err := uc.restaurantRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count restaurants: %w", err)
	}
	if count > 0 {
		return &SeedResult{AlreadySeeded: true}, nil
	}

	burgerHub := &entities.Restaurant{
		Name:             "Burger Hub",
		Description:      "Juicy burgers and fries",
		Cuisine:          []string{"American", "Fast Food"},
		Rating:           4.3,
		DeliveryTimeMins: 25,
		ImageURL:         "https://images.unsplash.com/photo-1550547660-d9450f859349?w=1200&q=60",
		Location:         "Downtown",
	}
	curryPalace := &entities.Restaurant{
		Name:             "Curry Palace",
		Description:      "Authentic Indian cuisine",
		Cuisine:          []string{"Indian", "Curry"},
		Rating:           4.6,
		DeliveryTimeMins: 35,
		ImageURL:         "https://images.unsplash.com/photo-1604908176997-4312f5b2d3c6?w=1200&q=60",
		Location:         "Midtown",
	}

	burgerHubID, err := uc.restaurantRepo.Create(ctx, burgerHub)
	if err != nil {
		return nil, fmt.Errorf("failed to seed restaurant: %w", err)
	}
	curryPalaceID, err := uc.restaurantRepo.Create(ctx, curryPalace)
	if err != nil {
		return nil, fmt.Errorf("failed to seed restaurant: %w", err)
	}

	items := []entities.MenuItem{
		{RestaurantID: burgerHubID, Name: "Classic Burger", Description: "Beef patty, cheese, lettuce", Price: 8.99, ImageURL: "https://images.unsplash.com/photo-1550317138-10000687a72b?w=1200&q=60", Category: "Burgers"},
		{RestaurantID: burgerHubID, Name: "Veggie Burger", Description: "Grilled veggie patty", Price: 7.49, Veg: true, ImageURL: "https://images.unsplash.com/photo-1606756790138-2614cf5f327f?w=1200&q=60", Category: "Burgers"},
		{RestaurantID: burgerHubID, Name: "Fries", Description: "Crispy golden fries", Price: 3.49, Veg: true, ImageURL: "https://images.unsplash.com/photo-1540189549336-e6e99c3679fe?w=1200&q=60", Category: "Sides"},
		{RestaurantID: curryPalaceID, Name: "Butter Chicken", Description: "Creamy tomato gravy", Price: 12.99, ImageURL: "https://images.unsplash.com/photo-1628294895950-980525a64300?w=1200&q=60", Category: "Main"},
		{RestaurantID: curryPalaceID, Name: "Paneer Tikka", Description: "Marinated cottage cheese", Price: 10.99, Veg: true, Spicy: true, ImageURL: "https://images.unsplash.com/photo-1625944528406-500fd2ecd2ed?w=1200&q=60", Category: "Starter"},
		{RestaurantID: curryPalaceID, Name: "Garlic Naan", Description: "Soft and buttery", Price: 2.49, Veg: true, ImageURL: "https://images.unsplash.com/photo-1625944527995-7e2e0adf33c5?w=1200&q=60", Category: "Bread"},
	}

	for i := range items {
		if _, err := uc.menuRepo.Create(ctx, &items[i]); err != nil {
			return nil, fmt.Errorf("failed to seed menu item: %w", err)
		}
	}

	return &SeedResult{Restaurants: 2, MenuItems: len(items)}, nil
}
