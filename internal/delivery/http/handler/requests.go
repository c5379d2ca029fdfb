package handler

import "food-delivery-service/internal/domain/entities"

// Request DTOs carry the same field constraints the original service
// enforced at its schema layer. Optional numeric fields are pointers so
// an absent value can fall back to its documented default.

type createRestaurantRequest struct {
	Name             string   `json:"name" binding:"required"`
	Description      string   `json:"description"`
	Cuisine          []string `json:"cuisine"`
	Rating           *float64 `json:"rating" binding:"omitempty,gte=0,lte=5"`
	DeliveryTimeMins *int     `json:"delivery_time_mins" binding:"omitempty,gte=5,lte=120"`
	ImageURL         string   `json:"image_url"`
	Location         string   `json:"location"`
}

func (r *createRestaurantRequest) toEntity() *entities.Restaurant {
	restaurant := &entities.Restaurant{
		Name:             r.Name,
		Description:      r.Description,
		Cuisine:          r.Cuisine,
		Rating:           entities.DefaultRating,
		DeliveryTimeMins: entities.DefaultDeliveryTimeMins,
		ImageURL:         r.ImageURL,
		Location:         r.Location,
	}
	if restaurant.Cuisine == nil {
		restaurant.Cuisine = []string{}
	}
	if r.Rating != nil {
		restaurant.Rating = *r.Rating
	}
	if r.DeliveryTimeMins != nil {
		restaurant.DeliveryTimeMins = *r.DeliveryTimeMins
	}
	return restaurant
}

type createMenuItemRequest struct {
	RestaurantID string   `json:"restaurant_id" binding:"required"`
	Name         string   `json:"name" binding:"required"`
	Description  string   `json:"description"`
	Price        *float64 `json:"price" binding:"required,gte=0"`
	Veg          bool     `json:"veg"`
	Spicy        bool     `json:"spicy"`
	ImageURL     string   `json:"image_url"`
	Category     string   `json:"category"`
}

func (r *createMenuItemRequest) toEntity() *entities.MenuItem {
	return &entities.MenuItem{
		RestaurantID: r.RestaurantID,
		Name:         r.Name,
		Description:  r.Description,
		Price:        *r.Price,
		Veg:          r.Veg,
		Spicy:        r.Spicy,
		ImageURL:     r.ImageURL,
		Category:     r.Category,
	}
}

type orderItemRequest struct {
	ItemID   string   `json:"item_id" binding:"required"`
	Name     string   `json:"name" binding:"required"`
	Price    *float64 `json:"price" binding:"required,gte=0"`
	Quantity *int     `json:"quantity" binding:"omitempty,gte=1"`
}

type placeOrderRequest struct {
	RestaurantID    string             `json:"restaurant_id" binding:"required"`
	CustomerName    string             `json:"customer_name" binding:"required"`
	CustomerPhone   string             `json:"customer_phone" binding:"required"`
	CustomerAddress string             `json:"customer_address" binding:"required"`
	Items           []orderItemRequest `json:"items" binding:"required,min=1,dive"`
}

func (r *placeOrderRequest) toItems() []entities.OrderItem {
	items := make([]entities.OrderItem, len(r.Items))
	for i, it := range r.Items {
		quantity := 1
		if it.Quantity != nil {
			quantity = *it.Quantity
		}
		items[i] = entities.OrderItem{
			ItemID:   it.ItemID,
			Name:     it.Name,
			Price:    *it.Price,
			Quantity: quantity,
		}
	}
	return items
}
