package entities

// MenuItem belongs to a restaurant by id reference only. The reference is
// checked once at creation time and never enforced afterwards.
type MenuItem struct {
	ID           string  `json:"id,omitempty"`
	RestaurantID string  `json:"restaurant_id"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Price        float64 `json:"price"`
	Veg          bool    `json:"veg"`
	Spicy        bool    `json:"spicy"`
	ImageURL     string  `json:"image_url,omitempty"`
	Category     string  `json:"category,omitempty"`
}
