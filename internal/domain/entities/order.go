package entities

import "time"

// OrderItem is a line item embedded in an order. Name and price are
// snapshots: for items that matched the stored menu they come from the
// menu record, otherwise from the client submission.
type OrderItem struct {
	ItemID   string  `json:"item_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Order is the persisted result of the order-placement workflow.
// RestaurantName and the item names/prices are denormalized snapshots
// taken at placement time.
type Order struct {
	ID              string      `json:"id,omitempty"`
	RestaurantID    string      `json:"restaurant_id"`
	RestaurantName  string      `json:"restaurant_name"`
	CustomerName    string      `json:"customer_name"`
	CustomerPhone   string      `json:"customer_phone"`
	CustomerAddress string      `json:"customer_address"`
	Items           []OrderItem `json:"items"`
	Total           float64     `json:"total"`
	Status          string      `json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
}

const (
	StatusPlaced    = "placed"
	StatusPreparing = "preparing"
	StatusOnTheWay  = "on_the_way"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

// PlaceholderRestaurantName is snapshotted into an order when the
// referenced restaurant cannot be resolved at placement time.
const PlaceholderRestaurantName = "Restaurant"

func ValidStatus(status string) bool {
	validStatuses := map[string]bool{
		StatusPlaced:    true,
		StatusPreparing: true,
		StatusOnTheWay:  true,
		StatusDelivered: true,
		StatusCancelled: true,
	}
	return validStatuses[status]
}
