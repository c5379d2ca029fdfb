package entities

// Restaurant is a catalog entry. Records are created once and read many
// times; there is no update or delete path.
type Restaurant struct {
	ID               string   `json:"id,omitempty"`
	Name             string   `json:"name"`
	Description      string   `json:"description,omitempty"`
	Cuisine          []string `json:"cuisine"`
	Rating           float64  `json:"rating"`
	DeliveryTimeMins int      `json:"delivery_time_mins"`
	ImageURL         string   `json:"image_url,omitempty"`
	Location         string   `json:"location,omitempty"`
}

const (
	DefaultRating           = 4.0
	DefaultDeliveryTimeMins = 30
)
