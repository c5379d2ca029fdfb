package mongodb

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"food-delivery-service/internal/domain/entities"
)

type RestaurantDocument struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Name             string             `bson:"name"`
	Description      string             `bson:"description,omitempty"`
	Cuisine          []string           `bson:"cuisine"`
	Rating           float64            `bson:"rating"`
	DeliveryTimeMins int                `bson:"delivery_time_mins"`
	ImageURL         string             `bson:"image_url,omitempty"`
	Location         string             `bson:"location,omitempty"`
}

type MenuItemDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	RestaurantID string             `bson:"restaurant_id"`
	Name         string             `bson:"name"`
	Description  string             `bson:"description,omitempty"`
	Price        float64            `bson:"price"`
	Veg          bool               `bson:"veg"`
	Spicy        bool               `bson:"spicy"`
	ImageURL     string             `bson:"image_url,omitempty"`
	Category     string             `bson:"category,omitempty"`
}

type OrderDocument struct {
	ID              primitive.ObjectID  `bson:"_id,omitempty"`
	RestaurantID    string              `bson:"restaurant_id"`
	RestaurantName  string              `bson:"restaurant_name"`
	CustomerName    string              `bson:"customer_name"`
	CustomerPhone   string              `bson:"customer_phone"`
	CustomerAddress string              `bson:"customer_address"`
	Items           []OrderItemDocument `bson:"items"`
	Total           float64             `bson:"total"`
	Status          string              `bson:"status"`
	CreatedAt       time.Time           `bson:"created_at"`
}

type OrderItemDocument struct {
	ItemID   string  `bson:"item_id"`
	Name     string  `bson:"name"`
	Price    float64 `bson:"price"`
	Quantity int     `bson:"quantity"`
}

func toRestaurantDocument(r *entities.Restaurant) *RestaurantDocument {
	return &RestaurantDocument{
		Name:             r.Name,
		Description:      r.Description,
		Cuisine:          r.Cuisine,
		Rating:           r.Rating,
		DeliveryTimeMins: r.DeliveryTimeMins,
		ImageURL:         r.ImageURL,
		Location:         r.Location,
	}
}

func toRestaurantEntity(doc *RestaurantDocument) *entities.Restaurant {
	return &entities.Restaurant{
		ID:               doc.ID.Hex(),
		Name:             doc.Name,
		Description:      doc.Description,
		Cuisine:          doc.Cuisine,
		Rating:           doc.Rating,
		DeliveryTimeMins: doc.DeliveryTimeMins,
		ImageURL:         doc.ImageURL,
		Location:         doc.Location,
	}
}

func toMenuItemDocument(m *entities.MenuItem) *MenuItemDocument {
	return &MenuItemDocument{
		RestaurantID: m.RestaurantID,
		Name:         m.Name,
		Description:  m.Description,
		Price:        m.Price,
		Veg:          m.Veg,
		Spicy:        m.Spicy,
		ImageURL:     m.ImageURL,
		Category:     m.Category,
	}
}

func toMenuItemEntity(doc *MenuItemDocument) *entities.MenuItem {
	return &entities.MenuItem{
		ID:           doc.ID.Hex(),
		RestaurantID: doc.RestaurantID,
		Name:         doc.Name,
		Description:  doc.Description,
		Price:        doc.Price,
		Veg:          doc.Veg,
		Spicy:        doc.Spicy,
		ImageURL:     doc.ImageURL,
		Category:     doc.Category,
	}
}

func toOrderDocument(order *entities.Order) *OrderDocument {
	doc := &OrderDocument{
		RestaurantID:    order.RestaurantID,
		RestaurantName:  order.RestaurantName,
		CustomerName:    order.CustomerName,
		CustomerPhone:   order.CustomerPhone,
		CustomerAddress: order.CustomerAddress,
		Total:           order.Total,
		Status:          order.Status,
		CreatedAt:       order.CreatedAt,
		Items:           make([]OrderItemDocument, len(order.Items)),
	}

	for i, item := range order.Items {
		doc.Items[i] = OrderItemDocument{
			ItemID:   item.ItemID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		}
	}

	return doc
}

func toOrderEntity(doc *OrderDocument) *entities.Order {
	items := make([]entities.OrderItem, len(doc.Items))
	for i, item := range doc.Items {
		items[i] = entities.OrderItem{
			ItemID:   item.ItemID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		}
	}

	return &entities.Order{
		ID:              doc.ID.Hex(),
		RestaurantID:    doc.RestaurantID,
		RestaurantName:  doc.RestaurantName,
		CustomerName:    doc.CustomerName,
		CustomerPhone:   doc.CustomerPhone,
		CustomerAddress: doc.CustomerAddress,
		Items:           items,
		Total:           doc.Total,
		Status:          doc.Status,
		CreatedAt:       doc.CreatedAt,
	}
}
