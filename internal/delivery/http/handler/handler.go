package handler

import (
	"context"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"

	"food-delivery-service/internal/domain/entities"
	"food-delivery-service/internal/infrastructure/logger"
	"food-delivery-service/internal/usecase"
)

// StoreDiagnostics is the slice of the store the /test endpoint needs.
type StoreDiagnostics interface {
	Ping(ctx context.Context) error
	CollectionNames(ctx context.Context, limit int) ([]string, error)
	Name() string
}

type Handler struct {
	catalog *usecase.CatalogUseCase
	orders  *usecase.OrderUseCase
	diag    StoreDiagnostics
	logger  *logger.Logger
}

func NewHandler(catalog *usecase.CatalogUseCase, orders *usecase.OrderUseCase, diag StoreDiagnostics, logger *logger.Logger) *Handler {
	return &Handler{
		catalog: catalog,
		orders:  orders,
		diag:    diag,
		logger:  logger,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.root)
	r.GET("/test", h.testDatabase)

	r.POST("/restaurants", h.createRestaurant)
	r.GET("/restaurants", h.listRestaurants)

	r.POST("/menu", h.createMenuItem)
	r.GET("/menu/:restaurant_id", h.listMenu)

	r.POST("/orders", h.placeOrder)
	r.GET("/orders", h.listOrders)

	r.POST("/seed", h.seed)
}

func (h *Handler) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "Food Delivery API",
		"status":  "ok",
	})
}

// testDatabase reports store connectivity and configuration without
// exposing the actual connection string.
func (h *Handler) testDatabase(c *gin.Context) {
	resp := gin.H{
		"backend":           "running",
		"database":          "not available",
		"database_url":      envFlag("DATABASE_URL"),
		"database_name":     envFlag("DATABASE_NAME"),
		"connection_status": "not connected",
		"collections":       []string{},
	}

	if h.diag == nil {
		c.JSON(http.StatusOK, resp)
		return
	}

	if err := h.diag.Ping(c.Request.Context()); err != nil {
		resp["database"] = "error: " + err.Error()
		c.JSON(http.StatusOK, resp)
		return
	}

	resp["database"] = "connected"
	resp["connection_status"] = "connected"
	resp["database_name"] = h.diag.Name()

	if names, err := h.diag.CollectionNames(c.Request.Context(), 10); err == nil {
		resp["collections"] = names
	} else {
		resp["database"] = "connected but error: " + err.Error()
	}

	c.JSON(http.StatusOK, resp)
}

func envFlag(key string) string {
	if os.Getenv(key) != "" {
		return "set"
	}
	return "not set"
}

func (h *Handler) createRestaurant(c *gin.Context) {
	var req createRestaurantRequest
	if !h.bind(c, &req) {
		return
	}

	id, err := h.catalog.CreateRestaurant(c.Request.Context(), req.toEntity())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

func (h *Handler) listRestaurants(c *gin.Context) {
	restaurants, err := h.catalog.ListRestaurants(c.Request.Context(), c.Query("q"), c.Query("cuisine"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	if restaurants == nil {
		restaurants = []entities.Restaurant{}
	}
	c.JSON(http.StatusOK, restaurants)
}

func (h *Handler) createMenuItem(c *gin.Context) {
	var req createMenuItemRequest
	if !h.bind(c, &req) {
		return
	}

	id, err := h.catalog.CreateMenuItem(c.Request.Context(), req.toEntity())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

func (h *Handler) listMenu(c *gin.Context) {
	items, err := h.catalog.ListMenu(c.Request.Context(), c.Param("restaurant_id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	if items == nil {
		items = []entities.MenuItem{}
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) placeOrder(c *gin.Context) {
	var req placeOrderRequest
	if !h.bind(c, &req) {
		return
	}

	result, err := h.orders.PlaceOrder(c.Request.Context(), usecase.PlaceOrderInput{
		RestaurantID:    req.RestaurantID,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		Items:           req.toItems(),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) listOrders(c *gin.Context) {
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "limit must be an integer"})
		return
	}

	orders, err := h.orders.ListOrders(c.Request.Context(), limit)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if orders == nil {
		orders = []entities.Order{}
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) seed(c *gin.Context) {
	result, err := h.catalog.Seed(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	if result.AlreadySeeded {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Data already seeded"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"restaurants": result.Restaurants,
		"items":       result.MenuItems,
	})
}
