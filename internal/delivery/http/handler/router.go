package handler

import (
	"github.com/gin-gonic/gin"

	"food-delivery-service/internal/delivery/http/middleware"
	"food-delivery-service/internal/infrastructure/metrics"
)

func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS())
	r.Use(middleware.RequestLogger(h.logger))
	r.Use(metrics.Middleware())

	r.GET("/metrics", metrics.Handler())
	h.RegisterRoutes(r)

	return r
}
