package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/airportbooking/internal/domain"
	"github.com/Domenick1991/airportbooking/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

type flightRequest struct {
	ID          string `json:"id"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Price       string `json:"price"`
	Seats       int    `json:"seats"`
}

type flightUpdateRequest struct {
	Source      *string `json:"source"`
	Destination *string `json:"destination"`
	Price       *string `json:"price"`
	Seats       *int    `json:"seats"`
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.search)
	router.GET("/:id", h.get)
}

func (h *FlightHandler) RegisterAdmin(router *gin.RouterGroup) {
	router.POST("/", h.add)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.remove)
}

func (h *FlightHandler) search(c *gin.Context) {
	criteria := flights.SearchCriteria{
		Source:      c.Query("source"),
		Destination: c.Query("destination"),
	}
	if raw := c.Query("min_price"); raw != "" {
		cents, err := domain.ParsePrice(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid min_price"})
			return
		}
		criteria.MinPriceCents = cents
	}
	if raw := c.Query("max_price"); raw != "" {
		cents, err := domain.ParsePrice(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid max_price"})
			return
		}
		criteria.MaxPriceCents = cents
	}

	results, err := h.service.Search(c.Request.Context(), criteria)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, results)
}

func (h *FlightHandler) get(c *gin.Context) {
	flight, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, flights.ErrFlightNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, flight)
}

func (h *FlightHandler) add(c *gin.Context) {
	var req flightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cents, err := domain.ParsePrice(req.Price)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid price"})
		return
	}

	flight := domain.Flight{
		ID:          req.ID,
		Source:      req.Source,
		Destination: req.Destination,
		PriceCents:  cents,
		Seats:       req.Seats,
	}
	if err := h.service.Add(c.Request.Context(), flight); err != nil {
		switch {
		case errors.Is(err, flights.ErrDuplicateFlightID):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, flights.ErrInvalidFlight):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": domain.NormalizeFlightID(req.ID)})
}

func (h *FlightHandler) update(c *gin.Context) {
	var req flightUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := flights.FlightUpdate{
		Source:      req.Source,
		Destination: req.Destination,
		Seats:       req.Seats,
	}
	if req.Price != nil {
		cents, err := domain.ParsePrice(*req.Price)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid price"})
			return
		}
		update.PriceCents = &cents
	}

	flight, err := h.service.Update(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		switch {
		case errors.Is(err, flights.ErrFlightNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, flights.ErrInvalidFlight):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, flight)
}

func (h *FlightHandler) remove(c *gin.Context) {
	if err := h.service.Remove(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, flights.ErrFlightNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "removed"})
}
