package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Domenick1991/airportbooking/internal/domain"
	"github.com/Domenick1991/airportbooking/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
	records booking.RecordsUseCase
}

type createBookingRequest struct {
	Username string `json:"username"`
	FlightID string `json:"flight_id"`
	Seats    int    `json:"seats"`
}

type cancelBookingRequest struct {
	Username string `json:"username"`
	Reason   string `json:"reason"`
}

type bookingResponse struct {
	BookingID   int64  `json:"booking_id"`
	FlightID    string `json:"flight_id"`
	ReceiptID   string `json:"receipt_id"`
	Seats       int    `json:"seats"`
	Total       string `json:"total"`
	BookingDate string `json:"booking_date"`
	Receipt     string `json:"receipt"`
}

type cancellationResponse struct {
	BookingID string `json:"booking_id"`
	FlightID  string `json:"flight_id"`
	Seats     int    `json:"seats"`
	Total     string `json:"total"`
	Refunded  string `json:"refunded"`
	Reason    string `json:"reason"`
	Receipt   string `json:"receipt"`
}

func NewBookingHandler(service booking.BookingUseCase, records booking.RecordsUseCase) *BookingHandler {
	return &BookingHandler{service: service, records: records}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/", h.list)
	router.DELETE("/:id", h.cancel)
}

func (h *BookingHandler) RegisterAdmin(router *gin.RouterGroup) {
	router.GET("/", h.listAll)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.Book(c.Request.Context(), req.Username, req.FlightID, req.Seats)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, bookingResponse{
		BookingID:   result.Booking.ID,
		FlightID:    result.Booking.FlightID,
		ReceiptID:   result.Booking.ReceiptID,
		Seats:       result.Booking.SeatsBooked,
		Total:       domain.FormatPrice(result.TotalCents),
		BookingDate: result.Booking.BookingDate.Format(time.RFC3339),
		Receipt:     result.ReceiptPath,
	})
}

func (h *BookingHandler) cancel(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	var req cancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.Cancel(c.Request.Context(), req.Username, bookingID, req.Reason)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, cancellationResponse{
		BookingID: strconv.FormatInt(result.Cancelled.BookingID, 10),
		FlightID:  result.Cancelled.FlightID,
		Seats:     result.Cancelled.SeatsBooked,
		Total:     domain.FormatPrice(result.Cancelled.TotalCents),
		Refunded:  domain.FormatPrice(result.Cancelled.RefundedCents),
		Reason:    result.Cancelled.Reason,
		Receipt:   result.ReceiptPath,
	})
}

func (h *BookingHandler) list(c *gin.Context) {
	identifier := c.Query("user")
	if identifier == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user query parameter is required"})
		return
	}

	views, err := h.service.ListBookings(c.Request.Context(), identifier)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *BookingHandler) listAll(c *gin.Context) {
	records, err := h.records.ListAllRecords(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, records)
}

func respondBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrFlightNotFound),
		errors.Is(err, booking.ErrUserNotFound),
		errors.Is(err, booking.ErrNoBookingsFound),
		errors.Is(err, booking.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrInvalidSeatCount):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrFlightLockHeld):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
