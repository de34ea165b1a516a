package booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
	rg.POST("/bookings/quote", h.Quote)
	rg.GET("/bookings/my", h.MyBookings)
	rg.POST("/bookings/:id/cancel", h.RequestCancellation)
	rg.POST("/bookings/:id/modify", h.RequestModification)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	userID := c.GetInt64("user_id")
	var unitID *int64
	if v := c.GetInt64("unit_id"); v != 0 {
		unitID = &v
	}

	result, err := h.service.CreateBooking(c.Request.Context(), userID, unitID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing or invalid date/slot selection")
		case errors.Is(err, ErrNotAvailable), errors.Is(err, ErrSlotTaken):
			fail(c, http.StatusConflict, "BOOKING_CONFLICT", "Facility is not available for the selected time")
		case errors.Is(err, gorm.ErrRecordNotFound):
			fail(c, http.StatusNotFound, "NOT_FOUND", "Facility not found")
		default:
			fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Error creating booking")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    result,
	})
}

func (h *Handler) Quote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	q, err := h.service.QuoteFor(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing or invalid date/slot selection")
		case errors.Is(err, gorm.ErrRecordNotFound):
			fail(c, http.StatusNotFound, "NOT_FOUND", "Facility not found")
		default:
			fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute price")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"quote": q},
	})
}

func (h *Handler) MyBookings(c *gin.Context) {
	userID := c.GetInt64("user_id")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	bookings, err := h.service.GetMyBookings(c.Request.Context(), userID, limit, offset)
	if err != nil {
		fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load bookings")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"bookings": bookings},
	})
}

func (h *Handler) RequestCancellation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking id")
		return
	}

	var req CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "Cancellation reason is required")
		return
	}

	reqs, err := h.service.RequestCancellation(c.Request.Context(), c.GetInt64("user_id"), id, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "Cancellation reason is required")
		case errors.Is(err, ErrForbidden):
			fail(c, http.StatusForbidden, "FORBIDDEN", "Not your booking")
		case errors.Is(err, ErrInvalidStatusTransition):
			fail(c, http.StatusConflict, "INVALID_STATUS", "Booking cannot be cancelled in its current status")
		case errors.Is(err, gorm.ErrRecordNotFound):
			fail(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		default:
			fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to submit cancellation request")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    gin.H{"requests": reqs},
	})
}

func (h *Handler) RequestModification(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking id")
		return
	}

	var req ModifyBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "New date and time window are required")
		return
	}

	m, err := h.service.RequestModification(c.Request.Context(), c.GetInt64("user_id"), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date or time window")
		case errors.Is(err, ErrForbidden):
			fail(c, http.StatusForbidden, "FORBIDDEN", "Not your booking")
		case errors.Is(err, ErrGroupEditUnsupported):
			fail(c, http.StatusBadRequest, "GROUP_EDIT_UNSUPPORTED", "A multi-day booking can only be cancelled, not edited")
		case errors.Is(err, ErrInvalidStatusTransition):
			fail(c, http.StatusConflict, "INVALID_STATUS", "Booking cannot be modified in its current status")
		case errors.Is(err, gorm.ErrRecordNotFound):
			fail(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		default:
			fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to submit modification request")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    gin.H{"request": m},
	})
}

func fail(c *gin.Context, status int, code, msg string) {
	c.JSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": msg,
		},
	})
}
