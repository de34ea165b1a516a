package facility

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
	rg.GET("/facilities", h.List)
	rg.GET("/facilities/:id", h.Get)
	rg.GET("/facilities/:id/slots", h.GetSlots)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/facilities", h.Create)
	rg.PUT("/facilities/:id", h.Update)
}

func (h *Handler) List(c *gin.Context) {
	fs, err := h.service.List(c.Request.Context())
	if err != nil {
		internalError(c, "Failed to load facilities")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"facilities": fs},
	})
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		validationError(c, "Invalid facility id")
		return
	}

	f, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c)
			return
		}
		internalError(c, "Failed to load facility")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"facility": f},
	})
}

func (h *Handler) GetSlots(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		validationError(c, "Invalid facility id")
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		validationError(c, "date is required")
		return
	}

	var exclude int64
	if raw := c.Query("exclude_booking_id"); raw != "" {
		exclude, _ = strconv.ParseInt(raw, 10, 64)
	}

	slots, err := h.service.GetSlots(c.Request.Context(), id, dateStr, exclude)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			validationError(c, "Invalid date")
		case errors.Is(err, gorm.ErrRecordNotFound):
			notFound(c)
		default:
			internalError(c, "Failed to load slots")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"slots": slots},
	})
}

func (h *Handler) Create(c *gin.Context) {
	var req SaveFacilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, "Invalid request body")
		return
	}

	f, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			validationError(c, "Invalid facility payload")
			return
		}
		internalError(c, "Failed to create facility")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    gin.H{"facility": f},
	})
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		validationError(c, "Invalid facility id")
		return
	}

	var req SaveFacilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, "Invalid request body")
		return
	}

	f, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			validationError(c, "Invalid facility payload")
		case errors.Is(err, gorm.ErrRecordNotFound):
			notFound(c)
		default:
			internalError(c, "Failed to update facility")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"facility": f},
	})
}

func validationError(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "VALIDATION_ERROR",
			"message": msg,
		},
	})
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "NOT_FOUND",
			"message": "Facility not found",
		},
	})
}

func internalError(c *gin.Context, msg string) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "INTERNAL_ERROR",
			"message": msg,
		},
	})
}
