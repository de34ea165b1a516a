package approval

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
	rg.GET("/requests/cancellations", h.ListCancellations)
	rg.GET("/requests/modifications", h.ListModifications)
	rg.POST("/requests/cancellations/:id/review", h.ReviewCancellation)
	rg.POST("/requests/modifications/:id/review", h.ReviewModification)
}

func (h *Handler) ListCancellations(c *gin.Context) {
	reqs, err := h.service.ListCancellations(c.Request.Context(), c.Query("status"))
	if err != nil {
		fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load cancellation requests")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"requests": reqs},
	})
}

func (h *Handler) ListModifications(c *gin.Context) {
	reqs, err := h.service.ListModifications(c.Request.Context(), c.Query("status"))
	if err != nil {
		fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load modification requests")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"requests": reqs},
	})
}

func (h *Handler) ReviewCancellation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request id")
		return
	}

	var req ReviewCancellationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.ReviewCancellation(c.Request.Context(), c.GetInt64("user_id"), id, req); err != nil {
		reviewError(c, err, "Failed to review cancellation request")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) ReviewModification(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request id")
		return
	}

	var req ReviewModificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.ReviewModification(c.Request.Context(), c.GetInt64("user_id"), id, req.Decision); err != nil {
		reviewError(c, err, "Failed to review modification request")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func reviewError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrValidation):
		fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid review payload")
	case errors.Is(err, ErrAlreadyResolved):
		fail(c, http.StatusConflict, "ALREADY_RESOLVED", "Request has already been reviewed")
	case errors.Is(err, ErrInvalidStatusTransition):
		fail(c, http.StatusConflict, "INVALID_STATUS", "Booking is no longer in a reviewable state")
	case errors.Is(err, gorm.ErrRecordNotFound):
		fail(c, http.StatusNotFound, "NOT_FOUND", "Request not found")
	default:
		fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
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
