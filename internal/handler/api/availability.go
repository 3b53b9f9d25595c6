package api

import (
	"errors"
	"net/http"
	"time"

	resdto "salon-scheduler/internal/handler/dto/response"
	"salon-scheduler/internal/pkg/errs"
	"salon-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	availability queries.AvailabilityQueries
}

func NewAvailabilityHandler(availability queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{availability: availability}
}

// GetSlots lists the day's candidate start times.
// GET /salons/:id/slots?service_id=...&date=2026-09-01[&staff_id=...]
func (h *AvailabilityHandler) GetSlots(c *gin.Context) {
	salonID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid salon ID format",
		})
		return
	}

	serviceID, err := uuid.Parse(c.Query("service_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "service_id is required",
		})
		return
	}

	dateStr := c.Query("date")
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "date must be formatted as YYYY-MM-DD",
		})
		return
	}

	var staffID *uuid.UUID
	if raw := c.Query("staff_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid staff ID format",
			})
			return
		}
		staffID = &id
	}

	slots, err := h.availability.GetAvailableSlots(c.Request.Context(), queries.GetSlotsInput{
		SalonID:   salonID,
		ServiceID: serviceID,
		StaffID:   staffID,
		Date:      date,
	})
	if err != nil {
		h.writeQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlots(dateStr, slots))
}

// CheckAvailability answers whether one concrete booking could be
// placed.
// GET /salons/:id/availability?service_id=...&staff_id=...&start=RFC3339[&exclude_booking_id=...]
func (h *AvailabilityHandler) CheckAvailability(c *gin.Context) {
	salonID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid salon ID format",
		})
		return
	}

	serviceID, err := uuid.Parse(c.Query("service_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "service_id is required",
		})
		return
	}

	staffID, err := uuid.Parse(c.Query("staff_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "staff_id is required",
		})
		return
	}

	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "start must be formatted as RFC3339",
		})
		return
	}

	var excludeBookingID *uuid.UUID
	if raw := c.Query("exclude_booking_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid booking ID format",
			})
			return
		}
		excludeBookingID = &id
	}

	report, err := h.availability.CheckAvailability(c.Request.Context(), queries.CheckAvailabilityInput{
		SalonID:          salonID,
		ServiceID:        serviceID,
		StaffID:          staffID,
		Start:            start,
		ExcludeBookingID: excludeBookingID,
	})
	if err != nil {
		h.writeQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityReport(report))
}

func (h *AvailabilityHandler) writeQueryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrInvalidTimeRange):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid time range",
		})
	case errors.Is(err, errs.ErrSalonNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Salon not found",
		})
	case errors.Is(err, errs.ErrServiceNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Service not found",
		})
	case errors.Is(err, errs.ErrStaffNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Staff not found",
		})
	case errors.Is(err, errs.ErrServiceInactive):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Service is not active",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
