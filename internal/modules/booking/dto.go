package booking

import "societyhub/internal/domain"

type CreateBookingRequest struct {
	FacilityID      int64  `json:"facility_id" binding:"required"`
	Date            string `json:"date" binding:"required"`
	EndDate         string `json:"end_date"`
	SlotStart       string `json:"slot_start"`
	StartTime       string `json:"start_time"`
	DurationHours   int    `json:"duration_hours"`
	NumberOfPersons int    `json:"number_of_persons"`
}

type QuoteRequest struct {
	FacilityID      int64  `json:"facility_id" binding:"required"`
	Date            string `json:"date" binding:"required"`
	EndDate         string `json:"end_date"`
	SlotStart       string `json:"slot_start"`
	DurationHours   int    `json:"duration_hours"`
	NumberOfPersons int    `json:"number_of_persons"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type ModifyBookingRequest struct {
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type CreateBookingResult struct {
	GroupID  string                 `json:"group_id"`
	Bookings []domain.Booking       `json:"bookings"`
	Invoice  *domain.MaintenanceFee `json:"invoice,omitempty"`
}
