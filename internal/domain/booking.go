package domain

import "time"

type BookingStatus string

const (
	BookingConfirmed             BookingStatus = "confirmed"
	BookingCancellationRequested BookingStatus = "cancellation_requested"
	BookingModificationRequested BookingStatus = "modification_requested"
	BookingCancelled             BookingStatus = "cancelled"
)

// Booking reserves a facility for one calendar date and one time window.
// All bookings created by a single multi-day request share a GroupID so
// the series can be cancelled together. Status never leaves "cancelled".
type Booking struct {
	ID              int64         `json:"id"`
	FacilityID      int64         `json:"facility_id" validate:"required"`
	UserID          int64         `json:"user_id" validate:"required"`
	GroupID         string        `json:"group_id"`
	Date            time.Time     `json:"date"`
	StartTime       string        `json:"start_time"`
	EndTime         string        `json:"end_time"`
	Status          BookingStatus `json:"status"`
	TotalAmount     float64       `json:"total_amount"`
	NumberOfPersons int           `json:"number_of_persons"`
	InvoiceID       *int64        `json:"invoice_id,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`

	Facility *Facility `json:"facility,omitempty" gorm:"foreignKey:FacilityID"`
	User     *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

// BookingCancellation is a resident request to cancel one booking. A
// multi-day series gets one row per sibling booking; the penalty charged
// on approval lands on the originating request only.
type BookingCancellation struct {
	ID                  int64         `json:"id"`
	BookingID           int64         `json:"booking_id"`
	RequestedBy         int64         `json:"requested_by"`
	Reason              string        `json:"reason" gorm:"type:text"`
	Status              RequestStatus `json:"status"`
	CancellationCharges float64       `json:"cancellation_charges"`
	ReviewedBy          *int64        `json:"reviewed_by,omitempty"`
	CreatedAt           time.Time     `json:"created_at"`
	ReviewedAt          *time.Time    `json:"reviewed_at,omitempty"`

	Booking *Booking `json:"booking,omitempty" gorm:"foreignKey:BookingID"`
}

// BookingModification proposes moving a booking to a new date/window.
// The booking itself is only touched when an admin approves.
type BookingModification struct {
	ID           int64         `json:"id"`
	BookingID    int64         `json:"booking_id"`
	RequestedBy  int64         `json:"requested_by"`
	NewDate      time.Time     `json:"new_date"`
	NewStartTime string        `json:"new_start_time"`
	NewEndTime   string        `json:"new_end_time"`
	Status       RequestStatus `json:"status"`
	ReviewedBy   *int64        `json:"reviewed_by,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	ReviewedAt   *time.Time    `json:"reviewed_at,omitempty"`

	Booking *Booking `json:"booking,omitempty" gorm:"foreignKey:BookingID"`
}
