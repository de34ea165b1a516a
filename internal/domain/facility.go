package domain

import "time"

type PricingModel string

const (
	PricingHourly  PricingModel = "hourly"
	PricingPerSlot PricingModel = "per_slot"
	PricingPerDay  PricingModel = "per_day"
)

type FacilityStatus string

const (
	FacilityAvailable   FacilityStatus = "Available"
	FacilityMaintenance FacilityStatus = "Maintenance"
	FacilityClosed      FacilityStatus = "Closed"
)

type ScheduleType string

const (
	ScheduleFull  ScheduleType = "full"
	ScheduleSplit ScheduleType = "split"
)

type Facility struct {
	ID           int64          `json:"id"`
	Name         string         `json:"name" validate:"required"`
	Description  string         `json:"description,omitempty" gorm:"type:text"`
	PricingModel PricingModel   `json:"pricing_model"`
	HourlyRate   float64        `json:"hourly_rate"`
	OpenTime     string         `json:"open_time,omitempty"`
	CloseTime    string         `json:"close_time,omitempty"`
	ScheduleType ScheduleType   `json:"schedule_type,omitempty"`
	MorningOpen  string         `json:"morning_open,omitempty"`
	MorningClose string         `json:"morning_close,omitempty"`
	EveningOpen  string         `json:"evening_open,omitempty"`
	EveningClose string         `json:"evening_close,omitempty"`
	Capacity     int            `json:"capacity"`
	Status       FacilityStatus `json:"status"`

	PerPersonApplicable bool    `json:"per_person_applicable"`
	GSTApplicable       bool    `json:"gst_applicable"`
	GSTRate             float64 `json:"gst_rate"`
	TaxCode             string  `json:"tax_code,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Slots []FacilitySlot `json:"slots,omitempty" gorm:"foreignKey:FacilityID"`
}

// FacilitySlot is a named fixed-price window for per_slot facilities.
// Times are "15:04" strings; the zero-padded format keeps lexical order
// equal to chronological order.
type FacilitySlot struct {
	ID         int64   `json:"id"`
	FacilityID int64   `json:"facility_id"`
	Name       string  `json:"name"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	Price      float64 `json:"price"`
}
