package facility

type SlotInput struct {
	Name      string  `json:"name" binding:"required"`
	StartTime string  `json:"start_time" binding:"required"`
	EndTime   string  `json:"end_time" binding:"required"`
	Price     float64 `json:"price"`
}

type SaveFacilityRequest struct {
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	PricingModel string  `json:"pricing_model" binding:"required"`
	HourlyRate   float64 `json:"hourly_rate"`
	OpenTime     string  `json:"open_time"`
	CloseTime    string  `json:"close_time"`
	ScheduleType string  `json:"schedule_type"`
	MorningOpen  string  `json:"morning_open"`
	MorningClose string  `json:"morning_close"`
	EveningOpen  string  `json:"evening_open"`
	EveningClose string  `json:"evening_close"`
	Capacity     int     `json:"capacity"`
	Status       string  `json:"status"`

	PerPersonApplicable bool    `json:"per_person_applicable"`
	GSTApplicable       bool    `json:"gst_applicable"`
	GSTRate             float64 `json:"gst_rate"`
	TaxCode             string  `json:"tax_code"`

	Slots []SlotInput `json:"slots"`
}
