package domain

import "time"

type FeeType string

const (
	FeeFacilityBooking    FeeType = "facility_booking"
	FeeCancellationCharge FeeType = "cancellation_charge"
	FeeMaintenance        FeeType = "maintenance"
)

type FeePaymentStatus string

const (
	FeePending   FeePaymentStatus = "pending"
	FeePaid      FeePaymentStatus = "paid"
	FeeCancelled FeePaymentStatus = "cancelled"
)

// MaintenanceFee is a billing line charged to a unit. Booking and
// penalty fees are raised here as side effects and owned by the finance
// subsystem afterwards.
type MaintenanceFee struct {
	ID            int64            `json:"id"`
	UnitID        int64            `json:"unit_id"`
	Amount        float64          `json:"amount"`
	TaxAmount     float64          `json:"tax_amount"`
	TotalAmount   float64          `json:"total_amount"`
	FeeType       FeeType          `json:"fee_type"`
	Description   string           `json:"description" gorm:"type:text"`
	DueDate       time.Time        `json:"due_date"`
	PaymentStatus FeePaymentStatus `json:"payment_status"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`

	Unit *Unit `json:"unit,omitempty" gorm:"foreignKey:UnitID"`
}
