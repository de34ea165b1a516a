package billing

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"societyhub/internal/domain"

	"gorm.io/gorm"
)

// amountEpsilon bounds the fuzzy amount match used for legacy invoices
// that predate the invoice_id back-link.
const amountEpsilon = 0.01

const feeDueDays = 7

type Service struct {
	fees  FeeRepository
	units UnitReader
}

func NewService(fees FeeRepository, units UnitReader) *Service {
	return &Service{fees: fees, units: units}
}

// CreateBookingFee raises one invoice line covering a whole booking
// series. Tax follows the facility's GST settings.
func (s *Service) CreateBookingFee(ctx context.Context, unitID int64, f *domain.Facility, from, to time.Time, baseAmount float64) (*domain.MaintenanceFee, error) {
	if unitID == 0 || baseAmount < 0 {
		return nil, ErrValidation
	}

	var tax float64
	if f.GSTApplicable {
		tax = round2(baseAmount * f.GSTRate / 100)
	}

	desc := fmt.Sprintf("Facility booking: %s (%s)", f.Name, formatRange(from, to))

	fee := &domain.MaintenanceFee{
		UnitID:        unitID,
		Amount:        round2(baseAmount),
		TaxAmount:     tax,
		TotalAmount:   round2(baseAmount + tax),
		FeeType:       domain.FeeFacilityBooking,
		Description:   desc,
		DueDate:       time.Now().AddDate(0, 0, feeDueDays),
		PaymentStatus: domain.FeePending,
	}

	if err := s.fees.Create(ctx, fee); err != nil {
		return nil, err
	}
	return fee, nil
}

// CreateCancellationFee raises one penalty invoice for a cancelled
// series. The penalty is charged per group, not per day.
func (s *Service) CreateCancellationFee(ctx context.Context, unitID int64, facilityName string, bookingCount int, penalty, gstRate float64, applyGST bool) (*domain.MaintenanceFee, error) {
	if unitID == 0 || penalty <= 0 {
		return nil, ErrValidation
	}

	var tax float64
	if applyGST {
		tax = round2(penalty * gstRate / 100)
	}

	fee := &domain.MaintenanceFee{
		UnitID:        unitID,
		Amount:        round2(penalty),
		TaxAmount:     tax,
		TotalAmount:   round2(penalty + tax),
		FeeType:       domain.FeeCancellationCharge,
		Description:   fmt.Sprintf("Cancellation charges: %s (%d booking(s))", facilityName, bookingCount),
		DueDate:       time.Now().AddDate(0, 0, feeDueDays),
		PaymentStatus: domain.FeePending,
	}

	if err := s.fees.Create(ctx, fee); err != nil {
		return nil, err
	}
	return fee, nil
}

// CancelBookingInvoice voids the invoice raised for a booking series.
// An invoice_id back-link is authoritative; the fuzzy path (pending fee
// on the same unit whose description names the facility and whose
// amount is within epsilon of the series total) exists only for rows
// created before the back-link did, and is best-effort.
func (s *Service) CancelBookingInvoice(ctx context.Context, invoiceID *int64, unitID int64, facilityName string, groupTotal float64) error {
	if invoiceID != nil {
		fee, err := s.fees.GetByID(ctx, *invoiceID)
		if err != nil {
			return err
		}
		return s.fees.MarkCancelled(ctx, fee.ID, fee.Description+" (Cancelled)")
	}

	if unitID == 0 {
		return ErrInvoiceNotFound
	}

	pending, err := s.fees.ListPendingByUnit(ctx, unitID)
	if err != nil {
		return err
	}

	for _, fee := range pending {
		if fee.FeeType != domain.FeeFacilityBooking {
			continue
		}
		if !strings.Contains(fee.Description, facilityName) {
			continue
		}
		if math.Abs(fee.Amount-groupTotal) > amountEpsilon {
			continue
		}
		return s.fees.MarkCancelled(ctx, fee.ID, fee.Description+" (Cancelled)")
	}

	return ErrInvoiceNotFound
}

func (s *Service) ListUnitFees(ctx context.Context, unitID int64) ([]domain.MaintenanceFee, error) {
	if unitID == 0 {
		return nil, ErrValidation
	}
	return s.fees.ListByUnit(ctx, unitID)
}

// ListUnitFeesAdmin serves the admin ledger view for an arbitrary unit.
func (s *Service) ListUnitFeesAdmin(ctx context.Context, unitID int64) (*domain.Unit, []domain.MaintenanceFee, error) {
	unit, err := s.units.GetByID(ctx, unitID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrUnitNotFound
		}
		return nil, nil, err
	}

	fees, err := s.fees.ListByUnit(ctx, unitID)
	if err != nil {
		return nil, nil, err
	}
	return unit, fees, nil
}

func formatRange(from, to time.Time) string {
	if from.Equal(to) {
		return from.Format("2006-01-02")
	}
	return from.Format("2006-01-02") + " to " + to.Format("2006-01-02")
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
