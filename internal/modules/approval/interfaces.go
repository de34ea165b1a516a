package approval

import (
	"context"
	"time"

	"societyhub/internal/domain"
)

type RequestRepository interface {
	GetCancellationByID(ctx context.Context, id int64) (*domain.BookingCancellation, error)
	ListPendingCancellationsForBookings(ctx context.Context, bookingIDs []int64) ([]domain.BookingCancellation, error)
	ListCancellations(ctx context.Context, status string) ([]domain.BookingCancellation, error)
	ResolveCancellation(ctx context.Context, id int64, status domain.RequestStatus, reviewerID int64, charges float64) error

	GetModificationByID(ctx context.Context, id int64) (*domain.BookingModification, error)
	ListModifications(ctx context.Context, status string) ([]domain.BookingModification, error)
	ResolveModification(ctx context.Context, id int64, status domain.RequestStatus, reviewerID int64) error
}

type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByGroupID(ctx context.Context, groupID string) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, bookingID int64, status string) error
	ApplyModification(ctx context.Context, bookingID int64, date time.Time, start, end string) error
}

type FacilityReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Facility, error)
}

type UserReader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// InvoiceService covers the billing side effects of an approved
// cancellation: voiding the original invoice and raising the penalty.
type InvoiceService interface {
	CancelBookingInvoice(ctx context.Context, invoiceID *int64, unitID int64, facilityName string, groupTotal float64) error
	CreateCancellationFee(ctx context.Context, unitID int64, facilityName string, bookingCount int, penalty, gstRate float64, applyGST bool) (*domain.MaintenanceFee, error)
}

type Publisher interface {
	Publish(table, action string, id int64)
}
