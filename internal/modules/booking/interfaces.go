package booking

import (
	"context"
	"time"

	"societyhub/internal/domain"
)

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByGroupID(ctx context.Context, groupID string) ([]domain.Booking, error)
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, bookingID int64, status string) error
	SetInvoiceIDForGroup(ctx context.Context, groupID string, invoiceID int64) error
}

type FacilityReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Facility, error)
}

type RequestWriter interface {
	CreateCancellations(ctx context.Context, reqs []domain.BookingCancellation) ([]domain.BookingCancellation, error)
	CreateModification(ctx context.Context, m *domain.BookingModification) error
}

// InvoiceCreator is the billing side effect. Failures here never roll a
// created booking back.
type InvoiceCreator interface {
	CreateBookingFee(ctx context.Context, unitID int64, f *domain.Facility, from, to time.Time, baseAmount float64) (*domain.MaintenanceFee, error)
}

// Publisher feeds the realtime change channel. Best-effort.
type Publisher interface {
	Publish(table, action string, id int64)
}
