package facility

import (
	"context"
	"time"

	"societyhub/internal/domain"
)

// FacilityRepository defines the catalog persistence operations.
type FacilityRepository interface {
	Create(ctx context.Context, f *domain.Facility) error
	Update(ctx context.Context, f *domain.Facility) error
	GetByID(ctx context.Context, id int64) (*domain.Facility, error)
	GetAll(ctx context.Context) ([]domain.Facility, error)
	ReplaceSlots(ctx context.Context, facilityID int64, slots []domain.FacilitySlot) error
}

type BookingReader interface {
	ListForFacilityDate(ctx context.Context, facilityID int64, date time.Time) ([]domain.Booking, error)
}
