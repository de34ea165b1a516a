package facility

import (
	"context"
	"time"

	"societyhub/internal/domain"
)

type Service struct {
	facilities FacilityRepository
	bookings   BookingReader
}

func NewService(facilities FacilityRepository, bookings BookingReader) *Service {
	return &Service{
		facilities: facilities,
		bookings:   bookings,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Facility, error) {
	return s.facilities.GetAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Facility, error) {
	return s.facilities.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, req SaveFacilityRequest) (*domain.Facility, error) {
	f, err := fromSaveRequest(req)
	if err != nil {
		return nil, err
	}

	if err := s.facilities.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *Service) Update(ctx context.Context, id int64, req SaveFacilityRequest) (*domain.Facility, error) {
	existing, err := s.facilities.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	f, err := fromSaveRequest(req)
	if err != nil {
		return nil, err
	}
	f.ID = existing.ID
	f.CreatedAt = existing.CreatedAt
	slots := f.Slots
	f.Slots = nil

	if err := s.facilities.Update(ctx, f); err != nil {
		return nil, err
	}
	if f.PricingModel == domain.PricingPerSlot {
		if err := s.facilities.ReplaceSlots(ctx, f.ID, slots); err != nil {
			return nil, err
		}
	}

	return s.facilities.GetByID(ctx, id)
}

// GetSlots loads the day's bookings and runs the slot generator.
// excludeBookingID carries the booking currently being edited, 0 for
// none.
func (s *Service) GetSlots(ctx context.Context, facilityID int64, dateStr string, excludeBookingID int64) ([]SlotOption, error) {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, ErrValidation
	}

	f, err := s.facilities.GetByID(ctx, facilityID)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookings.ListForFacilityDate(ctx, facilityID, date)
	if err != nil {
		return nil, err
	}

	return GenerateSlots(f, bookings, excludeBookingID), nil
}

func fromSaveRequest(req SaveFacilityRequest) (*domain.Facility, error) {
	model := domain.PricingModel(req.PricingModel)
	switch model {
	case domain.PricingHourly, domain.PricingPerSlot, domain.PricingPerDay:
	default:
		return nil, ErrValidation
	}

	status := domain.FacilityStatus(req.Status)
	if status == "" {
		status = domain.FacilityAvailable
	}

	f := &domain.Facility{
		Name:                req.Name,
		Description:         req.Description,
		PricingModel:        model,
		HourlyRate:          req.HourlyRate,
		OpenTime:            req.OpenTime,
		CloseTime:           req.CloseTime,
		ScheduleType:        domain.ScheduleType(req.ScheduleType),
		MorningOpen:         req.MorningOpen,
		MorningClose:        req.MorningClose,
		EveningOpen:         req.EveningOpen,
		EveningClose:        req.EveningClose,
		Capacity:            req.Capacity,
		Status:              status,
		PerPersonApplicable: req.PerPersonApplicable,
		GSTApplicable:       req.GSTApplicable,
		GSTRate:             req.GSTRate,
		TaxCode:             req.TaxCode,
	}

	for _, in := range req.Slots {
		f.Slots = append(f.Slots, domain.FacilitySlot{
			Name:      in.Name,
			StartTime: in.StartTime,
			EndTime:   in.EndTime,
			Price:     in.Price,
		})
	}

	return f, nil
}
