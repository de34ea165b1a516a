package booking

import (
	"context"
	"log"
	"strings"
	"time"

	"societyhub/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type Service struct {
	bookings   BookingRepository
	facilities FacilityReader
	requests   RequestWriter
	invoices   InvoiceCreator
	events     Publisher
}

func NewService(
	bookings BookingRepository,
	facilities FacilityReader,
	requests RequestWriter,
	invoices InvoiceCreator,
	events Publisher,
) *Service {
	return &Service{
		bookings:   bookings,
		facilities: facilities,
		requests:   requests,
		invoices:   invoices,
		events:     events,
	}
}

// QuoteFor prices a selection without persisting anything.
func (s *Service) QuoteFor(ctx context.Context, req QuoteRequest) (*Quote, error) {
	f, err := s.facilities.GetByID(ctx, req.FacilityID)
	if err != nil {
		return nil, err
	}

	sel, err := parseSelection(f, req.Date, req.EndDate, req.SlotStart, req.DurationHours, req.NumberOfPersons)
	if err != nil {
		return nil, err
	}

	return ComputeQuote(f, sel)
}

// CreateBooking writes one confirmed booking per day of the selection,
// all sharing a fresh group id, then raises one invoice for the series.
// The steps are independent writes: an invoice failure is logged and
// the bookings stand (no rollback), matching the billing audit trail
// the finance side reconciles against.
func (s *Service) CreateBooking(ctx context.Context, userID int64, unitID *int64, req CreateBookingRequest) (*CreateBookingResult, error) {
	f, err := s.facilities.GetByID(ctx, req.FacilityID)
	if err != nil {
		return nil, err
	}
	if f.Status != domain.FacilityAvailable {
		return nil, ErrNotAvailable
	}

	sel, err := parseSelection(f, req.Date, req.EndDate, req.SlotStart, req.DurationHours, req.NumberOfPersons)
	if err != nil {
		return nil, err
	}

	quote, err := ComputeQuote(f, sel)
	if err != nil {
		return nil, err
	}

	start, end, err := resolveWindow(f, sel, req.StartTime)
	if err != nil {
		return nil, err
	}

	persons := sel.Persons
	if persons < 1 {
		persons = 1
	}

	groupID := uuid.NewString()
	perBooking := round2(quote.Amount / float64(quote.Days))

	created := make([]domain.Booking, 0, quote.Days)
	for day := 0; day < quote.Days; day++ {
		b := domain.Booking{
			FacilityID:      f.ID,
			UserID:          userID,
			GroupID:         groupID,
			Date:            midnight(sel.From).AddDate(0, 0, day),
			StartTime:       start,
			EndTime:         end,
			Status:          domain.BookingConfirmed,
			TotalAmount:     perBooking,
			NumberOfPersons: persons,
		}

		if err := s.bookings.Create(ctx, &b); err != nil {
			// the optional postgres no-overlap constraint; absent in
			// sqlite mode, where the later write simply wins
			if pgErr, ok := err.(*pgconn.PgError); ok {
				if pgErr.Code == "23505" || pgErr.Code == "23P01" {
					return nil, ErrSlotTaken
				}
			}
			if day > 0 {
				log.Printf("booking series %s partially created: %d of %d rows persisted before failure: %v",
					groupID, day, quote.Days, err)
			}
			return nil, err
		}
		created = append(created, b)
	}

	result := &CreateBookingResult{
		GroupID:  groupID,
		Bookings: created,
	}

	if unitID == nil || *unitID == 0 {
		log.Printf("booking group %s: user %d has no unit, skipping invoice", groupID, userID)
	} else {
		fee, err := s.invoices.CreateBookingFee(ctx, *unitID, f, sel.From, sel.To, quote.Amount)
		if err != nil {
			log.Printf("booking group %s: invoice creation failed (bookings stand): %v", groupID, err)
		} else {
			result.Invoice = fee
			if err := s.bookings.SetInvoiceIDForGroup(ctx, groupID, fee.ID); err != nil {
				log.Printf("booking group %s: invoice %d link failed: %v", groupID, fee.ID, err)
			} else {
				for i := range result.Bookings {
					id := fee.ID
					result.Bookings[i].InvoiceID = &id
				}
			}
		}
	}

	if s.events != nil {
		s.events.Publish("bookings", "created", created[0].ID)
	}

	return result, nil
}

// RequestCancellation opens one pending cancellation request per
// confirmed sibling of the booking's series and flips them all to
// cancellation_requested. Resolution belongs to the approval workflow.
func (s *Service) RequestCancellation(ctx context.Context, actorID, bookingID int64, reason string) ([]domain.BookingCancellation, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, ErrValidation
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.UserID != actorID {
		return nil, ErrForbidden
	}
	if b.Status != domain.BookingConfirmed {
		return nil, ErrInvalidStatusTransition
	}

	siblings, err := s.bookings.GetByGroupID(ctx, b.GroupID)
	if err != nil {
		return nil, err
	}

	targets := make([]domain.Booking, 0, len(siblings))
	for _, sib := range siblings {
		if sib.Status == domain.BookingConfirmed {
			targets = append(targets, sib)
		}
	}

	reqs := make([]domain.BookingCancellation, 0, len(targets))
	for _, t := range targets {
		reqs = append(reqs, domain.BookingCancellation{
			BookingID:   t.ID,
			RequestedBy: actorID,
			Reason:      reason,
			Status:      domain.RequestPending,
		})
	}

	reqs, err = s.requests.CreateCancellations(ctx, reqs)
	if err != nil {
		return nil, err
	}

	for _, t := range targets {
		if err := s.bookings.UpdateStatus(ctx, t.ID, string(domain.BookingCancellationRequested)); err != nil {
			log.Printf("cancellation request for group %s: booking %d status flip failed: %v", b.GroupID, t.ID, err)
		}
	}

	if s.events != nil {
		s.events.Publish("bookings", "updated", b.ID)
	}

	return reqs, nil
}

// RequestModification proposes a new window for a single booking. A
// multi-day series cannot be edited, only cancelled whole.
func (s *Service) RequestModification(ctx context.Context, actorID, bookingID int64, req ModifyBookingRequest) (*domain.BookingModification, error) {
	newDate, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrValidation
	}
	if _, err := time.Parse("15:04", req.StartTime); err != nil {
		return nil, ErrValidation
	}
	if _, err := time.Parse("15:04", req.EndTime); err != nil {
		return nil, ErrValidation
	}
	if req.EndTime <= req.StartTime {
		return nil, ErrValidation
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.UserID != actorID {
		return nil, ErrForbidden
	}
	if b.Status != domain.BookingConfirmed {
		return nil, ErrInvalidStatusTransition
	}

	siblings, err := s.bookings.GetByGroupID(ctx, b.GroupID)
	if err != nil {
		return nil, err
	}
	if len(siblings) > 1 {
		return nil, ErrGroupEditUnsupported
	}

	m := &domain.BookingModification{
		BookingID:    b.ID,
		RequestedBy:  actorID,
		NewDate:      midnight(newDate),
		NewStartTime: req.StartTime,
		NewEndTime:   req.EndTime,
		Status:       domain.RequestPending,
	}

	if err := s.requests.CreateModification(ctx, m); err != nil {
		return nil, err
	}

	if err := s.bookings.UpdateStatus(ctx, b.ID, string(domain.BookingModificationRequested)); err != nil {
		log.Printf("modification request %d: booking %d status flip failed: %v", m.ID, b.ID, err)
	}

	if s.events != nil {
		s.events.Publish("bookings", "updated", b.ID)
	}

	return m, nil
}

func (s *Service) GetMyBookings(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.bookings.ListByUser(ctx, userID, limit, offset)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

func parseSelection(f *domain.Facility, dateStr, endDateStr, slotStart string, duration, persons int) (Selection, error) {
	from, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return Selection{}, ErrValidation
	}

	to := from
	if f.PricingModel == domain.PricingPerDay && endDateStr != "" {
		to, err = time.Parse("2006-01-02", endDateStr)
		if err != nil {
			return Selection{}, ErrValidation
		}
		if to.Before(from) {
			return Selection{}, ErrValidation
		}
	}

	if f.PricingModel == domain.PricingPerSlot && slotStart == "" {
		return Selection{}, ErrValidation
	}

	return Selection{
		From:          midnight(from),
		To:            midnight(to),
		SlotStart:     slotStart,
		DurationHours: duration,
		Persons:       persons,
	}, nil
}

// resolveWindow turns a validated selection into the stored start/end
// strings for each created booking row.
func resolveWindow(f *domain.Facility, sel Selection, startTime string) (string, string, error) {
	switch f.PricingModel {
	case domain.PricingPerDay:
		return "00:00", "23:59", nil

	case domain.PricingPerSlot:
		slot, ok := findSlot(f, sel.SlotStart)
		if !ok {
			return "", "", ErrValidation
		}
		return slot.StartTime, slot.EndTime, nil

	case domain.PricingHourly:
		if _, err := time.Parse("15:04", startTime); err != nil {
			return "", "", ErrValidation
		}
		end, err := addHours(startTime, sel.DurationHours)
		if err != nil {
			return "", "", err
		}
		return startTime, end, nil
	}

	return "", "", ErrValidation
}
