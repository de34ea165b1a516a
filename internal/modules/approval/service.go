package approval

import (
	"context"
	"errors"
	"log"

	"societyhub/internal/domain"

	"societyhub/internal/modules/billing"
)

type Service struct {
	requests   RequestRepository
	bookings   BookingRepository
	facilities FacilityReader
	users      UserReader
	invoices   InvoiceService
	events     Publisher
}

func NewService(
	requests RequestRepository,
	bookings BookingRepository,
	facilities FacilityReader,
	users UserReader,
	invoices InvoiceService,
	events Publisher,
) *Service {
	return &Service{
		requests:   requests,
		bookings:   bookings,
		facilities: facilities,
		users:      users,
		invoices:   invoices,
		events:     events,
	}
}

func (s *Service) ListCancellations(ctx context.Context, status string) ([]domain.BookingCancellation, error) {
	return s.requests.ListCancellations(ctx, status)
}

func (s *Service) ListModifications(ctx context.Context, status string) ([]domain.BookingModification, error) {
	return s.requests.ListModifications(ctx, status)
}

// ReviewCancellation resolves a pending cancellation request and every
// pending sibling of the same booking series together, never a subset.
// On approval the penalty lands on the selected request only; siblings
// record zero charges.
func (s *Service) ReviewCancellation(ctx context.Context, reviewerID, requestID int64, req ReviewCancellationRequest) error {
	if req.Decision != DecisionApprove && req.Decision != DecisionReject {
		return ErrValidation
	}
	if req.PenaltyAmount < 0 {
		return ErrValidation
	}

	selected, err := s.requests.GetCancellationByID(ctx, requestID)
	if err != nil {
		return err
	}
	if selected.Status != domain.RequestPending {
		return ErrAlreadyResolved
	}

	booking, err := s.bookings.GetByID(ctx, selected.BookingID)
	if err != nil {
		return err
	}

	siblings, err := s.bookings.GetByGroupID(ctx, booking.GroupID)
	if err != nil {
		return err
	}

	ids := make([]int64, 0, len(siblings))
	for _, sib := range siblings {
		ids = append(ids, sib.ID)
	}

	groupRequests, err := s.requests.ListPendingCancellationsForBookings(ctx, ids)
	if err != nil {
		return err
	}

	if req.Decision == DecisionReject {
		return s.rejectCancellations(ctx, reviewerID, groupRequests, siblings)
	}
	return s.approveCancellations(ctx, reviewerID, requestID, req, booking, groupRequests, siblings)
}

func (s *Service) rejectCancellations(ctx context.Context, reviewerID int64, groupRequests []domain.BookingCancellation, siblings []domain.Booking) error {
	for _, r := range groupRequests {
		if err := s.requests.ResolveCancellation(ctx, r.ID, domain.RequestRejected, reviewerID, 0); err != nil {
			return err
		}
	}

	for _, sib := range siblings {
		if sib.Status != domain.BookingCancellationRequested {
			continue
		}
		if err := s.bookings.UpdateStatus(ctx, sib.ID, string(domain.BookingConfirmed)); err != nil {
			log.Printf("cancellation reject: booking %d revert failed: %v", sib.ID, err)
		}
	}

	if s.events != nil && len(siblings) > 0 {
		s.events.Publish("bookings", "updated", siblings[0].ID)
	}
	return nil
}

func (s *Service) approveCancellations(
	ctx context.Context,
	reviewerID, selectedID int64,
	req ReviewCancellationRequest,
	booking *domain.Booking,
	groupRequests []domain.BookingCancellation,
	siblings []domain.Booking,
) error {
	for _, r := range groupRequests {
		charges := 0.0
		if r.ID == selectedID {
			charges = req.PenaltyAmount
		}
		if err := s.requests.ResolveCancellation(ctx, r.ID, domain.RequestApproved, reviewerID, charges); err != nil {
			return err
		}
	}

	var groupTotal float64
	for _, sib := range siblings {
		groupTotal += sib.TotalAmount
		if sib.Status == domain.BookingCancelled {
			continue
		}
		if err := s.bookings.UpdateStatus(ctx, sib.ID, string(domain.BookingCancelled)); err != nil {
			log.Printf("cancellation approve: booking %d status flip failed: %v", sib.ID, err)
		}
	}

	facility, err := s.facilities.GetByID(ctx, booking.FacilityID)
	if err != nil {
		return err
	}

	var unitID int64
	if user, err := s.users.GetByID(ctx, booking.UserID); err == nil && user.UnitID != nil {
		unitID = *user.UnitID
	}

	if req.CancelOriginalInvoice {
		err := s.invoices.CancelBookingInvoice(ctx, booking.InvoiceID, unitID, facility.Name, groupTotal)
		if err != nil {
			// legacy rows without a back-link may simply have nothing
			// to match; the cancellation itself stands either way
			if errors.Is(err, billing.ErrInvoiceNotFound) {
				log.Printf("cancellation approve: no invoice matched for group %s", booking.GroupID)
			} else {
				log.Printf("cancellation approve: invoice void failed for group %s: %v", booking.GroupID, err)
			}
		}
	}

	if req.PenaltyAmount > 0 {
		if unitID == 0 {
			log.Printf("cancellation approve: no unit for user %d, skipping penalty invoice", booking.UserID)
		} else {
			_, err := s.invoices.CreateCancellationFee(ctx, unitID, facility.Name, len(siblings), req.PenaltyAmount, facility.GSTRate, req.ApplyGST)
			if err != nil {
				return err
			}
		}
	}

	if s.events != nil {
		s.events.Publish("bookings", "updated", booking.ID)
	}
	return nil
}

// ReviewModification resolves a pending modification request. Approval
// overwrites the booking's window and returns it to confirmed;
// rejection leaves the original window untouched.
func (s *Service) ReviewModification(ctx context.Context, reviewerID, requestID int64, decision string) error {
	if decision != DecisionApprove && decision != DecisionReject {
		return ErrValidation
	}

	m, err := s.requests.GetModificationByID(ctx, requestID)
	if err != nil {
		return err
	}
	if m.Status != domain.RequestPending {
		return ErrAlreadyResolved
	}

	booking, err := s.bookings.GetByID(ctx, m.BookingID)
	if err != nil {
		return err
	}
	if booking.Status == domain.BookingCancelled {
		return ErrInvalidStatusTransition
	}

	if decision == DecisionReject {
		if err := s.requests.ResolveModification(ctx, m.ID, domain.RequestRejected, reviewerID); err != nil {
			return err
		}
		if booking.Status == domain.BookingModificationRequested {
			if err := s.bookings.UpdateStatus(ctx, booking.ID, string(domain.BookingConfirmed)); err != nil {
				log.Printf("modification reject: booking %d revert failed: %v", booking.ID, err)
			}
		}
	} else {
		if err := s.bookings.ApplyModification(ctx, booking.ID, m.NewDate, m.NewStartTime, m.NewEndTime); err != nil {
			return err
		}
		if err := s.requests.ResolveModification(ctx, m.ID, domain.RequestApproved, reviewerID); err != nil {
			log.Printf("modification approve: request %d resolve failed after booking update: %v", m.ID, err)
		}
	}

	if s.events != nil {
		s.events.Publish("bookings", "updated", booking.ID)
	}
	return nil
}
