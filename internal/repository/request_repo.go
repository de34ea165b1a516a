package repository

import (
	"context"
	"time"

	"societyhub/internal/domain"

	"gorm.io/gorm"
)

// RequestRepository stores resident-initiated cancellation and
// modification requests awaiting admin review.
type RequestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

// -------------------- Cancellations --------------------

func (r *RequestRepository) CreateCancellations(ctx context.Context, reqs []domain.BookingCancellation) ([]domain.BookingCancellation, error) {
	if len(reqs) == 0 {
		return reqs, nil
	}
	if err := r.db.WithContext(ctx).Create(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

func (r *RequestRepository) GetCancellationByID(ctx context.Context, id int64) (*domain.BookingCancellation, error) {
	var c domain.BookingCancellation
	tx := r.db.WithContext(ctx).Preload("Booking").First(&c, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &c, nil
}

// ListPendingCancellationsForBookings returns the open requests for a
// sibling set, so a group resolves together.
func (r *RequestRepository) ListPendingCancellationsForBookings(ctx context.Context, bookingIDs []int64) ([]domain.BookingCancellation, error) {
	var cs []domain.BookingCancellation
	tx := r.db.WithContext(ctx).
		Where("booking_id IN ? AND status = ?", bookingIDs, domain.RequestPending).
		Find(&cs)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return cs, nil
}

func (r *RequestRepository) ListCancellations(ctx context.Context, status string) ([]domain.BookingCancellation, error) {
	q := r.db.WithContext(ctx).Preload("Booking").Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var cs []domain.BookingCancellation
	if err := q.Find(&cs).Error; err != nil {
		return nil, err
	}
	return cs, nil
}

func (r *RequestRepository) ResolveCancellation(ctx context.Context, id int64, status domain.RequestStatus, reviewerID int64, charges float64) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&domain.BookingCancellation{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":               status,
			"reviewed_by":          reviewerID,
			"cancellation_charges": charges,
			"reviewed_at":          now,
		}).Error
}

// -------------------- Modifications --------------------

func (r *RequestRepository) CreateModification(ctx context.Context, m *domain.BookingModification) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *RequestRepository) GetModificationByID(ctx context.Context, id int64) (*domain.BookingModification, error) {
	var m domain.BookingModification
	tx := r.db.WithContext(ctx).Preload("Booking").First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &m, nil
}

func (r *RequestRepository) ListModifications(ctx context.Context, status string) ([]domain.BookingModification, error) {
	q := r.db.WithContext(ctx).Preload("Booking").Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var ms []domain.BookingModification
	if err := q.Find(&ms).Error; err != nil {
		return nil, err
	}
	return ms, nil
}

func (r *RequestRepository) ResolveModification(ctx context.Context, id int64, status domain.RequestStatus, reviewerID int64) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&domain.BookingModification{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":      status,
			"reviewed_by": reviewerID,
			"reviewed_at": now,
		}).Error
}
