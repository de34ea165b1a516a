package repository

import (
	"context"
	"time"

	"societyhub/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID              int64     `gorm:"column:id;primaryKey"`
	FacilityID      int64     `gorm:"column:facility_id"`
	UserID          int64     `gorm:"column:user_id"`
	GroupID         string    `gorm:"column:group_id;index"`
	Date            time.Time `gorm:"column:date;index"`
	StartTime       string    `gorm:"column:start_time"`
	EndTime         string    `gorm:"column:end_time"`
	Status          string    `gorm:"column:status"`
	TotalAmount     float64   `gorm:"column:total_amount"`
	NumberOfPersons int       `gorm:"column:number_of_persons"`
	InvoiceID       *int64    `gorm:"column:invoice_id"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:              m.ID,
		FacilityID:      m.FacilityID,
		UserID:          m.UserID,
		GroupID:         m.GroupID,
		Date:            m.Date,
		StartTime:       m.StartTime,
		EndTime:         m.EndTime,
		Status:          domain.BookingStatus(m.Status),
		TotalAmount:     m.TotalAmount,
		NumberOfPersons: m.NumberOfPersons,
		InvoiceID:       m.InvoiceID,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:              b.ID,
		FacilityID:      b.FacilityID,
		UserID:          b.UserID,
		GroupID:         b.GroupID,
		Date:            b.Date,
		StartTime:       b.StartTime,
		EndTime:         b.EndTime,
		Status:          string(b.Status),
		TotalAmount:     b.TotalAmount,
		NumberOfPersons: b.NumberOfPersons,
		InvoiceID:       b.InvoiceID,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) GetByGroupID(ctx context.Context, groupID string) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("date ASC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// ListForFacilityDate returns every booking row for one facility and one
// calendar date, regardless of status. Status filtering belongs to the
// slot generator, which needs different exclusion sets per pricing model.
func (r *BookingRepository) ListForFacilityDate(ctx context.Context, facilityID int64, date time.Time) ([]domain.Booking, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	var ms []bookingModel
	tx := r.db.WithContext(ctx).
		Where("facility_id = ? AND date = ?", facilityID, day).
		Order("start_time ASC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, start_time DESC").
		Limit(limit).
		Offset(offset).
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, bookingID int64, status string) error {
	return r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", bookingID).
		Updates(map[string]any{"status": status, "updated_at": time.Now()}).Error
}

// SetInvoiceIDForGroup back-links a raised invoice onto every booking of
// a series. Best-effort from the caller's point of view.
func (r *BookingRepository) SetInvoiceIDForGroup(ctx context.Context, groupID string, invoiceID int64) error {
	return r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("group_id = ?", groupID).
		Update("invoice_id", invoiceID).Error
}

// ApplyModification overwrites the booked window with the approved
// values and puts the booking back to confirmed.
func (r *BookingRepository) ApplyModification(ctx context.Context, bookingID int64, date time.Time, start, end string) error {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", bookingID).
		Updates(map[string]any{
			"date":       day,
			"start_time": start,
			"end_time":   end,
			"status":     string(domain.BookingConfirmed),
			"updated_at": time.Now(),
		}).Error
}
