package repository

import (
	"context"
	"time"

	"societyhub/internal/domain"

	"gorm.io/gorm"
)

type FeeRepository struct {
	db *gorm.DB
}

func NewFeeRepository(db *gorm.DB) *FeeRepository {
	return &FeeRepository{db: db}
}

func (r *FeeRepository) Create(ctx context.Context, f *domain.MaintenanceFee) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *FeeRepository) GetByID(ctx context.Context, id int64) (*domain.MaintenanceFee, error) {
	var f domain.MaintenanceFee
	tx := r.db.WithContext(ctx).First(&f, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &f, nil
}

func (r *FeeRepository) ListByUnit(ctx context.Context, unitID int64) ([]domain.MaintenanceFee, error) {
	var fs []domain.MaintenanceFee
	tx := r.db.WithContext(ctx).
		Where("unit_id = ?", unitID).
		Order("created_at DESC").
		Find(&fs)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return fs, nil
}

func (r *FeeRepository) ListPendingByUnit(ctx context.Context, unitID int64) ([]domain.MaintenanceFee, error) {
	var fs []domain.MaintenanceFee
	tx := r.db.WithContext(ctx).
		Where("unit_id = ? AND payment_status = ?", unitID, domain.FeePending).
		Order("created_at DESC").
		Find(&fs)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return fs, nil
}

// MarkCancelled voids a fee and replaces its description (the caller
// appends the "(Cancelled)" suffix).
func (r *FeeRepository) MarkCancelled(ctx context.Context, id int64, description string) error {
	return r.db.WithContext(ctx).
		Model(&domain.MaintenanceFee{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"payment_status": domain.FeeCancelled,
			"description":    description,
			"updated_at":     time.Now(),
		}).Error
}
