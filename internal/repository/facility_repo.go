package repository

import (
	"context"

	"societyhub/internal/domain"

	"gorm.io/gorm"
)

type FacilityRepository struct {
	db *gorm.DB
}

func NewFacilityRepository(db *gorm.DB) *FacilityRepository {
	return &FacilityRepository{db: db}
}

func (r *FacilityRepository) Create(ctx context.Context, f *domain.Facility) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *FacilityRepository) Update(ctx context.Context, f *domain.Facility) error {
	return r.db.WithContext(ctx).Save(f).Error
}

func (r *FacilityRepository) GetByID(ctx context.Context, id int64) (*domain.Facility, error) {
	var f domain.Facility
	tx := r.db.WithContext(ctx).Preload("Slots").First(&f, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &f, nil
}

func (r *FacilityRepository) GetAll(ctx context.Context) ([]domain.Facility, error) {
	var fs []domain.Facility
	tx := r.db.WithContext(ctx).Preload("Slots").Order("name ASC").Find(&fs)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return fs, nil
}

// ReplaceSlots swaps the slot definitions of a per_slot facility.
func (r *FacilityRepository) ReplaceSlots(ctx context.Context, facilityID int64, slots []domain.FacilitySlot) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("facility_id = ?", facilityID).Delete(&domain.FacilitySlot{}).Error; err != nil {
			return err
		}
		for i := range slots {
			slots[i].ID = 0
			slots[i].FacilityID = facilityID
		}
		if len(slots) == 0 {
			return nil
		}
		return tx.Create(&slots).Error
	})
}
