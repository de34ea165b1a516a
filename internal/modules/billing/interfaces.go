package billing

import (
	"context"

	"societyhub/internal/domain"
)

type FeeRepository interface {
	Create(ctx context.Context, f *domain.MaintenanceFee) error
	GetByID(ctx context.Context, id int64) (*domain.MaintenanceFee, error)
	ListByUnit(ctx context.Context, unitID int64) ([]domain.MaintenanceFee, error)
	ListPendingByUnit(ctx context.Context, unitID int64) ([]domain.MaintenanceFee, error)
	MarkCancelled(ctx context.Context, id int64, description string) error
}

type UnitReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Unit, error)
}
