package billing

import (
	"context"
	"testing"
	"time"

	"societyhub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockFeeRepository struct {
	mock.Mock
}

func (m *MockFeeRepository) Create(ctx context.Context, f *domain.MaintenanceFee) error {
	args := m.Called(ctx, f)
	if args.Error(0) == nil && f != nil {
		f.ID = 1
	}
	return args.Error(0)
}

func (m *MockFeeRepository) GetByID(ctx context.Context, id int64) (*domain.MaintenanceFee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MaintenanceFee), args.Error(1)
}

func (m *MockFeeRepository) ListByUnit(ctx context.Context, unitID int64) ([]domain.MaintenanceFee, error) {
	args := m.Called(ctx, unitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MaintenanceFee), args.Error(1)
}

func (m *MockFeeRepository) ListPendingByUnit(ctx context.Context, unitID int64) ([]domain.MaintenanceFee, error) {
	args := m.Called(ctx, unitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MaintenanceFee), args.Error(1)
}

func (m *MockFeeRepository) MarkCancelled(ctx context.Context, id int64, description string) error {
	args := m.Called(ctx, id, description)
	return args.Error(0)
}

type MockUnitReader struct {
	mock.Mock
}

func (m *MockUnitReader) GetByID(ctx context.Context, id int64) (*domain.Unit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Unit), args.Error(1)
}

func TestCreateBookingFee_WithGST(t *testing.T) {
	fees := new(MockFeeRepository)
	fees.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(fees, new(MockUnitReader))

	from := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 4, 3, 0, 0, 0, 0, time.UTC)
	f := &domain.Facility{Name: "Community Hall", GSTApplicable: true, GSTRate: 18}

	fee, err := service.CreateBookingFee(context.Background(), 42, f, from, to, 3000)

	assert.NoError(t, err)
	assert.Equal(t, 3000.0, fee.Amount)
	assert.Equal(t, 540.0, fee.TaxAmount)
	assert.Equal(t, 3540.0, fee.TotalAmount)
	assert.Equal(t, domain.FeeFacilityBooking, fee.FeeType)
	assert.Equal(t, domain.FeePending, fee.PaymentStatus)
	assert.Equal(t, "Facility booking: Community Hall (2024-04-01 to 2024-04-03)", fee.Description)
}

func TestCreateBookingFee_SingleDayNoGST(t *testing.T) {
	fees := new(MockFeeRepository)
	fees.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(fees, new(MockUnitReader))

	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	f := &domain.Facility{Name: "Tennis Court"}

	fee, err := service.CreateBookingFee(context.Background(), 42, f, day, day, 400)

	assert.NoError(t, err)
	assert.Equal(t, 0.0, fee.TaxAmount)
	assert.Equal(t, 400.0, fee.TotalAmount)
	assert.Equal(t, "Facility booking: Tennis Court (2024-03-10)", fee.Description)
}

func TestCreateBookingFee_Validation(t *testing.T) {
	service := NewService(new(MockFeeRepository), new(MockUnitReader))

	_, err := service.CreateBookingFee(context.Background(), 0, &domain.Facility{}, time.Now(), time.Now(), 100)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = service.CreateBookingFee(context.Background(), 42, &domain.Facility{}, time.Now(), time.Now(), -1)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateCancellationFee(t *testing.T) {
	fees := new(MockFeeRepository)
	fees.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(fees, new(MockUnitReader))

	fee, err := service.CreateCancellationFee(context.Background(), 42, "Community Hall", 3, 500, 18, true)

	assert.NoError(t, err)
	assert.Equal(t, 500.0, fee.Amount)
	assert.Equal(t, 90.0, fee.TaxAmount)
	assert.Equal(t, 590.0, fee.TotalAmount)
	assert.Equal(t, domain.FeeCancellationCharge, fee.FeeType)
	assert.Equal(t, "Cancellation charges: Community Hall (3 booking(s))", fee.Description)
}

func TestCreateCancellationFee_ZeroPenalty(t *testing.T) {
	service := NewService(new(MockFeeRepository), new(MockUnitReader))

	_, err := service.CreateCancellationFee(context.Background(), 42, "Community Hall", 1, 0, 18, true)

	assert.ErrorIs(t, err, ErrValidation)
}

func TestCancelBookingInvoice_ExactIDIsAuthoritative(t *testing.T) {
	fees := new(MockFeeRepository)
	fees.On("GetByID", mock.Anything, int64(77)).Return(
		&domain.MaintenanceFee{ID: 77, UnitID: 42, Description: "Facility booking: Community Hall (2024-04-01 to 2024-04-03)"}, nil)
	fees.On("MarkCancelled", mock.Anything, int64(77),
		"Facility booking: Community Hall (2024-04-01 to 2024-04-03) (Cancelled)").Return(nil)

	service := NewService(fees, new(MockUnitReader))

	invoiceID := int64(77)
	err := service.CancelBookingInvoice(context.Background(), &invoiceID, 42, "Community Hall", 3000)

	assert.NoError(t, err)
	// the back-link path must never fall through to the fuzzy scan
	fees.AssertNotCalled(t, "ListPendingByUnit", mock.Anything, mock.Anything)
	fees.AssertExpectations(t)
}

func TestCancelBookingInvoice_FuzzyMatchForLegacyRows(t *testing.T) {
	fees := new(MockFeeRepository)
	fees.On("ListPendingByUnit", mock.Anything, int64(42)).Return(
		[]domain.MaintenanceFee{
			{ID: 1, FeeType: domain.FeeMaintenance, Description: "Quarterly maintenance", Amount: 3000},
			{ID: 2, FeeType: domain.FeeFacilityBooking, Description: "Facility booking: Tennis Court (2024-03-10)", Amount: 3000},
			{ID: 3, FeeType: domain.FeeFacilityBooking, Description: "Facility booking: Community Hall (2024-04-01 to 2024-04-03)", Amount: 3000.005},
		}, nil)
	fees.On("MarkCancelled", mock.Anything, int64(3),
		"Facility booking: Community Hall (2024-04-01 to 2024-04-03) (Cancelled)").Return(nil)

	service := NewService(fees, new(MockUnitReader))

	err := service.CancelBookingInvoice(context.Background(), nil, 42, "Community Hall", 3000)

	assert.NoError(t, err)
	fees.AssertExpectations(t)
}

func TestCancelBookingInvoice_AmountOutsideEpsilon(t *testing.T) {
	fees := new(MockFeeRepository)
	fees.On("ListPendingByUnit", mock.Anything, int64(42)).Return(
		[]domain.MaintenanceFee{
			{ID: 3, FeeType: domain.FeeFacilityBooking, Description: "Facility booking: Community Hall (2024-04-01)", Amount: 2900},
		}, nil)

	service := NewService(fees, new(MockUnitReader))

	err := service.CancelBookingInvoice(context.Background(), nil, 42, "Community Hall", 3000)

	assert.ErrorIs(t, err, ErrInvoiceNotFound)
	fees.AssertNotCalled(t, "MarkCancelled", mock.Anything, mock.Anything, mock.Anything)
}

func TestCancelBookingInvoice_NoUnit(t *testing.T) {
	service := NewService(new(MockFeeRepository), new(MockUnitReader))

	err := service.CancelBookingInvoice(context.Background(), nil, 0, "Community Hall", 3000)

	assert.ErrorIs(t, err, ErrInvoiceNotFound)
}

func TestListUnitFees_Validation(t *testing.T) {
	service := NewService(new(MockFeeRepository), new(MockUnitReader))

	_, err := service.ListUnitFees(context.Background(), 0)

	assert.ErrorIs(t, err, ErrValidation)
}

func TestListUnitFeesAdmin(t *testing.T) {
	fees := new(MockFeeRepository)
	units := new(MockUnitReader)

	units.On("GetByID", mock.Anything, int64(42)).Return(
		&domain.Unit{ID: 42, Block: "A", Number: "A-101"}, nil)
	fees.On("ListByUnit", mock.Anything, int64(42)).Return(
		[]domain.MaintenanceFee{{ID: 1, UnitID: 42, Amount: 3000}}, nil)

	service := NewService(fees, units)

	unit, list, err := service.ListUnitFeesAdmin(context.Background(), 42)

	assert.NoError(t, err)
	assert.Equal(t, "A-101", unit.Number)
	assert.Len(t, list, 1)
}

func TestListUnitFeesAdmin_UnknownUnit(t *testing.T) {
	units := new(MockUnitReader)
	units.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(new(MockFeeRepository), units)

	_, _, err := service.ListUnitFeesAdmin(context.Background(), 99)

	assert.ErrorIs(t, err, ErrUnitNotFound)
}
