package booking

import (
	"testing"
	"time"

	"societyhub/internal/domain"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeQuote_Hourly(t *testing.T) {
	f := &domain.Facility{PricingModel: domain.PricingHourly, HourlyRate: 200}

	q, err := ComputeQuote(f, Selection{From: date(2024, 3, 10), To: date(2024, 3, 10), DurationHours: 2})

	assert.NoError(t, err)
	assert.Equal(t, 400.0, q.Amount)
	assert.Equal(t, 0.0, q.TaxAmount)
	assert.Equal(t, 400.0, q.TotalAmount)
	assert.Equal(t, 1, q.Days)
}

func TestComputeQuote_Hourly_DurationBounds(t *testing.T) {
	f := &domain.Facility{PricingModel: domain.PricingHourly, HourlyRate: 200}

	_, err := ComputeQuote(f, Selection{DurationHours: 0})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = ComputeQuote(f, Selection{DurationHours: 7})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestComputeQuote_PerDay_InclusiveRangeWithGST(t *testing.T) {
	f := &domain.Facility{
		PricingModel:  domain.PricingPerDay,
		HourlyRate:    1000,
		GSTApplicable: true,
		GSTRate:       18,
	}

	q, err := ComputeQuote(f, Selection{From: date(2024, 4, 1), To: date(2024, 4, 3)})

	assert.NoError(t, err)
	assert.Equal(t, 3, q.Days)
	assert.Equal(t, 3000.0, q.Amount)
	assert.Equal(t, 540.0, q.TaxAmount)
	assert.Equal(t, 3540.0, q.TotalAmount)
}

func TestComputeQuote_PerSlot(t *testing.T) {
	f := &domain.Facility{
		PricingModel: domain.PricingPerSlot,
		Slots: []domain.FacilitySlot{
			{Name: "Morning", StartTime: "06:00", EndTime: "09:00", Price: 150},
		},
	}

	q, err := ComputeQuote(f, Selection{From: date(2024, 5, 1), To: date(2024, 5, 1), SlotStart: "06:00"})
	assert.NoError(t, err)
	assert.Equal(t, 150.0, q.Amount)

	_, err = ComputeQuote(f, Selection{From: date(2024, 5, 1), To: date(2024, 5, 1), SlotStart: "07:00"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestComputeQuote_PerPersonMonotonic(t *testing.T) {
	perPerson := &domain.Facility{
		PricingModel:        domain.PricingHourly,
		HourlyRate:          100,
		PerPersonApplicable: true,
	}
	flat := &domain.Facility{
		PricingModel: domain.PricingHourly,
		HourlyRate:   100,
	}

	prev := 0.0
	for persons := 1; persons <= 10; persons++ {
		q, err := ComputeQuote(perPerson, Selection{DurationHours: 2, Persons: persons})
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, q.Amount, prev)
		prev = q.Amount

		qf, err := ComputeQuote(flat, Selection{DurationHours: 2, Persons: persons})
		assert.NoError(t, err)
		assert.Equal(t, 200.0, qf.Amount)
	}
}

func TestComputeQuote_PersonsDefaultToOne(t *testing.T) {
	f := &domain.Facility{
		PricingModel:        domain.PricingHourly,
		HourlyRate:          100,
		PerPersonApplicable: true,
	}

	q, err := ComputeQuote(f, Selection{DurationHours: 1, Persons: 0})

	assert.NoError(t, err)
	assert.Equal(t, 100.0, q.Amount)
}

func TestAddHours(t *testing.T) {
	end, err := addHours("10:00", 2)
	assert.NoError(t, err)
	assert.Equal(t, "12:00", end)

	_, err = addHours("22:00", 3)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = addHours("nope", 1)
	assert.ErrorIs(t, err, ErrValidation)
}
