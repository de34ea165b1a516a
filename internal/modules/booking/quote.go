package booking

import (
	"fmt"
	"math"
	"time"

	"societyhub/internal/domain"
)

const (
	minDurationHours = 1
	maxDurationHours = 6
)

// Selection is a resident's choice on the booking form, already parsed.
type Selection struct {
	From          time.Time
	To            time.Time
	SlotStart     string
	DurationHours int
	Persons       int
}

type Quote struct {
	Amount      float64 `json:"amount"`
	TaxAmount   float64 `json:"tax_amount"`
	TotalAmount float64 `json:"total_amount"`
	Days        int     `json:"days"`
}

// ComputeQuote prices a selection against a facility. Pure function.
// The base amount excludes tax; bookings store the base, invoices add
// the GST line on top.
func ComputeQuote(f *domain.Facility, sel Selection) (*Quote, error) {
	persons := sel.Persons
	if persons < 1 {
		persons = 1
	}

	var base float64
	days := 1

	switch f.PricingModel {
	case domain.PricingPerSlot:
		slot, ok := findSlot(f, sel.SlotStart)
		if !ok {
			return nil, ErrValidation
		}
		base = slot.Price

	case domain.PricingPerDay:
		if sel.To.Before(sel.From) {
			return nil, ErrValidation
		}
		days = inclusiveDays(sel.From, sel.To)
		base = f.HourlyRate * float64(days)

	case domain.PricingHourly:
		if sel.DurationHours < minDurationHours || sel.DurationHours > maxDurationHours {
			return nil, ErrValidation
		}
		base = f.HourlyRate * float64(sel.DurationHours)

	default:
		return nil, ErrValidation
	}

	if f.PerPersonApplicable {
		base *= float64(persons)
	}
	base = round2(base)

	var tax float64
	if f.GSTApplicable {
		tax = round2(base * f.GSTRate / 100)
	}

	return &Quote{
		Amount:      base,
		TaxAmount:   tax,
		TotalAmount: round2(base + tax),
		Days:        days,
	}, nil
}

func findSlot(f *domain.Facility, start string) (*domain.FacilitySlot, bool) {
	for i := range f.Slots {
		if f.Slots[i].StartTime == start {
			return &f.Slots[i], true
		}
	}
	return nil, false
}

func inclusiveDays(from, to time.Time) int {
	from = midnight(from)
	to = midnight(to)
	return int(to.Sub(from).Hours()/24) + 1
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// addHours shifts a "15:04" clock string forward. The result must stay
// within the same day.
func addHours(start string, hours int) (string, error) {
	t, err := time.Parse("15:04", start)
	if err != nil {
		return "", ErrValidation
	}
	endH := t.Hour() + hours
	if endH > 23 {
		return "", ErrValidation
	}
	return fmt.Sprintf("%02d:%02d", endH, t.Minute()), nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
