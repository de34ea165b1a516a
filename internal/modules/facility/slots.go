package facility

import (
	"fmt"
	"sort"
	"time"

	"societyhub/internal/domain"
)

// Fallback window when a facility's open/close strings are missing or
// unparseable.
const (
	defaultOpenHour  = 6
	defaultCloseHour = 22
)

const fullDayLabel = "Full Day"

type SlotOption struct {
	Label     string  `json:"label"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Price     float64 `json:"price"`
	Booked    bool    `json:"booked"`
}

// GenerateSlots derives the offerable windows for one facility on one
// date from the bookings already stored for that date. The booking
// being edited (excludeBookingID) never counts toward occupancy.
func GenerateSlots(f *domain.Facility, bookings []domain.Booking, excludeBookingID int64) []SlotOption {
	switch f.PricingModel {
	case domain.PricingPerDay:
		return perDaySlots(f, bookings, excludeBookingID)
	case domain.PricingPerSlot:
		return perSlotSlots(f, bookings, excludeBookingID)
	case domain.PricingHourly:
		return hourlySlots(f, bookings, excludeBookingID)
	default:
		return []SlotOption{}
	}
}

func perDaySlots(f *domain.Facility, bookings []domain.Booking, exclude int64) []SlotOption {
	booked := false
	for _, b := range bookings {
		if b.ID == exclude || b.Status == domain.BookingCancelled {
			continue
		}
		booked = true
		break
	}

	return []SlotOption{{
		Label:     fullDayLabel,
		StartTime: "00:00",
		EndTime:   "23:59",
		Price:     f.HourlyRate,
		Booked:    booked,
	}}
}

func perSlotSlots(f *domain.Facility, bookings []domain.Booking, exclude int64) []SlotOption {
	out := make([]SlotOption, 0, len(f.Slots))
	for _, s := range f.Slots {
		booked := false
		for _, b := range bookings {
			if b.ID == exclude {
				continue
			}
			if b.Status == domain.BookingCancelled || b.Status == domain.BookingCancellationRequested {
				continue
			}
			if b.StartTime == s.StartTime {
				booked = true
				break
			}
		}
		out = append(out, SlotOption{
			Label:     fmt.Sprintf("%s (%s-%s)", s.Name, s.StartTime, s.EndTime),
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Price:     s.Price,
			Booked:    booked,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out
}

func hourlySlots(f *domain.Facility, bookings []domain.Booking, exclude int64) []SlotOption {
	type window struct{ open, close int }

	var windows []window
	if f.ScheduleType == domain.ScheduleSplit {
		windows = []window{
			{parseHour(f.MorningOpen, defaultOpenHour), parseHour(f.MorningClose, defaultCloseHour)},
			{parseHour(f.EveningOpen, defaultOpenHour), parseHour(f.EveningClose, defaultCloseHour)},
		}
	} else {
		windows = []window{
			{parseHour(f.OpenTime, defaultOpenHour), parseHour(f.CloseTime, defaultCloseHour)},
		}
	}

	out := make([]SlotOption, 0)
	for _, w := range windows {
		for h := w.open; h < w.close; h++ {
			bucket := fmt.Sprintf("%02d:00", h)
			bucketEnd := fmt.Sprintf("%02d:00", h+1)

			booked := false
			for _, b := range bookings {
				if b.ID == exclude || b.Status == domain.BookingCancelled {
					continue
				}
				// half-open overlap against the single-hour bucket;
				// zero-padded HH:MM strings compare chronologically
				if b.StartTime <= bucket && bucket < b.EndTime {
					booked = true
					break
				}
			}

			out = append(out, SlotOption{
				Label:     bucket,
				StartTime: bucket,
				EndTime:   bucketEnd,
				Price:     f.HourlyRate,
				Booked:    booked,
			})
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out
}

func parseHour(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return fallback
	}
	return t.Hour()
}
