// Package daterange handles the half-open [checkIn, checkOut) day ranges bookings are made for.
package daterange

import (
	"fmt"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"math"
	"time"
)

const day = constant.HoursInDay * time.Hour

// Range is a half-open span of calendar days. CheckOut is the first day not occupied.
type Range struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// ParseDay parses a YYYY-MM-DD calendar day at UTC midnight.
func ParseDay(value string) (time.Time, error) {
	t, err := time.Parse(constant.DayFormat, value)
	if err != nil {
		return time.Time{}, failure.BadRequestFromString(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", value)) //nolint:wrapcheck
	}

	return t, nil
}

// Parse builds a Range from two YYYY-MM-DD strings, requiring checkOut after checkIn.
func Parse(checkIn, checkOut string) (Range, error) {
	in, err := ParseDay(checkIn)
	if err != nil {
		return Range{}, err
	}

	out, err := ParseDay(checkOut)
	if err != nil {
		return Range{}, err
	}

	return New(in, out)
}

// New truncates both ends to their calendar day and validates the order.
func New(checkIn, checkOut time.Time) (Range, error) {
	r := Range{CheckIn: truncate(checkIn), CheckOut: truncate(checkOut)}

	if !r.CheckOut.After(r.CheckIn) {
		return Range{}, failure.ErrInvalidDateRange
	}

	return r, nil
}

// Nights is the number of whole days covered, rounded up and never negative.
func (r Range) Nights() int {
	diff := r.CheckOut.Sub(r.CheckIn)
	if diff <= 0 {
		return 0
	}

	return int(math.Ceil(diff.Hours() / constant.HoursInDay))
}

// Overlaps reports whether two half-open ranges share at least one night.
// Back-to-back ranges, where one ends the day the other starts, do not overlap.
func (r Range) Overlaps(other Range) bool {
	return r.CheckIn.Before(other.CheckOut) && r.CheckOut.After(other.CheckIn)
}

// Days returns every night in the range as a one-night Range.
func (r Range) Days() []Range {
	days := make([]Range, 0, r.Nights())

	for d := r.CheckIn; d.Before(r.CheckOut); d = d.Add(day) {
		days = append(days, Range{CheckIn: d, CheckOut: d.Add(day)})
	}

	return days
}

func (r Range) CheckInString() string {
	return r.CheckIn.Format(constant.DayFormat)
}

func (r Range) CheckOutString() string {
	return r.CheckOut.Format(constant.DayFormat)
}

func (r Range) String() string {
	return r.CheckInString() + "/" + r.CheckOutString()
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
