package model

import (
	"hotel/shared/daterange"
	"hotel/shared/model"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldBookingNumber = "booking_number"
	FieldRoomID        = "room_id"
	FieldCheckIn       = "check_in"
	FieldCheckOut      = "check_out"
	FieldGuests        = "guests"
	FieldGuestName     = "guest_name"
	FieldGuestEmail    = "guest_email"
	FieldRoomTitle     = "room_title"
	FieldRoomImageURL  = "room_image_url"
	FieldPricePerNight = "price_per_night"
	FieldTotalPrice    = "total_price"
	FieldStatus        = "status"
	FieldEmailSent     = "email_sent"
	FieldEmailSentAt   = "email_sent_at"
	FieldCreatedAt     = "created_at"

	// ConstraintBookingNumber is the unique index guarding booking numbers.
	ConstraintBookingNumber = "bookings_booking_number_key"
)

const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// transitions lists the statuses each status may move to. Terminal statuses are absent.
var transitions = map[string][]string{
	StatusConfirmed: {StatusCancelled, StatusCompleted},
}

// CanTransition reports whether a booking in status from may move to status to.
func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}

	return false
}

type Booking struct {
	ID            string          `db:"id"`
	BookingNumber int             `db:"booking_number"`
	RoomID        string          `db:"room_id"`
	CheckIn       time.Time       `db:"check_in"`
	CheckOut      time.Time       `db:"check_out"`
	Guests        int             `db:"guests"`
	GuestName     *string         `db:"guest_name"`
	GuestEmail    *string         `db:"guest_email"`
	RoomTitle     string          `db:"room_title"`
	RoomImageURL  *string         `db:"room_image_url"`
	PricePerNight decimal.Decimal `db:"price_per_night"`
	TotalPrice    decimal.Decimal `db:"total_price"`
	Status        string          `db:"status"`
	EmailSent     bool            `db:"email_sent"`
	EmailSentAt   *time.Time      `db:"email_sent_at"`
	model.Metadata
}

// Nights is the whole number of nights between check-in and check-out.
func (b *Booking) Nights() int {
	return b.Stay().Nights()
}

// Stay returns the booked nights as a half-open range.
func (b *Booking) Stay() daterange.Range {
	return daterange.Range{CheckIn: b.CheckIn, CheckOut: b.CheckOut}
}
