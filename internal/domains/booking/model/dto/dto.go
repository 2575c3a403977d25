package dto

import (
	"hotel/internal/domains/booking/model"
	roomModel "hotel/internal/domains/room/model"
	"hotel/shared/constant"
	"hotel/shared/daterange"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateBookingRequest is the guest booking form. Presence of the first four
// fields is checked by HasRequiredFields so the client gets a single message.
type CreateBookingRequest struct {
	RoomID     string `json:"roomId"     validate:"omitempty,uuid"`
	CheckIn    string `json:"checkIn"    validate:"omitempty,ymd"`
	CheckOut   string `json:"checkOut"   validate:"omitempty,ymd"`
	Guests     int    `json:"guests"     validate:"omitempty,gt=0"`
	GuestName  string `json:"guestName"  validate:"omitempty,max=200"`
	GuestEmail string `json:"guestEmail" validate:"omitempty,email,max=320"`
}

func (r *CreateBookingRequest) HasRequiredFields() bool {
	return r.RoomID != constant.Empty && r.CheckIn != constant.Empty && r.CheckOut != constant.Empty && r.Guests > 0
}

// ToModel snapshots the room into a new confirmed booking. The booking number is assigned on insert.
func (r *CreateBookingRequest) ToModel(room roomModel.Room, stay daterange.Range, now time.Time) model.Booking {
	return model.Booking{
		ID:            uuid.NewString(),
		RoomID:        room.ID,
		CheckIn:       stay.CheckIn,
		CheckOut:      stay.CheckOut,
		Guests:        r.Guests,
		GuestName:     trimmed(r.GuestName),
		GuestEmail:    trimmed(r.GuestEmail),
		RoomTitle:     room.Title,
		RoomImageURL:  trimmed(room.ImageURL),
		PricePerNight: room.PricePerNight,
		TotalPrice:    room.PricePerNight.Mul(decimal.NewFromInt(int64(stay.Nights()))),
		Status:        model.StatusConfirmed,
		Metadata:      gModel.NewMetadata(now, constant.ContextGuest),
	}
}

func trimmed(value string) *string {
	value = strings.TrimSpace(value)
	if value == constant.Empty {
		return nil
	}

	return &value
}

type BookingResponse struct {
	BookingID     string          `json:"bookingId"`
	BookingNumber int             `json:"bookingNumber"`
	GuestName     *string         `json:"guestName"`
	GuestEmail    *string         `json:"guestEmail"`
	RoomID        string          `json:"roomId"`
	RoomTitle     string          `json:"roomTitle"`
	RoomImage     *string         `json:"roomImage"`
	CheckIn       string          `json:"checkIn"`
	CheckOut      string          `json:"checkOut"`
	Guests        int             `json:"guests"`
	PricePerNight decimal.Decimal `json:"pricePerNight"`
	Nights        int             `json:"nights"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
	Status        string          `json:"status"`
	CreatedAt     string          `json:"createdAt"`
	EmailSent     bool            `json:"emailSent"`
	EmailSentAt   *string         `json:"emailSentAt"`
}

func (b *BookingResponse) FromModel(booking model.Booking) {
	b.BookingID = booking.ID
	b.BookingNumber = booking.BookingNumber
	b.GuestName = booking.GuestName
	b.GuestEmail = booking.GuestEmail
	b.RoomID = booking.RoomID
	b.RoomTitle = booking.RoomTitle
	b.RoomImage = booking.RoomImageURL
	b.CheckIn = booking.CheckIn.Format(constant.DayFormat)
	b.CheckOut = booking.CheckOut.Format(constant.DayFormat)
	b.Guests = booking.Guests
	b.PricePerNight = booking.PricePerNight
	b.Nights = booking.Nights()
	b.TotalPrice = booking.TotalPrice
	b.Status = booking.Status
	b.CreatedAt = timezone.Format(booking.CreatedAt, constant.DateFormat)
	b.EmailSent = booking.EmailSent
	b.EmailSentAt = timezone.FormatPtr(booking.EmailSentAt, constant.DateFormat)
}

func FromModels(bookings []model.Booking) []BookingResponse {
	res := make([]BookingResponse, len(bookings))
	for i, booking := range bookings {
		res[i].FromModel(booking)
	}

	return res
}

const (
	ListFilterActive = "active"
	ListFilterAll    = "all"
)

// ListBookingsRequest holds the admin list query. Status defaults to all,
// Params.Limit is capped by the configured list limit.
type ListBookingsRequest struct {
	Status string           `json:"status" validate:"omitempty,oneof=active all"`
	Params gDto.QueryParams `json:"-"`
}

func (l *ListBookingsRequest) OnlyConfirmed() bool {
	return l.Status == ListFilterActive
}

type CalendarRequest struct {
	From   string `json:"from"   validate:"required,ymd"`
	To     string `json:"to"     validate:"required,ymd"`
	Guests int    `json:"guests" validate:"omitempty,gt=0"`
}

// CalendarDay lists the rooms free for the night starting on Date.
type CalendarDay struct {
	Date           string   `json:"date"`
	AvailableCount int      `json:"availableCount"`
	RoomIDs        []string `json:"roomIds"`
}
