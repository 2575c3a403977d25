package model

import (
	"fmt"
	"strings"
)

const (
	EntityName = "notification"

	DriverInline = "inline"
	DriverKafka  = "kafka"

	ConfirmationSubject = "Booking confirmation"
)

// Confirmation is everything the guest confirmation mail needs, so a queued
// message can be delivered without reading the booking back.
type Confirmation struct {
	BookingID     string `json:"bookingId"`
	BookingNumber int    `json:"bookingNumber"`
	To            string `json:"to"`
	GuestName     string `json:"guestName"`
	RoomTitle     string `json:"roomTitle"`
	CheckIn       string `json:"checkIn"`
	CheckOut      string `json:"checkOut"`
	TotalPrice    string `json:"totalPrice"`
}

func (c *Confirmation) Body(currency string) string {
	var b strings.Builder

	if c.GuestName != "" {
		fmt.Fprintf(&b, "Hello %s,\n\n", c.GuestName)
	} else {
		b.WriteString("Hello,\n\n")
	}

	b.WriteString("Your booking has been confirmed.\n")
	fmt.Fprintf(&b, "Booking number: %d\n\n", c.BookingNumber)
	fmt.Fprintf(&b, "Room: %s\n", c.RoomTitle)
	fmt.Fprintf(&b, "Check-in: %s\n", c.CheckIn)
	fmt.Fprintf(&b, "Check-out: %s\n", c.CheckOut)
	fmt.Fprintf(&b, "Total price: %s %s", c.TotalPrice, currency)

	return b.String()
}
