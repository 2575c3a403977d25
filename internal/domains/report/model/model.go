package model

const (
	EntityName = "report"
	SheetName  = "Bookings"
	Directory  = "exports"
	FilePrefix = "bookings"
	FileExt    = ".xlsx"
)

// BookingColumns is the header row of the booking export, in cell order.
var BookingColumns = []string{
	"Booking number",
	"Guest name",
	"Guest email",
	"Room",
	"Check-in",
	"Check-out",
	"Nights",
	"Guests",
	"Price per night",
	"Total price",
	"Status",
	"Created at",
	"Email sent",
}
