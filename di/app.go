package di

import (
	"hotel/infras/otel"
	bookingService "hotel/internal/domains/booking/service"
	notificationService "hotel/internal/domains/notification/service"
	"hotel/transport/http"
)

// App is everything cmd/app runs: the HTTP server plus the background consumers.
type App struct {
	HTTP         *http.HTTP
	Notification notificationService.Notification
	Otel         otel.Otel
}

func provideNumberGenerator() bookingService.NumberGenerator {
	return bookingService.RandomNumber
}
