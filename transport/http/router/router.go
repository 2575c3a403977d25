package router

import (
	"hotel/internal/handlers/admin"
	"hotel/internal/handlers/booking"
	"hotel/internal/handlers/report"
	"hotel/internal/handlers/room"
	"hotel/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Admin   admin.Handler
	Room    room.Handler
	Booking booking.Handler
	Report  report.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	App            middleware.AppMiddleware
	Auth           middleware.Auth
}

// SetupRoutes mounts the API at the root, as the browser client expects.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Group(func(routerGroup chi.Router) {
		routerGroup.Use(r.App.Tracing, r.Auth.Auth)

		r.DomainHandlers.Admin.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Report.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, app middleware.AppMiddleware, auth middleware.Auth) Router {
	return Router{
		DomainHandlers: domainHandlers,
		App:            app,
		Auth:           auth,
	}
}
