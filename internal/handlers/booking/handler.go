package booking

import (
	"hotel/infras/otel"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/service"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/validator"
	"hotel/transport/http/middleware"
	"hotel/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Booking
	middleware middleware.AppMiddleware
	otel       otel.Otel
}

func New(service service.Booking, middleware middleware.AppMiddleware, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.With(handler.middleware.RateLimit).Post("/bookings", handler.CreateBooking)
	router.Get("/bookings/{id}", handler.GetBookingByID)

	router.Get("/admin/bookings", handler.GetBookings)
	router.Patch("/admin/bookings/{id}/cancel", handler.CancelBooking)
	router.Patch("/admin/bookings/{id}/complete", handler.CompleteBooking)
	router.Get("/admin/calendar", handler.GetCalendar)
}

// CreateBooking books a room for a stay.
// @Summary Create a booking
// @Description Books the room for [checkIn, checkOut) when no confirmed booking overlaps. A confirmation mail is sent when guestEmail is given.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Booking request"
// @Success 201 {object} dto.BookingResponse
// @Failure 400 {object} response.Message
// @Failure 404 {object} response.Message
// @Failure 409 {object} response.Message
// @Failure 429 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /bookings [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("roomId", req.RoomID).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created")

	response.WithJSON(writer, http.StatusCreated, booking)
}

// GetBookingByID retrieves a booking by its ID.
// @Summary Get a booking by ID
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.BookingResponse
// @Failure 404 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /bookings/{id} [get]
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("bookingId", id).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// GetBookings lists the latest bookings for the admin.
// @Summary List bookings
// @Description Newest first. status=all (default) returns every status, status=active keeps confirmed bookings only.
// @Tags Admin
// @Produce json
// @Param status query string false "active or all"
// @Param page query int false "Page, starting at 1"
// @Param limit query int false "Page size, capped by ADMIN_LIST_LIMIT"
// @Success 200 {array} dto.BookingResponse
// @Failure 400 {object} response.Message
// @Failure 401 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /admin/bookings [get]
// @Security SessionCookie
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	req := dto.ListBookingsRequest{Status: r.URL.Query().Get(constant.RequestParamStatus)}
	req.Params.FromRequest(r)

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	bookings, err := handler.service.List(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

// CancelBooking cancels a confirmed booking.
// @Summary Cancel a booking
// @Tags Admin
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.BookingResponse
// @Failure 401 {object} response.Message
// @Failure 404 {object} response.Message
// @Failure 409 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /admin/bookings/{id}/cancel [patch]
// @Security SessionCookie
func (handler *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	handler.setStatus(w, r, model.StatusCancelled)
}

// CompleteBooking marks a confirmed booking as completed.
// @Summary Complete a booking
// @Tags Admin
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.BookingResponse
// @Failure 401 {object} response.Message
// @Failure 404 {object} response.Message
// @Failure 409 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /admin/bookings/{id}/complete [patch]
// @Security SessionCookie
func (handler *Handler) CompleteBooking(w http.ResponseWriter, r *http.Request) {
	handler.setStatus(w, r, model.StatusCompleted)
}

func (handler *Handler) setStatus(w http.ResponseWriter, r *http.Request, status string) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetBookingStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.service.SetStatus(ctx, id, status)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("bookingId", id).Str("status", status).Msg("failed to change booking status")

		response.WithError(w, err)

		return
	}

	log.Info().Str("bookingId", id).Str("status", status).Msg("booking status changed")

	response.WithJSON(w, http.StatusOK, booking)
}

// GetCalendar returns per-night availability.
// @Summary Availability calendar
// @Description For each night in [from, to) the rooms with capacity >= guests that are free.
// @Tags Admin
// @Produce json
// @Param from query string true "First night (YYYY-MM-DD)"
// @Param to query string true "Day after the last night (YYYY-MM-DD)"
// @Param guests query int false "Number of guests, defaults to 1"
// @Success 200 {array} dto.CalendarDay
// @Failure 400 {object} response.Message
// @Failure 401 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /admin/calendar [get]
// @Security SessionCookie
func (handler *Handler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCalendar")
	defer scope.End()

	query := r.URL.Query()

	req := dto.CalendarRequest{
		From: query.Get(constant.RequestParamFrom),
		To:   query.Get(constant.RequestParamTo),
	}

	if guests := query.Get(constant.RequestParamGuests); guests != constant.Empty {
		parsed, err := shared.ConvertStringToInt(guests)
		if err != nil {
			scope.TraceError(err)
			response.WithError(w, failure.BadRequestFromString("guests must be a number"))

			return
		}

		req.Guests = parsed
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	days, err := handler.service.Calendar(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build calendar")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, days)
}
