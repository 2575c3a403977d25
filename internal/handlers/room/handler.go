package room

import (
	"hotel/infras/otel"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/service"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/daterange"
	"hotel/shared/failure"
	"hotel/shared/validator"
	"hotel/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/rooms", handler.GetRooms)
	router.Get("/rooms/{id}", handler.GetRoomByID)
	router.Get("/available-rooms", handler.GetAvailableRooms)
}

// GetRooms lists every room.
// @Summary List rooms
// @Description Retrieve all rooms ordered by their legacy code.
// @Tags Room
// @Produce json
// @Success 200 {array} dto.RoomResponse
// @Failure 500 {object} response.Message
// @Router /rooms [get]
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	rooms, err := handler.service.List(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetRoomByID retrieves a room by its ID.
// @Summary Get a room by ID
// @Tags Room
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} dto.RoomResponse
// @Failure 404 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /rooms/{id} [get]
func (handler *Handler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	room, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("roomId", id).Msg("failed to get room by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, room)
}

// GetAvailableRooms lists rooms free for the whole stay.
// @Summary List available rooms
// @Description Rooms with enough capacity and no confirmed booking overlapping [checkIn, checkOut).
// @Tags Room
// @Produce json
// @Param checkIn query string true "Check-in date (YYYY-MM-DD)"
// @Param checkOut query string true "Check-out date (YYYY-MM-DD)"
// @Param guests query int true "Number of guests"
// @Success 200 {array} dto.RoomResponse
// @Failure 400 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /available-rooms [get]
func (handler *Handler) GetAvailableRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailableRooms")
	defer scope.End()

	req, err := availableRoomsRequest(r)
	if err == nil {
		err = validator.ValidateStruct(&req)
	}

	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("invalid available rooms query")

		response.WithError(w, err)

		return
	}

	stay, err := daterange.Parse(req.CheckIn, req.CheckOut)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	rooms, err := handler.service.ListAvailable(ctx, stay, req.Guests)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list available rooms")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rooms)
}

func availableRoomsRequest(r *http.Request) (dto.AvailableRoomsRequest, error) {
	query := r.URL.Query()

	req := dto.AvailableRoomsRequest{
		CheckIn:  query.Get(constant.RequestParamCheckIn),
		CheckOut: query.Get(constant.RequestParamCheckOut),
	}

	for _, name := range []string{constant.RequestParamCheckIn, constant.RequestParamCheckOut, constant.RequestParamGuests} {
		if query.Get(name) == constant.Empty {
			return req, failure.MissingParam(name)
		}
	}

	guests, err := shared.ConvertStringToInt(query.Get(constant.RequestParamGuests))
	if err != nil {
		return req, failure.BadRequestFromString("guests must be a number")
	}

	req.Guests = guests

	return req, nil
}
