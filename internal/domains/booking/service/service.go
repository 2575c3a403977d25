package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/repository"
	notificationModel "hotel/internal/domains/notification/model"
	notification "hotel/internal/domains/notification/service"
	roomModel "hotel/internal/domains/room/model"
	roomRepository "hotel/internal/domains/room/repository"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/daterange"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	numberMin        = 10000
	numberMax        = 99999
	widenedNumberMin = 100000
	widenedNumberMax = 999999

	defaultListLimit       = 50
	defaultCalendarMaxDays = 93
)

// NumberGenerator returns a booking number in [min, max].
type NumberGenerator func(min, max int) int

// RandomNumber draws booking numbers uniformly.
func RandomNumber(min, max int) int {
	return min + rand.IntN(max-min+1) //nolint:gosec
}

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	List(ctx context.Context, req dto.ListBookingsRequest) ([]dto.BookingResponse, error)
	SetStatus(ctx context.Context, id, next string) (dto.BookingResponse, error)
	Calendar(ctx context.Context, req dto.CalendarRequest) ([]dto.CalendarDay, error)
}

type serviceImpl struct {
	repo     repository.Booking
	roomRepo roomRepository.Room
	notifier notification.Notification
	cfg      *config.Config
	otel     otel.Otel
	number   NumberGenerator
}

func New(
	repo repository.Booking,
	roomRepo roomRepository.Room,
	notifier notification.Notification,
	cfg *config.Config,
	otel otel.Otel,
	number NumberGenerator,
) Booking {
	if number == nil {
		number = RandomNumber
	}

	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		notifier: notifier,
		cfg:      cfg,
		otel:     otel,
		number:   number,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !req.HasRequiredFields() {
		return res, failure.ErrMissingFields
	}

	stay, err := daterange.Parse(req.CheckIn, req.CheckOut)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if uuid.Validate(req.RoomID) != nil {
		return res, failure.NotFound("Room not found") //nolint:wrapcheck
	}

	scope.SetAttributes(map[string]any{
		"roomId": req.RoomID,
		"stay":   stay.String(),
	})

	conflict, err := s.repo.HasOverlap(ctx, req.RoomID, stay)
	if err != nil {
		log.Error().Err(err).Str("roomId", req.RoomID).Msg("failed to check booking conflicts")

		return res, failure.ErrBookingNotCreated
	}

	if conflict {
		return res, failure.ErrRoomUnavailable
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("roomId", req.RoomID).Msg("failed to get room for booking")

		return res, failure.ErrBookingNotCreated
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("Room not found") //nolint:wrapcheck
	}

	created, err := s.insert(ctx, req.ToModel(room, stay, timezone.Now()))
	if err != nil {
		return res, err
	}

	res.FromModel(created)

	log.Info().
		Str("bookingId", created.ID).
		Int("bookingNumber", created.BookingNumber).
		Str("roomId", created.RoomID).
		Msg("booking created")

	if created.GuestEmail != nil {
		s.notifier.Dispatch(ctx, confirmationOf(created))
	}

	return res, nil
}

// numberRanges lists the booking number space of every insert attempt, in order.
func (s *serviceImpl) numberRanges() [][2]int {
	attempts := max(s.cfg.Booking.NumberMaxAttempts, 1)
	ranges := make([][2]int, 0, attempts+s.cfg.Booking.NumberWidenedAttempts)

	for range attempts {
		ranges = append(ranges, [2]int{numberMin, numberMax})
	}

	for range s.cfg.Booking.NumberWidenedAttempts {
		ranges = append(ranges, [2]int{widenedNumberMin, widenedNumberMax})
	}

	return ranges
}

func (s *serviceImpl) insert(ctx context.Context, booking model.Booking) (model.Booking, error) {
	for attempt, bounds := range s.numberRanges() {
		booking.BookingNumber = s.number(bounds[0], bounds[1])

		created, err := s.repo.InsertIfAvailable(ctx, booking)

		switch {
		case err == nil:
			return created, nil
		case errors.Is(err, repository.ErrDuplicateBookingNumber):
			log.Warn().
				Int("attempt", attempt+1).
				Int("bookingNumber", booking.BookingNumber).
				Msg("booking number taken, retrying")
		case errors.Is(err, repository.ErrRoomUnavailable):
			return model.Booking{}, failure.ErrRoomUnavailable
		default:
			log.Error().Err(err).Str("roomId", booking.RoomID).Msg("failed to insert booking")

			return model.Booking{}, failure.ErrBookingNotCreated
		}
	}

	log.Error().Str("roomId", booking.RoomID).Msg("booking numbers exhausted")

	return model.Booking{}, failure.ErrBookingNotCreated
}

func confirmationOf(booking model.Booking) notificationModel.Confirmation {
	msg := notificationModel.Confirmation{
		BookingID:     booking.ID,
		BookingNumber: booking.BookingNumber,
		RoomTitle:     booking.RoomTitle,
		CheckIn:       booking.Stay().CheckInString(),
		CheckOut:      booking.Stay().CheckOutString(),
		TotalPrice:    booking.TotalPrice.String(),
	}

	if booking.GuestEmail != nil {
		msg.To = *booking.GuestEmail
	}

	if booking.GuestName != nil {
		msg.GuestName = *booking.GuestName
	}

	return msg
}

func (s *serviceImpl) get(ctx context.Context, id string) (model.Booking, error) {
	if uuid.Validate(id) != nil {
		return model.Booking{}, failure.NotFound("Booking not found") //nolint:wrapcheck
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("bookingId", id).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("Booking not found") //nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	return res, nil
}

// List returns the newest bookings first, of every status unless only active ones were asked for.
func (s *serviceImpl) List(ctx context.Context, req dto.ListBookingsRequest) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	limit := s.cfg.Booking.AdminListLimit
	if limit <= 0 {
		limit = defaultListLimit
	}

	params := req.Params
	params.SortBy = model.FieldCreatedAt
	params.SortDir = gDto.SortDirDesc
	params.CapLimit(limit)

	filter := gDto.FilterGroup{}
	if req.OnlyConfirmed() {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Value:    model.StatusConfirmed,
			Operator: gDto.FilterOperatorEq,
		})
	}

	bookings, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to list bookings")

		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	return dto.FromModels(bookings), nil
}

func (s *serviceImpl) SetStatus(ctx context.Context, id, next string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.SetStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if next != model.StatusCancelled && next != model.StatusCompleted {
		return res, failure.BadRequestFromString(fmt.Sprintf("unsupported status %q", next)) //nolint:wrapcheck
	}

	booking, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	if !model.CanTransition(booking.Status, next) {
		return res, failure.Conflict(fmt.Sprintf("Booking is already %s", booking.Status)) //nolint:wrapcheck
	}

	changed, err := s.repo.UpdateStatus(ctx, id, booking.Status, next, constant.ContextAdmin)
	if err != nil {
		log.Error().Err(err).Str("bookingId", id).Msg("failed to update booking status")

		return res, fmt.Errorf("failed to update booking status: %w", err)
	}

	if !changed {
		current, getErr := s.get(ctx, id)
		if getErr != nil {
			return res, getErr
		}

		return res, failure.Conflict(fmt.Sprintf("Booking is already %s", current.Status)) //nolint:wrapcheck
	}

	log.Info().Str("bookingId", id).Str("from", booking.Status).Str("to", next).Msg("booking status changed")

	booking.Status = next
	booking.ModifiedAt = timezone.Now()
	booking.ModifiedBy = constant.ContextAdmin

	res.FromModel(booking)

	return res, nil
}

// Calendar lists, for every night in [From, To), the rooms sleeping Guests that are still free.
func (s *serviceImpl) Calendar(ctx context.Context, req dto.CalendarRequest) (res []dto.CalendarDay, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Calendar")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	period, err := daterange.Parse(req.From, req.To)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	maxDays := s.cfg.Booking.CalendarMaxDays
	if maxDays <= 0 {
		maxDays = defaultCalendarMaxDays
	}

	if period.Nights() > maxDays {
		return nil, failure.BadRequestFromString(fmt.Sprintf("calendar range must not exceed %d days", maxDays)) //nolint:wrapcheck
	}

	guests := max(req.Guests, 1)

	rooms, err := s.roomRepo.GetAll(ctx, roomRepository.ByLegacyCode(), roomRepository.WithCapacity(guests))
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms for calendar")

		return nil, fmt.Errorf("failed to get rooms: %w", err)
	}

	bookings, err := s.repo.ListOverlapping(ctx, period)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings for calendar")

		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	byRoom := make(map[string][]daterange.Range, len(rooms))
	for _, booking := range bookings {
		byRoom[booking.RoomID] = append(byRoom[booking.RoomID], booking.Stay())
	}

	days := period.Days()
	res = make([]dto.CalendarDay, 0, len(days))

	for _, night := range days {
		day := dto.CalendarDay{Date: night.CheckInString(), RoomIDs: []string{}}

		for _, room := range rooms {
			if room.Capacity < guests || occupied(byRoom[room.ID], night) {
				continue
			}

			day.RoomIDs = append(day.RoomIDs, room.ID)
		}

		day.AvailableCount = len(day.RoomIDs)
		res = append(res, day)
	}

	return res, nil
}

func occupied(stays []daterange.Range, night daterange.Range) bool {
	for _, stay := range stays {
		if stay.Overlaps(night) {
			return true
		}
	}

	return false
}
