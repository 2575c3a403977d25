package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/otel"
	bookingRepository "hotel/internal/domains/booking/repository"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	"hotel/shared/daterange"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Room interface {
	List(ctx context.Context) ([]dto.RoomResponse, error)
	Get(ctx context.Context, id string) (dto.RoomResponse, error)
	ListAvailable(ctx context.Context, stay daterange.Range, guests int) ([]dto.RoomResponse, error)
}

type serviceImpl struct {
	repo        repository.Room
	bookingRepo bookingRepository.Booking
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(repo repository.Room, bookingRepo bookingRepository.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Room {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) List(ctx context.Context) (res []dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	// a zero TTL would store the rooms without expiry
	if s.cfg.Cache.TTL <= 0 {
		return s.list(ctx)
	}

	cacheKey := shared.BuildCacheKey(constant.CacheKeyRooms)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for rooms")

		return res, nil
	}

	res, err = s.list(ctx)
	if err != nil {
		return nil, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rooms to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) list(ctx context.Context) ([]dto.RoomResponse, error) {
	rooms, err := s.repo.GetAll(ctx, repository.ByLegacyCode(), gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return nil, fmt.Errorf("failed to get rooms: %w", err)
	}

	return dto.FromModels(rooms), nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if uuid.Validate(id) != nil {
		return res, failure.NotFound("Room not found") //nolint:wrapcheck
	}

	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("roomId", id).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("Room not found") //nolint:wrapcheck
	}

	res.FromModel(room)

	return res, nil
}

// ListAvailable returns rooms sleeping at least guests that have no confirmed booking overlapping stay.
func (s *serviceImpl) ListAvailable(ctx context.Context, stay daterange.Range, guests int) (res []dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.ListAvailable")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		"stay":   stay.String(),
		"guests": guests,
	})

	rooms, err := s.repo.GetAll(ctx, repository.ByLegacyCode(), repository.WithCapacity(guests))
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms by capacity")

		return nil, fmt.Errorf("failed to get rooms: %w", err)
	}

	occupied, err := s.bookingRepo.OccupiedRoomIDs(ctx, stay)
	if err != nil {
		log.Error().Err(err).Msg("failed to get occupied rooms")

		return nil, fmt.Errorf("failed to get occupied rooms: %w", err)
	}

	taken := make(map[string]struct{}, len(occupied))
	for _, id := range occupied {
		taken[id] = struct{}{}
	}

	available := make([]model.Room, 0, len(rooms))

	for _, room := range rooms {
		if _, ok := taken[room.ID]; ok || room.Capacity < guests {
			continue
		}

		available = append(available, room)
	}

	return dto.FromModels(available), nil
}
