package booking_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotel/config"
	"hotel/infras/otel/mocks"
	bookingMocks "hotel/internal/domains/booking/mocks"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/handlers/booking"
	cacheMocks "hotel/shared/cache/mocks"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/transport/http/middleware"
	"hotel/transport/http/response"
)

const roomID = "7b0d5a7e-6a43-4a55-9a0e-2f8f4f1a0c11"

type fixture struct {
	svc    *bookingMocks.MockBookingService
	cache  *cacheMocks.MockRedisCache
	router http.Handler
}

func newFixture(t *testing.T, cfg *config.Config) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		svc:   bookingMocks.NewMockBookingService(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}

	app := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, f.cache)
	handler := booking.New(f.svc, app, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	f.router = router

	return f
}

func (f *fixture) do(method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))

	return rec
}

func messageOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var msg response.Message
	require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &msg))

	return msg.Message
}

func TestHandler_CreateBooking(t *testing.T) {
	validBody := `{"roomId":"` + roomID + `","checkIn":"2025-07-01","checkOut":"2025-07-03","guests":2,"guestName":"Anna","guestEmail":"anna@example.com"}`

	tests := []struct {
		name      string
		body      string
		setupMock func(f *fixture)
		wantCode  int
		wantMsg   string
	}{
		{
			name: "created",
			body: validBody,
			setupMock: func(f *fixture) {
				f.svc.EXPECT().
					Create(gomock.Any(), dto.CreateBookingRequest{
						RoomID:     roomID,
						CheckIn:    "2025-07-01",
						CheckOut:   "2025-07-03",
						Guests:     2,
						GuestName:  "Anna",
						GuestEmail: "anna@example.com",
					}).
					Return(dto.BookingResponse{BookingID: "b1", BookingNumber: 48213, Status: model.StatusConfirmed}, nil)
			},
			wantCode: http.StatusCreated,
		},
		{
			name: "missing fields",
			body: `{"checkIn":"2025-07-01"}`,
			setupMock: func(f *fixture) {
				f.svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.BookingResponse{}, failure.ErrMissingFields)
			},
			wantCode: http.StatusBadRequest,
			wantMsg:  "Missing required fields",
		},
		{
			name: "large party reaches the service",
			body: `{"roomId":"` + roomID + `","checkIn":"2025-07-01","checkOut":"2025-07-03","guests":21}`,
			setupMock: func(f *fixture) {
				f.svc.EXPECT().
					Create(gomock.Any(), dto.CreateBookingRequest{RoomID: roomID, CheckIn: "2025-07-01", CheckOut: "2025-07-03", Guests: 21}).
					Return(dto.BookingResponse{BookingID: "b1", Guests: 21}, nil)
			},
			wantCode: http.StatusCreated,
		},
		{
			name:     "malformed email",
			body:     `{"roomId":"` + roomID + `","checkIn":"2025-07-01","checkOut":"2025-07-03","guests":2,"guestEmail":"not-an-email"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "malformed json",
			body:     `{"roomId":`,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "room taken",
			body: validBody,
			setupMock: func(f *fixture) {
				f.svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.BookingResponse{}, failure.ErrRoomUnavailable)
			},
			wantCode: http.StatusConflict,
			wantMsg:  "Room is already booked",
		},
		{
			name: "room missing",
			body: validBody,
			setupMock: func(f *fixture) {
				f.svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.BookingResponse{}, failure.NotFound("Room not found"))
			},
			wantCode: http.StatusNotFound,
			wantMsg:  "Room not found",
		},
		{
			name: "persistence failure",
			body: validBody,
			setupMock: func(f *fixture) {
				f.svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.BookingResponse{}, failure.ErrBookingNotCreated)
			},
			wantCode: http.StatusInternalServerError,
			wantMsg:  "Failed to create booking",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, &config.Config{})

			if tt.setupMock != nil {
				tt.setupMock(f)
			}

			rec := f.do(http.MethodPost, "/bookings", tt.body)

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, messageOf(t, rec))
			}
		})
	}
}

func TestHandler_CreateBookingRateLimited(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 5
	cfg.App.RateLimiter.WindowSeconds = 60

	f := newFixture(t, cfg)

	f.cache.EXPECT().Increment(gomock.Any(), gomock.Any(), 60).Return(int64(6), nil)

	rec := f.do(http.MethodPost, "/bookings", `{}`)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
}

func TestHandler_CreateBookingLimiterDown(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 5

	f := newFixture(t, cfg)

	f.cache.EXPECT().Increment(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("redis down"))
	f.svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.BookingResponse{BookingID: "b1"}, nil)

	rec := f.do(http.MethodPost, "/bookings", `{"roomId":"`+roomID+`","checkIn":"2025-07-01","checkOut":"2025-07-02","guests":1}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestHandler_GetBookingByID(t *testing.T) {
	f := newFixture(t, &config.Config{})

	f.svc.EXPECT().Get(gomock.Any(), "b1").Return(dto.BookingResponse{BookingID: "b1", Status: model.StatusCancelled}, nil)
	f.svc.EXPECT().Get(gomock.Any(), "b2").Return(dto.BookingResponse{}, failure.NotFound("Booking not found"))

	rec := f.do(http.MethodGet, "/bookings/b1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var res map[string]any
	require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "cancelled", res["status"])

	rec = f.do(http.MethodGet, "/bookings/b2", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Booking not found", messageOf(t, rec))
}

func TestHandler_GetBookings(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantStatus string
		wantParams gDto.QueryParams
		wantCode   int
	}{
		{name: "default is all", query: "", wantStatus: "", wantCode: http.StatusOK},
		{name: "active", query: "?status=active", wantStatus: dto.ListFilterActive, wantCode: http.StatusOK},
		{name: "all", query: "?status=all", wantStatus: dto.ListFilterAll, wantCode: http.StatusOK},
		{
			name:       "paged",
			query:      "?status=all&page=3&limit=25",
			wantStatus: dto.ListFilterAll,
			wantParams: gDto.QueryParams{Page: 3, Limit: 25},
			wantCode:   http.StatusOK,
		},
		{name: "unknown filter", query: "?status=archived", wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, &config.Config{})

			if tt.wantCode == http.StatusOK {
				f.svc.EXPECT().
					List(gomock.Any(), dto.ListBookingsRequest{Status: tt.wantStatus, Params: tt.wantParams}).
					Return([]dto.BookingResponse{{BookingID: "b1"}}, nil)
			}

			rec := f.do(http.MethodGet, "/admin/bookings"+tt.query, "")

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_SetStatus(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		status   string
		err      error
		wantCode int
		wantMsg  string
	}{
		{name: "cancel", path: "/admin/bookings/b1/cancel", status: model.StatusCancelled, wantCode: http.StatusOK},
		{name: "complete", path: "/admin/bookings/b1/complete", status: model.StatusCompleted, wantCode: http.StatusOK},
		{
			name:     "already cancelled",
			path:     "/admin/bookings/b1/complete",
			status:   model.StatusCompleted,
			err:      failure.Conflict("Booking is already cancelled"),
			wantCode: http.StatusConflict,
			wantMsg:  "Booking is already cancelled",
		},
		{
			name:     "missing",
			path:     "/admin/bookings/b1/cancel",
			status:   model.StatusCancelled,
			err:      failure.NotFound("Booking not found"),
			wantCode: http.StatusNotFound,
			wantMsg:  "Booking not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, &config.Config{})

			f.svc.EXPECT().
				SetStatus(gomock.Any(), "b1", tt.status).
				Return(dto.BookingResponse{BookingID: "b1", Status: tt.status}, tt.err)

			rec := f.do(http.MethodPatch, tt.path, "")

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, messageOf(t, rec))
			}
		})
	}
}

func TestHandler_GetCalendar(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		want     *dto.CalendarRequest
		err      error
		wantCode int
	}{
		{
			name:     "with guests",
			query:    "?from=2025-07-01&to=2025-07-08&guests=3",
			want:     &dto.CalendarRequest{From: "2025-07-01", To: "2025-07-08", Guests: 3},
			wantCode: http.StatusOK,
		},
		{
			name:     "guests optional",
			query:    "?from=2025-07-01&to=2025-07-08",
			want:     &dto.CalendarRequest{From: "2025-07-01", To: "2025-07-08"},
			wantCode: http.StatusOK,
		},
		{
			name:     "range too long",
			query:    "?from=2025-01-01&to=2025-12-31",
			want:     &dto.CalendarRequest{From: "2025-01-01", To: "2025-12-31"},
			err:      failure.BadRequestFromString("calendar range is limited to 93 days"),
			wantCode: http.StatusBadRequest,
		},
		{name: "missing from", query: "?to=2025-07-08", wantCode: http.StatusBadRequest},
		{name: "bad date", query: "?from=07/01/2025&to=2025-07-08", wantCode: http.StatusBadRequest},
		{name: "guests not a number", query: "?from=2025-07-01&to=2025-07-08&guests=many", wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, &config.Config{})

			if tt.want != nil {
				f.svc.EXPECT().
					Calendar(gomock.Any(), *tt.want).
					Return([]dto.CalendarDay{{Date: "2025-07-01", AvailableCount: 1, RoomIDs: []string{roomID}}}, tt.err)
			}

			rec := f.do(http.MethodGet, "/admin/calendar"+tt.query, "")

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
