package service_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"

	"hotel/config"
	"hotel/infras/otel/mocks"
	s3Mocks "hotel/infras/s3/mocks"
	bookingMocks "hotel/internal/domains/booking/mocks"
	bookingModel "hotel/internal/domains/booking/model"
	"hotel/internal/domains/report/model"
	"hotel/internal/domains/report/service"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	sharedModel "hotel/shared/model"
)

func sampleBookings() []bookingModel.Booking {
	name := "Anna Nowak"
	email := "anna@example.com"

	return []bookingModel.Booking{
		{
			ID:            "4f5b3c0e-8a4d-4c55-9a55-0c4b3f3f0a01",
			BookingNumber: 48213,
			RoomID:        "7b0d5a7e-6a43-4a55-9a0e-2f8f4f1a0c11",
			RoomTitle:     "Sea View Double",
			CheckIn:       time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
			CheckOut:      time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC),
			Guests:        2,
			GuestName:     &name,
			GuestEmail:    &email,
			PricePerNight: decimal.NewFromInt(300),
			TotalPrice:    decimal.NewFromInt(900),
			Status:        bookingModel.StatusConfirmed,
			EmailSent:     true,
			Metadata:      sharedModel.Metadata{CreatedAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)},
		},
		{
			ID:            "4f5b3c0e-8a4d-4c55-9a55-0c4b3f3f0a02",
			BookingNumber: 10007,
			RoomTitle:     "Garden Single",
			CheckIn:       time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC),
			CheckOut:      time.Date(2025, 8, 11, 0, 0, 0, 0, time.UTC),
			Guests:        1,
			PricePerNight: decimal.RequireFromString("149.5"),
			TotalPrice:    decimal.RequireFromString("149.5"),
			Status:        bookingModel.StatusCancelled,
		},
	}
}

func readRows(t *testing.T, data []byte) [][]string {
	t.Helper()

	file, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)

	defer file.Close()

	rows, err := file.GetRows(model.SheetName)
	require.NoError(t, err)

	return rows
}

func TestReportService_ExportBookingsDownload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := bookingMocks.NewMockBooking(ctrl)
	storage := s3Mocks.NewMockS3(ctrl)

	cfg := &config.Config{}
	cfg.Booking.ExportLimit = 200

	repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]bookingModel.Booking, error) {
			assert.Equal(t, 200, params.Limit)
			assert.Equal(t, bookingModel.FieldCreatedAt, params.SortBy)
			assert.Equal(t, gDto.SortDirDesc, params.SortDir)
			assert.Empty(t, filter.Filters)

			return sampleBookings(), nil
		})

	svc := service.New(repo, storage, cfg, mocks.NewOtel())

	res, err := svc.ExportBookings(context.Background())
	require.NoError(t, err)

	assert.False(t, res.Archived())
	assert.Equal(t, constant.ContentTypeXLSX, res.ContentType)
	assert.True(t, strings.HasPrefix(res.FileName, model.FilePrefix+"-"))
	assert.True(t, strings.HasSuffix(res.FileName, model.FileExt))

	rows := readRows(t, res.Data)
	require.Len(t, rows, 3)

	assert.Equal(t, model.BookingColumns, rows[0])
	assert.Equal(t, "48213", rows[1][0])
	assert.Equal(t, "Anna Nowak", rows[1][1])
	assert.Equal(t, "Sea View Double", rows[1][3])
	assert.Equal(t, "2025-07-01", rows[1][4])
	assert.Equal(t, "3", rows[1][6])
	assert.Equal(t, "900.00", rows[1][9])
	assert.Equal(t, "", rows[2][1])
	assert.Equal(t, "149.50", rows[2][8])
	assert.Equal(t, bookingModel.StatusCancelled, rows[2][10])
}

func TestReportService_ExportBookingsArchived(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := bookingMocks.NewMockBooking(ctrl)
	storage := s3Mocks.NewMockS3(ctrl)

	cfg := &config.Config{}
	cfg.External.S3.Enable = true

	repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]bookingModel.Booking, error) {
			assert.Equal(t, 1000, params.Limit)

			return sampleBookings(), nil
		})

	storage.EXPECT().
		UploadFileBytes(gomock.Any(), model.Directory, gomock.Any(), constant.ContentTypeXLSX, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, fileName, _ string, data []byte) (string, error) {
			assert.Len(t, readRows(t, data), 3)

			return "https://files.example.com/exports/" + fileName, nil
		})

	svc := service.New(repo, storage, cfg, mocks.NewOtel())

	res, err := svc.ExportBookings(context.Background())
	require.NoError(t, err)

	assert.True(t, res.Archived())
	assert.Equal(t, "https://files.example.com/exports/"+res.FileName, res.URL)
	assert.Nil(t, res.Data)
}

func TestReportService_ExportBookingsErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := bookingMocks.NewMockBooking(ctrl)
	storage := s3Mocks.NewMockS3(ctrl)

	cfg := &config.Config{}
	cfg.External.S3.Enable = true

	svc := service.New(repo, storage, cfg, mocks.NewOtel())

	tests := []struct {
		name      string
		setupMock func()
	}{
		{
			name: "bookings unavailable",
			setupMock: func() {
				repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))
			},
		},
		{
			name: "upload fails",
			setupMock: func() {
				repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(sampleBookings(), nil)
				storage.EXPECT().
					UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", errors.New("access denied"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := svc.ExportBookings(context.Background())
			assert.Error(t, err)
		})
	}
}
