package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/s3"
	bookingModel "hotel/internal/domains/booking/model"
	bookingRepository "hotel/internal/domains/booking/repository"
	"hotel/internal/domains/report/model"
	"hotel/internal/domains/report/model/dto"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/timezone"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

const (
	defaultExportLimit = 1000
	defaultSheetName   = "Sheet1"
)

type Report interface {
	// ExportBookings renders the latest bookings into a workbook, uploading it when S3 is enabled.
	ExportBookings(ctx context.Context) (dto.Export, error)
}

type serviceImpl struct {
	bookingRepo bookingRepository.Booking
	storage     s3.S3
	cfg         *config.Config
	otel        otel.Otel
}

func New(bookingRepo bookingRepository.Booking, storage s3.S3, cfg *config.Config, otel otel.Otel) Report {
	return &serviceImpl{
		bookingRepo: bookingRepo,
		storage:     storage,
		cfg:         cfg,
		otel:        otel,
	}
}

func (s *serviceImpl) ExportBookings(ctx context.Context) (res dto.Export, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".report.ExportBookings")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	limit := s.cfg.Booking.ExportLimit
	if limit <= 0 {
		limit = defaultExportLimit
	}

	params := gDto.QueryParams{
		SortBy:  bookingModel.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
		Limit:   limit,
	}

	bookings, err := s.bookingRepo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to load bookings for export")

		return res, fmt.Errorf("failed to load bookings for export: %w", err)
	}

	data, err := s.workbook(bookings)
	if err != nil {
		log.Error().Err(err).Msg("failed to render booking export")

		return res, err
	}

	res = dto.Export{
		FileName:    model.FilePrefix + "-" + timezone.Now().Format(constant.ExportFormat) + model.FileExt,
		ContentType: constant.ContentTypeXLSX,
		Data:        data,
	}

	scope.SetAttribute("report.rows", len(bookings))

	if !s.cfg.External.S3.Enable {
		return res, nil
	}

	url, err := s.storage.UploadFileBytes(ctx, model.Directory, res.FileName, res.ContentType, data)
	if err != nil {
		return res, fmt.Errorf("failed to archive booking export: %w", err)
	}

	log.Info().Str("url", url).Int("rows", len(bookings)).Msg("booking export archived")

	res.URL = url
	res.Data = nil

	return res, nil
}

func (s *serviceImpl) workbook(bookings []bookingModel.Booking) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName(defaultSheetName, model.SheetName); err != nil {
		return nil, fmt.Errorf("failed to name export sheet: %w", err)
	}

	header := make([]any, len(model.BookingColumns))
	for i, column := range model.BookingColumns {
		header[i] = column
	}

	if err := s.writeRow(file, 1, header); err != nil {
		return nil, err
	}

	for i, booking := range bookings {
		if err := s.writeRow(file, i+2, bookingRow(booking)); err != nil {
			return nil, err
		}
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write export workbook: %w", err)
	}

	return buf.Bytes(), nil
}

func (s *serviceImpl) writeRow(file *excelize.File, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("failed to resolve export cell: %w", err)
	}

	if err = file.SetSheetRow(model.SheetName, cell, &values); err != nil {
		return fmt.Errorf("failed to write export row %d: %w", row, err)
	}

	return nil
}

func bookingRow(booking bookingModel.Booking) []any {
	return []any{
		booking.BookingNumber,
		valueOf(booking.GuestName),
		valueOf(booking.GuestEmail),
		booking.RoomTitle,
		booking.CheckIn.Format(constant.DayFormat),
		booking.CheckOut.Format(constant.DayFormat),
		booking.Nights(),
		booking.Guests,
		booking.PricePerNight.StringFixed(2), //nolint:mnd
		booking.TotalPrice.StringFixed(2),    //nolint:mnd
		booking.Status,
		timezone.Format(booking.CreatedAt, constant.DateFormat),
		booking.EmailSent,
	}
}

func valueOf(value *string) string {
	if value == nil {
		return constant.Empty
	}

	return *value
}
