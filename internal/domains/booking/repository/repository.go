package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/booking/model"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/daterange"
	gDto "hotel/shared/dto"
	"hotel/shared/logger"
	gRepo "hotel/shared/repository"
	"hotel/shared/timezone"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" //nolint:revive
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/lib/pq"
)

var (
	// ErrDuplicateBookingNumber means the generated booking number is already taken.
	ErrDuplicateBookingNumber = errors.New("booking number already exists")
	// ErrRoomUnavailable means a confirmed booking for the room overlaps the stay.
	ErrRoomUnavailable = errors.New("room is already booked for the requested dates")
)

const (
	argStayCheckIn  = "stay_check_in"
	argStayCheckOut = "stay_check_out"
	argCurrent      = "current_status"
)

var dialect = goqu.Dialect("postgres")

type Booking interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	HasOverlap(ctx context.Context, roomID string, stay daterange.Range) (bool, error)
	ListOverlapping(ctx context.Context, stay daterange.Range) ([]model.Booking, error)
	OccupiedRoomIDs(ctx context.Context, stay daterange.Range) ([]string, error)
	InsertIfAvailable(ctx context.Context, booking model.Booking) (model.Booking, error)
	UpdateStatus(ctx context.Context, id, current, next, actor string) (bool, error)
	MarkEmailSent(ctx context.Context, id string, sentAt time.Time) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// OverlapFilter matches confirmed bookings sharing a night with stay.
func OverlapFilter(stay daterange.Range) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldStatus, Value: model.StatusConfirmed, Operator: gDto.FilterOperatorEq},
			gDto.Filter{Field: model.FieldCheckIn, ArgName: argStayCheckOut, Value: stay.CheckOutString(), Operator: gDto.FilterOperatorLess},
			gDto.Filter{Field: model.FieldCheckOut, ArgName: argStayCheckIn, Value: stay.CheckInString(), Operator: gDto.FilterOperatorGreater},
		},
	}
}

func (r *repositoryImpl) HasOverlap(ctx context.Context, roomID string, stay daterange.Range) (bool, error) {
	filter := OverlapFilter(stay)
	filter.Filters = append(filter.Filters, gDto.Filter{Field: model.FieldRoomID, Value: roomID, Operator: gDto.FilterOperatorEq})

	return r.Exist(ctx, filter)
}

func (r *repositoryImpl) ListOverlapping(ctx context.Context, stay daterange.Range) ([]model.Booking, error) {
	return r.GetAll(ctx, gDto.QueryParams{}, OverlapFilter(stay), model.FieldID, model.FieldRoomID, model.FieldCheckIn, model.FieldCheckOut, model.FieldStatus)
}

func overlapping(stay daterange.Range) exp.Expression {
	return goqu.And(
		goqu.C(model.FieldStatus).Eq(model.StatusConfirmed),
		goqu.C(model.FieldCheckIn).Lt(goqu.Cast(goqu.V(stay.CheckOutString()), "DATE")),
		goqu.C(model.FieldCheckOut).Gt(goqu.Cast(goqu.V(stay.CheckInString()), "DATE")),
	)
}

func (r *repositoryImpl) OccupiedRoomIDs(ctx context.Context, stay daterange.Range) (ids []string, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.OccupiedRoomIDs")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query, args, err := dialect.From(model.TableName).
		Prepared(true).
		Select(model.FieldRoomID).
		Distinct().
		Where(overlapping(stay)).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build occupied rooms query: %w", err)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	ids = []string{}
	if err = r.db.Read.SelectContext(ctx, &ids, query, args...); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get occupied rooms: %w", err)
	}

	return ids, nil
}

// InsertIfAvailable stores booking unless a confirmed booking for the same room overlaps it.
// The check and the insert run as one statement, and the exclusion constraint backs it up.
func (r *repositoryImpl) InsertIfAvailable(ctx context.Context, booking model.Booking) (res model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.InsertIfAvailable")
	defer scope.End()

	query, args, err := r.insertQuery(booking)
	if err != nil {
		scope.TraceError(err)

		return res, fmt.Errorf("failed to build booking insert: %w", err)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = r.db.Write.QueryRowxContext(ctx, query, args...).StructScan(&res)
	if errors.Is(err, sql.ErrNoRows) {
		return res, ErrRoomUnavailable
	}

	if err != nil {
		if mapped := mapConstraintError(err); mapped != nil {
			return res, mapped
		}

		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return res, fmt.Errorf("failed to insert booking: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) insertQuery(b model.Booking) (string, []any, error) {
	values := []struct {
		column string
		value  any
		cast   string
	}{
		{model.FieldID, b.ID, "UUID"},
		{model.FieldBookingNumber, b.BookingNumber, "INTEGER"},
		{model.FieldRoomID, b.RoomID, "UUID"},
		{model.FieldCheckIn, b.CheckIn.Format(constant.DayFormat), "DATE"},
		{model.FieldCheckOut, b.CheckOut.Format(constant.DayFormat), "DATE"},
		{model.FieldGuests, b.Guests, "INTEGER"},
		{model.FieldGuestName, nullable(b.GuestName), "TEXT"},
		{model.FieldGuestEmail, nullable(b.GuestEmail), "TEXT"},
		{model.FieldRoomTitle, b.RoomTitle, "TEXT"},
		{model.FieldRoomImageURL, nullable(b.RoomImageURL), "TEXT"},
		{model.FieldPricePerNight, b.PricePerNight.String(), "NUMERIC"},
		{model.FieldTotalPrice, b.TotalPrice.String(), "NUMERIC"},
		{model.FieldStatus, b.Status, "TEXT"},
		{model.FieldEmailSent, b.EmailSent, "BOOLEAN"},
		{constant.FieldCreatedAt, b.CreatedAt, "TIMESTAMPTZ"},
		{constant.FieldModifiedAt, b.ModifiedAt, "TIMESTAMPTZ"},
		{constant.FieldCreatedBy, b.CreatedBy, "TEXT"},
		{constant.FieldModifiedBy, b.ModifiedBy, "TEXT"},
	}

	cols := make([]any, 0, len(values))
	selects := make([]any, 0, len(values))

	for _, v := range values {
		cols = append(cols, v.column)
		selects = append(selects, goqu.Cast(goqu.V(v.value), v.cast))
	}

	conflicts := dialect.From(model.TableName).
		Select(goqu.L("1")).
		Where(
			goqu.C(model.FieldRoomID).Eq(goqu.Cast(goqu.V(b.RoomID), "UUID")),
			overlapping(b.Stay()),
		)

	returning := make([]any, 0)
	for _, col := range r.SelectColumns() {
		returning = append(returning, col)
	}

	query, args, err := dialect.Insert(model.TableName).
		Prepared(true).
		Cols(cols...).
		FromQuery(dialect.Select(selects...).Where(goqu.L("NOT EXISTS ?", conflicts))).
		Returning(returning...).
		ToSQL()
	if err != nil {
		return "", nil, fmt.Errorf("failed to build insert query: %w", err)
	}

	return query, args, nil
}

func nullable(value *string) any {
	if value == nil {
		return nil
	}

	return *value
}

func mapConstraintError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return nil
	}

	switch string(pqErr.Code) {
	case constant.PqErrorCodeUniqueViolation:
		if pqErr.Constraint == model.ConstraintBookingNumber {
			return ErrDuplicateBookingNumber
		}
	case constant.PqErrorCodeExclusionViolation:
		return ErrRoomUnavailable
	}

	return nil
}

// UpdateStatus moves a booking from current to next and reports whether a row changed.
// A concurrent change of the status leaves the row untouched.
func (r *repositoryImpl) UpdateStatus(ctx context.Context, id, current, next, actor string) (bool, error) {
	filter := shared.FilterByID(id, model.FieldID, model.TableName)
	filter.Filters = append(filter.Filters, gDto.Filter{
		Field:    model.FieldStatus,
		ArgName:  argCurrent,
		Value:    current,
		Operator: gDto.FilterOperatorEq,
		Table:    model.TableName,
	})

	affected, err := r.Update(ctx, map[string]any{
		model.FieldStatus:        next,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: actor,
	}, filter)
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func (r *repositoryImpl) MarkEmailSent(ctx context.Context, id string, sentAt time.Time) error {
	_, err := r.Update(ctx, map[string]any{
		model.FieldEmailSent:   true,
		model.FieldEmailSentAt: sentAt,
	}, shared.FilterByID(id, model.FieldID, model.TableName))

	return err
}
