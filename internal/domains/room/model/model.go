package model

import (
	"hotel/shared/model"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID         = "id"
	FieldCapacity   = "capacity"
	FieldLegacyCode = "legacy_code"
	FieldStatus     = "status"
)

type Room struct {
	ID            string          `db:"id"`
	Title         string          `db:"title"`
	BedType       string          `db:"bed_type"`
	Capacity      int             `db:"capacity"`
	PricePerNight decimal.Decimal `db:"price_per_night"`
	Features      pq.StringArray  `db:"features"`
	ImageURL      string          `db:"image_url"`
	Status        string          `db:"status"`
	LegacyCode    string          `db:"legacy_code"`
	model.Metadata
}
