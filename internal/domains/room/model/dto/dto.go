package dto

import (
	"hotel/internal/domains/room/model"

	"github.com/shopspring/decimal"
)

type RoomResponse struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	BedType       string          `json:"bedType"`
	Capacity      int             `json:"capacity"`
	PricePerNight decimal.Decimal `json:"pricePerNight"`
	Features      []string        `json:"features"`
	ImageURL      string          `json:"imageUrl"`
	Status        string          `json:"status"`
	LegacyCode    string          `json:"legacyCode"`
}

func (r *RoomResponse) FromModel(room model.Room) {
	r.ID = room.ID
	r.Title = room.Title
	r.BedType = room.BedType
	r.Capacity = room.Capacity
	r.PricePerNight = room.PricePerNight
	r.ImageURL = room.ImageURL
	r.Status = room.Status
	r.LegacyCode = room.LegacyCode

	r.Features = []string{}
	if room.Features != nil {
		r.Features = append(r.Features, room.Features...)
	}
}

// FromModels keeps the input order and never returns nil.
func FromModels(rooms []model.Room) []RoomResponse {
	res := make([]RoomResponse, len(rooms))
	for i, room := range rooms {
		res[i].FromModel(room)
	}

	return res
}

type AvailableRoomsRequest struct {
	CheckIn  string `json:"checkIn"  validate:"required,ymd"`
	CheckOut string `json:"checkOut" validate:"required,ymd"`
	Guests   int    `json:"guests"   validate:"required,gt=0"`
}
