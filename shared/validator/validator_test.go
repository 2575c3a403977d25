package validator_test

import (
	"hotel/shared/failure"
	"hotel/shared/validator"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type bookingForm struct {
	RoomID     string `json:"roomId"     validate:"required,uuid"`
	CheckIn    string `json:"checkIn"    validate:"required,ymd"`
	Guests     int    `json:"guests"     validate:"required,gt=0"`
	GuestEmail string `json:"guestEmail" validate:"omitempty,email"`
}

func TestValidateStruct(t *testing.T) {
	valid := bookingForm{
		RoomID:  "0b6f5a6e-2a6f-4c1d-9d0b-1c1b7f3e2a10",
		CheckIn: "2025-06-01",
		Guests:  2,
	}

	tests := []struct {
		name    string
		mutate  func(f *bookingForm)
		wantErr string
	}{
		{name: "valid form", mutate: func(_ *bookingForm) {}},
		{name: "missing room", mutate: func(f *bookingForm) { f.RoomID = "" }, wantErr: "roomId is required"},
		{name: "room not a uuid", mutate: func(f *bookingForm) { f.RoomID = "room-1" }, wantErr: "roomId must be a valid UUID"},
		{name: "bad date", mutate: func(f *bookingForm) { f.CheckIn = "01.06.2025" }, wantErr: "checkIn must be a date in YYYY-MM-DD format"},
		{name: "missing guests", mutate: func(f *bookingForm) { f.Guests = 0 }, wantErr: "guests is required"},
		{name: "negative guests", mutate: func(f *bookingForm) { f.Guests = -1 }, wantErr: "guests must be greater than 0"},
		{name: "bad email", mutate: func(f *bookingForm) { f.GuestEmail = "guest" }, wantErr: "guestEmail must be a valid email address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := valid
			tt.mutate(&form)

			err := validator.ValidateStruct(&form)

			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestValidateStruct_Messages(t *testing.T) {
	type listQuery struct {
		Status string `json:"status" validate:"omitempty,oneof=active all"`
		From   string `json:"from"   validate:"omitempty,ymd"`
		Code   string `json:"code"   validate:"omitempty,len=4"`
		Name   string `json:"name"   validate:"omitempty,max=5"`
	}

	tests := []struct {
		name    string
		query   listQuery
		wantErr string
	}{
		{name: "valid", query: listQuery{Status: "active", From: "2025-02-28", Code: "R101"}},
		{name: "impossible day", query: listQuery{From: "2025-02-30"}, wantErr: "from must be a date in YYYY-MM-DD format"},
		{name: "unknown status", query: listQuery{Status: "pending"}, wantErr: "status must be one of active all"},
		{name: "too long", query: listQuery{Name: "Aleksandra"}, wantErr: "name must be at most 5 characters"},
		{name: "rule without message", query: listQuery{Code: "R1"}, wantErr: "code is invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.query)

			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name: "valid body",
			body: `{"roomId":"0b6f5a6e-2a6f-4c1d-9d0b-1c1b7f3e2a10","checkIn":"2025-06-01","guests":2}`,
		},
		{
			name:    "malformed body",
			body:    `{"roomId":`,
			wantErr: true,
		},
		{
			name:    "wrong type",
			body:    `{"roomId":"0b6f5a6e-2a6f-4c1d-9d0b-1c1b7f3e2a10","checkIn":"2025-06-01","guests":"two"}`,
			wantErr: true,
		},
		{
			name:    "empty object",
			body:    `{}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var form bookingForm

			err := validator.Validate(strings.NewReader(tt.body), &form)

			if tt.wantErr {
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, 2, form.Guests)
		})
	}
}
