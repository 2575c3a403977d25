package report_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotel/infras/otel/mocks"
	reportMocks "hotel/internal/domains/report/mocks"
	"hotel/internal/domains/report/model/dto"
	"hotel/internal/handlers/report"
)

const xlsx = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func TestHandler_ExportBookings(t *testing.T) {
	tests := []struct {
		name       string
		export     dto.Export
		err        error
		wantCode   int
		wantType   string
		wantBody   string
		wantAttach string
	}{
		{
			name:       "download",
			export:     dto.Export{FileName: "bookings-20250701.xlsx", ContentType: xlsx, Data: []byte("PK")},
			wantCode:   http.StatusOK,
			wantType:   xlsx,
			wantBody:   "PK",
			wantAttach: `attachment; filename="bookings-20250701.xlsx"`,
		},
		{
			name:     "archived",
			export:   dto.Export{FileName: "bookings-20250701.xlsx", ContentType: xlsx, URL: "https://bucket.example.com/exports/bookings-20250701.xlsx"},
			wantCode: http.StatusOK,
			wantType: "application/json",
			wantBody: `{"fileName":"bookings-20250701.xlsx","url":"https://bucket.example.com/exports/bookings-20250701.xlsx"}`,
		},
		{
			name:     "failure",
			err:      errors.New("db down"),
			wantCode: http.StatusInternalServerError,
			wantType: "application/json",
			wantBody: `{"message":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := reportMocks.NewMockReport(ctrl)

			svc.EXPECT().ExportBookings(gomock.Any()).Return(tt.export, tt.err)

			handler := report.New(svc, mocks.NewOtel())
			router := chi.NewRouter()
			handler.Router(router)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/bookings/export", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Type"), tt.wantType)
			assert.Equal(t, tt.wantAttach, rec.Header().Get("Content-Disposition"))

			if tt.wantType == xlsx {
				assert.Equal(t, tt.wantBody, rec.Body.String())

				return
			}

			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
