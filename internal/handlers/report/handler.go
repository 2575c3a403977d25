package report

import (
	"hotel/infras/otel"
	"hotel/internal/domains/report/model/dto"
	"hotel/internal/domains/report/service"
	"hotel/shared/constant"
	"hotel/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Report
	otel    otel.Otel
}

func New(service service.Report, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/admin/bookings/export", handler.ExportBookings)
}

// ExportBookings builds the XLSX booking export.
// @Summary Export bookings
// @Description Streams the workbook, or returns its URL when the export is archived to object storage.
// @Tags Admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce json
// @Success 200 {object} dto.ExportResponse
// @Failure 401 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /admin/bookings/export [get]
// @Security SessionCookie
func (handler *Handler) ExportBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportBookings")
	defer scope.End()

	export, err := handler.service.ExportBookings(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export bookings")

		response.WithError(w, err)

		return
	}

	if export.Archived() {
		res := dto.ExportResponse{}
		res.FromExport(export)

		response.WithJSON(w, http.StatusOK, res)

		return
	}

	response.WithFile(w, export.FileName, export.ContentType, export.Data)
}
