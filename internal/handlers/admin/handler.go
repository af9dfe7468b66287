package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"clinicbook/infras/otel"
	"clinicbook/internal/domains/booking/model/dto"
	"clinicbook/internal/domains/booking/service"
	"clinicbook/shared/constant"
	"clinicbook/shared/failure"
	"clinicbook/shared/validator"
	"clinicbook/transport/http/middleware"
	"clinicbook/transport/http/response"
)

type Handler struct {
	service    service.Admin
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Admin, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/admin", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.Auth)
		routerGroup.Use(handler.middleware.RequireAdmin)

		routerGroup.Get("/settings", handler.GetSettings)
		routerGroup.Put("/settings", handler.UpdateSettings)
		routerGroup.Get("/services", handler.GetServices)
		routerGroup.Put("/services", handler.UpdateServices)
		routerGroup.Get("/bookings", handler.GetBookings)
		routerGroup.Get("/bookings/export", handler.ExportBookings)
		routerGroup.Patch("/bookings/{id}", handler.EditBooking)
	})
}

// GetSettings returns the site's scheduling settings.
// @Summary Get site settings
// @Tags Admin
// @Produce json
// @Param X-Site-ID header string true "Site identifier"
// @Success 200 {object} model.Settings "Site settings"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/settings [get]
// @Security BearerAuth
func (handler *Handler) GetSettings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSettings")
	defer scope.End()

	res, err := handler.service.Settings(ctx, middleware.SiteID(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to load settings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// UpdateSettings replaces the site's scheduling settings.
// @Summary Update site settings
// @Tags Admin
// @Accept json
// @Produce json
// @Param X-Site-ID header string true "Site identifier"
// @Param request body dto.UpdateSettingsRequest true "Update Settings Request"
// @Success 200 {object} response.Message "Settings updated"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/settings [put]
// @Security BearerAuth
func (handler *Handler) UpdateSettings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSettings")
	defer scope.End()

	req := dto.UpdateSettingsRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.UpdateSettings(ctx, middleware.SiteID(ctx), req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update settings")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Settings updated successfully")
}

// GetServices returns the full service catalogue, inactive entries included.
// @Summary Get site services
// @Tags Admin
// @Produce json
// @Param X-Site-ID header string true "Site identifier"
// @Success 200 {array} model.Service "Site services"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/services [get]
// @Security BearerAuth
func (handler *Handler) GetServices(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServices")
	defer scope.End()

	res, err := handler.service.Services(ctx, middleware.SiteID(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to load services")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// UpdateServices replaces the service catalogue.
// @Summary Update site services
// @Tags Admin
// @Accept json
// @Produce json
// @Param X-Site-ID header string true "Site identifier"
// @Param request body dto.UpdateServicesRequest true "Update Services Request"
// @Success 200 {object} response.Message "Services updated"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/services [put]
// @Security BearerAuth
func (handler *Handler) UpdateServices(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateServices")
	defer scope.End()

	req := dto.UpdateServicesRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.UpdateServices(ctx, middleware.SiteID(ctx), req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update services")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Services updated successfully")
}

// GetBookings lists bookings in a date range.
// @Summary List bookings
// @Description Lists bookings between the from and to dates, defaulting to the lookup window.
// @Tags Admin
// @Produce json
// @Param X-Site-ID header string true "Site identifier"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {array} dto.BookingResponse "Bookings"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	fromDate := request.URL.Query().Get(constant.RequestParamFrom)
	toDate := request.URL.Query().Get(constant.RequestParamTo)

	res, err := handler.service.Bookings(ctx, middleware.SiteID(ctx), fromDate, toDate)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// EditBooking applies a partial update to a booking.
// @Summary Edit a booking
// @Description Updates the provided fields. A date or time change is validated against the schedule.
// @Tags Admin
// @Accept json
// @Produce json
// @Param X-Site-ID header string true "Site identifier"
// @Param id path string true "Booking identifier"
// @Param request body dto.EditBookingRequest true "Edit Booking Request"
// @Success 200 {object} dto.BookingResponse "Booking updated"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/bookings/{id} [patch]
// @Security BearerAuth
func (handler *Handler) EditBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".EditBooking")
	defer scope.End()

	bookingID := chi.URLParam(request, constant.RequestParamID)
	if bookingID == constant.Empty {
		err := failure.BadRequestFromString("booking id is required")
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	req := dto.EditBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.EditBooking(ctx, middleware.SiteID(ctx), bookingID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to edit booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// ExportBookings downloads bookings as an XLSX workbook.
// @Summary Export bookings
// @Tags Admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param X-Site-ID header string true "Site identifier"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {file} file "Workbook"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/bookings/export [get]
// @Security BearerAuth
func (handler *Handler) ExportBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportBookings")
	defer scope.End()

	fromDate := request.URL.Query().Get(constant.RequestParamFrom)
	toDate := request.URL.Query().Get(constant.RequestParamTo)

	data, filename, err := handler.service.ExportBookings(ctx, middleware.SiteID(ctx), fromDate, toDate)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export bookings")

		response.WithError(writer, err)

		return
	}

	response.WithAttachment(writer, constant.ContentTypeXLSX, filename, data)
}
