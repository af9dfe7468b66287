package booking

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"clinicbook/infras/otel"
	"clinicbook/internal/domains/booking/model/dto"
	"clinicbook/internal/domains/booking/service"
	"clinicbook/shared/constant"
	"clinicbook/shared/failure"
	"clinicbook/shared/timezone"
	"clinicbook/shared/validator"
	"clinicbook/transport/http/middleware"
	"clinicbook/transport/http/response"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/booking", func(routerGroup chi.Router) {
		routerGroup.Get("/services", handler.GetServices)
		routerGroup.Get("/slots", handler.GetSlots)
		routerGroup.Post("/create", handler.CreateBooking)
		routerGroup.Post("/reschedule", handler.RescheduleBooking)
		routerGroup.Post("/cancel", handler.CancelBooking)
		routerGroup.Post("/list", handler.ListBookings)
	})
}

// GetServices lists the bookable services of a site.
// @Summary List bookable services
// @Description Returns the active services of the site identified by the X-Site-ID header.
// @Tags Booking
// @Produce json
// @Param X-Site-ID header string true "Site identifier"
// @Success 200 {array} dto.ServiceResponse "Bookable services"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/booking/services [get]
func (handler *Handler) GetServices(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServices")
	defer scope.End()

	res, err := handler.service.ActiveServices(ctx, middleware.SiteID(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list services")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetSlots computes the free slots of a service on a date.
// @Summary List available slots
// @Description Returns bookable start times for the given service and date in the site's timezone.
// @Tags Booking
// @Produce json
// @Param X-Site-ID header string true "Site identifier"
// @Param serviceId query string true "Service identifier"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.SlotsResponse "Available slots"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/booking/slots [get]
func (handler *Handler) GetSlots(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSlots")
	defer scope.End()

	serviceID := request.URL.Query().Get(constant.RequestParamServiceID)
	date := request.URL.Query().Get(constant.RequestParamDate)

	if serviceID == constant.Empty {
		err := failure.BadRequestFromString("serviceId is required")
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	if _, err := timezone.Weekday(date); err != nil {
		err := failure.BadRequestFromString("date must be formatted as YYYY-MM-DD")
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Slots(ctx, middleware.SiteID(ctx), serviceID, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to compute slots")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// CreateBooking books a slot.
// @Summary Create a booking
// @Description Books the requested slot when it is still free.
// @Tags Booking
// @Accept json
// @Produce json
// @Param X-Site-ID header string true "Site identifier"
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} dto.BookingResponse "Booking created"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/booking/create [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, middleware.SiteID(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("booking created: " + res.ID)

	response.WithJSON(writer, http.StatusCreated, res)
}

// RescheduleBooking moves a booking to a new slot.
// @Summary Reschedule a booking
// @Description Moves an existing booking to a new date and time when that slot is free.
// @Tags Booking
// @Accept json
// @Produce json
// @Param X-Site-ID header string true "Site identifier"
// @Param request body dto.RescheduleBookingRequest true "Reschedule Booking Request"
// @Success 200 {object} dto.BookingResponse "Booking rescheduled"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/booking/reschedule [post]
func (handler *Handler) RescheduleBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RescheduleBooking")
	defer scope.End()

	req := dto.RescheduleBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Reschedule(ctx, middleware.SiteID(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reschedule booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// CancelBooking cancels a booking.
// @Summary Cancel a booking
// @Description Marks the booking as cancelled. Cancelling twice is a no-op.
// @Tags Booking
// @Accept json
// @Produce json
// @Param X-Site-ID header string true "Site identifier"
// @Param request body dto.CancelBookingRequest true "Cancel Booking Request"
// @Success 200 {object} dto.BookingResponse "Booking cancelled"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/booking/cancel [post]
func (handler *Handler) CancelBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	req := dto.CancelBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Cancel(ctx, middleware.SiteID(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// ListBookings finds a visitor's upcoming bookings.
// @Summary Find bookings by contact details
// @Description Returns the upcoming bookings matching both the email and phone number.
// @Tags Booking
// @Accept json
// @Produce json
// @Param X-Site-ID header string true "Site identifier"
// @Param request body dto.LookupBookingsRequest true "Lookup Bookings Request"
// @Success 200 {array} dto.BookingResponse "Matching bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/booking/list [post]
func (handler *Handler) ListBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListBookings")
	defer scope.End()

	req := dto.LookupBookingsRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Lookup(ctx, middleware.SiteID(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to look up bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
