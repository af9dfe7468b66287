package router

import (
	"github.com/go-chi/chi/v5"

	"clinicbook/internal/handlers/admin"
	"clinicbook/internal/handlers/auth"
	"clinicbook/internal/handlers/booking"
	"clinicbook/transport/http/middleware"
)

type DomainHandlers struct {
	Auth    auth.Handler
	Booking booking.Handler
	Admin   admin.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AppMiddleware  middleware.AppMiddleware
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)

		// Booking and admin endpoints are tenant-scoped.
		routerGroup.Group(func(siteGroup chi.Router) {
			siteGroup.Use(r.AppMiddleware.ResolveSite)

			r.DomainHandlers.Booking.Router(siteGroup)
			r.DomainHandlers.Admin.Router(siteGroup)
		})
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AppMiddleware:  appMiddleware,
	}
}
