//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"clinicbook/config"
	"clinicbook/infras/jwt"
	"clinicbook/infras/kafka"
	"clinicbook/infras/otel"
	"clinicbook/infras/redis"
	"clinicbook/shared/cache"
	"clinicbook/transport/http"
	"clinicbook/transport/http/middleware"
	"clinicbook/transport/http/router"

	authService "clinicbook/internal/domains/auth/service"
	bookingNotification "clinicbook/internal/domains/booking/notification"
	bookingRepository "clinicbook/internal/domains/booking/repository"
	bookingService "clinicbook/internal/domains/booking/service"
	adminHandler "clinicbook/internal/handlers/admin"
	authHandler "clinicbook/internal/handlers/auth"
	bookingHandler "clinicbook/internal/handlers/booking"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingNotification.New,
	bookingService.NewDateLocks,
	bookingService.New,
	bookingService.NewAdmin,
)

var authDomain = wire.NewSet(
	authService.New,
)

var domains = wire.NewSet(
	bookingDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	bookingHandler.New,
	adminHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
