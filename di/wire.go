//go:build wireinject
// +build wireinject

package di

import (
	"github.com/NikQuila/website-gocar-sub000/config"
	"github.com/NikQuila/website-gocar-sub000/infras/jwt"
	"github.com/NikQuila/website-gocar-sub000/infras/kafka"
	"github.com/NikQuila/website-gocar-sub000/infras/mailer"
	"github.com/NikQuila/website-gocar-sub000/infras/otel"
	"github.com/NikQuila/website-gocar-sub000/infras/postgres"
	"github.com/NikQuila/website-gocar-sub000/infras/redis"
	"github.com/NikQuila/website-gocar-sub000/infras/s3"
	"github.com/NikQuila/website-gocar-sub000/infras/supabase"
	"github.com/NikQuila/website-gocar-sub000/shared/cache"
	"github.com/NikQuila/website-gocar-sub000/transport/http"
	"github.com/NikQuila/website-gocar-sub000/transport/http/middleware"
	"github.com/NikQuila/website-gocar-sub000/transport/http/router"

	appointmentRepository "github.com/NikQuila/website-gocar-sub000/internal/domains/appointment/repository"
	appointmentService "github.com/NikQuila/website-gocar-sub000/internal/domains/appointment/service"
	availabilityRepository "github.com/NikQuila/website-gocar-sub000/internal/domains/availability/repository"
	availabilityService "github.com/NikQuila/website-gocar-sub000/internal/domains/availability/service"
	bookingRepository "github.com/NikQuila/website-gocar-sub000/internal/domains/booking/repository"
	bookingService "github.com/NikQuila/website-gocar-sub000/internal/domains/booking/service"
	customerRepository "github.com/NikQuila/website-gocar-sub000/internal/domains/customer/repository"
	customerService "github.com/NikQuila/website-gocar-sub000/internal/domains/customer/service"
	dealershipRepository "github.com/NikQuila/website-gocar-sub000/internal/domains/dealership/repository"
	dealershipService "github.com/NikQuila/website-gocar-sub000/internal/domains/dealership/service"
	notificationConsumer "github.com/NikQuila/website-gocar-sub000/internal/domains/notification/consumer"
	notificationService "github.com/NikQuila/website-gocar-sub000/internal/domains/notification/service"

	appointmentHandler "github.com/NikQuila/website-gocar-sub000/internal/handlers/appointment"
	bookingHandler "github.com/NikQuila/website-gocar-sub000/internal/handlers/booking"
	customerHandler "github.com/NikQuila/website-gocar-sub000/internal/handlers/customer"
	dealershipHandler "github.com/NikQuila/website-gocar-sub000/internal/handlers/dealership"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	supabase.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var dealershipDomain = wire.NewSet(
	dealershipRepository.New,
	dealershipService.New,
)

var customerDomain = wire.NewSet(
	customerRepository.New,
	customerService.New,
)

var availabilityDomain = wire.NewSet(
	availabilityRepository.New,
	availabilityService.New,
	wire.Bind(new(availabilityService.BookedSource), new(appointmentRepository.Appointment)),
)

var appointmentDomain = wire.NewSet(
	appointmentRepository.New,
	appointmentService.New,
	notificationService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	dealershipDomain,
	customerDomain,
	availabilityDomain,
	appointmentDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	dealershipHandler.New,
	bookingHandler.New,
	customerHandler.New,
	appointmentHandler.New,
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

func InitializeNotifier() *notificationConsumer.Consumer {
	wire.Build(
		configurations,
		otel.New,
		kafka.New,
		mailer.New,
		notificationConsumer.New,
	)

	return &notificationConsumer.Consumer{}
}
