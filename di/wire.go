//go:build wireinject
// +build wireinject

package di

import (
	"hms/config"
	"hms/infras/jwt"
	"hms/infras/kafka"
	"hms/infras/otel"
	"hms/infras/postgres"
	"hms/infras/redis"
	"hms/infras/s3"
	"hms/infras/websocket"
	"hms/permissions"
	"hms/shared/audit"
	"hms/shared/broadcast"
	"hms/shared/cache"
	gRepo "hms/shared/repository"
	"hms/transport/http"
	"hms/transport/http/middleware"
	"hms/transport/http/router"

	"github.com/google/wire"

	authService "hms/internal/domains/auth/service"
	feedbackRepository "hms/internal/domains/feedback/repository"
	feedbackService "hms/internal/domains/feedback/service"
	hospitalRepository "hms/internal/domains/hospital/repository"
	hospitalService "hms/internal/domains/hospital/service"
	icuRepository "hms/internal/domains/icu/repository"
	icuAvailability "hms/internal/domains/icu/availability"
	icuService "hms/internal/domains/icu/service"
	shiftRepository "hms/internal/domains/shift/repository"
	shiftService "hms/internal/domains/shift/service"
	taskRepository "hms/internal/domains/task/repository"
	taskService "hms/internal/domains/task/service"
	userRepository "hms/internal/domains/user/repository"
	userService "hms/internal/domains/user/service"
	vacationRepository "hms/internal/domains/vacation/repository"
	vacationService "hms/internal/domains/vacation/service"
	visitorRoomRepository "hms/internal/domains/visitorroom/repository"
	visitorRoomService "hms/internal/domains/visitorroom/service"

	authHandler "hms/internal/handlers/auth"
	hospitalHandler "hms/internal/handlers/hospital"
	icuHandler "hms/internal/handlers/icu"
	realtimeHandler "hms/internal/handlers/realtime"
	shiftHandler "hms/internal/handlers/shift"
	taskHandler "hms/internal/handlers/task"
	userHandler "hms/internal/handlers/user"
	vacationHandler "hms/internal/handlers/vacation"
	visitorRoomHandler "hms/internal/handlers/visitorroom"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
	websocket.NewHub,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	gRepo.NewTransactor,
	audit.New,
	broadcast.New,
	broadcast.NewRelay,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var hospitalDomain = wire.NewSet(
	hospitalRepository.New,
	hospitalService.New,
	feedbackRepository.New,
	feedbackService.New,
)

var icuDomain = wire.NewSet(
	icuRepository.New,
	icuAvailability.New,
	icuService.New,
)

var visitorRoomDomain = wire.NewSet(
	visitorRoomRepository.New,
	visitorRoomService.New,
)

var staffDomain = wire.NewSet(
	taskRepository.New,
	taskService.New,
	vacationRepository.New,
	vacationService.New,
	shiftRepository.New,
	shiftService.New,
)

var domains = wire.NewSet(
	userDomain,
	authDomain,
	hospitalDomain,
	icuDomain,
	visitorRoomDomain,
	staffDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	hospitalHandler.New,
	icuHandler.New,
	visitorRoomHandler.New,
	taskHandler.New,
	vacationHandler.New,
	shiftHandler.New,
	realtimeHandler.New,
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
