package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"hms/config"
	"hms/docs"
	"hms/shared/broadcast"
	"hms/transport/http/middleware"
	"hms/transport/http/response"
	"hms/transport/http/router"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"
)

type ServerState int

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

const readHeaderTimeout = 5 * time.Second

type HTTP struct {
	Config        *config.Config
	Router        router.Router
	AppMiddleware middleware.AppMiddleware
	AuthRole      middleware.AuthRole
	Relay         *broadcast.Relay
	State         ServerState

	mux    *chi.Mux
	server *http.Server
	once   sync.Once
	cancel context.CancelFunc
}

func New(
	cfg *config.Config,
	r router.Router,
	appMiddleware middleware.AppMiddleware,
	authRole middleware.AuthRole,
	relay *broadcast.Relay,
) *HTTP {
	return &HTTP{
		Config:        cfg,
		Router:        r,
		AppMiddleware: appMiddleware,
		AuthRole:      authRole,
		Relay:         relay,
	}
}

func (h *HTTP) Serve() {
	h.setup()
	h.setupGracefulShutdown()

	ctx, cancel := context.WithCancel(context.Background())
	h.cancel = cancel

	go func() {
		if err := h.Relay.Run(ctx); err != nil {
			log.Error().Err(err).Msg("Broadcast relay stopped")
		}
	}()

	h.server = &http.Server{
		Addr:              net.JoinHostPort("0.0.0.0", h.Config.Server.Port),
		Handler:           h.mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}

// ServeHTTP lets the service run behind a serverless entrypoint.
func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.setup()

	h.mux.ServeHTTP(w, r)
}

func (h *HTTP) setup() {
	h.once.Do(func() {
		h.setupRoutes()
		h.State = ServerStateReady
	})
}

func (h *HTTP) setupRoutes() {
	h.mux = chi.NewRouter()

	h.mux.Use(chiMiddleware.RequestID)
	h.mux.Use(chiMiddleware.RealIP)
	h.mux.Use(chiMiddleware.Recoverer)

	if corsConfig := h.Config.App.CORS; corsConfig.Enable {
		h.mux.Use(cors.Handler(cors.Options{
			AllowedOrigins:   corsConfig.AllowedOrigins,
			AllowedMethods:   corsConfig.AllowedMethods,
			AllowedHeaders:   corsConfig.AllowedHeaders,
			AllowCredentials: corsConfig.AllowCredentials,
			MaxAge:           corsConfig.MaxAgeSeconds,
		}))
	}

	h.mux.Use(h.AppMiddleware.Tracing)
	h.mux.Use(h.AppMiddleware.RateLimit())

	h.mux.Get("/health", h.health)

	docs.SwaggerInfo.Host = h.Config.Server.Host
	h.mux.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	h.mux.Group(func(protected chi.Router) {
		protected.Use(h.AuthRole.APIKey)
		protected.Use(h.AuthRole.Auth)
		protected.Use(h.AuthRole.RBAC)

		h.Router.SetupRoutes(protected)
	})
}

func (h *HTTP) health(w http.ResponseWriter, _ *http.Request) {
	if h.State != ServerStateReady {
		response.WithPreparingShutdown(w)

		return
	}

	response.WithMessage(w, http.StatusOK, "OK")
}

func (h *HTTP) setupGracefulShutdown() {
	serverStateCh := make(chan os.Signal, 1)

	signal.Notify(serverStateCh, os.Interrupt, syscall.SIGTERM)

	go h.respondToSigterm(serverStateCh)
}

func (h *HTTP) respondToSigterm(done chan os.Signal) {
	<-done

	defer os.Exit(0)

	if h.cancel != nil {
		defer h.cancel()
	}

	if h.Config.Server.Env == "development" {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")

		return
	}

	shutdownConfig := h.Config.Server.Shutdown

	log.Info().Msg("Received SIGTERM.")
	log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

	h.State = ServerStateInGracePeriod

	time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.State = ServerStateInCleanupPeriod

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(shutdownConfig.CleanupPeriodSeconds)*time.Second)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("HTTP server did not drain in time")
	}

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}
