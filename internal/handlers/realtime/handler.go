// Package realtime serves the websocket endpoint that streams ICU and
// hospital events to connected clients.
package realtime

import (
	"context"
	"net/http"
	"slices"

	"hms/config"
	"hms/infras/otel"
	"hms/infras/websocket"
	"hms/shared/broadcast"
	"hms/shared/constant"

	"github.com/go-chi/chi/v5"
	gorillawebsocket "github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// EventAddHospital is sent by clients that created a hospital; it is relayed
// to everyone else as hospitalAdded.
const EventAddHospital = "addHospital"

type Handler struct {
	cfg         *config.Config
	hub         *websocket.Hub
	broadcaster broadcast.Broadcaster
	upgrader    gorillawebsocket.Upgrader
	otel        otel.Otel
}

func New(cfg *config.Config, hub *websocket.Hub, broadcaster broadcast.Broadcaster, otel otel.Otel) Handler {
	return Handler{
		cfg:         cfg,
		hub:         hub,
		broadcaster: broadcaster,
		upgrader: gorillawebsocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin(cfg),
		},
		otel: otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/ws", handler.Connect)
}

func checkOrigin(cfg *config.Config) func(r *http.Request) bool {
	origins := cfg.App.CORS.AllowedOrigins

	return func(r *http.Request) bool {
		if !cfg.App.CORS.Enable || len(origins) == 0 || slices.Contains(origins, "*") {
			return true
		}

		origin := r.Header.Get("Origin")

		return origin == "" || slices.Contains(origins, origin)
	}
}

// Connect upgrades the request to a websocket.
// @Summary Realtime events
// @Description Upgrades to a websocket. The server greets with {"event":"Data","data":"Welcome to the server!"} and then pushes icuUpdated and hospitalAdded events. An addHospital frame from a client is relayed to all other clients as hospitalAdded.
// @Tags Realtime
// @Success 101
// @Router /v1/ws [get]
func (handler *Handler) Connect(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Connect")

	conn, err := handler.upgrader.Upgrade(w, r, nil)
	if err != nil {
		scope.TraceError(err)
		scope.End()
		log.Error().Err(err).Msg("failed to upgrade websocket")

		return
	}

	client := websocket.NewClient(conn, handler.cfg.Broadcast.SendBuffer)
	handler.hub.Register(client)

	scope.SetAttribute("client", client.ID)
	scope.End()

	go client.WritePump()

	if welcome, err := websocket.NewEnvelope(broadcast.EventWelcome, broadcast.WelcomeMessage); err == nil {
		handler.hub.SendTo(client, welcome)
	}

	ctx := context.WithoutCancel(r.Context())

	client.ReadPump(handler.hub, func(c *websocket.Client, env websocket.Envelope) {
		handler.onMessage(ctx, c, env)
	})
}

func (handler *Handler) onMessage(ctx context.Context, client *websocket.Client, env websocket.Envelope) {
	switch env.Event {
	case EventAddHospital:
		if err := handler.broadcaster.PublishExcept(ctx, client.ID, broadcast.EventHospitalAdded, env.Data); err != nil {
			log.Error().Err(err).Str("client", client.ID).Msg("failed to relay hospital")
		}
	default:
		log.Debug().Str("client", client.ID).Str("event", env.Event).Msg("ignoring websocket event")
	}
}
