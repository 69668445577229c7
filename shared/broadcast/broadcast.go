// Package broadcast pushes realtime events to every connected websocket
// client, either straight into the local hub or through a Redis channel
// shared by all instances.
package broadcast

//go:generate go run go.uber.org/mock/mockgen -source=./broadcast.go -destination=./mocks/broadcast_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"

	"hms/config"
	"hms/infras/otel"
	"hms/infras/websocket"
	"hms/shared/constant"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	EventICUUpdated    = "icuUpdated"
	EventHospitalAdded = "hospitalAdded"
	EventWelcome       = "Data"

	WelcomeMessage = "Welcome to the server!"
)

type Broadcaster interface {
	// Publish sends event to every client.
	Publish(ctx context.Context, event string, payload any) error
	// PublishExcept sends event to every client but clientID.
	PublishExcept(ctx context.Context, clientID, event string, payload any) error
}

// message is what travels over the Redis channel.
type message struct {
	websocket.Envelope
	Except string `json:"except,omitempty"`
}

func encode(event, except string, payload any) (message, error) {
	env, err := websocket.NewEnvelope(event, payload)
	if err != nil {
		return message{}, fmt.Errorf("failed to encode %s payload: %w", event, err)
	}

	return message{Envelope: env, Except: except}, nil
}

// New returns a Redis-backed broadcaster when BROADCAST_CHANNEL is set and a
// hub-local one otherwise.
func New(cfg *config.Config, hub *websocket.Hub, client *redis.Client, ot otel.Otel) Broadcaster {
	if cfg.Broadcast.Channel == constant.Empty {
		return &hubBroadcaster{hub: hub, otel: ot}
	}

	return &redisBroadcaster{client: client, channel: cfg.Broadcast.Channel, otel: ot}
}

type hubBroadcaster struct {
	hub  *websocket.Hub
	otel otel.Otel
}

func (b *hubBroadcaster) Publish(ctx context.Context, event string, payload any) error {
	return b.PublishExcept(ctx, constant.Empty, event, payload)
}

func (b *hubBroadcaster) PublishExcept(ctx context.Context, clientID, event string, payload any) (err error) {
	_, scope := b.otel.NewScope(ctx, constant.OtelBroadcastScopeName, constant.OtelBroadcastScopeName+".hub."+event)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	msg, err := encode(event, clientID, payload)
	if err != nil {
		return err
	}

	b.hub.Broadcast(msg.Envelope, msg.Except)

	return nil
}

type redisBroadcaster struct {
	client  *redis.Client
	channel string
	otel    otel.Otel
}

func (b *redisBroadcaster) Publish(ctx context.Context, event string, payload any) error {
	return b.PublishExcept(ctx, constant.Empty, event, payload)
}

func (b *redisBroadcaster) PublishExcept(ctx context.Context, clientID, event string, payload any) (err error) {
	ctx, scope := b.otel.NewScope(ctx, constant.OtelBroadcastScopeName, constant.OtelBroadcastScopeName+".redis."+event)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	msg, err := encode(event, clientID, payload)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal broadcast message: %w", err)
	}

	if err = b.client.Publish(ctx, b.channel, raw).Err(); err != nil {
		log.Error().Err(err).Str("channel", b.channel).Str("event", event).Msg("failed to publish broadcast")

		return fmt.Errorf("failed to publish broadcast: %w", err)
	}

	return nil
}
