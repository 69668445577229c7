package broadcast

import (
	"context"
	"encoding/json"

	"hms/config"
	"hms/infras/websocket"
	"hms/shared/constant"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Relay copies messages from the Redis broadcast channel into the local hub.
type Relay struct {
	client  *redis.Client
	channel string
	hub     *websocket.Hub
}

func NewRelay(cfg *config.Config, hub *websocket.Hub, client *redis.Client) *Relay {
	return &Relay{client: client, channel: cfg.Broadcast.Channel, hub: hub}
}

// Run blocks until ctx is done. Without a configured channel it returns at once.
func (r *Relay) Run(ctx context.Context) error {
	if r.channel == constant.Empty {
		return nil
	}

	sub := r.client.Subscribe(ctx, r.channel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return err //nolint:wrapcheck
	}

	log.Info().Str("channel", r.channel).Msg("Broadcast relay subscribed")

	messages := sub.Channel()

	for {
		select {
		case <-ctx.Done():
			return nil
		case received, ok := <-messages:
			if !ok {
				return nil
			}

			var msg message
			if err := json.Unmarshal([]byte(received.Payload), &msg); err != nil {
				log.Warn().Err(err).Str("channel", r.channel).Msg("dropping malformed broadcast message")

				continue
			}

			r.hub.Broadcast(msg.Envelope, msg.Except)
		}
	}
}
