// Package audit records reservation events on Kafka for downstream consumers.
package audit

//go:generate go run go.uber.org/mock/mockgen -source=./audit.go -destination=./mocks/audit_mock.go -package=mocks

import (
	"context"
	"time"

	"hms/config"
	"hms/infras/kafka"

	"github.com/rs/zerolog/log"
)

const (
	EventICUReserved         = "icu.reserved"
	EventVisitorRoomReserved = "visitor-room.reserved"
	EventKidsAreaReserved    = "kids-area.reserved"
)

type Event struct {
	Type       string    `json:"type"`
	ResourceID string    `json:"resourceId"`
	HospitalID string    `json:"hospitalId"`
	UserID     string    `json:"userId"`
	Fee        float64   `json:"fee"`
	OccurredAt time.Time `json:"occurredAt"`
}

type Publisher interface {
	// Record sends event without waiting for the broker. Failures are logged.
	Record(ctx context.Context, event Event)
}

func New(cfg *config.Config, client kafka.Client) Publisher {
	if !cfg.Kafka.Enable {
		return noop{}
	}

	return &kafkaPublisher{client: client, topic: cfg.Kafka.Topics.Reservation}
}

type noop struct{}

func (noop) Record(context.Context, Event) {}

type kafkaPublisher struct {
	client kafka.Client
	topic  string
}

func (p *kafkaPublisher) Record(ctx context.Context, event Event) {
	go func(ctx context.Context) {
		err := p.client.SendMessages(ctx, p.topic, kafka.Message{Key: event.ResourceID, Value: event})
		if err != nil {
			log.Error().Err(err).Str("type", event.Type).Str("resource", event.ResourceID).Msg("failed to record audit event")
		}
	}(context.WithoutCancel(ctx))
}
