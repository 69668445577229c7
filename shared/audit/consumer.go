package audit

import (
	"context"

	"hms/infras/kafka"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

// Log is a kafka.Handler that writes each reservation event to the log.
// Undecodable messages are skipped so one bad record does not stall the group.
func Log(_ context.Context, message kafkaGo.Message) error {
	key, event, err := kafka.DecodeMessage[Event](message)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Int64("offset", message.Offset).Msg("skipping malformed audit event")

		return nil
	}

	log.Info().
		Str("type", event.Type).
		Str("resource", event.ResourceID).
		Str("hospital", event.HospitalID).
		Str("user", event.UserID).
		Float64("fee", event.Fee).
		Time("occurred_at", event.OccurredAt).
		Msg("reservation recorded")

	return nil
}
