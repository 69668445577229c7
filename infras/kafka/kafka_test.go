package kafka_test

import (
	"testing"
	"time"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hms/infras/kafka"
)

type reservation struct {
	Type       string    `json:"type"`
	ResourceID string    `json:"resourceId"`
	OccurredAt time.Time `json:"occurredAt"`
}

func TestDecodeMessage(t *testing.T) {
	msg := kafkaGo.Message{
		Key:   []byte("icu-1"),
		Value: []byte(`{"type":"icu.reserved","resourceId":"icu-1","occurredAt":"2024-05-01T10:00:00Z"}`),
	}

	key, got, err := kafka.DecodeMessage[reservation](msg)
	require.NoError(t, err)
	assert.Equal(t, "icu-1", key)
	assert.Equal(t, "icu.reserved", got.Type)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), got.OccurredAt)

	_, _, err = kafka.DecodeMessage[reservation](kafkaGo.Message{Value: []byte("{")})
	assert.Error(t, err)
}
