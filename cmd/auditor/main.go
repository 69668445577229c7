package main

import (
	"context"
	"os/signal"
	"syscall"

	"hms/config"
	"hms/infras/kafka"
	"hms/infras/otel"
	"hms/shared/audit"
	"hms/shared/logger"

	"github.com/rs/zerolog/log"
)

// Consumes the reservation topic and logs every event.
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg.Server.LogLevel)

	if !cfg.Kafka.Enable {
		log.Fatal().Msg("Kafka is disabled, nothing to consume")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := kafka.New(cfg, otel.New(cfg))
	defer client.Close()

	log.Info().Str("topic", cfg.Kafka.Topics.Reservation).Str("group", cfg.Kafka.ConsumerGroup).Msg("Starting audit consumer")

	if err := client.Consume(ctx, cfg.Kafka.ConsumerGroup, cfg.Kafka.Topics.Reservation, audit.Log); err != nil {
		log.Fatal().Err(err).Msg("Audit consumer stopped")
	}
}
