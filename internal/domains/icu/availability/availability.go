// Package availability keeps websocket clients in step with the list of ICU
// rooms open for reservation.
package availability

//go:generate go run go.uber.org/mock/mockgen -source=./availability.go -destination=./mocks/availability_mock.go -package=mocks

import (
	"context"
	"sync"

	"hms/infras/otel"
	"hms/internal/domains/icu/model/dto"
	"hms/internal/domains/icu/repository"
	"hms/shared/broadcast"
	"hms/shared/constant"
	gRepo "hms/shared/repository"

	"github.com/rs/zerolog/log"
)

type Notifier interface {
	// Notify schedules an icuUpdated broadcast and returns immediately.
	// Calls that arrive while a broadcast is in flight collapse into one
	// follow-up, so the last broadcast sent reflects the latest write.
	Notify()
}

type notifierImpl struct {
	repo        repository.ICU
	broadcaster broadcast.Broadcaster
	otel        otel.Otel
	pending     chan struct{}
	start       sync.Once
}

func New(repo repository.ICU, broadcaster broadcast.Broadcaster, otel otel.Otel) Notifier {
	return &notifierImpl{
		repo:        repo,
		broadcaster: broadcaster,
		otel:        otel,
		pending:     make(chan struct{}, 1),
	}
}

func (n *notifierImpl) Notify() {
	n.start.Do(func() { go n.run() })

	select {
	case n.pending <- struct{}{}:
	default:
	}
}

// run is the only publisher, so snapshots go out in the order they were read.
func (n *notifierImpl) run() {
	for range n.pending {
		n.publish(gRepo.WithPrimary(context.Background()))
	}
}

func (n *notifierImpl) publish(ctx context.Context) {
	ctx, scope := n.otel.NewScope(ctx, constant.OtelBroadcastScopeName, constant.OtelBroadcastScopeName+".availability")
	defer scope.End()

	params, filter := repository.Available()

	icus, err := n.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to read icu availability")
		scope.TraceError(err)

		return
	}

	if err = n.broadcaster.Publish(ctx, broadcast.EventICUUpdated, dto.FromModels(icus)); err != nil {
		log.Error().Err(err).Msg("failed to broadcast icu availability")
		scope.TraceError(err)
	}
}
