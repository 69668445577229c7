package repository

//go:generate go run go.uber.org/mock/mockgen -source=./transactor.go -destination=./mocks/transactor_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hms/infras/otel"
	"hms/infras/postgres"
	"hms/shared/constant"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// Transactor runs a unit of work against the write connection. The work is
// committed when fn returns nil and rolled back otherwise.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}

type transactorImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func NewTransactor(db *postgres.Connection, otel otel.Otel) Transactor {
	return &transactorImpl{
		db:   db,
		otel: otel,
	}
}

func (t *transactorImpl) WithinTx(ctx context.Context, fn func(tx *sqlx.Tx) error) (err error) {
	ctx, scope := t.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".WithinTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tx, err := t.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()

			panic(p)
		}
	}()

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error().Err(rbErr).Msg("failed to rollback transaction")
		}

		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
