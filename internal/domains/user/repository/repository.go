package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hms/infras/otel"
	"hms/infras/postgres"
	"hms/internal/domains/user/model"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/failure"
	"hms/shared/logger"
	gRepo "hms/shared/repository"
	"hms/shared/timezone"

	"github.com/jmoiron/sqlx"
)

const queryAddFees = `UPDATE users SET total_fees = total_fees + :fee, modified_at = :modified_at, modified_by = :modified_by WHERE id = :id`

type User interface {
	Insert(ctx context.Context, model model.User) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.User, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.User, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	// AddFeesTx increments total_fees in place so concurrent charges never overwrite each other.
	AddFeesTx(ctx context.Context, tx *sqlx.Tx, userID string, fee float64) error
	InsertServiceTx(ctx context.Context, tx *sqlx.Tx, service model.ReservedService) error
	GetServices(ctx context.Context, userID string) ([]model.ReservedService, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.User]
	services gRepo.Repository[model.ReservedService]
	otel     otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) User {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.User](model.EntityName, model.TableName, model.FieldID, db, otel),
		services:   gRepo.NewRepository[model.ReservedService](model.ServiceEntityName, model.ServiceTableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

func (r *repositoryImpl) AddFeesTx(ctx context.Context, tx *sqlx.Tx, userID string, fee float64) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".user.AddFeesTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryAddFees)

	result, err := tx.NamedExecContext(ctx, queryAddFees, map[string]any{
		"id":                     userID,
		"fee":                    fee,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: userID,
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to add user fees: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}

	if affected == 0 {
		return failure.NotFound("user not found") //nolint:wrapcheck
	}

	return nil
}

func (r *repositoryImpl) InsertServiceTx(ctx context.Context, tx *sqlx.Tx, service model.ReservedService) error {
	return r.services.InsertTx(ctx, tx, service)
}

// GetServices lists the user's reserved services, oldest first.
func (r *repositoryImpl) GetServices(ctx context.Context, userID string) ([]model.ReservedService, error) {
	return r.services.GetAll(ctx, gDto.QueryParams{
		SortBy:  model.ServiceTableName + "." + model.FieldServiceReservedAt,
		SortDir: gDto.SortDirAsc,
	}, gDto.And(gDto.Eq(model.ServiceTableName, model.FieldServiceUserID, userID)))
}
