package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hms/config"
	"hms/infras/otel"
	hospitalModel "hms/internal/domains/hospital/model"
	hospitalRepo "hms/internal/domains/hospital/repository"
	userModel "hms/internal/domains/user/model"
	userRepo "hms/internal/domains/user/repository"
	"hms/internal/domains/visitorroom/model"
	"hms/internal/domains/visitorroom/model/dto"
	"hms/internal/domains/visitorroom/repository"
	"hms/shared"
	"hms/shared/audit"
	"hms/shared/cache"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/failure"
	gRepo "hms/shared/repository"
	"hms/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllVisitorRoom = "visitor-room:gets"
	cacheCountVisitorRoom  = "visitor-room:count"

	errRoomNotFound     = "Visitor room not found"
	errRoomNotAvailable = "Room is not available for reservation"
	errKidsAreaNotFree  = "Kids area is not available"
	errRoomNotReserved  = "Room is not reserved"
)

type VisitorRoom interface {
	Create(ctx context.Context, req dto.CreateVisitorRoomRequest) (dto.VisitorRoomResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetVisitorRoomsResponse, error)
	Get(ctx context.Context, id string) (dto.VisitorRoomResponse, error)
	// Reserve books a normal room and charges its fee to the user.
	Reserve(ctx context.Context, req dto.ReserveRoomRequest) (dto.VisitorRoomResponse, error)
	// ReserveKidsArea books a kids area time slot free of charge.
	ReserveKidsArea(ctx context.Context, req dto.ReserveKidsAreaRequest) (dto.VisitorRoomResponse, error)
	Release(ctx context.Context, id string) (dto.VisitorRoomResponse, error)
	GetHistory(ctx context.Context, id string) ([]dto.ReservationResponse, error)
}

type serviceImpl struct {
	repo         repository.VisitorRoom
	hospitalRepo hospitalRepo.Hospital
	userRepo     userRepo.User
	transactor   gRepo.Transactor
	audit        audit.Publisher
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.VisitorRoom,
	hospitalRepo hospitalRepo.Hospital,
	userRepo userRepo.User,
	transactor gRepo.Transactor,
	audit audit.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) VisitorRoom {
	return &serviceImpl{
		repo:         repo,
		hospitalRepo: hospitalRepo,
		userRepo:     userRepo,
		transactor:   transactor,
		audit:        audit,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateVisitorRoomRequest) (res dto.VisitorRoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	hospital, err := s.hospitalRepo.Get(ctx, shared.FilterByID(req.HospitalID, hospitalModel.FieldID, hospitalModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get hospital")

		return res, fmt.Errorf("failed to get hospital: %w", err)
	}

	if hospital.ID == constant.Empty {
		return res, failure.NotFound("Hospital not found") //nolint:wrapcheck
	}

	room := req.ToModel(shared.ActorFromContext(ctx))

	if err = s.repo.Insert(ctx, room); err != nil {
		if shared.IsUniqueViolation(err) {
			return res, failure.BadRequestFromString("room number is already registered") //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to insert visitor room")

		return res, fmt.Errorf("failed to insert visitor room: %w", err)
	}

	s.invalidateLists(ctx)

	room.HospitalName = hospital.Name
	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetVisitorRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllVisitorRoom, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for visitor rooms")

		return res, nil
	}

	total, err := s.count(ctx, req, filter)
	if err != nil {
		return res, err
	}

	rooms, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get visitor rooms")

		return res, fmt.Errorf("failed to get visitor rooms: %w", err)
	}

	res.FromModels(rooms, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save visitor rooms to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountVisitorRoom, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &total); err == nil {
		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count visitor rooms")

		return 0, fmt.Errorf("failed to count visitor rooms: %w", err)
	}

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save visitor room count to cache")
		}
	}()

	return total, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.VisitorRoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) Reserve(ctx context.Context, req dto.ReserveRoomRequest) (res dto.VisitorRoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reserve")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room, err := s.find(ctx, req.RoomID)
	if err != nil {
		return res, err
	}

	if room.RoomType != model.RoomTypeNormal {
		return res, failure.BadRequestFromString(errRoomNotAvailable) //nolint:wrapcheck
	}

	return s.reserve(ctx, room, req.UserID, nil, userModel.CategoryVisitorRoom, room.Fees, errRoomNotAvailable, audit.EventVisitorRoomReserved)
}

func (s *serviceImpl) ReserveKidsArea(ctx context.Context, req dto.ReserveKidsAreaRequest) (res dto.VisitorRoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ReserveKidsArea")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room, err := s.find(ctx, req.RoomID)
	if err != nil {
		return res, err
	}

	if room.RoomType != model.RoomTypeKidsArea {
		return res, failure.BadRequestFromString(errKidsAreaNotFree) //nolint:wrapcheck
	}

	return s.reserve(ctx, room, req.UserID, &req.TimeSlot, userModel.CategoryKidsArea, 0, errKidsAreaNotFree, audit.EventKidsAreaReserved)
}

// reserve flips the room to Reserved and records the reservation and its fee
// in one transaction. A room taken by a concurrent request rolls everything back.
func (s *serviceImpl) reserve(
	ctx context.Context,
	room model.VisitorRoom,
	userID string,
	timeSlot *string,
	category string,
	fee float64,
	conflict string,
	event string,
) (res dto.VisitorRoomResponse, err error) {
	exist, err := s.userRepo.Exist(ctx, shared.FilterByID(userID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check user existence")

		return res, fmt.Errorf("failed to check user existence: %w", err)
	}

	if !exist {
		return res, failure.NotFound("user not found") //nolint:wrapcheck
	}

	now := timezone.Now()

	err = s.transactor.WithinTx(ctx, func(tx *sqlx.Tx) error {
		affected, err := s.repo.CompareAndSetTx(ctx, tx, map[string]any{
			model.FieldStatus:        model.StatusReserved,
			model.FieldReservedBy:    userID,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: shared.ActorFromContext(ctx),
		}, repository.WithStatus(shared.FilterByID(room.ID, model.FieldID, model.TableName), model.StatusAvailable))
		if err != nil {
			return fmt.Errorf("failed to reserve visitor room: %w", err)
		}

		if affected == 0 {
			return failure.BadRequestFromString(conflict) //nolint:wrapcheck
		}

		err = s.repo.InsertReservationTx(ctx, tx, model.Reservation{
			ID:         uuid.NewString(),
			RoomID:     room.ID,
			UserID:     userID,
			TimeSlot:   timeSlot,
			ReservedAt: now,
		})
		if err != nil {
			return fmt.Errorf("failed to record reservation: %w", err)
		}

		err = s.userRepo.InsertServiceTx(ctx, tx, userModel.ReservedService{
			ID:         uuid.NewString(),
			UserID:     userID,
			ResourceID: room.ID,
			Category:   category,
			Fee:        fee,
			ReservedAt: now,
		})
		if err != nil {
			return fmt.Errorf("failed to record reserved service: %w", err)
		}

		if fee > 0 {
			return s.userRepo.AddFeesTx(ctx, tx, userID, fee) //nolint:wrapcheck
		}

		return nil
	})
	if err != nil {
		if !failure.IsFailure(err) {
			log.Error().Err(err).Str("room", room.ID).Msg("failed to reserve visitor room")
		}

		return res, err
	}

	s.invalidateLists(ctx)

	s.audit.Record(ctx, audit.Event{
		Type:       event,
		ResourceID: room.ID,
		HospitalID: room.HospitalID,
		UserID:     userID,
		Fee:        fee,
		OccurredAt: now,
	})

	room.Status = model.StatusReserved
	room.ReservedBy = &userID
	room.ModifiedAt = now
	room.ModifiedBy = shared.ActorFromContext(ctx)

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) Release(ctx context.Context, id string) (res dto.VisitorRoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Release")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	affected, err := s.repo.CompareAndSet(ctx, map[string]any{
		model.FieldStatus:        model.StatusAvailable,
		model.FieldReservedBy:    nil,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: shared.ActorFromContext(ctx),
	}, repository.WithStatus(shared.FilterByID(id, model.FieldID, model.TableName), model.StatusReserved))
	if err != nil {
		log.Error().Err(err).Msg("failed to release visitor room")

		return res, fmt.Errorf("failed to release visitor room: %w", err)
	}

	if affected == 0 {
		return res, failure.BadRequestFromString(errRoomNotReserved) //nolint:wrapcheck
	}

	s.invalidateLists(ctx)

	room.Status = model.StatusAvailable
	room.ReservedBy = nil
	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) GetHistory(ctx context.Context, id string) (res []dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetHistory")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.find(ctx, id); err != nil {
		return nil, err
	}

	reservations, err := s.repo.GetReservations(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation history")

		return nil, fmt.Errorf("failed to get reservation history: %w", err)
	}

	return dto.FromReservations(reservations), nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.VisitorRoom, error) {
	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get visitor room")

		return room, fmt.Errorf("failed to get visitor room: %w", err)
	}

	if room.ID == constant.Empty {
		return room, failure.NotFound(errRoomNotFound) //nolint:wrapcheck
	}

	return room, nil
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllVisitorRoom)
		shared.InvalidateCaches(c, s.cache, cacheCountVisitorRoom)
	}()
}
