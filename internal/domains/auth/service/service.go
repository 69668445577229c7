package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hms/config"
	"hms/infras/jwt"
	"hms/infras/otel"
	"hms/internal/domains/auth/model/dto"
	userModel "hms/internal/domains/user/model"
	userRepo "hms/internal/domains/user/repository"
	"hms/shared"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/failure"
	"hms/shared/password"
	"hms/shared/timezone"

	"github.com/rs/zerolog/log"
)

const errInvalidCredentials = "invalid username, password or role"

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) error
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	Verify(ctx context.Context) (dto.VerifyResponse, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) error
}

type serviceImpl struct {
	userRepo   userRepo.User
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(userRepo userRepo.User, cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		userRepo:   userRepo,
		cfg:        cfg,
		otel:       otel,
		jwtService: jwt,
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filters := []any{gDto.Eq(userModel.TableName, userModel.FieldUserName, req.UserName)}
	if req.Email != constant.Empty {
		filters = append(filters, gDto.Eq(userModel.TableName, userModel.FieldEmail, req.Email))
	}

	exists, err := s.userRepo.Exist(ctx, gDto.FilterGroup{Operator: gDto.FilterGroupOperatorOr, Filters: filters})
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exists {
		return failure.BadRequestFromString("User is already registered") //nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err = s.userRepo.Insert(ctx, req.ToModel(constant.ContextGuest, constant.RolePatient, hashedPassword)); err != nil {
		if shared.IsUniqueViolation(err) {
			return failure.BadRequestFromString("User is already registered") //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create user")

		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.And(gDto.Eq(userModel.TableName, userModel.FieldUserName, req.UserName))

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		log.Warn().Str("userName", req.UserName).Msg("login attempt with unknown user name")

		return res, failure.BadRequestFromString(errInvalidCredentials) //nolint:wrapcheck
	}

	if err := password.Verify(req.Password, user.Password); err != nil {
		log.Warn().Str("userName", req.UserName).Msg("login attempt with wrong password")

		return res, failure.BadRequestFromString(errInvalidCredentials) //nolint:wrapcheck
	}

	if user.Role != req.Role {
		log.Warn().Str("userName", req.UserName).Str("role", req.Role).Msg("login attempt with wrong role")

		return res, failure.BadRequestFromString(errInvalidCredentials) //nolint:wrapcheck
	}

	if !user.Active {
		return res, failure.BadRequestFromString("user account is deactivated") //nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(ctx, jwt.Subject{UserID: user.ID, UserName: user.UserName, Role: user.Role})
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	now := timezone.Now()
	updatedFields := shared.TransformFields(dto.UpdateLastLoginRequest{LastLogin: now}, user.ID)

	if err = s.userRepo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("failed to update last login")

		return res, fmt.Errorf("failed to update last login: %w", err)
	}

	user.LastLogin = &now

	res.FromTokenPair(tokenPair)
	res.User.FromModel(user)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tokenPair, err := s.jwtService.RefreshTokens(ctx, req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token") //nolint:wrapcheck
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

// Verify echoes the identity the auth middleware put on ctx.
func (s *serviceImpl) Verify(ctx context.Context) (res dto.VerifyResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Verify")
	defer scope.End()

	res.UserID = shared.ActorFromContext(ctx)
	res.UserName, _ = ctx.Value(constant.ContextKeyUserName).(string)
	res.Role = shared.RoleFromContext(ctx)

	if res.UserID == constant.ContextGuest || res.Role == constant.Empty {
		return res, failure.Unauthorized("invalid token") //nolint:wrapcheck
	}

	return res, nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangePassword")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	userID := shared.ActorFromContext(ctx)
	filter := shared.FilterByID(userID, userModel.FieldID, userModel.TableName)

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return failure.NotFound("user not found") //nolint:wrapcheck
	}

	if err := password.Verify(req.CurrentPassword, user.Password); err != nil {
		return failure.BadRequestFromString("current password is incorrect") //nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")

		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err = s.userRepo.Update(ctx, shared.TransformFields(dto.UpdatePasswordRequest{Password: hashedPassword}, userID), filter); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
