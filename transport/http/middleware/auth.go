package middleware

import (
	"context"
	"errors"
	"net/http"
	"slices"

	"hms/config"
	"hms/infras/jwt"
	"hms/infras/otel"
	"hms/permissions"
	"hms/shared/constant"
	"hms/shared/failure"
	"hms/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type accessKey struct{}

// access is resolved once per request and shared by the auth chain.
type access struct {
	route    string
	endpoint permissions.Permission
	internal bool
}

func (a access) public() bool {
	return a.internal || a.endpoint.Skip
}

type Auth interface {
	Auth(http.Handler) http.Handler
	APIKey(http.Handler) http.Handler
}

type Role interface {
	RBAC(http.Handler) http.Handler
}

// AuthRole is mounted in the order APIKey, Auth, RBAC.
type AuthRole interface {
	Auth
	Role
}

type authRoleImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
	permission *permissions.PermissionData
	cfg        *config.Config
}

func NewAuthRoleMiddleware(jwtService jwt.JWT, otel otel.Otel, permissions *permissions.PermissionData, cfg *config.Config) AuthRole {
	return &authRoleImpl{
		jwtService: jwtService,
		otel:       otel,
		permission: permissions,
		cfg:        cfg,
	}
}

// APIKey marks requests carrying the internal API key; they bypass token and
// role checks. A wrong key is rejected outright.
func (m *authRoleImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "api_key.middleware")
		defer scope.End()

		acc := m.resolve(request)

		if apiKey := request.Header.Get(constant.RequestHeaderAPIKey); apiKey != "" {
			if apiKey != m.cfg.App.APIKey {
				deny(writer, scope, failure.ForbiddenError)

				return
			}

			acc.internal = true
		}

		scope.SetAttribute("http.source", source(acc.internal))

		next.ServeHTTP(writer, request.WithContext(context.WithValue(request.Context(), accessKey{}, acc)))
	})
}

// Auth validates the bearer access token and puts the caller into the context.
func (m *authRoleImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "auth.middleware")
		defer scope.End()

		acc := m.resolve(request)
		if acc.public() {
			next.ServeHTTP(writer, request)

			return
		}

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       acc.route,
			"http.method":     request.Method,
		})

		token, err := jwt.ExtractTokenFromHeader(request.Header.Get(constant.RequestHeaderAuthorization))
		if err != nil {
			message := "Invalid authorization header format"
			if errors.Is(err, jwt.ErrMissingHeader) {
				message = "Missing authorization header"
			}

			deny(writer, scope, failure.Unauthorized(message))

			return
		}

		claims, err := m.jwtService.ValidateToken(ctx, token, jwt.AccessToken)
		if err != nil {
			deny(writer, scope, failure.Unauthorized(tokenFailure(err)))

			return
		}

		if claims.UserID == "" || claims.Role == "" {
			log.Error().Str("user_id", claims.UserID).Msg("access token without user or role")
			deny(writer, scope, failure.Unauthorized("Invalid token claims"))

			return
		}

		ctx = request.Context()
		ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, constant.ContextKeyUserName, claims.UserName)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, claims.Role)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// RBAC admits the caller when the endpoint lists no roles or lists theirs.
// Endpoints missing from permissions.json are open to any authenticated user.
func (m *authRoleImpl) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "rbac.middleware")
		defer scope.End()

		acc := m.resolve(request)
		if acc.internal {
			next.ServeHTTP(writer, request)

			return
		}

		if m.permission == nil {
			deny(writer, scope, failure.ForbiddenError)

			return
		}

		if acc.endpoint.Skip || m.permission.Skip {
			next.ServeHTTP(writer, request)

			return
		}

		role, _ := request.Context().Value(constant.ContextKeyUserRole).(string)
		allowed := acc.endpoint.Permissions

		if len(allowed) > 0 && !slices.Contains(allowed, role) {
			scope.SetAttributes(map[string]any{
				"user_role":     role,
				"allowed_roles": allowed,
			})
			deny(writer, scope, failure.ForbiddenError)

			return
		}

		next.ServeHTTP(writer, request)
	})
}

// resolve returns the access computed by APIKey, or looks the route up when
// the middleware runs on its own.
func (m *authRoleImpl) resolve(request *http.Request) access {
	if acc, ok := request.Context().Value(accessKey{}).(access); ok {
		return acc
	}

	acc := access{route: request.URL.Path}

	if rctx := chi.RouteContext(request.Context()); rctx != nil && rctx.Routes != nil {
		if pattern := rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path); pattern != "" {
			acc.route = pattern
		}
	}

	if m.permission != nil {
		acc.endpoint = m.permission.FindPermissions(acc.route, request.Method)
	}

	return acc
}

func deny(writer http.ResponseWriter, scope otel.Scope, err error) {
	scope.TraceError(err)
	response.WithError(writer, err)
}

func tokenFailure(err error) string {
	switch {
	case errors.Is(err, jwt.ErrExpiredToken):
		return "Token has expired"
	case errors.Is(err, jwt.ErrInvalidToken):
		return "Invalid token"
	case errors.Is(err, jwt.ErrInvalidClaim):
		return "Invalid token claims"
	default:
		return "Token validation failed"
	}
}

func source(internal bool) string {
	if internal {
		return "internal"
	}

	return "client"
}
