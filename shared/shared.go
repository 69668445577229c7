package shared

import (
	"context"
	"crypto/sha1" //nolint:gosec
	"encoding/hex"
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"

	"hms/shared/cache"
	"hms/shared/constant"
	"hms/shared/dto"
	"hms/shared/timezone"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		log.Warn().Err(err).Str("value", value).Msg("failed to convert string to bool")

		return nil
	}

	return &parsed
}

func ConvertStringToInt(value string) *int {
	if value == "" {
		return nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Warn().Err(err).Str("value", value).Msg("failed to convert string to int")

		return nil
	}

	return &parsed
}

func CalculateTotalPage(total, limit int) int {
	if total == 0 || limit <= 0 {
		return 1
	}

	return int(math.Ceil(float64(total) / float64(limit)))
}

// TransformFields turns the non-zero `db` tagged fields of a request struct
// into an update map stamped with modified_at and modified_by.
func TransformFields(data any, username string) map[string]any {
	val := reflect.ValueOf(data)
	typ := val.Type()

	updated := make(map[string]any)

	for index := range val.NumField() {
		name := typ.Field(index).Tag.Get("db")
		if name == "" || name == "-" {
			continue
		}

		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		updated[name] = field.Interface()
	}

	updated[constant.FieldModifiedAt] = timezone.Now()
	updated[constant.FieldModifiedBy] = username

	return updated
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.And(dto.Eq(table, fieldID, id))
}

// BuildCacheKey joins parts with ":" under prefix.
func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), cacheKeySeparator)
}

// BuildCacheKeyWithQuery keys a list query by a digest of its paging and filter.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	where, args := filter.GetWhereClause()

	raw, err := json.Marshal(struct {
		Params dto.QueryParams
		Where  string
		Args   map[string]any
	}{params, where, args})
	if err != nil {
		log.Warn().Err(err).Str("prefix", prefix).Msg("failed to marshal cache key input")

		return prefix
	}

	sum := sha1.Sum(raw) //nolint:gosec

	return BuildCacheKey(prefix, hex.EncodeToString(sum[:]))
}

// InvalidateCaches clears every key under prefix. Errors are logged only.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+cacheKeySeparator+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

// IsUniqueViolation reports whether err carries a Postgres unique_violation.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error

	return errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation
}

// ActorFromContext returns the authenticated user id, or "guest".
func ActorFromContext(ctx context.Context) string {
	if user, ok := ctx.Value(constant.ContextKeyUserID).(string); ok && user != "" {
		return user
	}

	return constant.ContextGuest
}

// RoleFromContext returns the authenticated role, or "".
func RoleFromContext(ctx context.Context) string {
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	return role
}
