package postgres

//nolint:revive
import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"hms/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
	postgresConnMaxLifetime   = 30 * time.Minute
)

// Connection splits reads (replica) from writes (primary).
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

type endpoint struct {
	name, username, password, host, port, dbName, sslMode string
}

func New(cfg *config.Config) *Connection {
	pg := cfg.DB.Postgres

	read := endpoint{"read", pg.Read.Username, pg.Read.Password, pg.Read.Host, pg.Read.Port, pg.Prefix + pg.Read.Name, pg.Read.SSLMode}
	write := endpoint{"write", pg.Write.Username, pg.Write.Password, pg.Write.Host, pg.Write.Port, pg.Prefix + pg.Write.Name, pg.Write.SSLMode}

	conn := &Connection{
		Read:  connect(read, pg.MaxRetry, pg.RetryWaitTime),
		Write: connect(write, pg.MaxRetry, pg.RetryWaitTime),
	}

	if conn.Read == nil || conn.Write == nil {
		log.Fatal().Msg("Could not connect to Postgres")
	}

	return conn
}

// DSN renders a postgres:// URL for e.
func (e endpoint) DSN() string {
	dsn := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(e.username, e.password),
		Host:   net.JoinHostPort(e.host, e.port),
		Path:   e.dbName,
	}

	if e.sslMode != "" {
		dsn.RawQuery = url.Values{"sslmode": {e.sslMode}}.Encode()
	}

	return dsn.String()
}

func connect(e endpoint, maxRetry, waitSeconds int) *sqlx.DB {
	for attempt := range max(maxRetry, 1) {
		db, err := sqlx.Connect("postgres", e.DSN())
		if err == nil {
			db.SetMaxIdleConns(postgresMaxIdleConnection)
			db.SetMaxOpenConns(postgresMaxOpenConnection)
			db.SetConnMaxLifetime(postgresConnMaxLifetime)

			log.Info().Str("name", e.name).Str("host", e.host).Str("dbName", e.dbName).Msg("Connected to database")

			return db
		}

		log.Error().
			Err(err).
			Str("name", e.name).
			Str("host", e.host).
			Int("attempt", attempt+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitSeconds) * time.Second)
	}

	return nil
}

func (c *Connection) Close() error {
	var errs []error

	for name, db := range map[string]*sqlx.DB{"read": c.Read, "write": c.Write} {
		if db == nil {
			continue
		}

		if err := db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing %s connection: %w", name, err))
		}
	}

	return errors.Join(errs...)
}
