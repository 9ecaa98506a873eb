package postgres

//nolint:revive
import (
	"net"
	"net/url"
	"time"

	"github.com/NikQuila/website-gocar-sub000/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	driverName = "postgres"

	maxIdleConnections = 10
	maxOpenConnections = 10
	connMaxIdleTime    = 5 * time.Minute
)

// Connection is the read pool used for listings, lookups and booked counts.
// Bookings and cancellations go through the backend procedures instead.
type Connection struct {
	Read *sqlx.DB
}

// Node is one addressable database server.
type Node struct {
	Name     string
	Host     string
	Port     string
	Username string
	Password string
	Database string
	SSLMode  string
	Timezone string
}

func ReadNode(cfg *config.Config) Node {
	read := cfg.DB.Postgres.Read

	return Node{
		Name:     "read",
		Host:     read.Host,
		Port:     read.Port,
		Username: read.Username,
		Password: read.Password,
		Database: cfg.DB.Postgres.Prefix + read.Name,
		SSLMode:  read.SSLMode,
		Timezone: read.Timezone,
	}
}

// WriteNode owns the schema and the booking procedures.
func WriteNode(cfg *config.Config) Node {
	write := cfg.DB.Postgres.Write

	return Node{
		Name:     "write",
		Host:     write.Host,
		Port:     write.Port,
		Username: write.Username,
		Password: write.Password,
		Database: cfg.DB.Postgres.Prefix + write.Name,
		SSLMode:  write.SSLMode,
		Timezone: write.Timezone,
	}
}

// DSN renders the node as a postgres URL. Extra options are appended to the
// query string.
func (n Node) DSN(options url.Values) string {
	query := url.Values{}

	for key, values := range options {
		query[key] = values
	}

	if n.SSLMode != "" {
		query.Set("sslmode", n.SSLMode)
	}

	if n.Timezone != "" {
		query.Set("timezone", n.Timezone)
	}

	dsn := url.URL{
		Scheme:   driverName,
		User:     url.UserPassword(n.Username, n.Password),
		Host:     net.JoinHostPort(n.Host, n.Port),
		Path:     n.Database,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

func New(cfg *config.Config) *Connection {
	return &Connection{
		Read: Connect(ReadNode(cfg), cfg.DB.Postgres.MaxRetry, time.Duration(cfg.DB.Postgres.RetryWaitTime)*time.Second),
	}
}

// Connect dials node, retrying up to attempts times before giving up.
func Connect(node Node, attempts int, wait time.Duration) *sqlx.DB {
	attempts = max(attempts, 1)

	logger := log.With().Str("name", node.Name).Str("host", node.Host).Str("port", node.Port).Str("dbName", node.Database).Logger()

	for attempt := 1; attempt <= attempts; attempt++ {
		db, err := sqlx.Connect(driverName, node.DSN(nil))
		if err == nil {
			db.SetMaxIdleConns(maxIdleConnections)
			db.SetMaxOpenConns(maxOpenConnections)
			db.SetConnMaxIdleTime(connMaxIdleTime)

			logger.Info().Msg("Connected to database")

			return db
		}

		logger.Error().Err(err).Int("attempt", attempt).Msg("Failed connecting to database, retrying")

		if attempt < attempts {
			time.Sleep(wait)
		}
	}

	logger.Fatal().Int("attempts", attempts).Msg("Giving up connecting to database")

	return nil
}
