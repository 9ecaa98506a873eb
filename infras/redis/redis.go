package redis

import (
	"context"
	"crypto/tls"
	"net"
	"time"

	"github.com/NikQuila/website-gocar-sub000/config"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const defaultTimeout = 3 * time.Second

// Options maps the primary node settings. Managed redis endpoints require TLS.
func Options(cfg *config.Config) *goRedis.Options {
	redisConfig := cfg.Cache.Redis
	primary := redisConfig.Primary

	timeout := time.Duration(redisConfig.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	options := &goRedis.Options{
		Addr:         net.JoinHostPort(primary.Host, primary.Port),
		Password:     primary.Password,
		DB:           primary.DB,
		PoolSize:     redisConfig.PoolSize,
		DialTimeout:  timeout,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}

	if primary.TLS {
		options.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12, ServerName: primary.Host}
	}

	return options
}

// New connects to the primary node. The service cannot hold booking sessions
// without redis, so a failed ping stops start-up.
func New(cfg *config.Config) *goRedis.Client {
	options := Options(cfg)
	client := goRedis.NewClient(options)

	ctx, cancel := context.WithTimeout(context.Background(), options.DialTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Str("addr", options.Addr).Msg("Failed to connect to Redis")
	}

	log.Info().
		Str("addr", options.Addr).
		Int("db", options.DB).
		Bool("tls", options.TLSConfig != nil).
		Msg("Connected to Redis")

	return client
}
