package config

import "time"

type Cache struct {
	// TTL of the fetched deal set; zero disables caching.
	TTL      time.Duration `env:"CACHE_TTL" envDefault:"5m" validate:"gte=0"`
	RedisKey string        `env:"CACHE_REDIS_KEY" envDefault:"gamedeals:deals"`
}

// Redis is optional; an empty address keeps the cache in process.
type Redis struct {
	Address            string `env:"REDIS_ADDRESS"`
	Username           string `env:"REDIS_USERNAME"`
	Password           string `env:"REDIS_PASSWORD" json:"-"`
	DatabaseNumber     int    `env:"REDIS_DB" envDefault:"0"`
	PoolSize           int    `env:"REDIS_POOL_SIZE" envDefault:"10"`
	MinIdleConnections int    `env:"REDIS_MIN_IDLE_CONNS" envDefault:"0"`
	MaxIdleConnections int    `env:"REDIS_MAX_IDLE_CONNS" envDefault:"5"`
}
