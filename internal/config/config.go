package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string     `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string     `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort string     `yaml:"socket-port" env:"SOCKET_PORT" env-default:"9091"`
	Server     HTTPServer `yaml:"server"`
	Redis      Redis      `yaml:"redis"`
	Cache      Cache      `yaml:"cache"`
	Engine     Engine     `yaml:"engine"`
}

type HTTPServer struct {
	ReadTimeout     time.Duration `yaml:"read-timeout" env:"SERVER_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write-timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"`
	IdleTimeout     time.Duration `yaml:"idle-timeout" env:"SERVER_IDLE_TIMEOUT" env-default:"30s"`
	ShutdownTimeout time.Duration `yaml:"shutdown-timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// Cache controls memoization of solved positions in Redis.
type Cache struct {
	Enabled bool          `yaml:"enabled" env:"CACHE_ENABLED" env-default:"false"`
	TTL     time.Duration `yaml:"ttl" env:"CACHE_TTL" env-default:"24h"`
}

type Engine struct {
	MediumOptimalRate float64 `yaml:"medium-optimal-rate" env:"ENGINE_MEDIUM_OPTIMAL_RATE" env-default:"0.6"`
	DefaultPlayer     string  `yaml:"default-player" env:"ENGINE_DEFAULT_PLAYER" env-default:"O"`
	DefaultDifficulty string  `yaml:"default-difficulty" env:"ENGINE_DEFAULT_DIFFICULTY" env-default:"hard"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Engine.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

func (that *Engine) validate() error {
	if that.MediumOptimalRate < 0 || that.MediumOptimalRate > 1 {
		return fmt.Errorf("engine medium-optimal-rate must be within [0, 1], got %v", that.MediumOptimalRate)
	}

	return nil
}
