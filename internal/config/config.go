package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Log      LogConfig
	Worker   WorkerConfig
	Engine   EngineConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	StatsCacheTTL time.Duration
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled           bool
	ConsumerGroup     string
	StreamReadTimeout time.Duration
	MaxRetries        int
}

// EngineConfig - параметры движка хотспотов. Пороговые значения risk level
// фиксированы в domain и намеренно не конфигурируются, чтобы отчёты разных
// развёртываний оставались сравнимыми. Калибровочные константы скоринга
// (нормализатор плотности, фактор смешанной изоляции) подлежат подбору
// по размеченным данным и поэтому вынесены сюда.
type EngineConfig struct {
	DensityNormalizer    float64
	MixedIsolationFactor float64
	DefaultRadiusKm      float64
	DefaultWindow        time.Duration
	DefaultMinVessels    int
	DefaultLimit         int
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			StatsCacheTTL: time.Duration(viper.GetInt("STATS_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:           viper.GetBool("WORKER_ENABLED"),
			ConsumerGroup:     viper.GetString("WORKER_CONSUMER_GROUP"),
			StreamReadTimeout: time.Duration(viper.GetInt("WORKER_STREAM_READ_TIMEOUT")) * time.Millisecond,
			MaxRetries:        viper.GetInt("WORKER_MAX_RETRIES"),
		},
		Engine: EngineConfig{
			DensityNormalizer:    viper.GetFloat64("ENGINE_DENSITY_NORMALIZER"),
			MixedIsolationFactor: viper.GetFloat64("ENGINE_MIXED_ISOLATION_FACTOR"),
			DefaultRadiusKm:      viper.GetFloat64("ENGINE_DEFAULT_RADIUS_KM"),
			DefaultWindow:        time.Duration(viper.GetInt("ENGINE_DEFAULT_WINDOW_HOURS")) * time.Hour,
			DefaultMinVessels:    viper.GetInt("ENGINE_DEFAULT_MIN_VESSELS"),
			DefaultLimit:         viper.GetInt("ENGINE_DEFAULT_LIMIT"),
		},
	}

	// Set default values if not provided
	if cfg.Cache.StatsCacheTTL == 0 {
		cfg.Cache.StatsCacheTTL = 60 * time.Second
	}
	if cfg.Worker.ConsumerGroup == "" {
		cfg.Worker.ConsumerGroup = "fix-ingest-workers"
	}
	if cfg.Worker.StreamReadTimeout == 0 {
		cfg.Worker.StreamReadTimeout = 5000 * time.Millisecond
	}
	if cfg.Worker.MaxRetries == 0 {
		cfg.Worker.MaxRetries = 3
	}
	if cfg.Engine.DensityNormalizer == 0 {
		cfg.Engine.DensityNormalizer = 10
	}
	if cfg.Engine.MixedIsolationFactor == 0 {
		cfg.Engine.MixedIsolationFactor = 0.5
	}
	if cfg.Engine.DefaultRadiusKm == 0 {
		cfg.Engine.DefaultRadiusKm = 50
	}
	if cfg.Engine.DefaultWindow == 0 {
		cfg.Engine.DefaultWindow = 24 * time.Hour
	}
	if cfg.Engine.DefaultMinVessels == 0 {
		cfg.Engine.DefaultMinVessels = 3
	}
	if cfg.Engine.DefaultLimit == 0 {
		cfg.Engine.DefaultLimit = 100
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
