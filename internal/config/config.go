package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server         ServerConfig
	Datasets       DatasetsConfig       `mapstructure:"datasets"`
	Storage        StorageConfig        `mapstructure:"storage"`
	Recommendation RecommendationConfig `mapstructure:"recommendation"`
	CORS           CORSConfig           `mapstructure:"cors"`
	RateLimit      RateLimitConfig      `mapstructure:"rate_limit"`
	Tracing        TracingConfig        `mapstructure:"tracing"`
}

type ServerConfig struct {
	Port string
	Mode string
}

// DatasetsConfig names the two flat files the service loads at startup.
// Encoding covers the Latin-1 exports the upstream registry produces.
type DatasetsConfig struct {
	EnrollmentFile string `mapstructure:"enrollment_file"`
	CatalogFile    string `mapstructure:"catalog_file"`
	Encoding       string `mapstructure:"encoding"` // utf8 | latin1
}

type StorageConfig struct {
	Type          string `mapstructure:"type"` // local | minio
	LocalPath     string `mapstructure:"local_path"`
	MinioEndpoint string `mapstructure:"minio_endpoint"`
	MinioAccessID string `mapstructure:"minio_access_key"`
	MinioSecret   string `mapstructure:"minio_secret_key"`
	MinioBucket   string `mapstructure:"minio_bucket"`
	MinioUseSSL   bool   `mapstructure:"minio_use_ssl"`
}

// RecommendationConfig carries the ranking options that may be reloaded at
// runtime without touching the loaded catalog.
type RecommendationConfig struct {
	DefaultMode     string `mapstructure:"default_mode"` // best | all
	CaseInsensitive bool   `mapstructure:"case_insensitive"`
	TieBreak        string `mapstructure:"tie_break"` // catalog_order | degree_name
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("UNI_ADVISOR")
	viper.AutomaticEnv()

	// Server
	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("server.mode", "SERVER_MODE")

	// Datasets
	viper.BindEnv("datasets.enrollment_file", "DATASET_ENROLLMENT_FILE")
	viper.BindEnv("datasets.catalog_file", "DATASET_CATALOG_FILE")
	viper.BindEnv("datasets.encoding", "DATASET_ENCODING")

	// Storage / MinIO
	viper.BindEnv("storage.type", "STORAGE_TYPE")
	viper.BindEnv("storage.minio_endpoint", "MINIO_ENDPOINT")
	viper.BindEnv("storage.minio_access_key", "MINIO_ACCESS_KEY")
	viper.BindEnv("storage.minio_secret_key", "MINIO_SECRET_KEY")
	viper.BindEnv("storage.minio_bucket", "MINIO_BUCKET")

	// Tracing
	viper.BindEnv("tracing.enabled", "TRACING_ENABLED")
	viper.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("datasets.encoding", "utf8")
	viper.SetDefault("storage.type", "local")
	viper.SetDefault("storage.local_path", "data")
	viper.SetDefault("recommendation.default_mode", "best")
	viper.SetDefault("recommendation.tie_break", "catalog_order")
	viper.SetDefault("rate_limit.max_requests", 600)
	viper.SetDefault("rate_limit.window_minutes", 1)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.Datasets.EnrollmentFile == "" || cfg.Datasets.CatalogFile == "" {
		return nil, fmt.Errorf("datasets.enrollment_file and datasets.catalog_file must be set")
	}

	switch cfg.Datasets.Encoding {
	case "utf8", "latin1":
	default:
		return nil, fmt.Errorf("unsupported datasets.encoding %q (want utf8 or latin1)", cfg.Datasets.Encoding)
	}

	switch cfg.Recommendation.DefaultMode {
	case "best", "all":
	default:
		return nil, fmt.Errorf("unsupported recommendation.default_mode %q (want best or all)", cfg.Recommendation.DefaultMode)
	}

	switch cfg.Recommendation.TieBreak {
	case "catalog_order", "degree_name":
	default:
		return nil, fmt.Errorf("unsupported recommendation.tie_break %q (want catalog_order or degree_name)", cfg.Recommendation.TieBreak)
	}

	return &cfg, nil
}
