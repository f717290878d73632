package config

import (
	"fmt"
	"log/slog"

	"github.com/kelseyhightower/envconfig"
)

type BaseEnv struct {
	Env                string   `envconfig:"ENV" default:"local"`
	HTTPHost           string   `envconfig:"HTTP_HOST" default:""`
	HTTPPort           string   `envconfig:"HTTP_PORT" default:"3100"`
	LogLevel           string   `envconfig:"LOG_LEVEL" default:"debug"`
	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	// Larger JSON-RPC bodies are rejected as parse errors.
	MaxBodyBytes int64 `envconfig:"MAX_BODY_BYTES" default:"1048576"`
}

const (
	StorageTypeEmbedded = "embedded"
	StorageTypeLocal    = "local"
	StorageTypeS3       = "s3"
)

// StorageEnv selects where the fixture documents are read from.
type StorageEnv struct {
	Type    string `envconfig:"STORAGE_TYPE" default:"embedded"`
	BaseDir string `envconfig:"STORAGE_BASE_DIR" default:".bountyboard/fixture"`
	// S3 settings (used when Type == "s3")
	S3Bucket string `envconfig:"S3_BUCKET"`
	S3Prefix string `envconfig:"S3_PREFIX" default:"bountyboard/"`
	S3Region string `envconfig:"S3_REGION" default:"ap-northeast-1"`
}

type Env struct {
	BaseEnv
	StorageEnv
}

const namespace = "BOUNTYBOARD"

func LoadEnv() (*Env, error) {
	var env Env
	if err := envconfig.Process(namespace, &env); err != nil {
		return nil, fmt.Errorf("failed to load env: %w", err)
	}
	if err := env.StorageEnv.validate(); err != nil {
		return nil, fmt.Errorf("failed to load env: %w", err)
	}
	return &env, nil
}

func (e *StorageEnv) validate() error {
	switch e.Type {
	case StorageTypeEmbedded, StorageTypeLocal:
		return nil
	case StorageTypeS3:
		if e.S3Bucket == "" {
			return fmt.Errorf("%s_S3_BUCKET is required when STORAGE_TYPE is s3", namespace)
		}
		return nil
	}
	return fmt.Errorf("unknown storage type %q", e.Type)
}

func (e *BaseEnv) SlogLevel() slog.Level {
	if e == nil {
		return slog.LevelDebug
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(e.LogLevel)); err != nil {
		return slog.LevelDebug
	}
	return level
}
