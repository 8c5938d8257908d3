package config

import (
	"errors"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	HTTPPort   int    `env:"HTTP_PORT" env-default:"5000"`
	DBHost     string `env:"DB_HOST" env-default:"localhost"`
	DBPort     string `env:"DB_PORT" env-default:"5432"`
	DBUser     string `env:"DB_USER" env-default:"postgres"`
	DBPassword string `env:"DB_PASSWORD" env-default:"postgres"`
	DBName     string `env:"DB_NAME" env-default:"learnify"`

	// UploadsDir receives submitted files under their client-supplied names.
	// FilesBaseDir anchors the /api/files/view lookup.
	UploadsDir     string `env:"UPLOADS_DIR" env-default:"uploads"`
	FilesBaseDir   string `env:"FILES_BASE_DIR" env-default:"."`
	MaxUploadBytes int    `env:"MAX_UPLOAD_BYTES" env-default:"10485760"`

	// StrictPaths turns on containment checks for the file endpoints. It is
	// off by default: the unguarded joins are the training target.
	StrictPaths bool `env:"STRICT_PATHS" env-default:"false"`

	// RedisURL, when set, backs sessions with Redis instead of process memory.
	RedisURL string `env:"REDIS_URL"`

	AdminUsername string `env:"ADMIN_USERNAME" env-default:"admin"`
	AdminPassword string `env:"ADMIN_PASSWORD" env-default:"admin123"`
	AdminEmail    string `env:"ADMIN_EMAIL" env-default:"admin@learnify.edu"`
}

func New() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig("./config/.env", &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err := cleanenv.ReadEnv(&cfg); err != nil {
				return nil, err
			}
			return &cfg, nil
		}
		return nil, err
	}
	return &cfg, nil
}
