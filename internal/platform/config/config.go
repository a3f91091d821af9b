// Package config loads the application configuration from the environment.
package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// App holds every externally supplied setting.
type App struct {
	// DB
	DBUser     string `envconfig:"DB_USER" required:"true"`
	DBPassword string `envconfig:"DB_PASSWORD" required:"true"`
	DBHost     string `envconfig:"DB_HOST" default:"127.0.0.1"`
	DBPort     string `envconfig:"DB_PORT" default:"3306"`
	DBName     string `envconfig:"DB_NAME" required:"true"`
	// RUN_MIGRATIONS=true applies GORM AutoMigrate at startup.
	RunMigrations bool `envconfig:"RUN_MIGRATIONS" default:"false"`

	// Redis (session store)
	RedisHost     string `envconfig:"REDIS_HOST" default:"127.0.0.1"`
	RedisPort     string `envconfig:"REDIS_PORT" default:"6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`

	// Sessions
	SessionSecret string        `envconfig:"SESSION_SECRET" default:""`
	SessionTTL    time.Duration `envconfig:"SESSION_TTL" default:"168h"`

	// HTTP
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`

	// MapsDir is where rendered map documents are written and served from.
	MapsDir string `envconfig:"MAPS_DIR" default:"maps"`
}

// Load reads the configuration from the environment.
func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
