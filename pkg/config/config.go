package config

import (
	"errors"
	"io/fs"
	"log"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

var (
	once     sync.Once
	instance *Config
)

const envPrefix = "PB"

type Config struct {
	APIAddress string `envconfig:"API_ADDRESS" default:":8080"`
	// Base URL of the remote Place Between API, without trailing slash
	BackendURL    string        `envconfig:"BACKEND_URL"`
	RemoteTimeout time.Duration `envconfig:"REMOTE_TIMEOUT" default:"10s"`
	JWTSecret     string        `envconfig:"JWT_SECRET"`

	// memory, sqlite or postgres
	StoreDriver string `envconfig:"STORE_DRIVER" default:"sqlite"`
	SQLitePath  string `envconfig:"SQLITE_PATH" default:"./data/placebetween.db"`
	PGAddress   string `envconfig:"POSTGRES_DB_ADDRESS"`
	PGUser      string `envconfig:"POSTGRES_USER"`
	PGPassword  string `envconfig:"POSTGRES_PASSWORD"`
	PGDB        string `envconfig:"POSTGRES_DB"`

	// Optional YAML file replacing the embedded activity catalog
	CatalogPath string `envconfig:"CATALOG_PATH"`
	Timezone    string `envconfig:"TIMEZONE" default:"Local"`
	// Night runs from NightStartHour until DayStartHour
	NightStartHour int `envconfig:"NIGHT_START_HOUR" default:"19"`
	DayStartHour   int `envconfig:"DAY_START_HOUR" default:"6"`
}

// New loads ./configs/.env (if present) and the process environment once.
func New() *Config {
	once.Do(func() {
		err := godotenv.Load("./configs/.env")
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Fatal("loading envs error: ", err)
		}
		cfg, err := Load()
		if err != nil {
			log.Fatal("parsing config error: ", err)
		}
		instance = cfg
	})
	return instance
}

// Load reads the environment without touching .env files.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, errors.New("processing env config error: " + err.Error())
	}
	return &cfg, nil
}

func (c *Config) Location() *time.Location {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("unknown timezone %q, falling back to local", c.Timezone)
		return time.Local
	}
	return loc
}
