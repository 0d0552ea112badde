package config

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

type Config struct {
	App      App      `yaml:"app"`
	Database Database `yaml:"database"`
	Allows   Allows   `yaml:"allows"`
	JWT      JWT      `yaml:"jwt"`
	Mail     Mail     `yaml:"mail"`
	Redis    Redis    `yaml:"redis"`
	Media    Media    `yaml:"media"`
	Jobs     Jobs     `yaml:"jobs"`
	Limits   Limits   `yaml:"limits"`
	Log      Log      `yaml:"log"`
}

type App struct {
	Name string `yaml:"name" env:"APP_NAME"`
	Port string `yaml:"port" env:"APP_PORT"`
	Host string `yaml:"host" env:"APP_HOST"`
	Mode string `yaml:"mode" env:"GIN_MODE"`

	// AdminKey guards reputation writes when set.
	AdminKey string `yaml:"admin_key" env:"ADMIN_KEY"`
	// TrustedProxies may set X-Forwarded-For. Empty means the socket peer
	// is the client IP.
	TrustedProxies []string `yaml:"trusted_proxies" env:"TRUSTED_PROXIES"`
}

type Database struct {
	Driver string `yaml:"driver" env:"DB_DRIVER"`
	Host   string `yaml:"host" env:"DB_HOST"`
	Port   string `yaml:"port" env:"DB_PORT"`
	User   string `yaml:"user" env:"DB_USER"`
	Pass   string `yaml:"pass" env:"DB_PASSWORD"`
	Name   string `yaml:"name" env:"DB_NAME"`
	// Path is the sqlite file used when Driver is "sqlite".
	Path string `yaml:"path" env:"DB_PATH"`
}

type Allows struct {
	Methods []string `yaml:"methods" env:"CORS_METHODS"`
	Origins []string `yaml:"origins" env:"CORS_ORIGINS"`
	Headers []string `yaml:"headers" env:"CORS_HEADERS"`
}

type JWT struct {
	Secret string        `yaml:"secret" env:"SECRET"`
	TTL    time.Duration `yaml:"ttl" env:"JWT_TTL"`
}

type Mail struct {
	Host     string `yaml:"host" env:"SMTP_HOST"`
	Port     int    `yaml:"port" env:"SMTP_PORT"`
	Username string `yaml:"username" env:"SMTP_USERNAME"`
	Password string `yaml:"password" env:"SMTP_PASSWORD"`
	From     string `yaml:"from" env:"SMTP_FROM"`
	AppURL   string `yaml:"app_url" env:"APP_URL"`
}

type Redis struct {
	Addr          string        `yaml:"addr" env:"REDIS_ADDR"`
	Password      string        `yaml:"password" env:"REDIS_PASSWORD"`
	DB            int           `yaml:"db" env:"REDIS_DB"`
	ReputationTTL time.Duration `yaml:"reputation_ttl" env:"REDIS_REPUTATION_TTL"`
}

type Media struct {
	APIKey       string        `yaml:"api_key" env:"GOOGLE_AI_API_KEY"`
	ImageModel   string        `yaml:"image_model" env:"MEDIA_IMAGE_MODEL"`
	VideoModel   string        `yaml:"video_model" env:"MEDIA_VIDEO_MODEL"`
	PollInterval time.Duration `yaml:"poll_interval" env:"MEDIA_POLL_INTERVAL"`
	Timeout      time.Duration `yaml:"timeout" env:"MEDIA_TIMEOUT"`
}

type Jobs struct {
	TokenCleanupSchedule string `yaml:"token_cleanup_schedule" env:"TOKEN_CLEANUP_SCHEDULE"`
}

type Limits struct {
	AuthEmailRPS   float64 `yaml:"auth_email_rps" env:"AUTH_EMAIL_RPS"`
	AuthEmailBurst int     `yaml:"auth_email_burst" env:"AUTH_EMAIL_BURST"`
}

type Log struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`
	Pretty bool   `yaml:"pretty" env:"LOG_PRETTY"`
}

// InitConfig reads ./config.yaml (or CONFIG_PATH) and applies environment overrides.
func InitConfig() *Config {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "./config.yaml"
	}

	configs, err := Load(path)
	if err != nil {
		log.Fatalf("cannot read config: %v", err)
	}
	return configs
}

// Load builds a Config from the yaml file at path. A missing file is not an
// error; defaults and environment variables still apply.
func Load(path string) (*Config, error) {
	configs := Defaults()

	file_name, _ := filepath.Abs(path)
	yaml_file, err := os.ReadFile(file_name)
	if err == nil {
		if err := yaml.Unmarshal(yaml_file, configs); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	// Override with environment variables if they exist (for Docker)
	if err := env.Parse(configs); err != nil {
		return nil, err
	}

	return configs, nil
}

func Defaults() *Config {
	return &Config{
		App: App{
			Name: "pathfinder",
			Host: "0.0.0.0",
			Port: "8000",
			Mode: "debug",
		},
		Database: Database{
			Driver: "postgres",
			Port:   "5432",
			Path:   "pathfinder.db",
		},
		Allows: Allows{
			Methods: []string{"GET", "PUT", "POST", "PATCH", "DELETE", "OPTIONS"},
			Origins: []string{"*"},
			Headers: []string{"Content-Type", "Authorization", "X-Requested-With", "X-Request-ID", "Origin", "Accept", "admin_key"},
		},
		JWT: JWT{
			TTL: 24 * time.Hour,
		},
		Mail: Mail{
			Host: "smtp.gmail.com",
			Port: 587,
		},
		Redis: Redis{
			ReputationTTL: 5 * time.Minute,
		},
		Media: Media{
			ImageModel:   "imagen-3.0-generate-002",
			VideoModel:   "veo-2.0-generate-001",
			PollInterval: 10 * time.Second,
			Timeout:      5 * time.Minute,
		},
		Jobs: Jobs{
			TokenCleanupSchedule: "@hourly",
		},
		Limits: Limits{
			AuthEmailRPS:   0.2,
			AuthEmailBurst: 3,
		},
		Log: Log{
			Level: "info",
		},
	}
}
