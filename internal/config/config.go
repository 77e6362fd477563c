package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Places    PlacesConfig
	Weather   WeatherConfig
	RateLimit RateLimitConfig
	Log       LogConfig
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

// PlacesConfig - настройки провайдера Google Places
type PlacesConfig struct {
	APIKey         string
	BaseURL        string
	RequestTimeout time.Duration
	DetailsWorkers int
	PhotoMaxWidth  int
}

// WeatherConfig - настройки провайдера OpenWeather
type WeatherConfig struct {
	APIKey         string
	BaseURL        string
	RequestTimeout time.Duration
}

// RateLimitConfig - настройки ограничителя запросов.
// Store: "memory" (по умолчанию, один процесс) или "redis" (общий счетчик
// для нескольких инстансов).
type RateLimitConfig struct {
	MaxRequests int
	Window      time.Duration
	Store       string
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Missing .env is fine when everything comes from the environment.
	_ = viper.ReadInConfig()

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
		Places: PlacesConfig{
			APIKey:         viper.GetString("GOOGLE_PLACES_API_KEY"),
			BaseURL:        viper.GetString("GOOGLE_PLACES_BASE_URL"),
			RequestTimeout: time.Duration(viper.GetInt("PLACES_REQUEST_TIMEOUT")) * time.Second,
			DetailsWorkers: viper.GetInt("PLACES_DETAILS_WORKERS"),
			PhotoMaxWidth:  viper.GetInt("PLACES_PHOTO_MAX_WIDTH"),
		},
		Weather: WeatherConfig{
			APIKey:         viper.GetString("OPENWEATHER_API_KEY"),
			BaseURL:        viper.GetString("OPENWEATHER_BASE_URL"),
			RequestTimeout: time.Duration(viper.GetInt("WEATHER_REQUEST_TIMEOUT")) * time.Second,
		},
		RateLimit: RateLimitConfig{
			MaxRequests: viper.GetInt("RATE_LIMIT_MAX_REQUESTS"),
			Window:      time.Duration(viper.GetInt("RATE_LIMIT_WINDOW_SECONDS")) * time.Second,
			Store:       viper.GetString("RATE_LIMIT_STORE"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Places.BaseURL == "" {
		cfg.Places.BaseURL = "https://maps.googleapis.com/maps/api/place"
	}
	if cfg.Places.RequestTimeout == 0 {
		cfg.Places.RequestTimeout = 10 * time.Second
	}
	if cfg.Places.DetailsWorkers == 0 {
		cfg.Places.DetailsWorkers = 10
	}
	if cfg.Places.PhotoMaxWidth == 0 {
		cfg.Places.PhotoMaxWidth = 400
	}
	if cfg.Weather.BaseURL == "" {
		cfg.Weather.BaseURL = "https://api.openweathermap.org/data/2.5"
	}
	if cfg.Weather.RequestTimeout == 0 {
		cfg.Weather.RequestTimeout = 10 * time.Second
	}
	if cfg.RateLimit.MaxRequests == 0 {
		cfg.RateLimit.MaxRequests = 60
	}
	if cfg.RateLimit.Window == 0 {
		cfg.RateLimit.Window = 60 * time.Second
	}
	if cfg.RateLimit.Store == "" {
		cfg.RateLimit.Store = "memory"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
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
