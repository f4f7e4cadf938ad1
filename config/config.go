package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig
	DB     DBConfig
	Redis  RedisConfig
	JWT    JWTConfig
	Stripe StripeConfig
	Cache  CacheConfig
}

type AppConfig struct {
	Port          string
	Env           string
	AllowedOrigin string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret      string
	TokenExpiry time.Duration
}

type StripeConfig struct {
	SecretKey string
	Currency  string
}

type CacheConfig struct {
	AvailabilityTTL time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	tokenExpiry, err := time.ParseDuration(viper.GetString("JWT_TOKEN_EXPIRY"))
	if err != nil {
		tokenExpiry = 7 * 24 * time.Hour
	}

	availabilityTTL, err := time.ParseDuration(viper.GetString("AVAILABILITY_CACHE_TTL"))
	if err != nil {
		availabilityTTL = time.Minute
	}

	currency := viper.GetString("STRIPE_CURRENCY")
	if currency == "" {
		currency = "usd"
	}

	config := &Config{
		App: AppConfig{
			Port:          viper.GetString("APP_PORT"),
			Env:           viper.GetString("APP_ENV"),
			AllowedOrigin: viper.GetString("CORS_ALLOWED_ORIGIN"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:      viper.GetString("ACCESS_TOKEN_SECRET"),
			TokenExpiry: tokenExpiry,
		},
		Stripe: StripeConfig{
			SecretKey: viper.GetString("STRIPE_SECRET_KEY"),
			Currency:  currency,
		},
		Cache: CacheConfig{
			AvailabilityTTL: availabilityTTL,
		},
	}

	return config, nil
}
