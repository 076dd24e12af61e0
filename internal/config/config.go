package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	RunAddress     string        `env:"RUN_ADDRESS" validate:"required,hostname_port"`
	DatabaseDSN    string        `env:"DATABASE_URI" validate:"required"`
	MigrationsDir  string        `env:"MIGRATIONS_DIR" validate:"required"`
	JWTSecret      string        `env:"JWT_SECRET" validate:"required"`
	Currency       string        `env:"CURRENCY" validate:"required"`
	Income         int64         `env:"INCOME" validate:"gt=0"`
	ConfirmTimeout time.Duration `env:"CONFIRM_TIMEOUT" validate:"gt=0"`
}

func LoadConfig() (*Config, error) {
	// .env не обязателен, его отсутствие не ошибка.
	_ = godotenv.Load()

	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	loadFlags(&flagsConfig)

	conf := mergeConfig(&envConfig, &flagsConfig)
	if validateErr := validator.New().Struct(conf); validateErr != nil {
		return nil, fmt.Errorf("validate config: %s", validateErr.Error())
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func loadFlags(flagConfig *Config) {
	flag.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flag.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	flag.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	flag.StringVar(&flagConfig.JWTSecret, "j", "", "JWT secret key")
	flag.StringVar(&flagConfig.Currency, "c", "coins", "Currency display name")
	flag.Int64Var(&flagConfig.Income, "i", 100, "Periodic income amount")
	flag.DurationVar(&flagConfig.ConfirmTimeout, "t", time.Minute, "Reaction confirmation timeout")

	flag.Parse()
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	conf := &Config{
		RunAddress:     defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:    defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir:  defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		JWTSecret:      defaultIfBlank(envConfig.JWTSecret, flagsConfig.JWTSecret),
		Currency:       defaultIfBlank(envConfig.Currency, flagsConfig.Currency),
		Income:         envConfig.Income,
		ConfirmTimeout: envConfig.ConfirmTimeout,
	}
	if conf.Income == 0 {
		conf.Income = flagsConfig.Income
	}
	if conf.ConfirmTimeout == 0 {
		conf.ConfirmTimeout = flagsConfig.ConfirmTimeout
	}
	return conf
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
